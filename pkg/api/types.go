// Package api provides typed access to the log-management backend.
//
// Entities mirror the backend's JSON shapes field for field; the backend
// owns their canonical representation. List endpoints return a
// ListResponse envelope with the items and, for server-paginated reads,
// an authoritative total row count.
package api

import (
	"io"
	"time"
)

// ListResponse is the envelope returned by list endpoints.
type ListResponse[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}

// LogEntry is one parsed log line.
type LogEntry struct {
	LogID           int64     `json:"log_id"`
	LogTimestamp    time.Time `json:"log_timestamp"`
	MessageLine     string    `json:"message_line"`
	SeverityCode    string    `json:"severity_code,omitempty"`
	CategoryName    string    `json:"category_name,omitempty"`
	EnvironmentCode string    `json:"environment_code,omitempty"`
	FileName        string    `json:"file_name,omitempty"`
	TeamName        string    `json:"team_name,omitempty"`
}

// LogFile is an uploaded raw log file.
type LogFile struct {
	FileID        int64     `json:"file_id"`
	OriginalName  string    `json:"original_name"`
	FileSizeBytes int64     `json:"file_size_bytes"`
	IsArchived    bool      `json:"is_archived"`
	UploadedAt    time.Time `json:"uploaded_at"`
	UploaderName  string    `json:"uploader_name,omitempty"`
	TeamName      string    `json:"team_name,omitempty"`
	FormatName    string    `json:"format_name,omitempty"`
}

// User is an account record.
type User struct {
	UserID    int64     `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name,omitempty"`
	PhoneNo   string    `json:"phone_no"`
	Email     string    `json:"email"`
	Username  string    `json:"username,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	UserRole  string    `json:"user_role,omitempty"`
	TeamID    int64     `json:"team_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserCreate is the registration payload.
type UserCreate struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	PhoneNo   string `json:"phone_no"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	Gender    string `json:"gender,omitempty"`
	UserRole  string `json:"user_role,omitempty"`
	Password  string `json:"password"`
}

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	PhoneNo   *string `json:"phone_no,omitempty"`
	Username  *string `json:"username,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	UserRole  *string `json:"user_role,omitempty"`
	TeamID    *int64  `json:"team_id,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
	IsDeleted *bool   `json:"is_deleted,omitempty"`
}

// Team is a team record.
type Team struct {
	TeamID    int64     `json:"team_id"`
	TeamName  string    `json:"team_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Environment is a deployment environment lookup record.
type Environment struct {
	EnvironmentID   int64  `json:"environment_id"`
	EnvironmentCode string `json:"environment_code"`
	Description     string `json:"description,omitempty"`
}

// AuditRecord is one entry of the admin audit trail.
type AuditRecord struct {
	ActionID   int64     `json:"action_id"`
	UserID     int64     `json:"user_id,omitempty"`
	ActionType string    `json:"action_type"`
	ActionTime time.Time `json:"action_time"`
}

// LoginRecord is one entry of a user's login history.
type LoginRecord struct {
	LoginID   int64     `json:"login_id"`
	UserID    int64     `json:"user_id"`
	LoginTime time.Time `json:"login_time"`
	Status    bool      `json:"status"`
}

// Token is the login response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Role        string `json:"role"`
}

// NameValue is one slice of the dashboard severity distribution.
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// SystemCount is one row of the dashboard "most active systems" list.
type SystemCount struct {
	System string `json:"system"`
	Count  int    `json:"count"`
}

// TrendPoint is one day of the dashboard ingestion trend.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DashboardSummary is the admin dashboard payload. The analytics behind it
// are computed server-side and consumed as-is.
type DashboardSummary struct {
	FilesUploadedToday   int           `json:"files_uploaded_today"`
	SecurityLogsCount    int           `json:"security_logs_count"`
	SeverityDistribution []NameValue   `json:"severity_distribution"`
	ActiveSystems        []SystemCount `json:"active_systems"`
	LogsTrend            []TrendPoint  `json:"logs_trend"`
	LastFile             *LastFileInfo `json:"last_file,omitempty"`
}

// LastFileInfo is the most recently uploaded file shown on the dashboard.
type LastFileInfo struct {
	Name string    `json:"name"`
	At   time.Time `json:"at"`
	Size int64     `json:"size"`
	ID   int64     `json:"id"`
}

// PersonalStats are the per-user counters of the user dashboard.
type PersonalStats struct {
	TotalLogs    int `json:"total_logs"`
	SecurityLogs int `json:"security_logs"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Info         int `json:"info"`
}

// RecentFileInfo is the user's most recent upload.
type RecentFileInfo struct {
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	ID        int64     `json:"id"`
	SizeKB    float64   `json:"size_kb"`
}

// UserSummary is the per-user dashboard payload.
type UserSummary struct {
	PersonalStats PersonalStats   `json:"personal_stats"`
	RecentFile    *RecentFileInfo `json:"recent_file,omitempty"`
}

// UploadFile is one file handle in an upload batch. Open is called when
// the multipart body is built, and again if the batch is retried.
type UploadFile struct {
	Name string
	Open func() (io.ReadCloser, error)
}
