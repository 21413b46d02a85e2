package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strconv"
	"time"

	"github.com/logspect/logspect-client/pkg/client"
	"github.com/logspect/logspect-client/pkg/listview"
)

// uploadFieldName is the multipart field shared by every file in a batch.
const uploadFieldName = "files"

// FileService covers the raw-file endpoints. File lists are
// client-paginated: the backend returns the full filtered set and the
// screen slices it in memory.
type FileService struct {
	http *client.Client
}

// UploadedFile is the backend's record of one ingested file.
type UploadedFile struct {
	FileID        int64     `json:"file_id"`
	OriginalName  string    `json:"original_name"`
	FileSizeBytes int64     `json:"file_size_bytes"`
	Format        string    `json:"format,omitempty"`
	Category      string    `json:"category,omitempty"`
	UploadedAt    time.Time `json:"uploaded_at"`
	IsArchived    bool      `json:"is_archived"`
}

// ListAll returns every file visible to the caller, filtered by params.
func (s *FileService) ListAll(ctx context.Context, params url.Values) (ListResponse[LogFile], error) {
	var out ListResponse[LogFile]
	err := s.http.Get(ctx, "/files/get-all-files", params, &out)
	return out, err
}

// ListMine returns the caller's own (scope=me) or team (scope=team) files.
func (s *FileService) ListMine(ctx context.Context, params url.Values) (ListResponse[LogFile], error) {
	var out ListResponse[LogFile]
	err := s.http.Get(ctx, "/files/me", params, &out)
	return out, err
}

// Delete permanently removes a file and its parsed entries.
func (s *FileService) Delete(ctx context.Context, fileID int64) error {
	return s.http.Delete(ctx, fmt.Sprintf("/files/%d", fileID))
}

// Archive marks a file as archived without deleting it.
func (s *FileService) Archive(ctx context.Context, fileID int64) error {
	return s.http.Patch(ctx, fmt.Sprintf("/files/%d/archive", fileID), nil)
}

// Upload posts a batch of files as one multipart request. Every file goes
// under the same field name; team and environment ride as query
// parameters. Format detection is the backend's job.
func (s *FileService) Upload(ctx context.Context, teamID, environmentID int64, files []UploadFile) ([]UploadedFile, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("at least one file is required")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for _, file := range files {
		part, err := writer.CreateFormFile(uploadFieldName, file.Name)
		if err != nil {
			return nil, fmt.Errorf("create form file %q: %w", file.Name, err)
		}
		src, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open %q: %w", file.Name, err)
		}
		_, err = io.Copy(part, src)
		src.Close()
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", file.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	query := url.Values{}
	query.Set("team_id", strconv.FormatInt(teamID, 10))
	query.Set("environment_id", strconv.FormatInt(environmentID, 10))

	var out []UploadedFile
	err := s.http.PostMultipart(ctx, "/files/upload", query, writer.FormDataContentType(), body.Bytes(), &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AllSource adapts ListAll for a client-paginated list view.
func (s *FileService) AllSource() listview.Source[LogFile] {
	return listSource(s.ListAll)
}

// MineSource adapts ListMine for a client-paginated list view.
func (s *FileService) MineSource() listview.Source[LogFile] {
	return listSource(s.ListMine)
}
