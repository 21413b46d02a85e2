// Package upload implements the batch upload workflow: pick a destination
// team and environment, select one or more log files, submit them as a
// single multipart request.
package upload

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/logspect/logspect-client/pkg/api"
	"github.com/logspect/logspect-client/pkg/logging"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Validation errors returned by Submit before any network call.
var (
	ErrNoTeam        = errors.New("select a team before submitting")
	ErrNoEnvironment = errors.New("select an environment before submitting")
	ErrNoFiles       = errors.New("select at least one file before submitting")
	ErrNotOpen       = errors.New("upload dialog is not open")
	ErrBusy          = errors.New("an operation is already in progress")
)

// State is the coordinator's lifecycle position.
type State int

const (
	// StateClosed means no upload is being prepared.
	StateClosed State = iota

	// StateLoadingPrereqs means the team/environment lists are loading.
	StateLoadingPrereqs

	// StateOpen means the dialog is open and accepting selections.
	StateOpen

	// StateSubmitting means the multipart request is in flight.
	StateSubmitting
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateLoadingPrereqs:
		return "loading-prereqs"
	case StateOpen:
		return "open"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Backend is the slice of the API the coordinator needs.
type Backend interface {
	// MyJoinedTeams returns the teams the caller may upload for.
	MyJoinedTeams(ctx context.Context) ([]api.Team, error)

	// Environments returns the environment lookup list.
	Environments(ctx context.Context) ([]api.Environment, error)

	// Upload posts one multipart batch.
	Upload(ctx context.Context, teamID, environmentID int64, files []api.UploadFile) ([]api.UploadedFile, error)
}

// Config holds coordinator configuration.
type Config struct {
	// PrereqTimeout bounds the team/environment loads on Open. A stalled
	// prerequisite call must not leave the opener hanging forever.
	PrereqTimeout time.Duration

	// OnUploaded is called after a successful submit so the owning list
	// can re-fetch. May be nil.
	OnUploaded func()
}

// Coordinator drives one upload dialog. Safe for concurrent use.
type Coordinator struct {
	backend Backend
	config  Config
	logger  zerolog.Logger

	mu            sync.Mutex
	state         State
	teams         []api.Team
	environments  []api.Environment
	teamID        int64
	environmentID int64
	files         []api.UploadFile
}

// New creates a coordinator in the Closed state.
func New(backend Backend, config Config) *Coordinator {
	if config.PrereqTimeout <= 0 {
		config.PrereqTimeout = 15 * time.Second
	}

	return &Coordinator{
		backend: backend,
		config:  config,
		logger:  logging.NewLogger("upload"),
		state:   StateClosed,
	}
}

// Open loads the caller's eligible teams and the environment list, then
// opens the dialog. The two reads run in parallel and both must succeed;
// on any failure the dialog stays closed and the error is returned. When
// exactly one eligible team exists it is pre-selected.
func (c *Coordinator) Open(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateClosed {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state = StateLoadingPrereqs
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.config.PrereqTimeout)
	defer cancel()

	var teams []api.Team
	var environments []api.Environment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = c.backend.MyJoinedTeams(gctx)
		if err != nil {
			return fmt.Errorf("load teams: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		environments, err = c.backend.Environments(gctx)
		if err != nil {
			return fmt.Errorf("load environments: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		c.mu.Lock()
		c.state = StateClosed
		c.mu.Unlock()

		c.logger.Error().Err(err).Msg("Upload prerequisites failed to load")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateOpen
	c.teams = teams
	c.environments = environments
	c.teamID = 0
	c.environmentID = 0
	c.files = nil

	// One eligible team needs no decision from the user
	if len(teams) == 1 {
		c.teamID = teams[0].TeamID
	}

	c.logger.Debug().
		Int("teams", len(teams)).
		Int("environments", len(environments)).
		Msg("Upload dialog opened")

	return nil
}

// SelectFiles replaces the pending file collection. Re-selecting replaces
// the prior selection rather than appending to it.
func (c *Coordinator) SelectFiles(files []api.UploadFile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateOpen {
		return ErrNotOpen
	}
	c.files = files
	return nil
}

// SetTeam selects the destination team.
func (c *Coordinator) SetTeam(teamID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateOpen {
		return ErrNotOpen
	}
	c.teamID = teamID
	return nil
}

// SetEnvironment selects the destination environment.
func (c *Coordinator) SetEnvironment(environmentID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateOpen {
		return ErrNotOpen
	}
	c.environmentID = environmentID
	return nil
}

// Submit validates the batch and posts it as one multipart request.
// Validation failures reject locally with no network call. On success the
// batch is discarded, the dialog closes, and OnUploaded fires. On a server
// failure the dialog stays open with the batch intact so the user can
// retry; the returned error carries the backend detail verbatim.
func (c *Coordinator) Submit(ctx context.Context) ([]api.UploadedFile, error) {
	c.mu.Lock()
	if c.state != StateOpen {
		c.mu.Unlock()
		return nil, ErrNotOpen
	}

	if c.teamID == 0 {
		c.mu.Unlock()
		return nil, ErrNoTeam
	}
	if c.environmentID == 0 {
		c.mu.Unlock()
		return nil, ErrNoEnvironment
	}
	if len(c.files) == 0 {
		c.mu.Unlock()
		return nil, ErrNoFiles
	}

	c.state = StateSubmitting
	teamID := c.teamID
	environmentID := c.environmentID
	files := c.files
	c.mu.Unlock()

	uploaded, err := c.backend.Upload(ctx, teamID, environmentID, files)

	c.mu.Lock()
	if err != nil {
		// Dialog stays open, batch intact, so the user can retry
		c.state = StateOpen
		c.mu.Unlock()

		c.logger.Warn().
			Err(err).
			Int64("team_id", teamID).
			Int64("environment_id", environmentID).
			Int("files", len(files)).
			Msg("Batch upload failed")
		return nil, err
	}

	c.resetLocked()
	hook := c.config.OnUploaded
	c.mu.Unlock()

	c.logger.Info().
		Int64("team_id", teamID).
		Int64("environment_id", environmentID).
		Int("files", len(files)).
		Msg("Batch upload complete")

	// The hook fires outside the lock; it usually triggers a list re-fetch
	if hook != nil {
		hook()
	}

	return uploaded, nil
}

// Close discards the pending batch and closes the dialog.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return
	}
	c.resetLocked()
}

// resetLocked returns the coordinator to its Closed state.
func (c *Coordinator) resetLocked() {
	c.state = StateClosed
	c.teams = nil
	c.environments = nil
	c.teamID = 0
	c.environmentID = 0
	c.files = nil
}

// State returns the current lifecycle position.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Teams returns the loaded eligible teams.
func (c *Coordinator) Teams() []api.Team {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.teams
}

// Environments returns the loaded environment list.
func (c *Coordinator) Environments() []api.Environment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.environments
}

// SelectedTeam returns the chosen team id (0 when unset).
func (c *Coordinator) SelectedTeam() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.teamID
}

// SelectedEnvironment returns the chosen environment id (0 when unset).
func (c *Coordinator) SelectedEnvironment() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.environmentID
}

// Files returns the pending file collection.
func (c *Coordinator) Files() []api.UploadFile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.files
}
