package listview

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/logspect/logspect-client/pkg/logging"
	"github.com/rs/zerolog"
)

// ErrSuperseded is returned when a fetch completed after a newer request
// was issued; its response was discarded.
var ErrSuperseded = errors.New("fetch superseded by newer request")

// Mode selects where pagination happens.
type Mode int

const (
	// ClientPaginated fetches the full filtered set once and slices pages
	// in memory.
	ClientPaginated Mode = iota

	// ServerPaginated sends limit/offset per request; the server returns
	// the authoritative total.
	ServerPaginated
)

// Page is one fetch result. Total is only meaningful in server mode; in
// client mode the item count is authoritative.
type Page[T any] struct {
	Items []T
	Total int
}

// Source fetches one result set for the given outbound parameters.
type Source[T any] func(ctx context.Context, params url.Values) (Page[T], error)

// Config holds fetcher configuration.
type Config struct {
	// PageSize is the number of items per page (constant per screen).
	PageSize int

	// Mode selects client- or server-side pagination.
	Mode Mode
}

// Fetcher owns the query, page position, and result set of one list screen.
// It is safe for concurrent use; overlapping fetches resolve
// last-request-wins.
type Fetcher[T any] struct {
	source Source[T]
	config Config
	logger zerolog.Logger

	mu    sync.Mutex
	query Query
	page  int
	items []T
	total int
	seq   uint64 // newest issued fetch
	err   error  // outcome of the newest completed fetch
}

// NewFetcher creates a fetcher over source. PageSize defaults to 10.
func NewFetcher[T any](source Source[T], config Config) *Fetcher[T] {
	if config.PageSize <= 0 {
		config.PageSize = 10
	}

	return &Fetcher[T]{
		source: source,
		config: config,
		logger: logging.NewLogger("listview"),
		query:  NewQuery(),
		page:   1,
	}
}

// SetFilter updates one filter field, resets the current page to 1, and
// issues a fetch. The page reset happens before the request goes out.
func (f *Fetcher[T]) SetFilter(ctx context.Context, field, value string) error {
	f.mu.Lock()
	f.query.Set(field, value)
	f.page = 1
	f.mu.Unlock()

	return f.fetch(ctx)
}

// ClearFilters resets the query to its all-empty form, resets the page to
// 1, and issues a fetch.
func (f *Fetcher[T]) ClearFilters(ctx context.Context) error {
	f.mu.Lock()
	f.query.Clear()
	f.page = 1
	f.mu.Unlock()

	return f.fetch(ctx)
}

// SetPage moves to page n, clamped to [1, TotalPages]. In server mode a
// page change issues one fetch with the new offset; in client mode the
// already-held data is re-sliced with no network call.
func (f *Fetcher[T]) SetPage(ctx context.Context, n int) error {
	f.mu.Lock()

	target := clamp(n, 1, f.totalPagesLocked())
	if target == f.page {
		f.mu.Unlock()
		return nil
	}
	f.page = target
	mode := f.config.Mode
	f.mu.Unlock()

	if mode == ClientPaginated {
		return nil
	}
	return f.fetch(ctx)
}

// Refresh re-fetches the current filter/page state. Callers use it after a
// mutation (delete, archive, upload) so the visible list reflects it.
func (f *Fetcher[T]) Refresh(ctx context.Context) error {
	return f.fetch(ctx)
}

// fetch issues one read request for the current state and installs the
// result unless a newer request has been issued in the meantime.
func (f *Fetcher[T]) fetch(ctx context.Context) error {
	f.mu.Lock()
	f.seq++
	seq := f.seq
	params := f.query.Values()
	if f.config.Mode == ServerPaginated {
		params.Set("limit", strconv.Itoa(f.config.PageSize))
		params.Set("offset", strconv.Itoa((f.page-1)*f.config.PageSize))
	}
	f.mu.Unlock()

	start := time.Now()
	page, err := f.source(ctx, params)

	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.seq {
		f.logger.Warn().
			Uint64("seq", seq).
			Uint64("latest", f.seq).
			Msg("Discarding stale list response")
		return ErrSuperseded
	}

	if err != nil {
		// keep the previous result set so the screen does not blank out
		f.err = err
		f.logger.Error().
			Err(err).
			Uint64("seq", seq).
			Msg("List fetch failed")
		return err
	}

	f.err = nil
	f.items = page.Items
	if f.config.Mode == ServerPaginated {
		f.total = page.Total
	} else {
		f.total = len(page.Items)
	}

	f.logger.Debug().
		Uint64("seq", seq).
		Int("items", len(page.Items)).
		Int("total", f.total).
		Int("page", f.page).
		Dur("duration", time.Since(start)).
		Msg("List fetch complete")

	return nil
}

// Visible returns the items of the current page. In server mode the held
// items already are the current page; in client mode the slice is computed
// from the full set.
func (f *Fetcher[T]) Visible() []T {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.config.Mode == ServerPaginated {
		return f.items
	}

	lo := (f.page - 1) * f.config.PageSize
	if lo >= len(f.items) {
		return nil
	}
	hi := lo + f.config.PageSize
	if hi > len(f.items) {
		hi = len(f.items)
	}
	return f.items[lo:hi]
}

// Page returns the current page number (1-based).
func (f *Fetcher[T]) Page() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}

// Total returns the total row count: the server-reported total in server
// mode, the held item count in client mode.
func (f *Fetcher[T]) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total
}

// TotalPages returns ceil(Total / PageSize).
func (f *Fetcher[T]) TotalPages() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.totalPagesLocked()
}

// HasNext reports whether a next page exists.
func (f *Fetcher[T]) HasNext() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page < f.totalPagesLocked()
}

// HasPrev reports whether a previous page exists.
func (f *Fetcher[T]) HasPrev() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page > 1
}

// Err returns the error of the newest completed fetch, or nil. A non-nil
// Err with an empty Visible slice means "fetch failed", not "no results".
func (f *Fetcher[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Filter returns the current value of one filter field.
func (f *Fetcher[T]) Filter(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.query.Get(field)
}

// PageSize returns the configured page size.
func (f *Fetcher[T]) PageSize() int {
	return f.config.PageSize
}

func (f *Fetcher[T]) totalPagesLocked() int {
	if f.total <= 0 {
		return 0
	}
	return (f.total + f.config.PageSize - 1) / f.config.PageSize
}

func clamp(n, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
