package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/logspect/logspect-client/pkg/listview"
)

// newTable returns a tab-aligned writer for list output.
func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

// fetchPage applies filters and moves the view to the requested page.
// Filters fetch as they are applied; a bare listing refreshes once.
func fetchPage[T any](ctx context.Context, f *listview.Fetcher[T], filters map[string]string, page int) error {
	applied := false
	for field, value := range filters {
		if value == "" {
			continue
		}
		if err := f.SetFilter(ctx, field, value); err != nil {
			return err
		}
		applied = true
	}

	if !applied {
		if err := f.Refresh(ctx); err != nil {
			return err
		}
	}

	if page > 1 {
		if err := f.SetPage(ctx, page); err != nil {
			return err
		}
	}
	return nil
}

// printFooter writes the "page X of Y" trailer under a list.
func printFooter[T any](out io.Writer, f *listview.Fetcher[T]) {
	fmt.Fprintf(out, "\npage %d of %d (%d entries)\n", f.Page(), f.TotalPages(), f.Total())
}

// formatTime renders a backend timestamp for terminal output.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// formatSize renders a byte count in a short human unit.
func formatSize(bytes int64) string {
	switch {
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(bytes)/(1<<10))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// orDash substitutes a dash for empty cell values.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
