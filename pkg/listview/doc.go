// Package listview implements the filtered, paginated list state shared by
// every table screen of the admin panel (files, logs, users, audits, login
// history).
//
// Two pagination styles exist in the backend API and both are supported:
//
//   - Client-paginated: the full filtered result set is fetched once and
//     sliced into pages in memory. Changing the page issues no request.
//   - Server-paginated: each request carries limit/offset and the server
//     returns the authoritative total row count alongside one page of items.
//
// Example usage:
//
//	fetcher := listview.NewFetcher(source, listview.Config{
//		PageSize: 10,
//		Mode:     listview.ServerPaginated,
//	})
//	fetcher.SetFilter(ctx, "severity_code", "ERROR")
//	items := fetcher.Visible()
//
// Every filter change resets the current page to 1 before the next fetch.
// Empty-string filter values mean "no filter" and are omitted from the
// outbound query entirely.
//
// Overlapping fetches are resolved last-request-wins: each outbound fetch
// carries a sequence number and a response is discarded unless it belongs
// to the newest issued request. A failed fetch keeps the previous result
// set in place and is reported through Err, so callers can tell "fetch
// failed" apart from "genuinely no results".
package listview
