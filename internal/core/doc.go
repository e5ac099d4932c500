// Package core holds the resource directory's filter/search engine and the
// service that owns the loaded dataset.
//
// The engine is a set of pure functions over decoded records:
//
//   - [DeriveFacets] collects the sorted tag values of each facet field.
//   - [IsVisible] and [Filter] apply the free-text query and the facet
//     [Selection]. Facet fields combine with AND, values within one field
//     with OR.
//   - [Toggle] flips one facet value and returns a new Selection; a field
//     whose set empties is removed.
//
// # Load Status
//
// [Service] publishes immutable [Snapshot] values. A load moves the status
// from loading to success or error; both stay put until the next reload.
// Concurrent loads are coalesced so two fetches never race. A fetch that
// decodes to zero records is a success with an empty dataset.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages with [MapError]:
//
//   - SRC001-SRC004: fetching the sheet (status, size, network, timeout)
//   - DATA001: dataset not loaded yet
//   - REQ001-REQ002: request cancelled or timed out
//   - RATE001: rate limited
package core
