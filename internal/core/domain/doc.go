// Package domain defines the core business entities for arbeidssokere.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawRecord: One parsed CSV row, column name to string value
//   - Record: A normalised row with category, time bucket and count
//   - SeriesAggregation: Dense category x time-bucket matrix
//   - Distribution: Per-category totals for one time bucket
//   - Selection: The chart kind, category and year the user picked
//   - ViewState: Everything a surface needs to draw the current view
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
