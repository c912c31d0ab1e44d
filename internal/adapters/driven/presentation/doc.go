// Package presentation turns aggregations into renderable charts and
// accessible tables.
//
// Chart output follows the Chart.js dataset vocabulary (borderColor,
// backgroundColor, fill, tension, indexAxis) so the web adapter can hand
// it to the browser unchanged. The TUI and image renderers read the same
// structures.
package presentation
