// Package chartimg renders domain charts to static SVG or PNG images
// with go-chart. It backs the export command.
//
// Bar kinds are drawn as stacked bars per time bucket since go-chart has
// no grouped bar chart; line and area kinds use continuous series over
// the bucket index.
package chartimg
