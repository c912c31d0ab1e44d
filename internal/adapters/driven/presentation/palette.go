package presentation

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the Tableau 10 categorical palette.
var Palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// Color returns the palette entry for a category index.
// Indices wrap modulo the palette length in both directions.
func Color(i int) string {
	n := len(Palette)
	return Palette[((i%n)+n)%n]
}

// Tint returns hex as a CSS rgba() string with the given alpha.
// Unparseable input is returned unchanged.
func Tint(hex string, alpha float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(alpha))
}

func formatAlpha(a float64) string {
	a = max(0, min(1, a))
	return fmt.Sprintf("%g", a)
}
