// Package textchart draws charts with block characters for the terminal.
package textchart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
)

const (
	minBarWidth = 4
	maxLabel    = 24
)

var (
	sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	trackColor  = lipgloss.Color("#313244")
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// Item is one bar in a horizontal bar chart.
type Item struct {
	Label    string
	Value    int
	Color    lipgloss.Color
	SubLabel string
}

// Sparkline draws values as a row of block characters scaled between
// their minimum and maximum. Longer inputs are sampled down to width.
func Sparkline(values []int, width int, color lipgloss.Color) string {
	if len(values) == 0 || width < 1 {
		return ""
	}

	if len(values) > width {
		step := float64(len(values)) / float64(width)
		sampled := make([]int, width)
		for i := range sampled {
			idx := min(int(float64(i)*step), len(values)-1)
			sampled[i] = values[idx]
		}
		values = sampled
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var sb strings.Builder
	for _, v := range values {
		idx := (v - lo) * (len(sparkBlocks) - 1) / span
		sb.WriteRune(sparkBlocks[max(0, min(idx, len(sparkBlocks)-1))])
	}
	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}

// HBar draws one labelled bar per item, scaled to the largest value.
func HBar(items []Item, barWidth, labelWidth int, format func(int) string) string {
	if len(items) == 0 {
		return dimStyle.Render("  Ingen data")
	}
	barWidth = max(barWidth, minBarWidth)
	format = orDefault(format)

	peak := 0
	for _, it := range items {
		peak = max(peak, it.Value)
	}
	if peak == 0 {
		peak = 1
	}

	label := lipgloss.NewStyle().Width(labelWidth)
	track := lipgloss.NewStyle().Foreground(trackColor)

	lines := make([]string, 0, len(items))
	for _, it := range items {
		n := it.Value * barWidth / peak
		if n < 1 && it.Value > 0 {
			n = 1
		}
		style := lipgloss.NewStyle().Foreground(it.Color)

		line := fmt.Sprintf("  %s %s%s  %s",
			label.Render(truncate(it.Label, labelWidth)),
			style.Render(strings.Repeat("█", n)),
			track.Render(strings.Repeat("░", barWidth-n)),
			style.Bold(true).Render(format(it.Value)),
		)
		if it.SubLabel != "" {
			line += "  " + dimStyle.Render(it.SubLabel)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Render draws c to fit width columns.
func Render(c *domain.Chart, width int, format func(int) string) string {
	if c == nil || len(c.Datasets) == 0 || len(c.Labels) == 0 {
		return dimStyle.Render("  Ingen data for valgt utvalg")
	}
	format = orDefault(format)

	switch c.Kind {
	case domain.ChartPie:
		return renderDistribution(c, width, format)
	case domain.ChartBar, domain.ChartHorizontalBar:
		return renderGrouped(c, width, format)
	case domain.ChartLine, domain.ChartStackedArea:
		return renderSeries(c, width, format)
	default:
		return dimStyle.Render(fmt.Sprintf("  Ukjent diagramtype %q", c.Kind))
	}
}

func renderSeries(c *domain.Chart, width int, format func(int) string) string {
	labelWidth := labelWidthFor(c.Datasets)
	sparkWidth := max(width-labelWidth-16, len(c.Labels))

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s–%s", c.Labels[0], c.Labels[len(c.Labels)-1])))
	b.WriteByte('\n')

	label := lipgloss.NewStyle().Width(labelWidth)
	var totals []int
	if c.Stacked {
		totals = make([]int, len(c.Labels))
	}
	for _, ds := range c.Datasets {
		color := lipgloss.Color(ds.BorderColor)
		last := 0
		if len(ds.Data) > 0 {
			last = ds.Data[len(ds.Data)-1]
		}
		for i, v := range ds.Data {
			if totals != nil && i < len(totals) {
				totals[i] += v
			}
		}
		fmt.Fprintf(&b, "  %s %s  %s\n",
			label.Render(truncate(ds.Label, labelWidth)),
			Sparkline(ds.Data, sparkWidth, color),
			lipgloss.NewStyle().Foreground(color).Bold(true).Render(format(last)),
		)
	}
	if totals != nil {
		fmt.Fprintf(&b, "  %s %s  %s\n",
			label.Render("Totalt"),
			Sparkline(totals, sparkWidth, lipgloss.Color("#CDD6F4")),
			format(totals[len(totals)-1]),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderGrouped(c *domain.Chart, width int, format func(int) string) string {
	labelWidth := labelWidthFor(c.Datasets)
	barWidth := width - labelWidth - 16

	blocks := make([]string, 0, len(c.Labels))
	for i, bucket := range c.Labels {
		items := make([]Item, 0, len(c.Datasets))
		for _, ds := range c.Datasets {
			if i >= len(ds.Data) {
				continue
			}
			items = append(items, Item{
				Label: ds.Label,
				Value: ds.Data[i],
				Color: lipgloss.Color(ds.BorderColor),
			})
		}
		blocks = append(blocks, lipgloss.NewStyle().Bold(true).Render(bucket)+"\n"+HBar(items, barWidth, labelWidth, format))
	}
	return strings.Join(blocks, "\n\n")
}

func renderDistribution(c *domain.Chart, width int, format func(int) string) string {
	ds := c.Datasets[0]
	labelWidth := min(maxLabel, longest(c.Labels))
	barWidth := width - labelWidth - 24

	total := 0
	for _, v := range ds.Data {
		total += v
	}

	items := make([]Item, 0, len(c.Labels))
	for i, name := range c.Labels {
		if i >= len(ds.Data) {
			break
		}
		color := lipgloss.Color("#CDD6F4")
		if i < len(ds.BackgroundColors) {
			color = lipgloss.Color(ds.BackgroundColors[i])
		}
		item := Item{Label: name, Value: ds.Data[i], Color: color}
		if total > 0 {
			item.SubLabel = fmt.Sprintf("%.1f %%", float64(ds.Data[i])*100/float64(total))
		}
		items = append(items, item)
	}
	return HBar(items, barWidth, labelWidth, format)
}

func labelWidthFor(datasets []domain.Dataset) int {
	labels := make([]string, 0, len(datasets)+1)
	labels = append(labels, "Totalt")
	for _, ds := range datasets {
		labels = append(labels, ds.Label)
	}
	return min(maxLabel, longest(labels))
}

func longest(labels []string) int {
	n := 0
	for _, l := range labels {
		n = max(n, lipgloss.Width(l))
	}
	return n
}

// truncate shortens s to width runes, ending in an ellipsis.
func truncate(s string, width int) string {
	r := []rune(s)
	if width < 1 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

func orDefault(format func(int) string) func(int) string {
	if format != nil {
		return format
	}
	return func(n int) string { return fmt.Sprintf("%d", n) }
}
