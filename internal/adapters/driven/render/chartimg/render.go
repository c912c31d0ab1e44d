package chartimg

import (
	"errors"
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
)

// Format is an output image format.
type Format string

// Supported formats.
const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%w: image format %q", domain.ErrInvalidInput, s)
	}
}

// ErrNothingToDraw is returned for charts without any non-zero value.
var ErrNothingToDraw = errors.New("chart has no data to draw")

// Default image size in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 600
)

// Options controls image rendering.
type Options struct {
	Format Format
	Width  int
	Height int
	// FormatNumber renders axis values. Nil uses %d.
	FormatNumber func(int) string
}

func (o Options) withDefaults() Options {
	if o.Format == "" {
		o.Format = FormatSVG
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.FormatNumber == nil {
		o.FormatNumber = func(n int) string { return fmt.Sprintf("%d", n) }
	}
	return o
}

// Render draws c to w.
func Render(c *domain.Chart, opts Options, w io.Writer) error {
	if c == nil {
		return ErrNothingToDraw
	}
	opts = opts.withDefaults()

	provider := chart.SVG
	if opts.Format == FormatPNG {
		provider = chart.PNG
	}

	switch c.Kind {
	case domain.ChartPie:
		return renderPie(c, opts, provider, w)
	case domain.ChartBar, domain.ChartHorizontalBar:
		return renderStackedBars(c, opts, provider, w)
	case domain.ChartLine, domain.ChartStackedArea:
		return renderContinuous(c, opts, provider, w)
	default:
		return fmt.Errorf("%w: chart kind %q", domain.ErrInvalidInput, c.Kind)
	}
}

func renderPie(c *domain.Chart, opts Options, provider chart.RendererProvider, w io.Writer) error {
	if len(c.Datasets) == 0 {
		return ErrNothingToDraw
	}
	ds := c.Datasets[0]

	values := make([]chart.Value, 0, len(ds.Data))
	total := 0
	for i, v := range ds.Data {
		if v <= 0 || i >= len(c.Labels) {
			continue
		}
		total += v
		values = append(values, chart.Value{
			Label: c.Labels[i],
			Value: float64(v),
			Style: chart.Style{FillColor: hexColor(pick(ds.BackgroundColors, i))},
		})
	}
	if total == 0 {
		return ErrNothingToDraw
	}

	pie := chart.PieChart{
		Title:  c.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Values: values,
	}
	return pie.Render(provider, w)
}

func renderStackedBars(c *domain.Chart, opts Options, provider chart.RendererProvider, w io.Writer) error {
	bars := make([]chart.StackedBar, 0, len(c.Labels))
	total := 0
	for bucket, label := range c.Labels {
		bar := chart.StackedBar{Name: label}
		for _, ds := range c.Datasets {
			if bucket >= len(ds.Data) || ds.Data[bucket] <= 0 {
				continue
			}
			total += ds.Data[bucket]
			bar.Values = append(bar.Values, chart.Value{
				Label: ds.Label,
				Value: float64(ds.Data[bucket]),
				Style: chart.Style{
					FillColor:   hexColor(ds.BorderColor),
					StrokeColor: hexColor(ds.BorderColor),
				},
			})
		}
		bars = append(bars, bar)
	}
	if total == 0 {
		return ErrNothingToDraw
	}

	sbc := chart.StackedBarChart{
		Title:  c.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Bars:   bars,
	}
	return sbc.Render(provider, w)
}

func renderContinuous(c *domain.Chart, opts Options, provider chart.RendererProvider, w io.Writer) error {
	if len(c.Labels) == 0 || len(c.Datasets) == 0 {
		return ErrNothingToDraw
	}

	xs := make([]float64, len(c.Labels))
	ticks := make([]chart.Tick, len(c.Labels))
	for i, label := range c.Labels {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}

	// Stacked areas are drawn as cumulative series, top layer first so
	// lower layers paint over the fill of the ones above them.
	cumulative := make([]float64, len(c.Labels))
	series := make([]chart.Series, 0, len(c.Datasets))
	peak := 0.0
	for _, ds := range c.Datasets {
		ys := make([]float64, len(c.Labels))
		for i := range ys {
			v := 0.0
			if i < len(ds.Data) {
				v = float64(ds.Data[i])
			}
			if c.Stacked {
				cumulative[i] += v
				v = cumulative[i]
			}
			ys[i] = v
			peak = max(peak, v)
		}

		style := chart.Style{
			StrokeColor: hexColor(ds.BorderColor),
			StrokeWidth: 2,
		}
		if ds.Fill {
			style.FillColor = hexColor(ds.BorderColor).WithAlpha(128)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ys,
			Style:   style,
		})
	}
	if peak == 0 {
		return ErrNothingToDraw
	}
	if c.Stacked {
		for i, j := 0, len(series)-1; i < j; i, j = i+1, j-1 {
			series[i], series[j] = series[j], series[i]
		}
	}

	graph := chart.Chart{
		Title:  c.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  c.XAxisTitle,
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: -0.25, Max: float64(len(c.Labels)-1) + 0.25},
		},
		YAxis: chart.YAxis{
			Name:  c.YAxisTitle,
			Range: &chart.ContinuousRange{Min: 0, Max: peak * 1.1},
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return opts.FormatNumber(int(f))
				}
				return ""
			},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(provider, w)
}

func pick(colors []string, i int) string {
	if len(colors) == 0 {
		return ""
	}
	return colors[i%len(colors)]
}

// hexColor converts "#rrggbb" into a go-chart color.
func hexColor(hex string) drawing.Color {
	hex = strings.TrimPrefix(hex, "#")
	if hex == "" {
		return drawing.ColorBlack
	}
	return drawing.ColorFromHex(hex)
}
