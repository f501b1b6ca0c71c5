// Package chart renders comparison charts to PNG for the desktop UI and the
// PDF report.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/piwi3910/tcocompare/internal/model"
)

// ErrNoData is returned when a comparison has no results to plot.
var ErrNoData = errors.New("no comparison results to chart")

// Size is the rendered image size in pixels.
type Size struct {
	Width  int
	Height int
}

// DefaultSize fits a landscape A4 page at a readable resolution.
var DefaultSize = Size{Width: 1024, Height: 512}

func (s Size) orDefault() Size {
	if s.Width <= 0 || s.Height <= 0 {
		return DefaultSize
	}
	return s
}

var background = gochart.Style{Padding: gochart.Box{Top: 30, Left: 16, Right: 16, Bottom: 16}}

// TotalCostBar draws one bar per vendor total, cheapest first.
func TotalCostBar(cmp model.Comparison, size Size) ([]byte, error) {
	if len(cmp.Results) == 0 {
		return nil, ErrNoData
	}
	size = size.orDefault()

	bars := make([]gochart.Value, 0, len(cmp.Results))
	maxTotal := 0.0
	for _, r := range cmp.Results {
		bars = append(bars, gochart.Value{Label: r.Breakdown.VendorName, Value: r.Breakdown.Total})
		maxTotal = math.Max(maxTotal, r.Breakdown.Total)
	}

	ch := gochart.BarChart{
		Title:      fmt.Sprintf("%d-Year Total Cost of Ownership", cmp.Scenario.Years),
		Background: background,
		Width:      size.Width,
		Height:     size.Height,
		BarWidth:   barWidth(size.Width, len(bars)),
		Bars:       bars,
		YAxis: gochart.YAxis{
			Range:          &gochart.ContinuousRange{Min: 0, Max: upperBound(maxTotal)},
			ValueFormatter: moneyFormatter,
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render total cost chart: %w", err)
	}
	return buf.Bytes(), nil
}

// BreakdownStacked draws the six cost components of each vendor as one stacked bar.
func BreakdownStacked(cmp model.Comparison, size Size) ([]byte, error) {
	if len(cmp.Results) == 0 {
		return nil, ErrNoData
	}
	size = size.orDefault()

	bars := make([]gochart.StackedBar, 0, len(cmp.Results))
	for _, r := range cmp.Results {
		comps := r.Breakdown.Components()
		values := make([]gochart.Value, 0, len(comps))
		for _, c := range comps {
			// zero-height segments upset the stacked renderer
			values = append(values, gochart.Value{Label: c.Name, Value: math.Max(c.Value, 0.01)})
		}
		bars = append(bars, gochart.StackedBar{Name: r.Breakdown.VendorName, Values: values})
	}

	ch := gochart.StackedBarChart{
		Title:      "Cost Breakdown by Component",
		Background: background,
		Width:      size.Width,
		Height:     size.Height,
		BarSpacing: 40,
		Bars:       bars,
	}

	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render breakdown chart: %w", err)
	}
	return buf.Bytes(), nil
}

// CumulativeLine plots cumulative spend per vendor. Year 0 holds the
// one-time costs.
func CumulativeLine(cmp model.Comparison, size Size) ([]byte, error) {
	if len(cmp.Results) == 0 {
		return nil, ErrNoData
	}
	size = size.orDefault()

	series := make([]gochart.Series, 0, len(cmp.Results))
	maxY := 0.0
	maxYear := 1
	for i, r := range cmp.Results {
		xs := []float64{0}
		ys := []float64{r.Breakdown.OneTime()}
		for _, y := range r.Yearly {
			xs = append(xs, float64(y.Year))
			ys = append(ys, y.Cumulative)
			maxY = math.Max(maxY, y.Cumulative)
			if y.Year > maxYear {
				maxYear = y.Year
			}
		}
		if len(xs) < 2 {
			// a series needs two points to draw a line
			xs = append(xs, 1)
			ys = append(ys, r.Breakdown.Total)
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    r.Breakdown.VendorName,
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeColor: gochart.GetDefaultColor(i),
				StrokeWidth: 2,
			},
		})
	}

	ch := gochart.Chart{
		Title:      "Cumulative Cost",
		Background: gochart.Style{Padding: gochart.Box{Top: 30, Left: 16, Right: 16, Bottom: 16}},
		Width:      size.Width,
		Height:     size.Height,
		XAxis: gochart.XAxis{
			Name:           "Year",
			Range:          &gochart.ContinuousRange{Min: 0, Max: float64(maxYear)},
			ValueFormatter: yearFormatter,
		},
		YAxis: gochart.YAxis{
			Range:          &gochart.ContinuousRange{Min: 0, Max: upperBound(maxY)},
			ValueFormatter: moneyFormatter,
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render cumulative chart: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode turns rendered PNG bytes back into an image for on-screen display.
func Decode(pngBytes []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}

// upperBound leaves 10% headroom and never returns an empty range.
func upperBound(max float64) float64 {
	if max <= 0 {
		return 1
	}
	return max * 1.1
}

func barWidth(width, bars int) int {
	w := width / (bars*2 + 1)
	if w > 80 {
		w = 80
	}
	if w < 10 {
		w = 10
	}
	return w
}

func moneyFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return fmt.Sprint(v)
	}
	return Money(f)
}

func yearFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprint(v)
}

// Money formats an amount compactly for axis labels: $950, $12.5K, $1.43M.
func Money(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("$%.1fK", v/1e3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}
