package output

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ukaji3/plotbridge-go/pkg/plotbridge/models"
	"github.com/wcharczuk/go-chart/v2"
)

// Default image size in pixels when the layout does not set width/height.
const (
	DefaultWidth  = 1024
	DefaultHeight = 640
)

// DefaultHistogramBins is used when a histogram trace has no nbinsx.
const DefaultHistogramBins = 10

// WritePNG renders fig as a static PNG image. Supported figures are one or
// more scatter traces, or exactly one bar, pie or histogram trace.
func WritePNG(w io.Writer, fig *models.Figure) error {
	if len(fig.Traces) == 0 {
		return fmt.Errorf("%w: figure has no traces", ErrUnsupportedTrace)
	}

	width, height := imageSize(fig.Layout)
	title := fig.Layout.Title()

	if allOfType(fig.Traces, models.TraceScatter) {
		graph, err := scatterChart(fig, width, height)
		if err != nil {
			return err
		}
		return graph.Render(chart.PNG, w)
	}

	if len(fig.Traces) > 1 {
		return fmt.Errorf("%w: static images hold one %s trace", ErrUnsupportedTrace, fig.Traces[0].Type)
	}

	tr := fig.Traces[0]
	switch tr.Type {
	case models.TraceBar:
		bars, err := barValues(tr)
		if err != nil {
			return err
		}
		graph := chart.BarChart{
			Title:    title,
			Width:    width,
			Height:   height,
			BarWidth: barWidth(width, len(bars)),
			Bars:     bars,
		}
		return graph.Render(chart.PNG, w)
	case models.TraceHistogram:
		bars, err := histogramValues(tr)
		if err != nil {
			return err
		}
		graph := chart.BarChart{
			Title:    title,
			Width:    width,
			Height:   height,
			BarWidth: barWidth(width, len(bars)),
			Bars:     bars,
		}
		return graph.Render(chart.PNG, w)
	case models.TracePie:
		values, err := pieValues(tr)
		if err != nil {
			return err
		}
		graph := chart.PieChart{
			Title:  title,
			Width:  width,
			Height: height,
			Values: values,
		}
		return graph.Render(chart.PNG, w)
	}

	return fmt.Errorf("%w: %s cannot be rendered as a static image", ErrUnsupportedTrace, tr.Type)
}

// SavePNG renders fig to a PNG file at path.
func SavePNG(fig *models.Figure, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, fig); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func scatterChart(fig *models.Figure, width, height int) (*chart.Chart, error) {
	graph := &chart.Chart{
		Title:  fig.Layout.Title(),
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Name: axisTitle(fig.Layout, "x"), Range: axisRange(fig.Layout, "x")},
		YAxis:  chart.YAxis{Name: axisTitle(fig.Layout, "y"), Range: axisRange(fig.Layout, "y")},
	}

	for i, tr := range fig.Traces {
		ys, ok := floats(tr.Fields["y"])
		if !ok || len(ys) == 0 {
			return nil, fmt.Errorf("%w: scatter trace %d needs numeric y", ErrUnsupportedTrace, i)
		}
		xs, ok := floats(tr.Fields["x"])
		if _, present := tr.Fields["x"]; present && !ok {
			return nil, fmt.Errorf("%w: scatter trace %d needs numeric x", ErrUnsupportedTrace, i)
		}
		if !ok {
			xs = indexes(len(ys))
		}
		if len(xs) != len(ys) {
			return nil, fmt.Errorf("%w: scatter trace %d has %d x and %d y values", ErrUnsupportedTrace, i, len(xs), len(ys))
		}
		name, _ := tr.Fields["name"].(string)
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
		})
	}

	if len(graph.Series) > 1 {
		graph.Elements = []chart.Renderable{chart.Legend(graph)}
	}
	return graph, nil
}

func barValues(tr models.Trace) ([]chart.Value, error) {
	ys, ok := floats(tr.Fields["y"])
	if !ok || len(ys) == 0 {
		return nil, fmt.Errorf("%w: bar trace needs numeric y", ErrUnsupportedTrace)
	}
	names := labels(tr.Fields["x"])
	bars := make([]chart.Value, len(ys))
	for i, y := range ys {
		bars[i] = chart.Value{Value: y}
		if i < len(names) {
			bars[i].Label = names[i]
		}
	}
	return bars, nil
}

func histogramValues(tr models.Trace) ([]chart.Value, error) {
	xs, ok := floats(tr.Fields["x"])
	if !ok || len(xs) == 0 {
		return nil, fmt.Errorf("%w: histogram trace needs numeric x", ErrUnsupportedTrace)
	}
	bins := DefaultHistogramBins
	if n, ok := number(tr.Fields["nbinsx"]); ok && n >= 1 {
		bins = int(n)
	}

	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if hi == lo {
		bins = 1
	}
	step := (hi - lo) / float64(bins)

	counts := make([]int, bins)
	for _, x := range xs {
		i := bins - 1
		if step > 0 {
			i = int((x - lo) / step)
		}
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}

	bars := make([]chart.Value, bins)
	for i, c := range counts {
		bars[i] = chart.Value{
			Value: float64(c),
			Label: label(lo + float64(i)*step),
		}
	}
	return bars, nil
}

func pieValues(tr models.Trace) ([]chart.Value, error) {
	vs, ok := floats(tr.Fields["values"])
	if !ok || len(vs) == 0 {
		return nil, fmt.Errorf("%w: pie trace needs numeric values", ErrUnsupportedTrace)
	}
	names := labels(tr.Fields["labels"])
	values := make([]chart.Value, len(vs))
	for i, v := range vs {
		values[i] = chart.Value{Value: v}
		if i < len(names) {
			values[i].Label = names[i]
		}
	}
	return values, nil
}

func allOfType(traces []models.Trace, tt models.TraceType) bool {
	for _, tr := range traces {
		if tr.Type != tt {
			return false
		}
	}
	return true
}

func imageSize(layout models.Layout) (int, int) {
	width, height := DefaultWidth, DefaultHeight
	if w, ok := number(layout["width"]); ok && w > 0 {
		width = int(w)
	}
	if h, ok := number(layout["height"]); ok && h > 0 {
		height = int(h)
	}
	return width, height
}

func axisTitle(layout models.Layout, axis string) string {
	ax := layout.Axis(axis)
	if ax == nil {
		return ""
	}
	return models.TitleText(ax["title"])
}

// axisRange returns a fixed range for a two-element numeric axis range, or nil
// to let go-chart autoscale.
func axisRange(layout models.Layout, axis string) chart.Range {
	ax := layout.Axis(axis)
	if ax == nil {
		return nil
	}
	r, ok := floats(ax["range"])
	if !ok || len(r) != 2 {
		return nil
	}
	return &chart.ContinuousRange{Min: r[0], Max: r[1]}
}

func barWidth(width, n int) int {
	if n == 0 {
		return 0
	}
	bw := width / (2 * n)
	if bw > 60 {
		bw = 60
	}
	if bw < 4 {
		bw = 4
	}
	return bw
}

func indexes(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
