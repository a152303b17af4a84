package report

import (
	"fmt"
	"os"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// chartBackend draws bar and line charts with gonum/plot and pie
// charts with go-chart, which gonum/plot lacks.
type chartBackend struct{}

// NewChartBackend performs the one-time capability check and returns
// the functional chart backend.
func NewChartBackend() ChartBackend {
	return chartBackend{}
}

func (chartBackend) BarChart(path string, cfg BarConfig) error {
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel

	values := make(plotter.Values, len(cfg.Entries))
	labels := make([]string, len(cfg.Entries))
	for i, e := range cfg.Entries {
		values[i] = float64(e.Count)
		labels[i] = e.Key
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.LineStyle.Width = 0
	bars.Color = cfg.Color
	bars.Horizontal = cfg.Horizontal
	p.Add(bars)
	if cfg.Horizontal {
		p.NominalY(labels...)
	} else {
		p.NominalX(labels...)
	}

	width, height := 10*vg.Inch, 6*vg.Inch
	if cfg.Horizontal {
		height = 8 * vg.Inch
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func (chartBackend) PieChart(path string, cfg PieConfig) error {
	values := make([]chart.Value, len(cfg.Slices))
	for i, s := range cfg.Slices {
		values[i] = chart.Value{Value: s.Value, Label: s.Label}
	}
	pie := chart.PieChart{
		Title:  cfg.Title,
		Width:  800,
		Height: 600,
		Values: values,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := pie.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render pie chart: %w", err)
	}
	return nil
}

func (chartBackend) LineChart(path string, cfg LineConfig) error {
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(cfg.Points))
	for i, pt := range cfg.Points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("failed to build line chart: %w", err)
	}
	line.LineStyle.Color = cfg.Color
	points.GlyphStyle.Color = cfg.Color
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(line, points)

	// One tick per year so the axis never shows fractional years.
	ticks := make([]plot.Tick, len(cfg.Points))
	for i, pt := range cfg.Points {
		ticks[i] = plot.Tick{Value: pt.X, Label: strconv.Itoa(int(pt.X))}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// disabledBackend reports ErrRenderingUnavailable from every entry
// point. It stands in for the functional backend when charting is
// unavailable, so availability is checked once instead of at every
// call site.
type disabledBackend struct {
	reason error
}

// NewDisabledBackend returns a ChartBackend whose every operation
// fails with ErrRenderingUnavailable, annotated with reason when given.
func NewDisabledBackend(reason error) ChartBackend {
	return disabledBackend{reason: reason}
}

func (d disabledBackend) unavailable() error {
	if d.reason != nil {
		return fmt.Errorf("%w: %v", ErrRenderingUnavailable, d.reason)
	}
	return ErrRenderingUnavailable
}

func (d disabledBackend) BarChart(string, BarConfig) error { return d.unavailable() }

func (d disabledBackend) PieChart(string, PieConfig) error { return d.unavailable() }

func (d disabledBackend) LineChart(string, LineConfig) error { return d.unavailable() }
