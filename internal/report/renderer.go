// Package report renders aggregate statistics as static chart images
// and a composed HTML summary page.
package report

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/llmlit/llm-explorer/internal/domain"
	"github.com/llmlit/llm-explorer/internal/storage"
)

// Image filenames produced beneath the output directory. Re-running a
// visualization overwrites the same file.
const (
	LanguagesImage = "languages.png"
	TopicsImage    = "topics.png"
	StarsImage     = "stars_distribution.png"
	TimelineImage  = "creation_timeline.png"

	DefaultReportFile = "report.html"

	DefaultLanguageLimit = 10
	DefaultTopicLimit    = 15
)

// ErrRenderingUnavailable indicates the charting capability is absent;
// every visualization entry point fails with it and the HTML report is
// never attempted.
var ErrRenderingUnavailable = errors.New("chart rendering is unavailable")

// Point is one x/y pair of a line chart.
type Point struct {
	X, Y float64
}

// BarConfig describes a bar chart for a ChartBackend.
type BarConfig struct {
	Title      string
	XLabel     string
	YLabel     string
	Entries    []domain.CountEntry
	Horizontal bool
	Color      color.Color
}

// PieSlice is one labeled slice of a pie chart.
type PieSlice struct {
	Label string
	Value float64
}

// PieConfig describes a pie chart for a ChartBackend.
type PieConfig struct {
	Title  string
	Slices []PieSlice
}

// LineConfig describes a line chart with connected markers.
type LineConfig struct {
	Title  string
	XLabel string
	YLabel string
	Points []Point
	Color  color.Color
}

// ChartBackend turns numeric series into raster images. The renderer
// decides what to plot; the backend only draws.
type ChartBackend interface {
	BarChart(path string, cfg BarConfig) error
	PieChart(path string, cfg PieConfig) error
	LineChart(path string, cfg LineConfig) error
}

// Renderer produces visualizations from a previously persisted
// analysis document.
type Renderer struct {
	analysis  *domain.Analysis
	outputDir string
	charts    ChartBackend
	now       func() time.Time
}

// NewRenderer loads the analysis from analysisPath and prepares the
// output directory. It fails with storage.ErrNotFound when the file is
// absent and storage.ErrMalformed when it does not parse; in both
// cases nothing is written.
func NewRenderer(analysisPath, outputDir string, charts ChartBackend) (*Renderer, error) {
	analysis, err := storage.LoadAnalysis(analysisPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}
	return &Renderer{
		analysis:  analysis,
		outputDir: outputDir,
		charts:    charts,
		now:       time.Now,
	}, nil
}

// VisualizeLanguages draws a vertical bar chart of the top limit
// languages by count. An empty language key is shown as "Unknown".
func (r *Renderer) VisualizeLanguages(limit int) (string, error) {
	entries := make([]domain.CountEntry, 0, limit)
	for _, e := range sortByCountDesc(r.analysis.Languages).Top(limit) {
		key := e.Key
		if key == "" {
			key = "Unknown"
		}
		entries = append(entries, domain.CountEntry{Key: key, Count: e.Count})
	}

	path := filepath.Join(r.outputDir, LanguagesImage)
	cfg := BarConfig{
		Title:   fmt.Sprintf("Top %d Programming Languages in LLM-Literature Projects", limit),
		XLabel:  "Programming Language",
		YLabel:  "Number of Repositories",
		Entries: entries,
		Color:   color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 0xFF}, // sky blue
	}
	if err := r.charts.BarChart(path, cfg); err != nil {
		return "", err
	}
	return path, nil
}

// VisualizeTopics draws a horizontal bar chart of the top limit topics
// by count.
func (r *Renderer) VisualizeTopics(limit int) (string, error) {
	entries := sortByCountDesc(r.analysis.Topics).Top(limit)

	path := filepath.Join(r.outputDir, TopicsImage)
	cfg := BarConfig{
		Title:      fmt.Sprintf("Top %d Topics in LLM-Literature Projects", limit),
		XLabel:     "Number of Repositories",
		Entries:    entries,
		Horizontal: true,
		Color:      color.RGBA{R: 0x90, G: 0xEE, B: 0x90, A: 0xFF}, // light green
	}
	if err := r.charts.BarChart(path, cfg); err != nil {
		return "", err
	}
	return path, nil
}

// VisualizeStarsDistribution draws a pie chart over the star buckets,
// omitting buckets with a zero count. Each slice is labeled with its
// percentage of the plotted total.
func (r *Renderer) VisualizeStarsDistribution() (string, error) {
	total := r.analysis.StarsDistribution.Sum()
	if total == 0 {
		return "", fmt.Errorf("stars distribution has no non-zero buckets")
	}

	var slices []PieSlice
	for _, e := range r.analysis.StarsDistribution {
		if e.Count == 0 {
			continue
		}
		pct := 100 * float64(e.Count) / float64(total)
		slices = append(slices, PieSlice{
			Label: fmt.Sprintf("%s (%.1f%%)", e.Key, pct),
			Value: float64(e.Count),
		})
	}

	path := filepath.Join(r.outputDir, StarsImage)
	cfg := PieConfig{
		Title:  "Stars Distribution in LLM-Literature Projects",
		Slices: slices,
	}
	if err := r.charts.PieChart(path, cfg); err != nil {
		return "", err
	}
	return path, nil
}

// VisualizeCreationTimeline draws a line chart with markers over all
// years present in the analysis, in ascending order.
func (r *Renderer) VisualizeCreationTimeline() (string, error) {
	entries := append(domain.Counts(nil), r.analysis.CreatedDates...)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	points := make([]Point, 0, len(entries))
	for _, e := range entries {
		year, err := strconv.Atoi(e.Key)
		if err != nil {
			continue
		}
		points = append(points, Point{X: float64(year), Y: float64(e.Count)})
	}

	path := filepath.Join(r.outputDir, TimelineImage)
	cfg := LineConfig{
		Title:  "Repository Creation Timeline for LLM-Literature Projects",
		XLabel: "Year",
		YLabel: "Number of Repositories Created",
		Points: points,
		Color:  color.RGBA{R: 0x80, G: 0x00, B: 0x80, A: 0xFF}, // purple
	}
	if err := r.charts.LineChart(path, cfg); err != nil {
		return "", err
	}
	return path, nil
}

// VisualizeAll produces the four charts with their default limits and
// returns the image paths in a fixed order.
func (r *Renderer) VisualizeAll() ([]string, error) {
	var paths []string
	steps := []func() (string, error){
		func() (string, error) { return r.VisualizeLanguages(DefaultLanguageLimit) },
		func() (string, error) { return r.VisualizeTopics(DefaultTopicLimit) },
		r.VisualizeStarsDistribution,
		r.VisualizeCreationTimeline,
	}
	for _, step := range steps {
		path, err := step()
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func sortByCountDesc(c domain.Counts) domain.Counts {
	out := append(domain.Counts(nil), c...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
