package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llmlit/llm-explorer/internal/domain"
	"github.com/llmlit/llm-explorer/internal/storage"
)

// mockBackend records every chart request without drawing anything.
type mockBackend struct {
	bars  []BarConfig
	pies  []PieConfig
	lines []LineConfig
	paths []string
}

func (m *mockBackend) BarChart(path string, cfg BarConfig) error {
	m.bars = append(m.bars, cfg)
	m.paths = append(m.paths, path)
	return nil
}

func (m *mockBackend) PieChart(path string, cfg PieConfig) error {
	m.pies = append(m.pies, cfg)
	m.paths = append(m.paths, path)
	return nil
}

func (m *mockBackend) LineChart(path string, cfg LineConfig) error {
	m.lines = append(m.lines, cfg)
	m.paths = append(m.paths, path)
	return nil
}

func testAnalysis() *domain.Analysis {
	return &domain.Analysis{
		TotalCount: 4,
		Languages: domain.Counts{
			{Key: "Python", Count: 2},
			{Key: "", Count: 1},
			{Key: "Go", Count: 1},
		},
		Topics: domain.Counts{
			{Key: "nlp", Count: 3},
			{Key: "llm", Count: 2},
			{Key: "poetry", Count: 1},
		},
		CreatedDates: domain.Counts{
			{Key: "2022", Count: 3},
			{Key: "2019", Count: 1},
		},
		StarsDistribution: domain.Counts{
			{Key: "0-10", Count: 0},
			{Key: "11-50", Count: 3},
			{Key: "51-100", Count: 1},
			{Key: "101-500", Count: 0},
			{Key: "501-1000", Count: 0},
			{Key: "1001+", Count: 0},
		},
		StarsSummary: &domain.StarsSummary{Mean: 31.5, Median: 28, Max: 90},
	}
}

// setupRenderer persists a fixture analysis and builds a renderer over it.
func setupRenderer(t *testing.T, analysis *domain.Analysis, backend ChartBackend) (*Renderer, string) {
	t.Helper()
	dir := t.TempDir()
	analysisPath := filepath.Join(dir, "analysis.json")
	require.NoError(t, storage.SaveAnalysis(analysisPath, analysis))

	outputDir := filepath.Join(dir, "visualizations")
	renderer, err := NewRenderer(analysisPath, outputDir, backend)
	require.NoError(t, err)
	return renderer, outputDir
}

func TestNewRenderer_MissingAnalysis(t *testing.T) {
	dir := t.TempDir()
	outputDir := filepath.Join(dir, "visualizations")

	_, err := NewRenderer(filepath.Join(dir, "nope.json"), outputDir, &mockBackend{})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Nothing may be created when the input is missing.
	_, statErr := os.Stat(outputDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewRenderer_MalformedAnalysis(t *testing.T) {
	dir := t.TempDir()
	analysisPath := filepath.Join(dir, "analysis.json")
	require.NoError(t, os.WriteFile(analysisPath, []byte("{oops"), 0o644))

	_, err := NewRenderer(analysisPath, filepath.Join(dir, "visualizations"), &mockBackend{})
	assert.ErrorIs(t, err, storage.ErrMalformed)
}

func TestRenderer_VisualizeLanguages(t *testing.T) {
	backend := &mockBackend{}
	renderer, outputDir := setupRenderer(t, testAnalysis(), backend)

	path, err := renderer.VisualizeLanguages(2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, LanguagesImage), path)

	require.Len(t, backend.bars, 1)
	cfg := backend.bars[0]
	assert.False(t, cfg.Horizontal)
	// Top 2 of 3, descending, with the empty key shown as Unknown.
	expected := []domain.CountEntry{
		{Key: "Python", Count: 2},
		{Key: "Unknown", Count: 1},
	}
	assert.Equal(t, expected, cfg.Entries)
	assert.Equal(t, "Top 2 Programming Languages in LLM-Literature Projects", cfg.Title)
}

func TestRenderer_VisualizeTopics(t *testing.T) {
	backend := &mockBackend{}
	renderer, _ := setupRenderer(t, testAnalysis(), backend)

	_, err := renderer.VisualizeTopics(DefaultTopicLimit)
	require.NoError(t, err)

	require.Len(t, backend.bars, 1)
	cfg := backend.bars[0]
	assert.True(t, cfg.Horizontal)
	assert.Len(t, cfg.Entries, 3)
	for i := 1; i < len(cfg.Entries); i++ {
		assert.GreaterOrEqual(t, cfg.Entries[i-1].Count, cfg.Entries[i].Count)
	}
}

func TestRenderer_VisualizeStarsDistribution_OmitsZeroBuckets(t *testing.T) {
	backend := &mockBackend{}
	renderer, _ := setupRenderer(t, testAnalysis(), backend)

	_, err := renderer.VisualizeStarsDistribution()
	require.NoError(t, err)

	require.Len(t, backend.pies, 1)
	slices := backend.pies[0].Slices
	require.Len(t, slices, 2)
	assert.Equal(t, "11-50 (75.0%)", slices[0].Label)
	assert.Equal(t, 3.0, slices[0].Value)
	assert.Equal(t, "51-100 (25.0%)", slices[1].Label)
	assert.Equal(t, 1.0, slices[1].Value)
}

func TestRenderer_VisualizeStarsDistribution_AllZero(t *testing.T) {
	analysis := testAnalysis()
	for i := range analysis.StarsDistribution {
		analysis.StarsDistribution[i].Count = 0
	}
	backend := &mockBackend{}
	renderer, _ := setupRenderer(t, analysis, backend)

	_, err := renderer.VisualizeStarsDistribution()
	assert.Error(t, err)
	assert.Empty(t, backend.pies)
}

func TestRenderer_VisualizeCreationTimeline(t *testing.T) {
	backend := &mockBackend{}
	renderer, _ := setupRenderer(t, testAnalysis(), backend)

	_, err := renderer.VisualizeCreationTimeline()
	require.NoError(t, err)

	require.Len(t, backend.lines, 1)
	points := backend.lines[0].Points
	// Years ascend even though the persisted order put 2022 first.
	expected := []Point{{X: 2019, Y: 1}, {X: 2022, Y: 3}}
	assert.Equal(t, expected, points)
}

func TestRenderer_VisualizeAll(t *testing.T) {
	backend := &mockBackend{}
	renderer, outputDir := setupRenderer(t, testAnalysis(), backend)

	paths, err := renderer.VisualizeAll()
	require.NoError(t, err)

	expected := []string{
		filepath.Join(outputDir, LanguagesImage),
		filepath.Join(outputDir, TopicsImage),
		filepath.Join(outputDir, StarsImage),
		filepath.Join(outputDir, TimelineImage),
	}
	assert.Equal(t, expected, paths)
	assert.Len(t, backend.bars, 2)
	assert.Len(t, backend.pies, 1)
	assert.Len(t, backend.lines, 1)
}

func TestRenderer_CreateHTMLReport(t *testing.T) {
	backend := &mockBackend{}
	renderer, outputDir := setupRenderer(t, testAnalysis(), backend)
	renderer.now = func() time.Time {
		return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	}

	reportPath, imagePaths, err := renderer.CreateHTMLReport(DefaultReportFile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, DefaultReportFile), reportPath)
	assert.Len(t, imagePaths, 4)

	html, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	content := string(html)
	assert.Contains(t, content, "Total Repositories Analyzed:</strong> 4")
	assert.Contains(t, content, `src="languages.png"`)
	assert.Contains(t, content, `src="topics.png"`)
	assert.Contains(t, content, `src="stars_distribution.png"`)
	assert.Contains(t, content, `src="creation_timeline.png"`)
	assert.Contains(t, content, "2026-08-29")
}

func TestRenderer_DisabledBackend(t *testing.T) {
	renderer, outputDir := setupRenderer(t, testAnalysis(), NewDisabledBackend(errors.New("headless environment")))

	_, err := renderer.VisualizeAll()
	assert.ErrorIs(t, err, ErrRenderingUnavailable)

	// The HTML report is never attempted when charts cannot render.
	_, _, err = renderer.CreateHTMLReport(DefaultReportFile)
	assert.ErrorIs(t, err, ErrRenderingUnavailable)
	_, statErr := os.Stat(filepath.Join(outputDir, DefaultReportFile))
	assert.True(t, os.IsNotExist(statErr))
}
