package usecase

import (
	"log"
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"

	"github.com/llmlit/llm-explorer/internal/domain"
)

// Analyzer is the use case for summarizing a repository collection
// into aggregate statistics.
type Analyzer struct {
	logger *log.Logger
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer(logger *log.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Analyze folds the collection into one Analysis in a single pass.
// Records with a null language are skipped for the language counts,
// records without a creation timestamp are skipped for the timeline,
// but every record lands in exactly one star bucket and in the total.
func (a *Analyzer) Analyze(repos []domain.Repository) *domain.Analysis {
	a.logger.Println("Analyzing results...")

	languages := newCounter()
	topics := newCounter()
	years := make(map[string]int)
	buckets := make(map[string]int, len(domain.StarBuckets))

	starCounts := make([]float64, 0, len(repos))
	for _, repo := range repos {
		if repo.Language != nil && *repo.Language != "" {
			languages.add(*repo.Language)
		}
		for _, topic := range repo.Topics {
			topics.add(topic)
		}
		if !repo.CreatedAt.IsZero() {
			years[strconv.Itoa(repo.CreatedAt.Year())]++
		}
		buckets[domain.StarBucketLabel(repo.Stars)]++
		starCounts = append(starCounts, float64(repo.Stars))
	}

	analysis := &domain.Analysis{
		TotalCount:        len(repos),
		Languages:         languages.byCountDesc(),
		Topics:            topics.byCountDesc(),
		CreatedDates:      yearsAscending(years),
		StarsDistribution: bucketCounts(buckets),
		StarsSummary:      summarizeStars(starCounts),
	}

	a.logger.Println("Analysis complete.")
	return analysis
}

// counter accumulates occurrence counts while remembering the order in
// which keys first appeared, so equal counts keep a stable order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) byCountDesc() domain.Counts {
	out := make(domain.Counts, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, domain.CountEntry{Key: key, Count: c.counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

func yearsAscending(years map[string]int) domain.Counts {
	keys := make([]string, 0, len(years))
	for year := range years {
		keys = append(keys, year)
	}
	sort.Strings(keys)
	out := make(domain.Counts, 0, len(keys))
	for _, year := range keys {
		out = append(out, domain.CountEntry{Key: year, Count: years[year]})
	}
	return out
}

// bucketCounts emits every bucket in the fixed order, zero or not.
func bucketCounts(buckets map[string]int) domain.Counts {
	out := make(domain.Counts, 0, len(domain.StarBuckets))
	for _, b := range domain.StarBuckets {
		out = append(out, domain.CountEntry{Key: b.Label, Count: buckets[b.Label]})
	}
	return out
}

func summarizeStars(starCounts []float64) *domain.StarsSummary {
	if len(starCounts) == 0 {
		return nil
	}
	mean, err := stats.Mean(starCounts)
	if err != nil {
		return nil
	}
	median, err := stats.Median(starCounts)
	if err != nil {
		return nil
	}
	max, err := stats.Max(starCounts)
	if err != nil {
		return nil
	}
	mean, _ = stats.Round(mean, 1)
	return &domain.StarsSummary{Mean: mean, Median: median, Max: max}
}
