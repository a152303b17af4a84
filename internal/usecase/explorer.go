// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/llmlit/llm-explorer/internal/domain"
	"github.com/llmlit/llm-explorer/internal/gateway"
)

// DefaultQueries is the fixed set of search phrases covering the
// intersection of language models and literature. Exported so tests
// and callers can substitute a shorter list.
var DefaultQueries = []string{
	"language models literature",
	"llm literature analysis",
	"gpt literary analysis",
	"natural language processing literature",
	"computational literary analysis",
	"llm poetry generation",
	"transformer models literature",
	"literary text generation",
	"nlp literary criticism",
	"ai storytelling",
}

// DefaultQueryDelay is how long the explorer pauses between queries to
// stay clear of the search API's secondary rate limits.
const DefaultQueryDelay = 2 * time.Second

// DelayFunc pauses between consecutive queries. Implementations must
// return early with ctx.Err() when the context is canceled.
type DelayFunc func(ctx context.Context) error

// FixedDelay returns a DelayFunc that waits for a constant duration.
func FixedDelay(d time.Duration) DelayFunc {
	return func(ctx context.Context) error {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
}

// NoDelay is a DelayFunc that returns immediately; intended for tests.
func NoDelay(context.Context) error { return nil }

// Explorer is the use case for collecting repositories across the
// fixed query set. It orchestrates the per-query fetches and collapses
// the combined results into one deduplicated collection.
type Explorer struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
	queries []string
	delay   DelayFunc
}

// NewExplorer creates a new Explorer instance with the default query
// list and inter-query delay.
func NewExplorer(fetcher gateway.Fetcher, logger *log.Logger) *Explorer {
	return &Explorer{
		fetcher: fetcher,
		logger:  logger,
		queries: DefaultQueries,
		delay:   FixedDelay(DefaultQueryDelay),
	}
}

// FindRepositories runs every configured query against the gateway,
// one at a time with a delay in between, and returns the deduplicated
// union of the results. Queries that fail with a non-success API
// status contribute zero results (the gateway reports them); any other
// error aborts the run.
func (e *Explorer) FindRepositories(ctx context.Context, page, perPage int) ([]domain.Repository, error) {
	var all []domain.Repository
	for i, query := range e.queries {
		e.logger.Printf("Searching for: %s", query)
		repos, err := e.fetcher.SearchRepositories(ctx, query, page, perPage)
		if err != nil {
			return nil, fmt.Errorf("search for %q failed: %w", query, err)
		}
		all = append(all, repos...)

		if i < len(e.queries)-1 {
			if err := e.delay(ctx); err != nil {
				return nil, err
			}
		}
	}
	return Deduplicate(all), nil
}

// Deduplicate collapses repeated repositories sharing an ID into one
// entry, keeping the first occurrence in input order. If two queries
// returned different snapshots of the same repository, the older
// (first-seen) snapshot wins.
func Deduplicate(repos []domain.Repository) []domain.Repository {
	seen := make(map[int64]struct{}, len(repos))
	unique := make([]domain.Repository, 0, len(repos))
	for _, repo := range repos {
		if _, ok := seen[repo.ID]; ok {
			continue
		}
		seen[repo.ID] = struct{}{}
		unique = append(unique, repo)
	}
	return unique
}
