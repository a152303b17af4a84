// Package gateway provides a gateway to the GitHub search API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/llmlit/llm-explorer/internal/domain"
)

// requestTimeout bounds every search request; the GitHub search
// endpoint answers well within this under normal conditions.
const requestTimeout = 30 * time.Second

// Fetcher defines the behavior of a gateway for searching repositories on GitHub.
type Fetcher interface {
	// SearchRepositories runs one repository search for the given query
	// and returns the matching page of results. A non-success API
	// status is not an error: it is reported through the gateway's
	// logger and yields an empty result, so one failed query never
	// aborts a multi-query run.
	SearchRepositories(ctx context.Context, query string, page, perPage int) ([]domain.Repository, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client *github.Client
	logger *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// The token is optional; without it requests go out unauthenticated and
// are subject to GitHub's lower anonymous rate limits.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	httpClient := &http.Client{
		Transport: rateLimitWaiter,
		Timeout:   requestTimeout,
	}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient.Transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		}
	}
	return &GitHubGateway{
		client: github.NewClient(httpClient),
		logger: logger,
	}, nil
}

// SearchRepositories issues one GET against the repository search
// endpoint, sorted by stars in descending order.
func (g *GitHubGateway) SearchRepositories(ctx context.Context, query string, page, perPage int) ([]domain.Repository, error) {
	opts := &github.SearchOptions{
		Sort:  "stars",
		Order: "desc",
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: perPage,
		},
	}
	result, _, err := g.client.Search.Repositories(ctx, query, opts)
	if err != nil {
		var rateErr *github.RateLimitError
		if errors.As(err, &rateErr) {
			g.logger.Printf("Error: %d", rateErr.Response.StatusCode)
			g.logger.Println(rateErr.Message)
			return nil, nil
		}
		var errResp *github.ErrorResponse
		if errors.As(err, &errResp) {
			g.logger.Printf("Error: %d", errResp.Response.StatusCode)
			g.logger.Println(errResp.Message)
			for _, e := range errResp.Errors {
				g.logger.Printf("  %s: %s", e.Field, e.Message)
			}
			return nil, nil
		}
		return nil, fmt.Errorf("failed to search repositories: %w", err)
	}

	repos := make([]domain.Repository, 0, len(result.Repositories))
	for _, r := range result.Repositories {
		repos = append(repos, toDomain(r))
	}
	return repos, nil
}

func toDomain(r *github.Repository) domain.Repository {
	return domain.Repository{
		ID:          r.GetID(),
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		HTMLURL:     r.GetHTMLURL(),
		Description: r.Description,
		CreatedAt:   r.GetCreatedAt().Time,
		UpdatedAt:   r.GetUpdatedAt().Time,
		Language:    r.Language,
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		Topics:      r.Topics,
	}
}
