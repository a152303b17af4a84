// Package storage persists repository collections and their analysis
// to JSON files on disk.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/llmlit/llm-explorer/internal/domain"
)

// ErrNotFound indicates the requested file does not exist.
var ErrNotFound = errors.New("file not found")

// ErrMalformed indicates the file exists but is not valid JSON of the
// expected shape.
var ErrMalformed = errors.New("malformed JSON")

// SaveRepositories writes the collection to path as indented JSON,
// overwriting any existing file.
func SaveRepositories(path string, repos []domain.Repository) error {
	data, err := json.MarshalIndent(repos, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal repositories: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// LoadRepositories reads a collection previously written by
// SaveRepositories.
func LoadRepositories(path string) ([]domain.Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var repos []domain.Repository
	if err := json.Unmarshal(data, &repos); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return repos, nil
}

// SaveAnalysis writes the analysis to path as indented JSON,
// overwriting any existing file.
func SaveAnalysis(path string, analysis *domain.Analysis) error {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// LoadAnalysis reads an analysis document previously written by
// SaveAnalysis. It returns ErrNotFound when the file is absent and
// ErrMalformed when the content does not parse.
func LoadAnalysis(path string) (*domain.Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var analysis domain.Analysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return &analysis, nil
}

// AnalysisPath derives the analysis filename from the results filename
// by inserting "_analysis" before the extension:
// llm_literature_repos.json -> llm_literature_repos_analysis.json.
func AnalysisPath(resultsPath string) string {
	ext := filepath.Ext(resultsPath)
	return strings.TrimSuffix(resultsPath, ext) + "_analysis" + ext
}
