// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/llmlit/llm-explorer/internal/domain"
	"github.com/llmlit/llm-explorer/internal/gateway"
	"github.com/llmlit/llm-explorer/internal/storage"
	"github.com/llmlit/llm-explorer/internal/usecase"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search GitHub for LLM-literature repositories and save the results",
	Long: `Runs the fixed set of search queries against the GitHub repository
search API, deduplicates the combined results, and saves them as JSON.
With --analyze, aggregate statistics are computed, saved alongside the
results, and summarized on the console.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, _ := cmd.Flags().GetString("token")
		output, _ := cmd.Flags().GetString("output")
		analyze, _ := cmd.Flags().GetBool("analyze")
		perPage, _ := cmd.Flags().GetInt("per-page")
		page, _ := cmd.Flags().GetInt("page")

		// Token from the flag, then the environment; both optional.
		if token == "" {
			token = os.Getenv("GITHUB_TOKEN")
		}

		logger := log.New(cmd.OutOrStdout(), "", 0)

		githubGateway, err := gateway.NewGitHubGateway(token, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		explorer := usecase.NewExplorer(githubGateway, logger)

		repos, err := explorer.FindRepositories(cmd.Context(), page, perPage)
		if err != nil {
			return err
		}
		logger.Printf("Found %d repositories", len(repos))

		if err := storage.SaveRepositories(output, repos); err != nil {
			return err
		}
		logger.Printf("Results saved to %s", output)

		if !analyze {
			return nil
		}

		analyzer := usecase.NewAnalyzer(logger)
		analysis := analyzer.Analyze(repos)

		analysisPath := storage.AnalysisPath(output)
		if err := storage.SaveAnalysis(analysisPath, analysis); err != nil {
			return err
		}
		logger.Printf("Analysis saved to %s", analysisPath)

		printSummary(logger, analysis)
		return nil
	},
}

// printSummary writes the console summary: total count, top languages
// and topics, the full stars distribution, and the stars summary.
func printSummary(logger *log.Logger, analysis *domain.Analysis) {
	logger.Println()
	logger.Println("=== Analysis Summary ===")
	logger.Printf("Total repositories: %d", analysis.TotalCount)

	logger.Println()
	logger.Println("Top 5 Programming Languages:")
	for i, e := range analysis.Languages.Top(5) {
		logger.Printf("  %d. %s: %d", i+1, e.Key, e.Count)
	}

	logger.Println()
	logger.Println("Top 5 Topics:")
	for i, e := range analysis.Topics.Top(5) {
		logger.Printf("  %d. %s: %d", i+1, e.Key, e.Count)
	}

	logger.Println()
	logger.Println("Stars Distribution:")
	for _, e := range analysis.StarsDistribution {
		logger.Printf("  %s: %d", e.Key, e.Count)
	}

	if s := analysis.StarsSummary; s != nil {
		logger.Println()
		logger.Printf("Stars: mean %.1f, median %.0f, max %.0f", s.Mean, s.Median, s.Max)
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("token", "", "GitHub personal access token (falls back to GITHUB_TOKEN)")
	searchCmd.Flags().String("output", "llm_literature_repos.json", "Output JSON filename")
	searchCmd.Flags().Bool("analyze", false, "Perform analysis on results")
	searchCmd.Flags().Int("per-page", 30, "Results per page")
	searchCmd.Flags().Int("page", 1, "Page number")
}
