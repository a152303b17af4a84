// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "llm-explorer",
	Short: "Explore GitHub repositories at the intersection of LLMs and literature.",
	Long: `llm-explorer searches GitHub for repositories at the intersection of
large language models and literature, deduplicates and saves the
results, computes aggregate statistics, and renders them as static
charts with an HTML summary report.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Every failing subcommand exits with a non-zero status through here.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
