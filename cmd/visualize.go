// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llmlit/llm-explorer/internal/report"
	"github.com/llmlit/llm-explorer/internal/storage"
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Render charts and an HTML report from a saved analysis",
	Long: `Reads a previously saved analysis file and renders four chart images
plus an HTML report embedding them into the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		analysisPath, _ := cmd.Flags().GetString("analysis")
		outputDir, _ := cmd.Flags().GetString("output-dir")
		reportFile, _ := cmd.Flags().GetString("report")

		renderer, err := report.NewRenderer(analysisPath, outputDir, report.NewChartBackend())
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrNotFound):
				return fmt.Errorf("analysis file %q not found: run \"llm-explorer search --analyze\" first", analysisPath)
			case errors.Is(err, storage.ErrMalformed):
				return fmt.Errorf("%q is not a valid analysis file: %w", analysisPath, err)
			default:
				return err
			}
		}

		reportPath, imagePaths, err := renderer.CreateHTMLReport(reportFile)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Report generated at: %s\n", reportPath)
		fmt.Fprintln(out, "Individual visualizations:")
		for _, path := range imagePaths {
			fmt.Fprintf(out, "  - %s\n", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(visualizeCmd)
	visualizeCmd.Flags().String("analysis", "llm_literature_repos_analysis.json", "Path to analysis JSON file")
	visualizeCmd.Flags().String("output-dir", "visualizations", "Directory to save visualizations")
	visualizeCmd.Flags().String("report", "report.html", "Filename for HTML report")
}
