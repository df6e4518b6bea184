package cmd

import (
	"github.com/kwangc/repopulse/core"
	"github.com/spf13/cobra"
)

// churnCmd ranks the most frequently changed files.
var churnCmd = &cobra.Command{
	Use:   "churn [repo-path]",
	Short: "Show the most frequently changed files.",
	Long: `Rank files by how many commits touched them in the window. High churn often
marks unstable design or active feature work.

Examples:
  # Top 10 files since July
  repopulse churn --since 2026-07-01

  # Top 25, exported for tracking
  repopulse churn --since 2026-07-01 --limit 25 --output csv --output-file churn.csv

  # Columnar export for analytics pipelines
  repopulse churn --since 2026-07-01 --output parquet --output-file churn.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFileChurn(rootCtx, cfg); err != nil {
			logger.WithError(err).Fatal("Cannot run churn report")
		}
	},
}
