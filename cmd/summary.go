package cmd

import (
	"github.com/kwangc/repopulse/core"
	"github.com/spf13/cobra"
)

// summaryCmd combines team totals with the contributor breakdown.
var summaryCmd = &cobra.Command{
	Use:   "summary [repo-path]",
	Short: "Show the team activity summary for a period.",
	Long: `Combine window totals with the per-contributor breakdown in one report.

Examples:
  repopulse summary --since 2026-07-01
  repopulse summary --since 2026-01-01 --until 2026-06-30 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTeamSummary(rootCtx, cfg); err != nil {
			logger.WithError(err).Fatal("Cannot run summary report")
		}
	},
}
