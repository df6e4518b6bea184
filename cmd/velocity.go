package cmd

import (
	"github.com/kwangc/repopulse/core"
	"github.com/spf13/cobra"
)

// velocityCmd tracks activity over time.
var velocityCmd = &cobra.Command{
	Use:   "velocity [repo-path]",
	Short: "Track commit velocity over weekly or monthly periods.",
	Long: `Bucket commits, additions and deletions into weekly or monthly periods to
show how team output moves over time. Weeks start on Sunday.

Examples:
  repopulse velocity --since 2026-01-01
  repopulse velocity --since 2025-01-01 --interval month
  repopulse velocity --since 2026-01-01 --output parquet --output-file velocity.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteVelocityTrends(rootCtx, cfg); err != nil {
			logger.WithError(err).Fatal("Cannot run velocity report")
		}
	},
}
