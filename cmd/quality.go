package cmd

import (
	"github.com/kwangc/repopulse/core"
	"github.com/spf13/cobra"
)

// qualityCmd reports commit hygiene signals.
var qualityCmd = &cobra.Command{
	Use:   "quality [repo-path]",
	Short: "Show commit size and message hygiene metrics.",
	Long: `Average and median commit sizes plus revert and fix rates derived from
commit messages. Large average commits and high fix rates suggest changes
are landing in big, risky batches.

Examples:
  repopulse quality --since 2026-07-01
  repopulse quality --since 2026-01-01 --until 2026-06-30`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteQualityMetrics(rootCtx, cfg); err != nil {
			logger.WithError(err).Fatal("Cannot run quality report")
		}
	},
}
