package cmd

import (
	"github.com/kwangc/repopulse/core"
	"github.com/spf13/cobra"
)

// patternsCmd shows when the team commits.
var patternsCmd = &cobra.Command{
	Use:   "patterns [repo-path]",
	Short: "Show when commits happen by weekday and hour.",
	Long: `Bucket commits by weekday and hour of day, and derive weekend and
late-night rates. Sustained late-night or weekend activity is a burnout
signal worth investigating.

Examples:
  repopulse patterns --since 2026-07-01
  repopulse patterns --since 2026-07-01 --author alice`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCommitPatterns(rootCtx, cfg); err != nil {
			logger.WithError(err).Fatal("Cannot run patterns report")
		}
	},
}
