package cmd

import (
	"github.com/kwangc/repopulse/core"
	"github.com/spf13/cobra"
)

// statsCmd reports window totals for a repository.
var statsCmd = &cobra.Command{
	Use:   "stats [repo-path]",
	Short: "Show commit totals for a date range.",
	Long: `Total commits, additions, deletions, distinct files changed and net line
change for the requested window.

Examples:
  # Totals for this quarter
  repopulse stats --since 2026-07-01

  # Totals for one author in a fixed window
  repopulse stats --since 2026-01-01 --until 2026-06-30 --author alice

  # Export as JSON
  repopulse stats --since 2026-07-01 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCommitStats(rootCtx, cfg); err != nil {
			logger.WithError(err).Fatal("Cannot run stats report")
		}
	},
}
