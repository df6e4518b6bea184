package cmd

import (
	"github.com/kwangc/repopulse/core"
	"github.com/spf13/cobra"
)

// authorsCmd breaks activity down per contributor.
var authorsCmd = &cobra.Command{
	Use:   "authors [repo-path]",
	Short: "Show per-author commit and churn metrics.",
	Long: `Roll up commits, additions, deletions and touched-file counts per author
identity. Authors are keyed by name plus email, so the same person under two
emails shows up as two rows.

Examples:
  repopulse authors --since 2026-07-01
  repopulse authors --since 2026-01-01 --until 2026-06-30 --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAuthorMetrics(rootCtx, cfg); err != nil {
			logger.WithError(err).Fatal("Cannot run authors report")
		}
	},
}
