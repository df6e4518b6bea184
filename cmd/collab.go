package cmd

import (
	"github.com/kwangc/repopulse/core"
	"github.com/spf13/cobra"
)

// collabCmd finds authors who work on the same code.
var collabCmd = &cobra.Command{
	Use:   "collab [repo-path]",
	Short: "Show author pairs that work on the same files.",
	Long: `Find files touched by two or more authors and rank the author pairs by how
many files they share.

Examples:
  repopulse collab --since 2026-01-01
  repopulse collab --since 2026-01-01 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCollaboration(rootCtx, cfg); err != nil {
			logger.WithError(err).Fatal("Cannot run collab report")
		}
	},
}
