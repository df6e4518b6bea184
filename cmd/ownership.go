package cmd

import (
	"github.com/kwangc/repopulse/core"
	"github.com/spf13/cobra"
)

// ownershipCmd surfaces knowledge silos.
var ownershipCmd = &cobra.Command{
	Use:   "ownership [repo-path]",
	Short: "Show file ownership and bus factor.",
	Long: `Map each file touched in the window to its authors, then count shared and
single-author files. The bus factor ranking lists authors by how many files
only they have touched: a high count means concentrated knowledge.

Examples:
  repopulse ownership --since 2026-01-01
  repopulse ownership --since 2026-01-01 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCodeOwnership(rootCtx, cfg); err != nil {
			logger.WithError(err).Fatal("Cannot run ownership report")
		}
	},
}
