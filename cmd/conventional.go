package cmd

import (
	"github.com/kwangc/repopulse/core"
	"github.com/spf13/cobra"
)

// conventionalCmd measures commit message conventions.
var conventionalCmd = &cobra.Command{
	Use:   "conventional [repo-path]",
	Short: "Measure conventional commit adherence and release cadence.",
	Long: `Classify commit subjects against the conventional commits format
(type(scope)!: description), count types, scopes and breaking changes, and
list the tags created inside the window.

Examples:
  repopulse conventional --since 2026-01-01
  repopulse conventional --since 2026-01-01 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteConventionalCommits(rootCtx, cfg); err != nil {
			logger.WithError(err).Fatal("Cannot run conventional report")
		}
	},
}
