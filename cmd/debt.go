package cmd

import (
	"github.com/kwangc/repopulse/core"
	"github.com/spf13/cobra"
)

// debtCmd scans for maintenance risk.
var debtCmd = &cobra.Command{
	Use:   "debt [repo-path]",
	Short: "Scan for stale files, large files and complexity hotspots.",
	Long: `Sample the working tree and full history for maintenance risk:

- Stale files that nobody has touched past the staleness threshold
- Files over 500 lines
- Hotspots that are both large and frequently changed

The scan is capped by --max-scan-files, so very large repositories report
on a sample of the tree.

Examples:
  repopulse debt
  repopulse debt --stale-days 180
  repopulse debt --output parquet --output-file stale.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTechnicalDebt(rootCtx, cfg); err != nil {
			logger.WithError(err).Fatal("Cannot run debt report")
		}
	},
}
