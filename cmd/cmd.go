// Package cmd defines the command-line interface for repopulse.
package cmd

import (
	"github.com/kwangc/repopulse/internal/contract"
	"github.com/kwangc/repopulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(authorsCmd)
	rootCmd.AddCommand(churnCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(ownershipCmd)
	rootCmd.AddCommand(velocityCmd)
	rootCmd.AddCommand(collabCmd)
	rootCmd.AddCommand(qualityCmd)
	rootCmd.AddCommand(debtCmd)
	rootCmd.AddCommand(conventionalCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("since", "", "Start date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().String("until", "", "End date (YYYY-MM-DD), defaults to now")
	rootCmd.PersistentFlags().StringP("author", "a", "", "Filter commits by author name or email")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("interval", string(schema.WeekInterval), "Trend bucket size: week or month")
	rootCmd.PersistentFlags().Int("stale-days", contract.DefaultStaleDays, "Days without changes before a file counts as stale")
	rootCmd.PersistentFlags().String("git-timeout", "", "Timeout for a single git invocation (e.g. 30s, 2m)")
	rootCmd.PersistentFlags().Int("max-output-mb", 0, "Cap on raw git output in MiB (0 = default)")
	rootCmd.PersistentFlags().Int("max-scan-files", contract.DefaultMaxScanFiles, "Cap on files scanned by the debt report")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		logger.WithError(err).Fatal("Error binding root flags")
	}
}
