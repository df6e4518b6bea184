package cmd

import (
	"github.com/kwangc/repopulse/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Repopulse MCP server",
	Long:  `Launch an MCP server that exposes the repository reports as standard tools for AI agents.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Normal report commands validate the repo path up front; the MCP
		// server receives it per request instead.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
