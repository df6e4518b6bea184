// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/kwangc/repopulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// ServerName identifies this server to MCP clients.
const ServerName = "Repopulse Git Metrics Server"

// ServerVersion is reported by the server handshake and health_check.
const ServerVersion = "1.0.0"

// windowOpts are the parameters shared by every log-based report tool.
func windowOpts(extra ...mcp.ToolOption) []mcp.ToolOption {
	opts := []mcp.ToolOption{
		mcp.WithString("repo_path", mcp.Description("Path to git repository."), mcp.Required()),
		mcp.WithString("since", mcp.Description("Start date (YYYY-MM-DD)."), mcp.Required()),
		mcp.WithString("until", mcp.Description("End date (YYYY-MM-DD), optional.")),
		mcp.WithString("author", mcp.Description("Filter by author email/name, optional.")),
	}
	return append(opts, extra...)
}

// NewMCPServer initializes and configures the Repopulse MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient, log *logrus.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
		log:     log,
	}

	s.AddTool(mcp.NewTool("get_commit_stats",
		append([]mcp.ToolOption{
			mcp.WithDescription("Get commit statistics for a repository."),
		}, windowOpts()...)...,
	), h.handleGetCommitStats)

	s.AddTool(mcp.NewTool("get_author_metrics",
		append([]mcp.ToolOption{
			mcp.WithDescription("Get detailed metrics per author."),
		}, windowOpts()...)...,
	), h.handleGetAuthorMetrics)

	s.AddTool(mcp.NewTool("get_file_churn",
		append([]mcp.ToolOption{
			mcp.WithDescription("Find the most frequently changed files."),
		}, windowOpts(
			mcp.WithNumber("limit", mcp.Description("Number of files to return, default 10, max 100.")),
		)...)...,
	), h.handleGetFileChurn)

	s.AddTool(mcp.NewTool("get_team_summary",
		append([]mcp.ToolOption{
			mcp.WithDescription("Get the team activity summary for a period."),
		}, windowOpts()...)...,
	), h.handleGetTeamSummary)

	s.AddTool(mcp.NewTool("get_commit_patterns",
		append([]mcp.ToolOption{
			mcp.WithDescription("Analyze when commits happen: weekday and hour distribution."),
		}, windowOpts()...)...,
	), h.handleGetCommitPatterns)

	s.AddTool(mcp.NewTool("get_code_ownership",
		append([]mcp.ToolOption{
			mcp.WithDescription("Analyze file ownership and bus factor."),
		}, windowOpts()...)...,
	), h.handleGetCodeOwnership)

	s.AddTool(mcp.NewTool("get_velocity_trends",
		append([]mcp.ToolOption{
			mcp.WithDescription("Track commit velocity over weekly or monthly periods."),
		}, windowOpts(
			mcp.WithString("interval", mcp.Description("Bucket size: week or month. Defaults to week."), mcp.Enum("week", "month")),
		)...)...,
	), h.handleGetVelocityTrends)

	s.AddTool(mcp.NewTool("get_collaboration_metrics",
		append([]mcp.ToolOption{
			mcp.WithDescription("Find author pairs that work on the same files."),
		}, windowOpts()...)...,
	), h.handleGetCollaborationMetrics)

	s.AddTool(mcp.NewTool("get_quality_metrics",
		append([]mcp.ToolOption{
			mcp.WithDescription("Get commit size and message hygiene metrics."),
		}, windowOpts()...)...,
	), h.handleGetQualityMetrics)

	s.AddTool(mcp.NewTool("get_technical_debt",
		mcp.WithDescription("Scan for stale files, large files and complexity hotspots."),
		mcp.WithString("repo_path", mcp.Description("Path to git repository."), mcp.Required()),
		mcp.WithNumber("stale_days", mcp.Description("Staleness threshold in days, default 90.")),
	), h.handleGetTechnicalDebt)

	s.AddTool(mcp.NewTool("get_conventional_commits",
		append([]mcp.ToolOption{
			mcp.WithDescription("Measure conventional commit adherence and release cadence."),
		}, windowOpts()...)...,
	), h.handleGetConventionalCommits)

	s.AddTool(mcp.NewTool("health_check",
		mcp.WithDescription("Check that the server is responsive."),
	), h.handleHealthCheck)

	return s
}

// StartMCPServer starts the Repopulse MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, log *logrus.Logger) error {
	client := contract.NewLocalGitClient(baseCfg.Limits())
	s := NewMCPServer(baseCfg, client, log)
	return server.ServeStdio(s)
}
