package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kwangc/repopulse/core"
	"github.com/kwangc/repopulse/internal/contract"
	"github.com/kwangc/repopulse/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
	log     *logrus.Logger
}

// windowConfig clones the base config and applies the shared window
// parameters from the request.
func (h *toolHandler) windowConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	cfg.RepoPath = request.GetString("repo_path", "")
	cfg.Since = request.GetString("since", "")
	if u := request.GetString("until", ""); u != "" {
		cfg.Until = u
	}
	if a := request.GetString("author", ""); a != "" {
		cfg.Author = contract.SanitizeInput(a)
	}
	return cfg
}

// respond serializes a successful result, logging the invocation outcome.
func (h *toolHandler) respond(tool string, start time.Time, result any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		h.log.WithFields(logrus.Fields{"tool": tool, "error": err}).Error("tool failed")
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", tool, err)), nil
	}
	h.log.WithFields(logrus.Fields{"tool": tool, "duration": time.Since(start)}).Info("tool completed")
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCommitStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	cfg := h.windowConfig(request)
	stats, err := core.GetCommitStats(ctx, h.client, cfg)
	return h.respond("get_commit_stats", start, stats, err)
}

func (h *toolHandler) handleGetAuthorMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	cfg := h.windowConfig(request)
	authors, err := core.GetAuthorMetrics(ctx, h.client, cfg)
	return h.respond("get_author_metrics", start, authors, err)
}

func (h *toolHandler) handleGetFileChurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	cfg := h.windowConfig(request)
	cfg.Limit = contract.ClampLimit(request.GetInt("limit", 0))
	entries, err := core.GetFileChurn(ctx, h.client, cfg)
	return h.respond("get_file_churn", start, entries, err)
}

func (h *toolHandler) handleGetTeamSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	cfg := h.windowConfig(request)
	summary, err := core.GetTeamSummary(ctx, h.client, cfg)
	return h.respond("get_team_summary", start, summary, err)
}

func (h *toolHandler) handleGetCommitPatterns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	cfg := h.windowConfig(request)
	patterns, err := core.GetCommitPatterns(ctx, h.client, cfg)
	return h.respond("get_commit_patterns", start, patterns, err)
}

func (h *toolHandler) handleGetCodeOwnership(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	cfg := h.windowConfig(request)
	report, err := core.GetCodeOwnership(ctx, h.client, cfg)
	return h.respond("get_code_ownership", start, report, err)
}

func (h *toolHandler) handleGetVelocityTrends(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	cfg := h.windowConfig(request)
	if i := request.GetString("interval", ""); i != "" {
		interval, err := contract.ParseInterval(i)
		if err != nil {
			return h.respond("get_velocity_trends", start, nil, err)
		}
		cfg.Interval = interval
	}
	report, err := core.GetVelocityTrends(ctx, h.client, cfg)
	return h.respond("get_velocity_trends", start, report, err)
}

func (h *toolHandler) handleGetCollaborationMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	cfg := h.windowConfig(request)
	report, err := core.GetCollaborationMetrics(ctx, h.client, cfg)
	return h.respond("get_collaboration_metrics", start, report, err)
}

func (h *toolHandler) handleGetQualityMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	cfg := h.windowConfig(request)
	report, err := core.GetQualityMetrics(ctx, h.client, cfg)
	return h.respond("get_quality_metrics", start, report, err)
}

func (h *toolHandler) handleGetTechnicalDebt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	cfg := h.baseCfg.Clone()
	cfg.RepoPath = request.GetString("repo_path", "")
	if d := request.GetInt("stale_days", 0); d > 0 {
		cfg.StaleDays = d
	}
	report, err := core.GetTechnicalDebt(ctx, h.client, cfg)
	return h.respond("get_technical_debt", start, report, err)
}

func (h *toolHandler) handleGetConventionalCommits(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	cfg := h.windowConfig(request)
	report, err := core.GetConventionalCommits(ctx, h.client, cfg)
	return h.respond("get_conventional_commits", start, report, err)
}

func (h *toolHandler) handleHealthCheck(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	status := schema.HealthStatus{
		Status:    "ok",
		Version:   ServerVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	return h.respond("health_check", start, status, nil)
}
