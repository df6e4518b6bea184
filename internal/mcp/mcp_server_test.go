package mcp_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/kwangc/repopulse/internal/contract"
	mcp_internal "github.com/kwangc/repopulse/internal/mcp"
	"github.com/kwangc/repopulse/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func baseConfig() *contract.Config {
	return &contract.Config{
		Limit:     contract.DefaultResultLimit,
		Interval:  schema.WeekInterval,
		StaleDays: contract.DefaultStaleDays,
	}
}

func newRepoDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	return dir
}

func TestMCPServerToolRegistration(t *testing.T) {
	client := &contract.MockGitClient{}
	s := mcp_internal.NewMCPServer(baseConfig(), client, quietLogger())

	tools := []string{
		"get_commit_stats",
		"get_author_metrics",
		"get_file_churn",
		"get_team_summary",
		"get_commit_patterns",
		"get_code_ownership",
		"get_velocity_trends",
		"get_collaboration_metrics",
		"get_quality_metrics",
		"get_technical_debt",
		"get_conventional_commits",
		"health_check",
	}
	for _, name := range tools {
		assert.NotNil(t, s.GetTool(name), "Tool %s should exist", name)
	}
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	client := &contract.MockGitClient{}
	s := mcp_internal.NewMCPServer(baseConfig(), client, quietLogger())
	ctx := context.Background()

	t.Run("get_commit_stats missing since", func(t *testing.T) {
		tool := s.GetTool("get_commit_stats")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_commit_stats",
				Arguments: map[string]any{
					"repo_path": newRepoDir(t),
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "since is required")
	})

	t.Run("get_commit_stats bad date shape", func(t *testing.T) {
		tool := s.GetTool("get_commit_stats")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_commit_stats",
				Arguments: map[string]any{
					"repo_path": newRepoDir(t),
					"since":     "Jan 1 2026",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid since format")
	})

	t.Run("get_commit_stats repo path injection", func(t *testing.T) {
		tool := s.GetTool("get_commit_stats")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_commit_stats",
				Arguments: map[string]any{
					"repo_path": "/tmp/x; rm -rf /",
					"since":     "2026-01-01",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid characters in repo_path")
	})

	t.Run("get_velocity_trends invalid interval", func(t *testing.T) {
		tool := s.GetTool("get_velocity_trends")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_velocity_trends",
				Arguments: map[string]any{
					"repo_path": newRepoDir(t),
					"since":     "2026-01-01",
					"interval":  "fortnight",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid interval")
	})
}

func TestMCPServerHandlers_Success(t *testing.T) {
	ctx := context.Background()

	t.Run("get_commit_stats returns JSON", func(t *testing.T) {
		repo := newRepoDir(t)
		client := &contract.MockGitClient{}
		log := "abc|Alice|a@x|2026-01-10|feat: one\n10\t2\tmain.go\n"
		query := contract.LogQuery{Since: "2026-01-01"}
		client.On("ActivityLog", repo, query).Return([]byte(log), nil)

		s := mcp_internal.NewMCPServer(baseConfig(), client, quietLogger())
		tool := s.GetTool("get_commit_stats")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_commit_stats",
				Arguments: map[string]any{
					"repo_path": repo,
					"since":     "2026-01-01",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"commits": 1`)
		assert.Contains(t, text, `"netChange": 8`)
		client.AssertExpectations(t)
	})

	t.Run("health_check reports ok", func(t *testing.T) {
		client := &contract.MockGitClient{}
		s := mcp_internal.NewMCPServer(baseConfig(), client, quietLogger())
		tool := s.GetTool("health_check")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "health_check"},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"status": "ok"`)
		assert.Contains(t, text, mcp_internal.ServerVersion)
	})
}
