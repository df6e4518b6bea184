package outwriter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kwangc/repopulse/internal/contract"
	"github.com/kwangc/repopulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileCfg(t *testing.T, output schema.OutputMode) *contract.Config {
	t.Helper()
	return &contract.Config{
		Output:     output,
		OutputFile: filepath.Join(t.TempDir(), "out"),
		Width:      120,
	}
}

func readOutput(t *testing.T, cfg *contract.Config) string {
	t.Helper()
	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	return string(data)
}

var churnFixture = []schema.ChurnEntry{
	{File: "core/parse.go", Changes: 60},
	{File: "main.go", Changes: 12},
	{File: "README.md", Changes: 2},
}

func TestWriteFileChurnJSON(t *testing.T) {
	cfg := fileCfg(t, schema.JSONOut)
	require.NoError(t, WriteFileChurn(churnFixture, cfg, time.Second))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg)), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, float64(1), rows[0]["rank"])
	assert.Equal(t, "Hot", rows[0]["label"])
	assert.Equal(t, "core/parse.go", rows[0]["file"])
	assert.Equal(t, "Cool", rows[2]["label"])
}

func TestWriteFileChurnCSV(t *testing.T) {
	cfg := fileCfg(t, schema.CSVOut)
	require.NoError(t, WriteFileChurn(churnFixture, cfg, time.Second))

	lines := strings.Split(strings.TrimSpace(readOutput(t, cfg)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "rank,file,changes,label", lines[0])
	assert.Equal(t, "1,core/parse.go,60,Hot", lines[1])
	assert.Equal(t, "2,main.go,12,Warm", lines[2])
}

func TestWriteFileChurnTable(t *testing.T) {
	cfg := fileCfg(t, schema.TextOut)
	require.NoError(t, WriteFileChurn(churnFixture, cfg, time.Second))

	out := readOutput(t, cfg)
	assert.Contains(t, out, "core/parse.go")
	assert.Contains(t, out, "Showing top 3 files (total changes: 74)")
}

func TestWriteFileChurnParquetNeedsFile(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut}
	err := WriteFileChurn(churnFixture, cfg, time.Second)
	assert.ErrorIs(t, err, contract.ErrInvalidInput)
}

func TestWriteCommitStatsText(t *testing.T) {
	cfg := fileCfg(t, schema.TextOut)
	stats := &schema.CommitStats{Commits: 5, Additions: 40, Deletions: 10, FilesChanged: 7, NetChange: 30}
	require.NoError(t, WriteCommitStats(stats, cfg, time.Second))

	out := readOutput(t, cfg)
	assert.Contains(t, out, "Commits")
	assert.Contains(t, out, "30")
}

func TestWriteCommitStatsParquetUnsupported(t *testing.T) {
	cfg := fileCfg(t, schema.ParquetOut)
	err := WriteCommitStats(&schema.CommitStats{}, cfg, time.Second)
	assert.ErrorIs(t, err, contract.ErrInvalidInput)
}

func TestWriteAuthorMetricsCSVOrder(t *testing.T) {
	cfg := fileCfg(t, schema.CSVOut)
	authors := map[string]*schema.AuthorStats{
		"Bob <b@x>":   {Commits: 1},
		"Alice <a@x>": {Commits: 3, Additions: 10},
		"Carol <c@x>": {Commits: 3},
	}
	require.NoError(t, WriteAuthorMetrics(authors, cfg, time.Second))

	lines := strings.Split(strings.TrimSpace(readOutput(t, cfg)), "\n")
	require.Len(t, lines, 4)
	// Commit count descending, name ascending on ties
	assert.True(t, strings.HasPrefix(lines[1], "Alice <a@x>"))
	assert.True(t, strings.HasPrefix(lines[2], "Carol <c@x>"))
	assert.True(t, strings.HasPrefix(lines[3], "Bob <b@x>"))
}

func TestWriteTeamSummaryJSONRoundTrip(t *testing.T) {
	cfg := fileCfg(t, schema.JSONOut)
	summary := &schema.TeamSummary{
		Period: schema.Period{Since: "2026-01-01", Until: "now"},
		Team:   schema.TeamTotals{TotalCommits: 2, Contributors: 1},
		Contributors: map[string]*schema.AuthorStats{
			"Alice <a@x>": {Commits: 2},
		},
	}
	require.NoError(t, WriteTeamSummary(summary, cfg, time.Second))

	var decoded schema.TeamSummary
	require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg)), &decoded))
	assert.Equal(t, "now", decoded.Period.Until)
	assert.Equal(t, 2, decoded.Team.TotalCommits)
}

func TestGetMaxTablePathWidth(t *testing.T) {
	narrow := &contract.Config{Width: 40}
	assert.Equal(t, 15, getMaxTablePathWidth(narrow))

	wide := &contract.Config{Width: 500}
	assert.Equal(t, 70, getMaxTablePathWidth(wide))

	medium := &contract.Config{Width: 100}
	assert.Equal(t, 55, getMaxTablePathWidth(medium))
}
