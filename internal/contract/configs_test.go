package contract

import (
	"testing"
	"time"

	"github.com/kwangc/repopulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultResultLimit, ClampLimit(0))
	assert.Equal(t, DefaultResultLimit, ClampLimit(-5))
	assert.Equal(t, 25, ClampLimit(25))
	assert.Equal(t, MaxResultLimit, ClampLimit(MaxResultLimit))
	assert.Equal(t, MaxResultLimit, ClampLimit(5000))
}

func TestParseInterval(t *testing.T) {
	for _, s := range []string{"", "week", "WEEK", " week "} {
		interval, err := ParseInterval(s)
		require.NoError(t, err)
		assert.Equal(t, schema.WeekInterval, interval)
	}

	interval, err := ParseInterval("month")
	require.NoError(t, err)
	assert.Equal(t, schema.MonthInterval, interval)

	_, err = ParseInterval("fortnight")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseOutputMode(t *testing.T) {
	mode, err := ParseOutputMode("")
	require.NoError(t, err)
	assert.Equal(t, schema.TextOut, mode)

	for _, s := range []string{"json", "csv", "parquet", "text"} {
		_, err := ParseOutputMode(s)
		assert.NoError(t, err)
	}

	_, err = ParseOutputMode("xml")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProcessAndValidate(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{
		RepoPathStr: "/some/repo",
		Since:       "2026-01-01",
		Author:      "alice;`$(x)`",
		Limit:       500,
		Interval:    "month",
		Output:      "json",
		Color:       "no",
		Width:       120,
	}

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, "/some/repo", cfg.RepoPath)
	assert.Equal(t, "alicex", cfg.Author)
	assert.Equal(t, MaxResultLimit, cfg.Limit)
	assert.Equal(t, schema.MonthInterval, cfg.Interval)
	assert.Equal(t, DefaultStaleDays, cfg.StaleDays)
	assert.Equal(t, DefaultGitTimeout, cfg.GitTimeout)
	assert.Equal(t, int64(DefaultMaxOutputBytes), cfg.MaxOutputBytes)
	assert.Equal(t, DefaultMaxScanFiles, cfg.MaxScanFiles)
	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.False(t, cfg.UseColors)
	assert.Equal(t, 120, cfg.Width)
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{RepoPathStr: "."}))
	assert.Equal(t, DefaultResultLimit, cfg.Limit)
	assert.Equal(t, schema.WeekInterval, cfg.Interval)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidateGitTimeout(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{RepoPathStr: ".", GitTimeout: "2m"}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, 2*time.Minute, cfg.GitTimeout)

	err := ProcessAndValidate(&Config{}, &ConfigRawInput{RepoPathStr: ".", GitTimeout: "soon"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = ProcessAndValidate(&Config{}, &ConfigRawInput{RepoPathStr: ".", GitTimeout: "-3s"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProcessAndValidateBadInputs(t *testing.T) {
	assert.ErrorIs(t, ProcessAndValidate(&Config{}, &ConfigRawInput{RepoPathStr: ".", Interval: "day"}), ErrInvalidInput)
	assert.ErrorIs(t, ProcessAndValidate(&Config{}, &ConfigRawInput{RepoPathStr: ".", StaleDays: -1}), ErrInvalidInput)
	assert.ErrorIs(t, ProcessAndValidate(&Config{}, &ConfigRawInput{RepoPathStr: ".", Output: "yaml"}), ErrInvalidInput)
	assert.ErrorIs(t, ProcessAndValidate(&Config{}, &ConfigRawInput{RepoPathStr: ".", Color: "maybe"}), ErrInvalidInput)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{RepoPath: "/repo", Limit: 7, Interval: schema.MonthInterval}
	clone := cfg.Clone()
	clone.RepoPath = "/other"
	clone.Limit = 99

	assert.Equal(t, "/repo", cfg.RepoPath)
	assert.Equal(t, 7, cfg.Limit)
	assert.Equal(t, schema.MonthInterval, clone.Interval)
}

func TestConfigLimits(t *testing.T) {
	cfg := &Config{GitTimeout: 5 * time.Second, MaxOutputBytes: 1024}
	limits := cfg.Limits()
	assert.Equal(t, 5*time.Second, limits.Timeout)
	assert.Equal(t, int64(1024), limits.MaxOutputBytes)
}
