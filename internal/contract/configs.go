package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/kwangc/repopulse/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit    = 10
	MaxResultLimit        = 100
	DefaultStaleDays      = 90
	DefaultGitTimeout     = 30 * time.Second
	DefaultMaxOutputBytes = 10 << 20 // 10 MiB of raw log text
	DefaultMaxScanFiles   = 100
)

// ExecLimits bounds a single external git invocation.
type ExecLimits struct {
	Timeout        time.Duration
	MaxOutputBytes int64
}

// Config holds the validated runtime configuration for one report. Handlers
// clone the base config before applying per-request parameters, so requests
// in flight never share mutable state.
type Config struct {
	RepoPath  string
	Since     string
	Until     string
	Author    string
	Limit     int
	Interval  schema.Interval
	StaleDays int

	GitTimeout     time.Duration
	MaxOutputBytes int64
	MaxScanFiles   int

	Output     schema.OutputMode
	OutputFile string
	UseColors  bool
	Width      int // Terminal width override (0 = auto-detect)
}

// Limits returns the execution limits for the external git client.
func (c *Config) Limits() ExecLimits {
	return ExecLimits{Timeout: c.GitTimeout, MaxOutputBytes: c.MaxOutputBytes}
}

// Clone returns a copy of the Config. Config holds no reference types, so a
// shallow copy is a deep one.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct; ProcessAndValidate turns it into
// the final Config.
type ConfigRawInput struct {
	// Set manually from positional args, so no tag
	RepoPathStr string

	Since        string `mapstructure:"since"`
	Until        string `mapstructure:"until"`
	Author       string `mapstructure:"author"`
	Limit        int    `mapstructure:"limit"`
	Interval     string `mapstructure:"interval"`
	StaleDays    int    `mapstructure:"stale-days"`
	GitTimeout   string `mapstructure:"git-timeout"`
	MaxOutputMB  int    `mapstructure:"max-output-mb"`
	MaxScanFiles int    `mapstructure:"max-scan-files"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Color        string `mapstructure:"color"`
	Width        int    `mapstructure:"width"`
}

// ClampLimit normalizes a requested result limit: non-positive values fall
// back to the default, and anything above the hard maximum is clamped.
func ClampLimit(n int) int {
	if n <= 0 {
		return DefaultResultLimit
	}
	if n > MaxResultLimit {
		return MaxResultLimit
	}
	return n
}

// ParseInterval maps a raw interval string to a trend interval. Empty input
// selects the weekly default.
func ParseInterval(s string) (schema.Interval, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(schema.WeekInterval):
		return schema.WeekInterval, nil
	case string(schema.MonthInterval):
		return schema.MonthInterval, nil
	default:
		return "", fmt.Errorf("%w: invalid interval %q (expected week or month)", ErrInvalidInput, s)
	}
}

// ParseOutputMode maps a raw output string to an output mode.
func ParseOutputMode(s string) (schema.OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(schema.TextOut):
		return schema.TextOut, nil
	case string(schema.JSONOut):
		return schema.JSONOut, nil
	case string(schema.CSVOut):
		return schema.CSVOut, nil
	case string(schema.ParquetOut):
		return schema.ParquetOut, nil
	default:
		return "", fmt.Errorf("%w: invalid output mode %q", ErrInvalidInput, s)
	}
}

// ParseBoolString parses a yes/no style string into a boolean.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: invalid boolean string %q (expected yes/no/true/false/1/0)", ErrInvalidInput, s)
	}
}

// ProcessAndValidate populates cfg from raw input, normalizing limits and
// parsing enumerated values. Date shape and repo existence are checked later,
// per report, so the CLI can start (e.g. for the mcp command) without a
// repository argument being valid yet.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.RepoPath = input.RepoPathStr
	cfg.Since = input.Since
	cfg.Until = input.Until
	cfg.Author = SanitizeInput(input.Author)
	cfg.Limit = ClampLimit(input.Limit)

	interval, err := ParseInterval(input.Interval)
	if err != nil {
		return err
	}
	cfg.Interval = interval

	cfg.StaleDays = input.StaleDays
	if cfg.StaleDays < 0 {
		return fmt.Errorf("%w: stale-days must be non-negative", ErrInvalidInput)
	}
	if cfg.StaleDays == 0 {
		cfg.StaleDays = DefaultStaleDays
	}

	cfg.GitTimeout = DefaultGitTimeout
	if input.GitTimeout != "" {
		d, err := time.ParseDuration(input.GitTimeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: invalid git-timeout %q", ErrInvalidInput, input.GitTimeout)
		}
		cfg.GitTimeout = d
	}

	cfg.MaxOutputBytes = DefaultMaxOutputBytes
	if input.MaxOutputMB > 0 {
		cfg.MaxOutputBytes = int64(input.MaxOutputMB) << 20
	}

	cfg.MaxScanFiles = input.MaxScanFiles
	if cfg.MaxScanFiles <= 0 {
		cfg.MaxScanFiles = DefaultMaxScanFiles
	}

	output, err := ParseOutputMode(input.Output)
	if err != nil {
		return err
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	useColors := true
	if input.Color != "" {
		useColors, err = ParseBoolString(input.Color)
		if err != nil {
			return err
		}
	}
	cfg.UseColors = useColors
	cfg.Width = input.Width

	return nil
}
