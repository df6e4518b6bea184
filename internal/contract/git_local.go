package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// LocalGitClient implements the GitClient interface by executing the local
// 'git' binary. Every invocation is bounded by the configured timeout, and
// output larger than the configured cap is rejected instead of buffered.
type LocalGitClient struct {
	limits ExecLimits
}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a local git client with the given execution
// limits. Zero-valued limits fall back to the defaults.
func NewLocalGitClient(limits ExecLimits) *LocalGitClient {
	if limits.Timeout <= 0 {
		limits.Timeout = DefaultGitTimeout
	}
	if limits.MaxOutputBytes <= 0 {
		limits.MaxOutputBytes = DefaultMaxOutputBytes
	}
	return &LocalGitClient{limits: limits}
}

// Run executes a git command and returns its stdout. A non-zero exit wraps
// ErrCommandFailed with the trimmed stderr text; oversized output wraps
// ErrResourceLimit. There are no retries.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	runCtx, cancel := context.WithTimeout(ctx, c.limits.Timeout)
	defer cancel()

	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(runCtx, "git", fullArgs...)
	out, err := cmd.Output()
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: git %s timed out after %s", ErrCommandFailed, strings.Join(args, " "), c.limits.Timeout)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("%w: git %s: %s", ErrCommandFailed, strings.Join(args, " "), stderr)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v (is git installed and on PATH?)", ErrCommandFailed, err)
	}
	if int64(len(out)) > c.limits.MaxOutputBytes {
		return nil, fmt.Errorf("%w: git output is %d bytes, cap is %d", ErrResourceLimit, len(out), c.limits.MaxOutputBytes)
	}
	return out, nil
}

// ActivityLog implements the GitClient interface.
func (c *LocalGitClient) ActivityLog(ctx context.Context, repoPath string, q LogQuery) ([]byte, error) {
	return c.Run(ctx, repoPath, q.ActivityArgs()...)
}

// NameOnlyLog implements the GitClient interface.
func (c *LocalGitClient) NameOnlyLog(ctx context.Context, repoPath string, q LogQuery) ([]byte, error) {
	return c.Run(ctx, repoPath, q.NameOnlyArgs()...)
}

// FileLog implements the GitClient interface.
func (c *LocalGitClient) FileLog(ctx context.Context, repoPath string, q LogQuery) ([]byte, error) {
	return c.Run(ctx, repoPath, q.FileArgs()...)
}

// PatternLog implements the GitClient interface.
func (c *LocalGitClient) PatternLog(ctx context.Context, repoPath string, q LogQuery) ([]byte, error) {
	return c.Run(ctx, repoPath, q.PatternArgs()...)
}

// SubjectLog implements the GitClient interface.
func (c *LocalGitClient) SubjectLog(ctx context.Context, repoPath string, q LogQuery) ([]byte, error) {
	return c.Run(ctx, repoPath, q.SubjectArgs()...)
}

// ListFiles implements the GitClient interface.
func (c *LocalGitClient) ListFiles(ctx context.Context, repoPath string) ([]string, error) {
	out, err := c.Run(ctx, repoPath, "ls-files")
	if err != nil {
		return nil, err
	}
	files := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(files) == 1 && files[0] == "" {
		return []string{}, nil
	}
	return files, nil
}

// LastChangeUnix implements the GitClient interface.
func (c *LocalGitClient) LastChangeUnix(ctx context.Context, repoPath, path string) (int64, error) {
	out, err := c.Run(ctx, repoPath, "log", "-1", "--format=%ct", "--", path)
	if err != nil {
		return 0, err
	}
	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return 0, nil
	}
	ts, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unparseable commit time %q for %s", ErrCommandFailed, trimmed, path)
	}
	return ts, nil
}

// TagLog implements the GitClient interface.
func (c *LocalGitClient) TagLog(ctx context.Context, repoPath string) ([]byte, error) {
	return c.Run(ctx, repoPath, "tag", "--sort=-creatordate", "--format=%(refname:short)|%(creatordate:short)")
}
