package contract

import "errors"

// Error classes surfaced to tool callers. Everything a report can fail with
// wraps exactly one of these so handlers can classify with errors.Is.
var (
	// ErrInvalidInput marks a parameter with a bad shape, format or characters.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a repository path that does not exist on disk.
	ErrNotFound = errors.New("not found")

	// ErrNotAGitRepo marks a path that exists but has no git metadata.
	ErrNotAGitRepo = errors.New("not a git repository")

	// ErrCommandFailed marks an external git invocation that exited non-zero
	// or timed out.
	ErrCommandFailed = errors.New("git command failed")

	// ErrResourceLimit marks git output that exceeded the configured size cap.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrUnknownTool marks a tool call for a name that is not registered.
	ErrUnknownTool = errors.New("unknown tool")
)
