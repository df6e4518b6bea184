// Package contract provides the interfaces, configuration and shared
// utilities that tie the internal architecture together.
package contract

import "context"

// GitClient defines the log-retrieval operations the aggregation engines
// need. This allows the core logic to be tested without a real git
// executable.
type GitClient interface {
	// Run executes a git command in repoPath and returns its stdout.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// ActivityLog returns the full commit layout (header + numstat) for q.
	ActivityLog(ctx context.Context, repoPath string, q LogQuery) ([]byte, error)

	// NameOnlyLog returns the author + touched-file layout for q.
	NameOnlyLog(ctx context.Context, repoPath string, q LogQuery) ([]byte, error)

	// FileLog returns the bare touched-file layout for q.
	FileLog(ctx context.Context, repoPath string, q LogQuery) ([]byte, error)

	// PatternLog returns the weekday|hour layout for q.
	PatternLog(ctx context.Context, repoPath string, q LogQuery) ([]byte, error)

	// SubjectLog returns the hash|subject|date layout for q.
	SubjectLog(ctx context.Context, repoPath string, q LogQuery) ([]byte, error)

	// ListFiles returns the tracked files of the repository in listing order.
	ListFiles(ctx context.Context, repoPath string) ([]string, error)

	// LastChangeUnix returns the unix timestamp of the most recent commit
	// touching path, or 0 when the path has no recorded history.
	LastChangeUnix(ctx context.Context, repoPath, path string) (int64, error)

	// TagLog returns tag|creation-date lines sorted newest-first.
	TagLog(ctx context.Context, repoPath string) ([]byte, error)
}
