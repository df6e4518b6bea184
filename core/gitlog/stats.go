package gitlog

import "github.com/kwangc/repopulse/schema"

// AggregateStats folds parsed commits into window totals. FilesChanged counts
// distinct paths, not change lines, so a file touched in several commits
// counts once.
func AggregateStats(records []schema.CommitRecord) schema.CommitStats {
	stats := schema.CommitStats{Commits: len(records)}
	seen := make(map[string]struct{})
	for _, r := range records {
		for _, f := range r.Files {
			stats.Additions += f.Additions
			stats.Deletions += f.Deletions
			seen[f.Path] = struct{}{}
		}
	}
	stats.FilesChanged = len(seen)
	stats.NetChange = stats.Additions - stats.Deletions
	return stats
}
