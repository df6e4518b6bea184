package gitlog

import (
	"sort"
	"strings"

	"github.com/kwangc/repopulse/schema"
)

// CountFileTouches tallies how often each path appears in a bare name-only
// log. The returned order slice preserves first-seen order for stable
// tie-breaking.
func CountFileTouches(out []byte) (counts map[string]int, order []string) {
	counts = make(map[string]int)
	for _, line := range strings.Split(string(out), "\n") {
		file := strings.TrimSpace(line)
		if file == "" {
			continue
		}
		if _, seen := counts[file]; !seen {
			order = append(order, file)
		}
		counts[file]++
	}
	return counts, order
}

// RankChurn ranks touch counts descending; ties keep first-seen order via the
// stable sort. A positive limit truncates the result.
func RankChurn(counts map[string]int, order []string, limit int) []schema.ChurnEntry {
	ranked := make([]schema.ChurnEntry, 0, len(order))
	for _, file := range order {
		ranked = append(ranked, schema.ChurnEntry{File: file, Changes: counts[file]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Changes > ranked[j].Changes
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
