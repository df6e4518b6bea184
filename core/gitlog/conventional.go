package gitlog

import (
	"regexp"
	"sort"
	"strings"

	"github.com/kwangc/repopulse/schema"
)

var conventionalRe = regexp.MustCompile(`^(feat|fix|docs|style|refactor|perf|test|build|ci|chore|revert)(\(([^)]+)\))?(!)?:`)

// Classification is the raw tally of conventional-commit adherence over a
// window, before percentage formatting.
type Classification struct {
	Total        int
	Conventional int
	Breaking     int
	Types        map[string]int
	Scopes       map[string]int
}

// ClassifyCommits scans hash|subject|date lines and tallies conventional
// types, scopes and breaking changes. Every non-empty line counts toward the
// total, even when the subject is missing or not conventional.
func ClassifyCommits(out []byte) Classification {
	c := Classification{
		Types:  make(map[string]int),
		Scopes: make(map[string]int),
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c.Total++
		parts := strings.SplitN(line, "|", 3)
		if len(parts) < 2 {
			continue
		}
		subject := parts[1]
		m := conventionalRe.FindStringSubmatch(subject)
		if m == nil {
			continue
		}
		c.Conventional++
		c.Types[m[1]]++
		if m[3] != "" {
			c.Scopes[m[3]]++
		}
		if m[4] == "!" || strings.Contains(subject, "BREAKING CHANGE") {
			c.Breaking++
		}
	}
	return c
}

// RankTypes orders the type tallies by count descending, then name ascending.
func RankTypes(types map[string]int) []schema.TypeCount {
	ranked := make([]schema.TypeCount, 0, len(types))
	for t, n := range types {
		ranked = append(ranked, schema.TypeCount{Type: t, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Type < ranked[j].Type
	})
	return ranked
}

// RankScopes orders the scope tallies by count descending, then name
// ascending, truncated to limit when positive.
func RankScopes(scopes map[string]int, limit int) []schema.ScopeCount {
	ranked := make([]schema.ScopeCount, 0, len(scopes))
	for s, n := range scopes {
		ranked = append(ranked, schema.ScopeCount{Scope: s, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Scope < ranked[j].Scope
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ParseReleases filters tag|date lines to the [since, end] window, where end
// is until or today when until is empty. Dates are zero-padded ISO strings so
// lexical comparison matches chronological order. Tag order from git
// (newest first) is preserved.
func ParseReleases(out []byte, since, until, today string) []schema.Release {
	end := until
	if end == "" {
		end = today
	}
	var releases []schema.Release
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 2)
		if len(parts) < 2 {
			continue
		}
		tag, date := parts[0], parts[1]
		if date < since || date > end {
			continue
		}
		releases = append(releases, schema.Release{Tag: tag, Date: date})
	}
	return releases
}
