package gitlog

import (
	"sort"

	"github.com/kwangc/repopulse/schema"
)

// pairSeparator joins the two authors of an unordered collaboration pair.
const pairSeparator = " <-> "

// maxCollaborations caps the reported top pairs.
const maxCollaborations = 10

// AggregateCollaboration generates every unordered author pair for each file
// touched by two or more distinct authors: n authors yield n*(n-1)/2 pairs.
// Pair identity sorts the two author keys lexically before joining, so (A,B)
// and (B,A) land on one counter regardless of touch order.
func AggregateCollaboration(out []byte) schema.CollaborationReport {
	fileAuthors := FileAuthors(out)

	pairs := make(map[string]int)
	var collaborative int
	for _, authors := range fileAuthors {
		if len(authors) < 2 {
			continue
		}
		collaborative++
		list := make([]string, 0, len(authors))
		for a := range authors {
			list = append(list, a)
		}
		sort.Strings(list)
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				pairs[list[i]+pairSeparator+list[j]]++
			}
		}
	}

	top := make([]schema.CollaborationPair, 0, len(pairs))
	for pair, count := range pairs {
		top = append(top, schema.CollaborationPair{Pair: pair, SharedFiles: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].SharedFiles != top[j].SharedFiles {
			return top[i].SharedFiles > top[j].SharedFiles
		}
		return top[i].Pair < top[j].Pair
	})
	if len(top) > maxCollaborations {
		top = top[:maxCollaborations]
	}

	return schema.CollaborationReport{
		CollaborativeFiles: collaborative,
		TopCollaborations:  top,
	}
}
