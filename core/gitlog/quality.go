package gitlog

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/kwangc/repopulse/schema"
)

var fixRe = regexp.MustCompile(`(?i)\b(fix|bug|hotfix)\b`)

// AggregateQuality derives commit-size and message-hygiene signals from a
// parsed window. Commit size is additions plus deletions across a commit's
// files; commits with no numstat lines count as size zero so merge-only
// history does not inflate the average.
func AggregateQuality(records []schema.CommitRecord) schema.QualityReport {
	sizes := make([]int, 0, len(records))
	total := 0
	reverts := 0
	fixes := 0
	for i := range records {
		r := &records[i]
		size := 0
		for _, f := range r.Files {
			size += f.Additions + f.Deletions
		}
		sizes = append(sizes, size)
		total += size
		if strings.Contains(strings.ToLower(r.Message), "revert") {
			reverts++
		}
		if fixRe.MatchString(r.Message) {
			fixes++
		}
	}

	avg := 0
	median := 0
	if len(sizes) > 0 {
		avg = int(math.Round(float64(total) / float64(len(sizes))))
		sort.Ints(sizes)
		median = sizes[len(sizes)/2]
	}

	return schema.QualityReport{
		AverageCommitSize: avg,
		MedianCommitSize:  median,
		RevertRate:        Percentage(reverts, len(records)),
		FixRate:           Percentage(fixes, len(records)),
	}
}
