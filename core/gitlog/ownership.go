package gitlog

import (
	"sort"
	"strings"

	"github.com/kwangc/repopulse/schema"
)

// FileAuthors maps each touched file in a name|email + name-only log to the
// set of distinct authors who changed it. File lines that appear before the
// first author header are ignored.
func FileAuthors(out []byte) map[string]map[string]struct{} {
	fileAuthors := make(map[string]map[string]struct{})
	var current string

	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(line, "|") {
			parts := strings.SplitN(line, "|", 2)
			current = parts[0] + " <" + parts[1] + ">"
			continue
		}
		if line == "" || current == "" {
			continue
		}
		set := fileAuthors[line]
		if set == nil {
			set = make(map[string]struct{})
			fileAuthors[line] = set
		}
		set[current] = struct{}{}
	}
	return fileAuthors
}

// AggregateOwnership classifies files as solo (exactly one distinct author)
// or shared, and computes each author's exclusive-file count. Results sort by
// exclusive-file count descending, name ascending on ties.
func AggregateOwnership(out []byte) schema.OwnershipReport {
	fileAuthors := FileAuthors(out)

	exclusive := make(map[string]int)
	report := schema.OwnershipReport{TotalFiles: len(fileAuthors)}
	for _, authors := range fileAuthors {
		if len(authors) == 1 {
			report.SoloFiles++
			for author := range authors {
				exclusive[author]++
			}
		} else {
			report.SharedFiles++
		}
	}

	report.BusFactor = make([]schema.BusFactorEntry, 0, len(exclusive))
	for author, count := range exclusive {
		report.BusFactor = append(report.BusFactor, schema.BusFactorEntry{
			Author:         author,
			ExclusiveFiles: count,
		})
	}
	sort.Slice(report.BusFactor, func(i, j int) bool {
		if report.BusFactor[i].ExclusiveFiles != report.BusFactor[j].ExclusiveFiles {
			return report.BusFactor[i].ExclusiveFiles > report.BusFactor[j].ExclusiveFiles
		}
		return report.BusFactor[i].Author < report.BusFactor[j].Author
	})
	return report
}
