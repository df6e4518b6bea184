package gitlog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kwangc/repopulse/schema"
)

// statLineRe matches a numstat line: additions, deletions, then the path.
// The path capture is greedy so embedded whitespace survives intact.
var statLineRe = regexp.MustCompile(`^(\d+)\s+(\d+)\s+(.*)$`)

// ParseCommitLog converts activity-log text (hash|name|email|date|subject
// headers interleaved with numstat lines) into an ordered slice of commit
// records.
//
// The loop is a two-state machine: either no record is open, or one is open
// and numstat lines attach to it. A header line closes the open record and
// opens the next; a numstat line with no open record, and any line matching
// neither shape, is skipped without error.
func ParseCommitLog(out []byte) []schema.CommitRecord {
	var records []schema.CommitRecord
	var open *schema.CommitRecord

	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(line, "|") {
			if open != nil {
				records = append(records, *open)
			}
			open = parseHeader(line)
			continue
		}
		if m := statLineRe.FindStringSubmatch(line); m != nil && open != nil {
			add, errAdd := strconv.Atoi(m[1])
			del, errDel := strconv.Atoi(m[2])
			if errAdd == nil && errDel == nil {
				open.Files = append(open.Files, schema.FileChange{
					Path:      m[3],
					Additions: add,
					Deletions: del,
				})
			}
		}
	}
	if open != nil {
		records = append(records, *open)
	}
	return records
}

// parseHeader splits a header line into at most five fields. The subject may
// itself contain the delimiter, so everything past the fourth split stays
// joined. A line of bare delimiters yields a record with all fields empty.
func parseHeader(line string) *schema.CommitRecord {
	parts := strings.SplitN(line, "|", 5)
	r := &schema.CommitRecord{}
	if len(parts) > 0 {
		r.Hash = parts[0]
	}
	if len(parts) > 1 {
		r.Author = parts[1]
	}
	if len(parts) > 2 {
		r.Email = parts[2]
	}
	if len(parts) > 3 {
		r.Date = parts[3]
	}
	if len(parts) > 4 {
		r.Message = parts[4]
	}
	return r
}
