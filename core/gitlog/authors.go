package gitlog

import "github.com/kwangc/repopulse/schema"

// AggregateAuthors rolls commits up by canonical author identity. Each commit
// increments its author's commit count exactly once; additions, deletions and
// the file counter accumulate per change line under the author whose record
// the line was parsed into.
func AggregateAuthors(records []schema.CommitRecord) map[string]*schema.AuthorStats {
	authors := make(map[string]*schema.AuthorStats)
	for i := range records {
		r := &records[i]
		key := r.AuthorKey()
		st := authors[key]
		if st == nil {
			st = &schema.AuthorStats{}
			authors[key] = st
		}
		st.Commits++
		for _, f := range r.Files {
			st.Additions += f.Additions
			st.Deletions += f.Deletions
			st.Files++
		}
	}
	return authors
}
