package contract

// LogQuery describes one git-log retrieval: the date window and an optional,
// pre-sanitized author filter. The layout methods pair the window with the
// exact pretty-format the corresponding parser expects. A query only builds
// arguments; executing them is the GitClient's job.
type LogQuery struct {
	Since  string // YYYY-MM-DD; empty means unbounded history
	Until  string // YYYY-MM-DD; inclusive through end of that day
	Author string // optional free-text filter, already sanitized
}

// windowArgs returns the --since/--until/--author arguments shared by every
// layout. The until boundary is pushed to end-of-day so the final calendar day
// is included.
func (q LogQuery) windowArgs() []string {
	var args []string
	if q.Since != "" {
		args = append(args, "--since="+q.Since)
	}
	if q.Until != "" {
		args = append(args, "--until="+q.Until+" 23:59:59")
	}
	if q.Author != "" {
		args = append(args, "--author="+q.Author)
	}
	return args
}

// ActivityArgs builds the full commit layout: one hash|name|email|date|subject
// header per commit followed by its numstat lines.
func (q LogQuery) ActivityArgs() []string {
	args := []string{"log", "--pretty=format:%H|%an|%ae|%ad|%s", "--date=short", "--numstat"}
	return append(args, q.windowArgs()...)
}

// NameOnlyArgs builds the lighter author + touched-file layout used by the
// ownership and collaboration views.
func (q LogQuery) NameOnlyArgs() []string {
	args := []string{"log", "--pretty=format:%an|%ae", "--name-only"}
	return append(args, q.windowArgs()...)
}

// FileArgs builds the bare touched-file layout used for churn counting.
func (q LogQuery) FileArgs() []string {
	args := []string{"log", "--name-only", "--pretty=format:"}
	return append(args, q.windowArgs()...)
}

// PatternArgs builds the weekday|hour layout used for temporal histograms.
func (q LogQuery) PatternArgs() []string {
	args := []string{"log", "--pretty=format:%ad", "--date=format:%u|%H"}
	return append(args, q.windowArgs()...)
}

// SubjectArgs builds the hash|subject|date layout used for commit
// classification.
func (q LogQuery) SubjectArgs() []string {
	args := []string{"log", "--pretty=format:%H|%s|%ad", "--date=short"}
	return append(args, q.windowArgs()...)
}
