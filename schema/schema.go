// Package schema has the result models and shared constants for all repopulse reports.
package schema

// OutputMode selects how CLI reports are rendered.
type OutputMode string

// Supported output modes.
const (
	TextOut    OutputMode = "text"
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
)

// Interval selects the bucketing granularity for velocity trends.
type Interval string

// Supported trend intervals.
const (
	WeekInterval  Interval = "week"
	MonthInterval Interval = "month"
)

// FileChange is one numstat entry inside a commit.
type FileChange struct {
	Path      string `json:"path"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// CommitRecord is one parsed commit from the activity log. Fields are taken
// verbatim from the log text; any of them may be empty in malformed input.
type CommitRecord struct {
	Hash    string
	Author  string
	Email   string
	Date    string // YYYY-MM-DD, possibly empty or unparseable
	Message string
	Files   []FileChange
}

// AuthorKey returns the canonical "<name> <email>" identity for the commit
// author. Name and email are not normalized; two commits match only when both
// strings are identical.
func (c *CommitRecord) AuthorKey() string {
	return c.Author + " <" + c.Email + ">"
}

// CommitStats holds the window totals returned by get_commit_stats.
type CommitStats struct {
	Commits      int `json:"commits"`
	Additions    int `json:"additions"`
	Deletions    int `json:"deletions"`
	FilesChanged int `json:"filesChanged"`
	NetChange    int `json:"netChange"`
}

// AuthorStats is the per-author rollup returned by get_author_metrics.
type AuthorStats struct {
	Commits   int `json:"commits"`
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Files     int `json:"files"`
}

// ChurnEntry is one ranked file in the get_file_churn result.
type ChurnEntry struct {
	File    string `json:"file"`
	Changes int    `json:"changes"`
}

// Period is the reporting window echoed back by get_team_summary.
type Period struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

// TeamTotals aggregates the whole team's activity for get_team_summary.
type TeamTotals struct {
	TotalCommits   int `json:"totalCommits"`
	TotalAdditions int `json:"totalAdditions"`
	TotalDeletions int `json:"totalDeletions"`
	Contributors   int `json:"contributors"`
}

// TeamSummary is the get_team_summary result.
type TeamSummary struct {
	Period       Period                  `json:"period"`
	Team         TeamTotals              `json:"team"`
	Contributors map[string]*AuthorStats `json:"contributors"`
}

// PatternRates holds the derived percentages of get_commit_patterns.
type PatternRates struct {
	WeekendPercentage   string `json:"weekendPercentage"`
	LateNightPercentage string `json:"lateNightPercentage"`
}

// CommitPatterns is the get_commit_patterns result.
type CommitPatterns struct {
	ByDay    map[string]int `json:"byDay"`
	ByHour   map[string]int `json:"byHour"`
	Patterns PatternRates   `json:"patterns"`
}

// BusFactorEntry counts the files a single author exclusively owns.
type BusFactorEntry struct {
	Author         string `json:"author"`
	ExclusiveFiles int    `json:"exclusiveFiles"`
}

// OwnershipReport is the get_code_ownership result.
type OwnershipReport struct {
	TotalFiles  int              `json:"totalFiles"`
	SharedFiles int              `json:"sharedFiles"`
	SoloFiles   int              `json:"soloFiles"`
	BusFactor   []BusFactorEntry `json:"busFactor"`
}

// VelocityPoint is one period bucket in the get_velocity_trends result.
type VelocityPoint struct {
	Period    string `json:"period"`
	Commits   int    `json:"commits"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// VelocityReport is the get_velocity_trends result.
type VelocityReport struct {
	Interval Interval        `json:"interval"`
	Trends   []VelocityPoint `json:"trends"`
}

// CollaborationPair counts the files shared by one unordered author pair.
type CollaborationPair struct {
	Pair        string `json:"pair"`
	SharedFiles int    `json:"sharedFiles"`
}

// CollaborationReport is the get_collaboration_metrics result.
type CollaborationReport struct {
	CollaborativeFiles int                 `json:"collaborativeFiles"`
	TopCollaborations  []CollaborationPair `json:"topCollaborations"`
}

// QualityReport is the get_quality_metrics result. Rates are preformatted
// one-decimal percentages so an empty window reads "0.0%" instead of NaN.
type QualityReport struct {
	AverageCommitSize int    `json:"averageCommitSize"`
	MedianCommitSize  int    `json:"medianCommitSize"`
	RevertRate        string `json:"revertRate"`
	FixRate           string `json:"fixRate"`
}

// StaleFile is a file whose last change is older than the staleness threshold.
type StaleFile struct {
	File                string `json:"file"`
	DaysSinceLastChange int    `json:"daysSinceLastChange"`
}

// LargeFile is a tracked file above the large-file line threshold.
type LargeFile struct {
	File  string `json:"file"`
	Lines int    `json:"lines"`
}

// Hotspot is a file that is both large and frequently changed.
type Hotspot struct {
	File      string `json:"file"`
	Changes   int    `json:"changes"`
	SizeBytes int64  `json:"sizeBytes"`
}

// TechnicalDebtReport is the get_technical_debt result. AverageFileAge is nil
// when no file ages could be sampled.
type TechnicalDebtReport struct {
	StaleFiles         []StaleFile `json:"staleFiles"`
	LargeFiles         []LargeFile `json:"largeFiles"`
	ComplexityHotspots []Hotspot   `json:"complexityHotspots"`
	AverageFileAge     *int        `json:"averageFileAge"`
}

// TypeCount tallies one conventional-commit type.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ScopeCount tallies one conventional-commit scope.
type ScopeCount struct {
	Scope string `json:"scope"`
	Count int    `json:"count"`
}

// Release is one tag created inside the reporting window.
type Release struct {
	Tag  string `json:"tag"`
	Date string `json:"date"`
}

// ConventionalReport is the get_conventional_commits result.
type ConventionalReport struct {
	TotalCommits           int          `json:"totalCommits"`
	ConventionalCommits    int          `json:"conventionalCommits"`
	ConventionalPercentage string       `json:"conventionalPercentage"`
	CommitTypes            []TypeCount  `json:"commitTypes"`
	TopScopes              []ScopeCount `json:"topScopes"`
	TotalScopeCount        int          `json:"totalScopeCount"`
	BreakingChanges        int          `json:"breakingChanges"`
	RecentReleases         []Release    `json:"recentReleases"`
	TotalReleasesCount     int          `json:"totalReleasesCount"`
	ReleaseFrequency       string       `json:"releaseFrequency"`
}

// HealthStatus is the health_check result.
type HealthStatus struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}
