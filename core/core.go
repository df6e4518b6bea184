// Package core orchestrates the repository reports: it validates inputs,
// fetches git log layouts through a GitClient and feeds the aggregation
// engines in core/gitlog.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/kwangc/repopulse/core/gitlog"
	"github.com/kwangc/repopulse/internal/contract"
	"github.com/kwangc/repopulse/schema"
)

// validateWindow checks the repo path and the reporting window shared by all
// log-based reports. since is mandatory; until is optional.
func validateWindow(cfg *contract.Config) error {
	if err := contract.ValidateRepoPath(cfg.RepoPath); err != nil {
		return err
	}
	if cfg.Since == "" {
		return fmt.Errorf("%w: since is required", contract.ErrInvalidInput)
	}
	if err := contract.ValidateDate(cfg.Since, "since"); err != nil {
		return err
	}
	if cfg.Until != "" {
		if err := contract.ValidateDate(cfg.Until, "until"); err != nil {
			return err
		}
	}
	return nil
}

func window(cfg *contract.Config) contract.LogQuery {
	return contract.LogQuery{
		Since:  cfg.Since,
		Until:  cfg.Until,
		Author: cfg.Author,
	}
}

// GetCommitStats totals the commit activity in the reporting window.
func GetCommitStats(ctx context.Context, client contract.GitClient, cfg *contract.Config) (*schema.CommitStats, error) {
	if err := validateWindow(cfg); err != nil {
		return nil, err
	}
	out, err := client.ActivityLog(ctx, cfg.RepoPath, window(cfg))
	if err != nil {
		return nil, err
	}
	stats := gitlog.AggregateStats(gitlog.ParseCommitLog(out))
	return &stats, nil
}

// GetAuthorMetrics rolls up per-author commit, churn and file counts.
func GetAuthorMetrics(ctx context.Context, client contract.GitClient, cfg *contract.Config) (map[string]*schema.AuthorStats, error) {
	if err := validateWindow(cfg); err != nil {
		return nil, err
	}
	out, err := client.ActivityLog(ctx, cfg.RepoPath, window(cfg))
	if err != nil {
		return nil, err
	}
	return gitlog.AggregateAuthors(gitlog.ParseCommitLog(out)), nil
}

// GetFileChurn ranks the most frequently changed files in the window.
func GetFileChurn(ctx context.Context, client contract.GitClient, cfg *contract.Config) ([]schema.ChurnEntry, error) {
	if err := validateWindow(cfg); err != nil {
		return nil, err
	}
	out, err := client.FileLog(ctx, cfg.RepoPath, window(cfg))
	if err != nil {
		return nil, err
	}
	counts, order := gitlog.CountFileTouches(out)
	return gitlog.RankChurn(counts, order, contract.ClampLimit(cfg.Limit)), nil
}

// GetTeamSummary composes the window totals and the per-author breakdown into
// a single team report.
func GetTeamSummary(ctx context.Context, client contract.GitClient, cfg *contract.Config) (*schema.TeamSummary, error) {
	if err := validateWindow(cfg); err != nil {
		return nil, err
	}
	out, err := client.ActivityLog(ctx, cfg.RepoPath, window(cfg))
	if err != nil {
		return nil, err
	}
	records := gitlog.ParseCommitLog(out)
	stats := gitlog.AggregateStats(records)
	contributors := gitlog.AggregateAuthors(records)

	until := cfg.Until
	if until == "" {
		until = "now"
	}
	return &schema.TeamSummary{
		Period: schema.Period{Since: cfg.Since, Until: until},
		Team: schema.TeamTotals{
			TotalCommits:   stats.Commits,
			TotalAdditions: stats.Additions,
			TotalDeletions: stats.Deletions,
			Contributors:   len(contributors),
		},
		Contributors: contributors,
	}, nil
}

// GetCommitPatterns buckets commits by weekday and hour and derives the
// weekend and late-night rates.
func GetCommitPatterns(ctx context.Context, client contract.GitClient, cfg *contract.Config) (*schema.CommitPatterns, error) {
	if err := validateWindow(cfg); err != nil {
		return nil, err
	}
	out, err := client.PatternLog(ctx, cfg.RepoPath, window(cfg))
	if err != nil {
		return nil, err
	}
	patterns := gitlog.AggregatePatterns(out)
	return &patterns, nil
}

// GetCodeOwnership maps files to their authors and derives the bus factor.
func GetCodeOwnership(ctx context.Context, client contract.GitClient, cfg *contract.Config) (*schema.OwnershipReport, error) {
	if err := validateWindow(cfg); err != nil {
		return nil, err
	}
	out, err := client.NameOnlyLog(ctx, cfg.RepoPath, window(cfg))
	if err != nil {
		return nil, err
	}
	report := gitlog.AggregateOwnership(out)
	return &report, nil
}

// GetVelocityTrends buckets the window's activity into weekly or monthly
// periods.
func GetVelocityTrends(ctx context.Context, client contract.GitClient, cfg *contract.Config) (*schema.VelocityReport, error) {
	if err := validateWindow(cfg); err != nil {
		return nil, err
	}
	out, err := client.ActivityLog(ctx, cfg.RepoPath, window(cfg))
	if err != nil {
		return nil, err
	}
	report := gitlog.AggregateVelocity(gitlog.ParseCommitLog(out), cfg.Interval)
	return &report, nil
}

// GetCollaborationMetrics finds author pairs that touch the same files.
func GetCollaborationMetrics(ctx context.Context, client contract.GitClient, cfg *contract.Config) (*schema.CollaborationReport, error) {
	if err := validateWindow(cfg); err != nil {
		return nil, err
	}
	out, err := client.NameOnlyLog(ctx, cfg.RepoPath, window(cfg))
	if err != nil {
		return nil, err
	}
	report := gitlog.AggregateCollaboration(out)
	return &report, nil
}

// GetQualityMetrics derives commit-size and message-hygiene signals.
func GetQualityMetrics(ctx context.Context, client contract.GitClient, cfg *contract.Config) (*schema.QualityReport, error) {
	if err := validateWindow(cfg); err != nil {
		return nil, err
	}
	out, err := client.ActivityLog(ctx, cfg.RepoPath, window(cfg))
	if err != nil {
		return nil, err
	}
	report := gitlog.AggregateQuality(gitlog.ParseCommitLog(out))
	return &report, nil
}

// GetConventionalCommits measures conventional-commit adherence and release
// cadence over the window.
func GetConventionalCommits(ctx context.Context, client contract.GitClient, cfg *contract.Config) (*schema.ConventionalReport, error) {
	if err := validateWindow(cfg); err != nil {
		return nil, err
	}
	subjects, err := client.SubjectLog(ctx, cfg.RepoPath, window(cfg))
	if err != nil {
		return nil, err
	}
	tags, err := client.TagLog(ctx, cfg.RepoPath)
	if err != nil {
		return nil, err
	}

	classified := gitlog.ClassifyCommits(subjects)
	today := time.Now().Format("2006-01-02")
	releases := gitlog.ParseReleases(tags, cfg.Since, cfg.Until, today)

	frequency := "No releases found"
	if len(releases) > 1 {
		frequency = fmt.Sprintf("%d releases since %s", len(releases), cfg.Since)
	}

	return &schema.ConventionalReport{
		TotalCommits:           classified.Total,
		ConventionalCommits:    classified.Conventional,
		ConventionalPercentage: gitlog.Percentage(classified.Conventional, classified.Total),
		CommitTypes:            gitlog.RankTypes(classified.Types),
		TopScopes:              gitlog.RankScopes(classified.Scopes, contract.DefaultResultLimit),
		TotalScopeCount:        len(classified.Scopes),
		BreakingChanges:        classified.Breaking,
		RecentReleases:         releases,
		TotalReleasesCount:     len(releases),
		ReleaseFrequency:       frequency,
	}, nil
}
