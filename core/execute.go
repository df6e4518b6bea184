package core

import (
	"context"
	"time"

	"github.com/kwangc/repopulse/internal/contract"
	"github.com/kwangc/repopulse/internal/outwriter"
)

// ExecutorFunc defines the function signature for running a report from the
// command layer.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteCommitStats runs the commit stats report and prints the result.
// It serves as the main entry point for the 'stats' command.
func ExecuteCommitStats(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient(cfg.Limits())
	stats, err := GetCommitStats(ctx, client, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteCommitStats(stats, cfg, time.Since(start))
}

// ExecuteAuthorMetrics runs the per-author report and prints the result.
func ExecuteAuthorMetrics(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient(cfg.Limits())
	authors, err := GetAuthorMetrics(ctx, client, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteAuthorMetrics(authors, cfg, time.Since(start))
}

// ExecuteFileChurn runs the churn ranking and prints the result.
func ExecuteFileChurn(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient(cfg.Limits())
	entries, err := GetFileChurn(ctx, client, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteFileChurn(entries, cfg, time.Since(start))
}

// ExecuteTeamSummary runs the team summary and prints the result.
func ExecuteTeamSummary(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient(cfg.Limits())
	summary, err := GetTeamSummary(ctx, client, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteTeamSummary(summary, cfg, time.Since(start))
}

// ExecuteCommitPatterns runs the weekday/hour report and prints the result.
func ExecuteCommitPatterns(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient(cfg.Limits())
	patterns, err := GetCommitPatterns(ctx, client, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteCommitPatterns(patterns, cfg, time.Since(start))
}

// ExecuteCodeOwnership runs the ownership report and prints the result.
func ExecuteCodeOwnership(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient(cfg.Limits())
	report, err := GetCodeOwnership(ctx, client, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteCodeOwnership(report, cfg, time.Since(start))
}

// ExecuteVelocityTrends runs the trend report and prints the result.
func ExecuteVelocityTrends(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient(cfg.Limits())
	report, err := GetVelocityTrends(ctx, client, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteVelocityTrends(report, cfg, time.Since(start))
}

// ExecuteCollaboration runs the shared-file pairing report and prints the result.
func ExecuteCollaboration(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient(cfg.Limits())
	report, err := GetCollaborationMetrics(ctx, client, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteCollaboration(report, cfg, time.Since(start))
}

// ExecuteQualityMetrics runs the hygiene report and prints the result.
func ExecuteQualityMetrics(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient(cfg.Limits())
	report, err := GetQualityMetrics(ctx, client, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteQualityMetrics(report, cfg, time.Since(start))
}

// ExecuteTechnicalDebt runs the debt scan and prints the result.
func ExecuteTechnicalDebt(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient(cfg.Limits())
	report, err := GetTechnicalDebt(ctx, client, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteTechnicalDebt(report, cfg, time.Since(start))
}

// ExecuteConventionalCommits runs the adherence report and prints the result.
func ExecuteConventionalCommits(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient(cfg.Limits())
	report, err := GetConventionalCommits(ctx, client, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteConventionalCommits(report, cfg, time.Since(start))
}
