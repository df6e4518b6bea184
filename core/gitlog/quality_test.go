package gitlog

import (
	"testing"

	"github.com/kwangc/repopulse/schema"
	"github.com/stretchr/testify/assert"
)

func TestAggregateQuality(t *testing.T) {
	records := []schema.CommitRecord{
		{Message: "feat: add parser", Files: []schema.FileChange{{Path: "a.go", Additions: 8, Deletions: 2}}},
		{Message: "fix: crash on nil", Files: []schema.FileChange{{Path: "a.go", Additions: 2, Deletions: 2}}},
		{Message: "Revert \"feat: add parser\"", Files: []schema.FileChange{{Path: "a.go", Additions: 2, Deletions: 8}}},
		{Message: "docs: readme"},
	}

	report := AggregateQuality(records)
	// Sizes are 10, 4, 10, 0; mean 6, median is the upper middle of the
	// sorted slice [0 4 10 10].
	assert.Equal(t, 6, report.AverageCommitSize)
	assert.Equal(t, 10, report.MedianCommitSize)
	assert.Equal(t, "25.0%", report.RevertRate)
	assert.Equal(t, "25.0%", report.FixRate)
}

func TestAggregateQualityFixWordBoundary(t *testing.T) {
	records := []schema.CommitRecord{
		{Message: "fix login redirect"},
		{Message: "Hotfix for prod incident"},
		{Message: "add prefix support"},  // prefix does not count
		{Message: "debug the bugfixes"},  // neither does bugfixes
		{Message: "Bug: timer drift"},
	}
	report := AggregateQuality(records)
	assert.Equal(t, "60.0%", report.FixRate)
}

func TestAggregateQualityRevertSubstring(t *testing.T) {
	records := []schema.CommitRecord{
		{Message: "revert the revert"},
		{Message: "Reverting bad merge"},
		{Message: "rework scheduler"},
	}
	report := AggregateQuality(records)
	assert.Equal(t, "66.7%", report.RevertRate)
}

func TestAggregateQualityEmpty(t *testing.T) {
	report := AggregateQuality(nil)
	assert.Equal(t, 0, report.AverageCommitSize)
	assert.Equal(t, 0, report.MedianCommitSize)
	assert.Equal(t, "0.0%", report.RevertRate)
	assert.Equal(t, "0.0%", report.FixRate)
}
