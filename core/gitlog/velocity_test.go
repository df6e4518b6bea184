package gitlog

import (
	"testing"

	"github.com/kwangc/repopulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodKeyWeek(t *testing.T) {
	// 2026-07-15 is a Wednesday; its week starts Sunday 2026-07-12.
	assert.Equal(t, "2026-07-12", PeriodKey("2026-07-15", schema.WeekInterval))
	// A Sunday is its own week start.
	assert.Equal(t, "2026-07-12", PeriodKey("2026-07-12", schema.WeekInterval))
	// Saturday belongs to the preceding Sunday.
	assert.Equal(t, "2026-07-12", PeriodKey("2026-07-18", schema.WeekInterval))
}

func TestPeriodKeyMonth(t *testing.T) {
	assert.Equal(t, "2026-07", PeriodKey("2026-07-15", schema.MonthInterval))
	assert.Equal(t, "2026-01", PeriodKey("2026-01-31", schema.MonthInterval))
}

func TestPeriodKeyUnparseable(t *testing.T) {
	assert.Empty(t, PeriodKey("", schema.WeekInterval))
	assert.Empty(t, PeriodKey("July 15", schema.WeekInterval))
	assert.Empty(t, PeriodKey("2026-13-40", schema.MonthInterval))
}

func TestAggregateVelocity(t *testing.T) {
	records := []schema.CommitRecord{
		{Date: "2026-07-13", Files: []schema.FileChange{{Path: "a.go", Additions: 10, Deletions: 2}}},
		{Date: "2026-07-15", Files: []schema.FileChange{{Path: "b.go", Additions: 5, Deletions: 5}}},
		{Date: "2026-07-20"},
		{Date: "bogus"},
	}

	report := AggregateVelocity(records, schema.WeekInterval)
	assert.Equal(t, schema.WeekInterval, report.Interval)
	require.Len(t, report.Trends, 2)

	// Ascending period order
	assert.Equal(t, "2026-07-12", report.Trends[0].Period)
	assert.Equal(t, 2, report.Trends[0].Commits)
	assert.Equal(t, 15, report.Trends[0].Additions)
	assert.Equal(t, 7, report.Trends[0].Deletions)

	assert.Equal(t, "2026-07-19", report.Trends[1].Period)
	assert.Equal(t, 1, report.Trends[1].Commits)
}

func TestAggregateVelocityMonthly(t *testing.T) {
	records := []schema.CommitRecord{
		{Date: "2026-06-30"},
		{Date: "2026-07-01"},
		{Date: "2026-07-31"},
	}
	report := AggregateVelocity(records, schema.MonthInterval)
	require.Len(t, report.Trends, 2)
	assert.Equal(t, "2026-06", report.Trends[0].Period)
	assert.Equal(t, 2, report.Trends[1].Commits)
}
