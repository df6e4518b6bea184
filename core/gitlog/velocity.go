package gitlog

import (
	"sort"
	"time"

	"github.com/kwangc/repopulse/schema"
)

// PeriodKey returns the trend bucket for a commit date: the Sunday on or
// before the date for weekly buckets (YYYY-MM-DD), or the calendar month
// (YYYY-MM) for monthly ones. Unparseable dates return "" and are excluded
// from the trends.
func PeriodKey(date string, interval schema.Interval) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	if interval == schema.MonthInterval {
		return t.Format("2006-01")
	}
	weekStart := t.AddDate(0, 0, -int(t.Weekday()))
	return weekStart.Format(dateLayout)
}

// AggregateVelocity buckets commits into periods and sums the churn of their
// attached file changes. Periods are created on first occurrence, then the
// output sorts ascending by key; lexical order suffices because the keys are
// zero-padded ISO-like strings.
func AggregateVelocity(records []schema.CommitRecord, interval schema.Interval) schema.VelocityReport {
	buckets := make(map[string]*schema.VelocityPoint)
	for i := range records {
		r := &records[i]
		key := PeriodKey(r.Date, interval)
		if key == "" {
			continue
		}
		p := buckets[key]
		if p == nil {
			p = &schema.VelocityPoint{Period: key}
			buckets[key] = p
		}
		p.Commits++
		for _, f := range r.Files {
			p.Additions += f.Additions
			p.Deletions += f.Deletions
		}
	}

	trends := make([]schema.VelocityPoint, 0, len(buckets))
	for _, p := range buckets {
		trends = append(trends, *p)
	}
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Period < trends[j].Period
	})

	return schema.VelocityReport{Interval: interval, Trends: trends}
}
