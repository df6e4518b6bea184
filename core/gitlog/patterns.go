package gitlog

import (
	"strconv"
	"strings"

	"github.com/kwangc/repopulse/schema"
)

// dayNames maps ISO weekday numbers (1=Monday..7=Sunday) to report keys.
var dayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// AggregatePatterns buckets weekday|hour lines into day and hour histograms.
// Weekend commits fall on ISO days 6-7. The late-night window is hour >=22 or
// <=5, inclusive at both ends: a seven-hour span, intentionally asymmetric.
func AggregatePatterns(out []byte) schema.CommitPatterns {
	byDay := make(map[string]int)
	byHour := make(map[string]int)
	var total, weekend, lateNight int

	for _, line := range strings.Split(string(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 2)
		if len(parts) != 2 {
			continue
		}
		day, errDay := strconv.Atoi(parts[0])
		hour, errHour := strconv.Atoi(parts[1])
		if errDay != nil || errHour != nil || day < 1 || day > 7 || hour < 0 || hour > 23 {
			continue
		}
		total++
		byDay[dayNames[day-1]]++
		byHour[parts[1]]++
		if day >= 6 {
			weekend++
		}
		if hour >= 22 || hour <= 5 {
			lateNight++
		}
	}

	return schema.CommitPatterns{
		ByDay:  byDay,
		ByHour: byHour,
		Patterns: schema.PatternRates{
			WeekendPercentage:   Percentage(weekend, total),
			LateNightPercentage: Percentage(lateNight, total),
		},
	}
}
