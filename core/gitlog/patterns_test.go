package gitlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregatePatterns(t *testing.T) {
	// Two weekday mornings, one Saturday evening, one late Sunday night.
	out := "1|09\n2|10\n6|19\n7|23\n"
	patterns := AggregatePatterns([]byte(out))

	assert.Equal(t, 1, patterns.ByDay["Mon"])
	assert.Equal(t, 1, patterns.ByDay["Tue"])
	assert.Equal(t, 1, patterns.ByDay["Sat"])
	assert.Equal(t, 1, patterns.ByDay["Sun"])
	assert.Equal(t, 1, patterns.ByHour["09"])
	assert.Equal(t, 1, patterns.ByHour["23"])

	assert.Equal(t, "50.0%", patterns.Patterns.WeekendPercentage)
	assert.Equal(t, "25.0%", patterns.Patterns.LateNightPercentage)
}

func TestAggregatePatternsLateNightBoundaries(t *testing.T) {
	// 22:00 through 05:59 counts as late night; 06:00 and 21:00 do not.
	out := "1|22\n1|05\n1|06\n1|21\n"
	patterns := AggregatePatterns([]byte(out))
	assert.Equal(t, "50.0%", patterns.Patterns.LateNightPercentage)
}

func TestAggregatePatternsMalformedLines(t *testing.T) {
	out := "1|09\nnot-a-line\n8|10\n1|24\n|\n"
	patterns := AggregatePatterns([]byte(out))

	// Only the first line is valid
	assert.Equal(t, map[string]int{"Mon": 1}, patterns.ByDay)
	assert.Equal(t, "0.0%", patterns.Patterns.WeekendPercentage)
}

func TestAggregatePatternsEmpty(t *testing.T) {
	patterns := AggregatePatterns(nil)
	assert.Empty(t, patterns.ByDay)
	assert.Equal(t, "0.0%", patterns.Patterns.WeekendPercentage)
	assert.Equal(t, "0.0%", patterns.Patterns.LateNightPercentage)
}
