// Package gitlog turns raw git log text into structured commit records and
// folds them into the analytical views served by repopulse. Every function in
// this package is a pure fold over its input text or records; retrieval and
// parameter validation happen in the core package.
package gitlog

import "fmt"

// dateLayout is the calendar-date form produced by --date=short.
const dateLayout = "2006-01-02"

// Percentage formats part/total as a one-decimal percentage. A zero total
// yields "0.0%" rather than NaN.
func Percentage(part, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(total)*100)
}
