package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/kwangc/repopulse/internal/contract"
	"github.com/kwangc/repopulse/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteCommitStats outputs the window totals, dispatching based on the output
// format configured.
func WriteCommitStats(stats *schema.CommitStats, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, stats)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"commits", "additions", "deletions", "files_changed", "net_change"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				return cw.Write([]string{
					strconv.Itoa(stats.Commits),
					strconv.Itoa(stats.Additions),
					strconv.Itoa(stats.Deletions),
					strconv.Itoa(stats.FilesChanged),
					strconv.Itoa(stats.NetChange),
				})
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("commit stats")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatsTable(stats, duration, w)
		}, "Wrote table")
	}
}

func writeStatsTable(stats *schema.CommitStats, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"Commits", strconv.Itoa(stats.Commits)},
		{"Additions", strconv.Itoa(stats.Additions)},
		{"Deletions", strconv.Itoa(stats.Deletions)},
		{"Files changed", strconv.Itoa(stats.FilesChanged)},
		{"Net change", strconv.Itoa(stats.NetChange)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Report completed in %v\n", duration)
	return err
}

// WriteQualityMetrics outputs the commit-size and hygiene signals.
func WriteQualityMetrics(report *schema.QualityReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"average_commit_size", "median_commit_size", "revert_rate", "fix_rate"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				return cw.Write([]string{
					strconv.Itoa(report.AverageCommitSize),
					strconv.Itoa(report.MedianCommitSize),
					report.RevertRate,
					report.FixRate,
				})
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("quality metrics")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Metric", "Value"})
			table.Configure(func(cfg *tablewriter.Config) {
				cfg.Row.Alignment.Global = tw.AlignRight
			})
			data := [][]string{
				{"Average commit size", strconv.Itoa(report.AverageCommitSize)},
				{"Median commit size", strconv.Itoa(report.MedianCommitSize)},
				{"Revert rate", report.RevertRate},
				{"Fix rate", report.FixRate},
			}
			if err := table.Bulk(data); err != nil {
				return err
			}
			if err := table.Render(); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Report completed in %v\n", duration)
			return err
		}, "Wrote table")
	}
}

// dayOrder fixes the row order for the weekday table.
var dayOrder = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WriteCommitPatterns outputs the weekday/hour distribution.
func WriteCommitPatterns(report *schema.CommitPatterns, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"bucket", "key", "commits"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, day := range dayOrder {
					if n, ok := report.ByDay[day]; ok {
						if err := cw.Write([]string{"day", day, strconv.Itoa(n)}); err != nil {
							return err
						}
					}
				}
				hours := make([]string, 0, len(report.ByHour))
				for h := range report.ByHour {
					hours = append(hours, h)
				}
				sort.Strings(hours)
				for _, h := range hours {
					if err := cw.Write([]string{"hour", h, strconv.Itoa(report.ByHour[h])}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("commit patterns")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePatternsTable(report, duration, w)
		}, "Wrote table")
	}
}

func writePatternsTable(report *schema.CommitPatterns, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Day", "Commits"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, day := range dayOrder {
		if n, ok := report.ByDay[day]; ok {
			data = append(data, []string{day, strconv.Itoa(n)})
		}
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Weekend commits: %s\n", report.Patterns.WeekendPercentage); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Late-night commits: %s\n", report.Patterns.LateNightPercentage); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Report completed in %v\n", duration)
	return err
}
