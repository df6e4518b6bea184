package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/kwangc/repopulse/internal/contract"
	"github.com/kwangc/repopulse/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteConventionalCommits outputs the conventional-commit adherence report.
func WriteConventionalCommits(report *schema.ConventionalReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"type", "count"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, t := range report.CommitTypes {
					if err := cw.Write([]string{t.Type, fmt.Sprint(t.Count)}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("conventional commits")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeConventionalTable(report, duration, w)
		}, "Wrote table")
	}
}

func writeConventionalTable(report *schema.ConventionalReport, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Type", "Count"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, t := range report.CommitTypes {
		data = append(data, []string{t.Type, fmt.Sprint(t.Count)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Conventional commits: %d of %d (%s)\n",
		report.ConventionalCommits, report.TotalCommits, report.ConventionalPercentage); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Breaking changes: %d\n", report.BreakingChanges); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Releases: %s\n", report.ReleaseFrequency); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Report completed in %v\n", duration)
	return err
}
