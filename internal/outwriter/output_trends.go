package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/kwangc/repopulse/internal/contract"
	"github.com/kwangc/repopulse/internal/parquet"
	"github.com/kwangc/repopulse/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteVelocityTrends outputs the bucketed activity trends, dispatching based
// on the output format configured.
func WriteVelocityTrends(report *schema.VelocityReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"period", "commits", "additions", "deletions"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, p := range report.Trends {
					rec := []string{
						p.Period,
						strconv.Itoa(p.Commits),
						strconv.Itoa(p.Additions),
						strconv.Itoa(p.Deletions),
					}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := requireOutputFile(cfg.OutputFile); err != nil {
			return err
		}
		if err := parquet.WriteVelocityParquet(report, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendsTable(report, duration, w)
		}, "Wrote table")
	}
}

func writeTrendsTable(report *schema.VelocityReport, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Period", "Commits", "Additions", "Deletions"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range report.Trends {
		data = append(data, []string{
			p.Period,
			strconv.Itoa(p.Commits),
			strconv.Itoa(p.Additions),
			strconv.Itoa(p.Deletions),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d %s periods\n", len(report.Trends), report.Interval); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Report completed in %v\n", duration)
	return err
}
