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

// WriteTechnicalDebt outputs the debt signals, dispatching based on the
// output format configured. Parquet export covers the stale file rows.
func WriteTechnicalDebt(report *schema.TechnicalDebtReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"signal", "file", "value"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, f := range report.StaleFiles {
					if err := cw.Write([]string{"stale", f.File, strconv.Itoa(f.DaysSinceLastChange)}); err != nil {
						return err
					}
				}
				for _, f := range report.LargeFiles {
					if err := cw.Write([]string{"large", f.File, strconv.Itoa(f.Lines)}); err != nil {
						return err
					}
				}
				for _, h := range report.ComplexityHotspots {
					if err := cw.Write([]string{"hotspot", h.File, strconv.Itoa(h.Changes)}); err != nil {
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
		if err := parquet.WriteStaleFilesParquet(report.StaleFiles, cfg.StaleDays, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDebtTables(report, cfg, duration, w)
		}, "Wrote table")
	}
}

func writeDebtTables(report *schema.TechnicalDebtReport, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	pathWidth := getMaxTablePathWidth(cfg)

	if len(report.StaleFiles) > 0 {
		table := tablewriter.NewWriter(writer)
		table.Header([]string{"Stale file", "Days idle"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})
		var data [][]string
		for _, f := range report.StaleFiles {
			data = append(data, []string{
				contract.TruncatePath(f.File, pathWidth),
				strconv.Itoa(f.DaysSinceLastChange),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if len(report.LargeFiles) > 0 {
		table := tablewriter.NewWriter(writer)
		table.Header([]string{"Large file", "Lines"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})
		var data [][]string
		for _, f := range report.LargeFiles {
			data = append(data, []string{
				contract.TruncatePath(f.File, pathWidth),
				strconv.Itoa(f.Lines),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if len(report.ComplexityHotspots) > 0 {
		table := tablewriter.NewWriter(writer)
		table.Header([]string{"Hotspot", "Changes", "Size (KB)"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})
		var data [][]string
		for _, h := range report.ComplexityHotspots {
			data = append(data, []string{
				contract.TruncatePath(h.File, pathWidth),
				strconv.Itoa(h.Changes),
				fmt.Sprintf("%.1f", float64(h.SizeBytes)/1024.0),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if report.AverageFileAge != nil {
		if _, err := fmt.Fprintf(writer, "Average file age: %d days\n", *report.AverageFileAge); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(writer, "Report completed in %v\n", duration)
	return err
}
