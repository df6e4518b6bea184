package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/kwangc/repopulse/internal/contract"
	"github.com/kwangc/repopulse/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteCodeOwnership outputs the ownership breakdown and bus factor ranking.
func WriteCodeOwnership(report *schema.OwnershipReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"author", "exclusive_files"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, e := range report.BusFactor {
					if err := cw.Write([]string{e.Author, strconv.Itoa(e.ExclusiveFiles)}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("code ownership")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Author", "Exclusive files"})
			table.Configure(func(tcfg *tablewriter.Config) {
				tcfg.Row.Alignment.Global = tw.AlignRight
			})
			var data [][]string
			for _, e := range report.BusFactor {
				data = append(data, []string{e.Author, strconv.Itoa(e.ExclusiveFiles)})
			}
			if err := table.Bulk(data); err != nil {
				return err
			}
			if err := table.Render(); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "Files: %d total, %d shared, %d solo\n",
				report.TotalFiles, report.SharedFiles, report.SoloFiles); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Report completed in %v\n", duration)
			return err
		}, "Wrote table")
	}
}

// WriteCollaboration outputs the shared-file author pairs.
func WriteCollaboration(report *schema.CollaborationReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"pair", "shared_files"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, p := range report.TopCollaborations {
					if err := cw.Write([]string{p.Pair, strconv.Itoa(p.SharedFiles)}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("collaboration metrics")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Pair", "Shared files"})
			table.Configure(func(tcfg *tablewriter.Config) {
				tcfg.Row.Alignment.Global = tw.AlignRight
			})
			var data [][]string
			for _, p := range report.TopCollaborations {
				data = append(data, []string{p.Pair, strconv.Itoa(p.SharedFiles)})
			}
			if err := table.Bulk(data); err != nil {
				return err
			}
			if err := table.Render(); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "Collaborative files: %d\n", report.CollaborativeFiles); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Report completed in %v\n", duration)
			return err
		}, "Wrote table")
	}
}
