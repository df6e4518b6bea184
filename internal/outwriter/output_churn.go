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

// WriteFileChurn outputs the ranked churn entries, dispatching based on the
// output format configured.
func WriteFileChurn(entries []schema.ChurnEntry, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChurnJSON(w, entries)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"rank", "file", "changes", "label"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for i, e := range entries {
					rec := []string{
						strconv.Itoa(i + 1),
						e.File,
						strconv.Itoa(e.Changes),
						contract.GetPlainChurnLabel(e.Changes),
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
		if err := parquet.WriteChurnParquet(entries, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChurnTable(entries, cfg, duration, w)
		}, "Wrote table")
	}
}

func writeChurnTable(entries []schema.ChurnEntry, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "File", "Changes", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	label := contract.GetPlainChurnLabel
	if cfg.UseColors {
		label = contract.GetColorChurnLabel
	}

	var data [][]string
	totalChanges := 0
	for i, e := range entries {
		totalChanges += e.Changes
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(e.File, getMaxTablePathWidth(cfg)),
			strconv.Itoa(e.Changes),
			label(e.Changes),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d files (total changes: %d)\n", len(entries), totalChanges); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Report completed in %v\n", duration)
	return err
}

// writeChurnJSON adds rank and label fields to the raw entries.
func writeChurnJSON(w io.Writer, entries []schema.ChurnEntry) error {
	type JSONChurnEntry struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.ChurnEntry
	}

	output := make([]JSONChurnEntry, len(entries))
	for i, e := range entries {
		output[i] = JSONChurnEntry{
			Rank:       i + 1,
			Label:      contract.GetPlainChurnLabel(e.Changes),
			ChurnEntry: e,
		}
	}
	return writeJSON(w, output)
}
