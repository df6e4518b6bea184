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

// sortedAuthors orders author identities by commit count descending, then
// identity ascending, for stable table and CSV output.
func sortedAuthors(authors map[string]*schema.AuthorStats) []string {
	keys := make([]string, 0, len(authors))
	for k := range authors {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if authors[keys[i]].Commits != authors[keys[j]].Commits {
			return authors[keys[i]].Commits > authors[keys[j]].Commits
		}
		return keys[i] < keys[j]
	})
	return keys
}

// WriteAuthorMetrics outputs the per-author rollup, dispatching based on the
// output format configured.
func WriteAuthorMetrics(authors map[string]*schema.AuthorStats, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, authors)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"author", "commits", "additions", "deletions", "files"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, key := range sortedAuthors(authors) {
					a := authors[key]
					rec := []string{
						key,
						strconv.Itoa(a.Commits),
						strconv.Itoa(a.Additions),
						strconv.Itoa(a.Deletions),
						strconv.Itoa(a.Files),
					}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("author metrics")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAuthorTable(authors, duration, w)
		}, "Wrote table")
	}
}

func writeAuthorTable(authors map[string]*schema.AuthorStats, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Author", "Commits", "Additions", "Deletions", "Files"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, key := range sortedAuthors(authors) {
		a := authors[key]
		data = append(data, []string{
			key,
			strconv.Itoa(a.Commits),
			strconv.Itoa(a.Additions),
			strconv.Itoa(a.Deletions),
			strconv.Itoa(a.Files),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d contributors\n", len(authors)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Report completed in %v\n", duration)
	return err
}

// WriteTeamSummary outputs the combined window totals and contributor
// breakdown.
func WriteTeamSummary(summary *schema.TeamSummary, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"author", "commits", "additions", "deletions", "files"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, key := range sortedAuthors(summary.Contributors) {
					a := summary.Contributors[key]
					rec := []string{
						key,
						strconv.Itoa(a.Commits),
						strconv.Itoa(a.Additions),
						strconv.Itoa(a.Deletions),
						strconv.Itoa(a.Files),
					}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("team summary")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "Period: %s to %s\n", summary.Period.Since, summary.Period.Until); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "Team: %d commits, +%d/-%d across %d contributors\n",
				summary.Team.TotalCommits, summary.Team.TotalAdditions,
				summary.Team.TotalDeletions, summary.Team.Contributors); err != nil {
				return err
			}
			return writeAuthorTable(summary.Contributors, duration, w)
		}, "Wrote table")
	}
}
