// Package parquet exports report data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/kwangc/repopulse/schema"
	"github.com/parquet-go/parquet-go"
)

// ChurnRecord is one ranked file churn row suitable for columnar analysis.
type ChurnRecord struct {
	// Rank is the 1-based position in the churn ranking
	Rank int32 `parquet:"rank,snappy"`

	// FilePath is the relative path to the file in the repository
	FilePath string `parquet:"file_path,snappy"`

	// Changes is the number of commits touching this file in the window
	Changes int32 `parquet:"changes,snappy"`

	// ReportTime is when this report was generated
	ReportTime time.Time `parquet:"report_time,snappy"`
}

// VelocityRecord is one trend period row.
type VelocityRecord struct {
	// Period is the bucket key (week start date or calendar month)
	Period string `parquet:"period,snappy"`

	// Interval indicates whether the bucket is a week or a month
	Interval string `parquet:"interval,snappy"`

	Commits   int32 `parquet:"commits,snappy"`
	Additions int32 `parquet:"additions,snappy"`
	Deletions int32 `parquet:"deletions,snappy"`
}

// StaleFileRecord is one stale file row from the technical debt report.
type StaleFileRecord struct {
	FilePath            string `parquet:"file_path,snappy"`
	DaysSinceLastChange int32  `parquet:"days_since_last_change,snappy"`

	// StaleThresholdDays is the configured staleness cutoff for this run
	StaleThresholdDays int32 `parquet:"stale_threshold_days,snappy"`
}

// writeRecords writes a slice of records to a Parquet file with a schema
// inferred from struct tags.
func writeRecords[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// WriteChurnParquet writes the ranked churn entries to outputPath.
func WriteChurnParquet(entries []schema.ChurnEntry, outputPath string) error {
	now := time.Now()
	records := make([]ChurnRecord, len(entries))
	for i, e := range entries {
		records[i] = ChurnRecord{
			Rank:       int32(i + 1),
			FilePath:   e.File,
			Changes:    int32(e.Changes),
			ReportTime: now,
		}
	}
	return writeRecords(records, outputPath)
}

// WriteVelocityParquet writes the trend periods to outputPath.
func WriteVelocityParquet(report *schema.VelocityReport, outputPath string) error {
	records := make([]VelocityRecord, len(report.Trends))
	for i, p := range report.Trends {
		records[i] = VelocityRecord{
			Period:    p.Period,
			Interval:  string(report.Interval),
			Commits:   int32(p.Commits),
			Additions: int32(p.Additions),
			Deletions: int32(p.Deletions),
		}
	}
	return writeRecords(records, outputPath)
}

// WriteStaleFilesParquet writes the stale file rows to outputPath.
func WriteStaleFilesParquet(files []schema.StaleFile, staleDays int, outputPath string) error {
	records := make([]StaleFileRecord, len(files))
	for i, f := range files {
		records[i] = StaleFileRecord{
			FilePath:            f.File,
			DaysSinceLastChange: int32(f.DaysSinceLastChange),
			StaleThresholdDays:  int32(staleDays),
		}
	}
	return writeRecords(records, outputPath)
}
