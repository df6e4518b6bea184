package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/kwangc/repopulse/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChurnRecordStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(ChurnRecord))
	require.NotNil(t, s)

	for _, colName := range []string{"rank", "file_path", "changes", "report_time"} {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestVelocityRecordStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(VelocityRecord))
	require.NotNil(t, s)

	for _, colName := range []string{"period", "interval", "commits", "additions", "deletions"} {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestWriteChurnParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "churn.parquet")

	entries := []schema.ChurnEntry{
		{File: "core/parse.go", Changes: 42},
		{File: "main.go", Changes: 7},
	}
	require.NoError(t, WriteChurnParquet(entries, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[ChurnRecord](file)
	defer reader.Close()

	readData := make([]ChurnRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(entries), n)

	assert.Equal(t, int32(1), readData[0].Rank)
	assert.Equal(t, "core/parse.go", readData[0].FilePath)
	assert.Equal(t, int32(42), readData[0].Changes)
	assert.Equal(t, int32(2), readData[1].Rank)
	assert.False(t, readData[0].ReportTime.IsZero())
}

func TestWriteVelocityParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "velocity.parquet")

	report := &schema.VelocityReport{
		Interval: schema.MonthInterval,
		Trends: []schema.VelocityPoint{
			{Period: "2026-01", Commits: 3, Additions: 30, Deletions: 5},
			{Period: "2026-02", Commits: 1, Additions: 2, Deletions: 2},
		},
	}
	require.NoError(t, WriteVelocityParquet(report, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[VelocityRecord](file)
	defer reader.Close()

	readData := make([]VelocityRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 2, n)

	assert.Equal(t, "2026-01", readData[0].Period)
	assert.Equal(t, "month", readData[0].Interval)
	assert.Equal(t, int32(30), readData[0].Additions)
}

func TestWriteStaleFilesParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "stale.parquet")

	files := []schema.StaleFile{
		{File: "legacy/db.go", DaysSinceLastChange: 400},
	}
	require.NoError(t, WriteStaleFilesParquet(files, 90, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[StaleFileRecord](file)
	defer reader.Close()

	readData := make([]StaleFileRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 1, n)

	assert.Equal(t, "legacy/db.go", readData[0].FilePath)
	assert.Equal(t, int32(400), readData[0].DaysSinceLastChange)
	assert.Equal(t, int32(90), readData[0].StaleThresholdDays)
}
