package gitlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommitLogBasic(t *testing.T) {
	log := "abc123|Alice|alice@example.com|2026-07-01|feat: add parser\n" +
		"10\t2\tcore/parse.go\n" +
		"3\t0\tREADME.md\n" +
		"\n" +
		"def456|Bob|bob@example.com|2026-07-02|fix: handle empty input\n" +
		"1\t1\tcore/parse.go\n"

	records := ParseCommitLog([]byte(log))
	require.Len(t, records, 2)

	assert.Equal(t, "abc123", records[0].Hash)
	assert.Equal(t, "Alice", records[0].Author)
	assert.Equal(t, "alice@example.com", records[0].Email)
	assert.Equal(t, "2026-07-01", records[0].Date)
	assert.Equal(t, "feat: add parser", records[0].Message)
	require.Len(t, records[0].Files, 2)
	assert.Equal(t, "core/parse.go", records[0].Files[0].Path)
	assert.Equal(t, 10, records[0].Files[0].Additions)
	assert.Equal(t, 2, records[0].Files[0].Deletions)

	require.Len(t, records[1].Files, 1)
	assert.Equal(t, "Bob", records[1].Author)
}

func TestParseCommitLogHeaderCount(t *testing.T) {
	// One record per header line, regardless of how stat lines fall.
	log := "a|A|a@x|2026-01-01|one\n" +
		"b|B|b@x|2026-01-02|two\n" +
		"5\t5\tshared.go\n" +
		"c|C|c@x|2026-01-03|three\n"

	records := ParseCommitLog([]byte(log))
	require.Len(t, records, 3)
	assert.Empty(t, records[0].Files)
	assert.Len(t, records[1].Files, 1)
	assert.Empty(t, records[2].Files)
}

func TestParseCommitLogBareDelimiters(t *testing.T) {
	records := ParseCommitLog([]byte("||||\n"))
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Hash)
	assert.Empty(t, records[0].Author)
	assert.Empty(t, records[0].Email)
	assert.Empty(t, records[0].Date)
	assert.Empty(t, records[0].Message)
}

func TestParseCommitLogBinaryStatsDropped(t *testing.T) {
	// Binary files show "-" counters; those lines match no shape and drop.
	log := "abc|Alice|a@x|2026-07-01|add image\n" +
		"-\t-\tlogo.png\n" +
		"4\t1\tmain.go\n"

	records := ParseCommitLog([]byte(log))
	require.Len(t, records, 1)
	require.Len(t, records[0].Files, 1)
	assert.Equal(t, "main.go", records[0].Files[0].Path)
}

func TestParseCommitLogPathWithSpaces(t *testing.T) {
	log := "abc|Alice|a@x|2026-07-01|rename\n" +
		"2\t0\tdocs/release notes.md\n"

	records := ParseCommitLog([]byte(log))
	require.Len(t, records, 1)
	require.Len(t, records[0].Files, 1)
	assert.Equal(t, "docs/release notes.md", records[0].Files[0].Path)
}

func TestParseCommitLogMessageWithDelimiter(t *testing.T) {
	log := "abc|Alice|a@x|2026-07-01|feat: support a|b syntax\n"

	records := ParseCommitLog([]byte(log))
	require.Len(t, records, 1)
	assert.Equal(t, "feat: support a|b syntax", records[0].Message)
}

func TestParseCommitLogStatBeforeHeader(t *testing.T) {
	// Stat lines with no open record are skipped, not attached.
	log := "7\t7\torphan.go\n" +
		"abc|Alice|a@x|2026-07-01|first\n"

	records := ParseCommitLog([]byte(log))
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Files)
}

func TestParseCommitLogEmptyInput(t *testing.T) {
	assert.Empty(t, ParseCommitLog(nil))
	assert.Empty(t, ParseCommitLog([]byte("")))
	assert.Empty(t, ParseCommitLog([]byte("\n\n\n")))
}
