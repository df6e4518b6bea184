package gitlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountFileTouches(t *testing.T) {
	out := "a.go\nb.go\n\na.go\nc.go\na.go\n"
	counts, order := CountFileTouches([]byte(out))

	assert.Equal(t, 3, counts["a.go"])
	assert.Equal(t, 1, counts["b.go"])
	assert.Equal(t, 1, counts["c.go"])
	assert.Equal(t, []string{"a.go", "b.go", "c.go"}, order)
}

func TestRankChurn(t *testing.T) {
	counts, order := CountFileTouches([]byte("a.go\nb.go\nb.go\nc.go\n"))
	ranked := RankChurn(counts, order, 10)

	require.Len(t, ranked, 3)
	assert.Equal(t, "b.go", ranked[0].File)
	assert.Equal(t, 2, ranked[0].Changes)
	// Ties keep first-seen order
	assert.Equal(t, "a.go", ranked[1].File)
	assert.Equal(t, "c.go", ranked[2].File)
}

func TestRankChurnLimit(t *testing.T) {
	counts, order := CountFileTouches([]byte("a.go\nb.go\nc.go\n"))
	ranked := RankChurn(counts, order, 2)
	assert.Len(t, ranked, 2)
}

func TestRankChurnEmpty(t *testing.T) {
	counts, order := CountFileTouches([]byte(""))
	assert.Empty(t, RankChurn(counts, order, 10))
}
