package lexicon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corrector/pkg/lexicon"
)

func entries(pairs ...[2]string) []lexicon.RawEntry {
	out := make([]lexicon.RawEntry, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, lexicon.RawEntry{Canonical: p[0], FrequencyRaw: p[1]})
	}
	return out
}

func TestBuildRejectsBadEditDistance(t *testing.T) {
	_, err := lexicon.Build(nil, 3)
	assert.Error(t, err)
}

func TestBasicCorrection(t *testing.T) {
	ix, err := lexicon.Build(entries(
		[2]string{"hello", "10000"},
		[2]string{"help", "3000"},
		[2]string{"world", "8000"},
	), 1)
	require.NoError(t, err)

	assert.True(t, ix.Contains("hello"))

	cands := ix.Lookup("helo", 3)
	require.Len(t, cands, 2)
	assert.Equal(t, "hello", cands[0].Canonical)
	assert.Equal(t, 1, cands[0].Distance)
	assert.Equal(t, "help", cands[1].Canonical)
}

func TestCanonicalProjectionAndWhitespaceElision(t *testing.T) {
	ix, err := lexicon.Build(entries(
		[2]string{"NASA", "10000"},
		[2]string{"New York", "5000"},
	), 1)
	require.NoError(t, err)

	cands := ix.Lookup("nasa", 1)
	require.Len(t, cands, 1)
	assert.Equal(t, "NASA", cands[0].Canonical)
	assert.Equal(t, 0, cands[0].Distance)

	cands = ix.Lookup("newyork", 1)
	require.Len(t, cands, 1)
	assert.Equal(t, "New York", cands[0].Canonical)
	assert.Equal(t, 0, cands[0].Distance)
	assert.True(t, ix.Contains("NEWYORK"))
}

func TestDuplicateMerge(t *testing.T) {
	ix, err := lexicon.Build(entries(
		[2]string{"hello", "1000"},
		[2]string{"HELLO", "2000"},
		[2]string{"Hello", "500"},
	), 1)
	require.NoError(t, err)

	stats := ix.Stats()
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, 2, stats.SkippedDuplicates)

	cands := ix.Lookup("hello", 1)
	require.Len(t, cands, 1)
	assert.Equal(t, "HELLO", cands[0].Canonical)
	assert.Equal(t, uint64(3500), cands[0].Frequency)
}

func TestMalformedAccounting(t *testing.T) {
	ix, err := lexicon.Build(entries(
		[2]string{"hello", "10000"},
		[2]string{"", "500"},
		[2]string{"help", "notanumber"},
	), 1)
	require.NoError(t, err)

	stats := ix.Stats()
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, 1, stats.SkippedMalformed)
	assert.Equal(t, 1, stats.SkippedInvalidFreq)
}

func TestEditDistanceTwoRegime(t *testing.T) {
	ix1, err := lexicon.Build(entries([2]string{"hello", "10000"}), 1)
	require.NoError(t, err)
	assert.Empty(t, ix1.Lookup("heo", 1))

	ix2, err := lexicon.Build(entries([2]string{"hello", "10000"}), 2)
	require.NoError(t, err)
	cands := ix2.Lookup("heo", 1)
	require.Len(t, cands, 1)
	assert.Equal(t, "hello", cands[0].Canonical)
	assert.Equal(t, 2, cands[0].Distance)
}

func TestSingleCharacterQueries(t *testing.T) {
	ix, err := lexicon.Build(entries(
		[2]string{"a", "10000"},
		[2]string{"I", "8000"},
	), 1)
	require.NoError(t, err)

	cands := ix.Lookup("x", 5)
	found := false
	for _, c := range cands {
		if c.Canonical == "a" {
			found = true
		}
	}
	assert.True(t, found, "single-character words must be reachable from the index")
}

func TestSuggestionOrderingInvariant(t *testing.T) {
	ix, err := lexicon.Build(entries(
		[2]string{"hello", "10000"},
		[2]string{"hallo", "1"},
	), 1)
	require.NoError(t, err)

	cands := ix.Lookup("hxllo", 5)
	for i := 1; i < len(cands); i++ {
		a, b := cands[i-1], cands[i]
		assert.True(t, a.Distance < b.Distance || (a.Distance == b.Distance && a.Frequency >= b.Frequency))
	}
}
