package xword

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xwordfill/internal/xdict"
)

// TestSolveTinyHandExampleHasUniqueSolution is grounded directly on
// xword-fill.c's own doc comment: a 3x3 grid with a seven-word dictionary
// that admits exactly one completed crossword.
func TestSolveTinyHandExampleHasUniqueSolution(t *testing.T) {
	g, err := ParseGrid(strings.NewReader(".as\n.r.\neta\n"))
	require.NoError(t, err)
	dict := buildTinyDict(t)

	var got []*Grid
	n, err := Solve(g, dict, DefaultOptions(), func(result *Grid) bool {
		got = append(got, result)
		return true
	})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Len(t, got, 1)
	assert.Equal(t, "has\nire\neta\n", got[0].String())
}

func TestSolveNaiveMatchesCompressedResult(t *testing.T) {
	g, err := ParseGrid(strings.NewReader(".as\n.r.\neta\n"))
	require.NoError(t, err)
	dict := buildTinyDict(t)

	opts := DefaultOptions()
	opts.Naive = true

	var got []*Grid
	n, err := Solve(g, dict, opts, func(result *Grid) bool {
		got = append(got, result)
		return true
	})
	require.NoError(t, err)
	// Row 2 ("eta") and column 1 ("art") are entirely pre-filled letters
	// that also happen to spell dictionary words: for each, the naive
	// method's unconditional forced row and the ordinary dictionary-word
	// row for that same slot are column-for-column identical, so
	// Algorithm X enumerates 2x2 = 4 distinct row selections even though
	// they all paint the same grid.
	require.Equal(t, 4, n)
	require.Len(t, got, 4)
	for _, result := range got {
		assert.Equal(t, "has\nire\neta\n", result.String())
	}
}

func TestSolveRejectsDuplicateWordSolutions(t *testing.T) {
	// A 3x3 grid with only its corner fixed to 'a', and the dictionary
	// {aba, bab}: the only completed grid is aba/bab/aba, which repeats
	// "aba" across rows 0 and 2, so duplicate rejection must drop the only
	// otherwise-available solution. (Every open cell must lie in both an
	// Across and a Down entry, or no exact cover exists at all.)
	g2, err := ParseGrid(strings.NewReader("a..\n...\n...\n"))
	require.NoError(t, err)
	dict := xdict.New()
	for _, w := range []string{"aba", "bab"} {
		require.NoError(t, dict.Add(w, 0))
	}
	dict.Sort()

	opts := DefaultOptions()
	n, err := Solve(g2, dict, opts, func(result *Grid) bool {
		t.Fatalf("expected no accepted solutions, got %q", result.String())
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	opts.RejectDuplicateWords = false
	var got []*Grid
	n, err = Solve(g2, dict, opts, func(result *Grid) bool {
		got = append(got, result)
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, got, 1)
	assert.Equal(t, "aba\nbab\naba\n", got[0].String())
}

func TestSolveMaxSolutionsBailsOutEarly(t *testing.T) {
	// One open cell, crossed by "b?t" Across and "h?t" Down: the
	// dictionary admits three letters there (a, i, u), so there are three
	// candidates, and with MaxSolutions=1 Solve must stop after the first.
	g, err := ParseGrid(strings.NewReader("#h#\nb.t\n#t#\n"))
	require.NoError(t, err)
	dict := xdict.New()
	for _, w := range []string{"bat", "bit", "but", "hat", "hit", "hut"} {
		require.NoError(t, dict.Add(w, 0))
	}
	dict.Sort()

	opts := DefaultOptions()
	opts.MaxSolutions = 1

	calls := 0
	n, err := Solve(g, dict, opts, func(result *Grid) bool {
		calls++
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, calls)
}

func TestSolveEveryNthDecimatesReportedSolutions(t *testing.T) {
	// Same three-candidate grid as above; every 2nd of 3 is reported once.
	g, err := ParseGrid(strings.NewReader("#h#\nb.t\n#t#\n"))
	require.NoError(t, err)
	dict := xdict.New()
	for _, w := range []string{"bat", "bit", "but", "hat", "hit", "hut"} {
		require.NoError(t, dict.Add(w, 0))
	}
	dict.Sort()

	opts := DefaultOptions()
	opts.EveryNth = 2

	var got []*Grid
	n, err := Solve(g, dict, opts, func(result *Grid) bool {
		got = append(got, result)
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, got, 1)
}

func TestStripDictRemovesWordsThatDoNotFit(t *testing.T) {
	g, err := ParseGrid(strings.NewReader("...\n"))
	require.NoError(t, err)
	dict := xdict.New()
	for _, w := range []string{"cat", "elephant"} {
		require.NoError(t, dict.Add(w, 0))
	}
	dict.Sort()

	removed := StripDict(g, dict, true)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, dict.BucketLen(3))
	assert.Equal(t, 0, dict.BucketLen(8))
}
