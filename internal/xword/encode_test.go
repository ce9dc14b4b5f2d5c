package xword

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xwordfill/internal/xdict"
)

func TestEntryFitsAcrossReportsExactVsPartialVsNone(t *testing.T) {
	g, err := ParseGrid(strings.NewReader(".as\n.r.\neta\n"))
	require.NoError(t, err)
	enc := NewEncoder(g, false, xdict.DefaultConfig())

	assert.Equal(t, 1, enc.entryFitsAcross(0, 0, "has"))
	assert.Equal(t, 0, enc.entryFitsAcross(0, 0, "wow"))
	assert.Equal(t, 2, enc.entryFitsAcross(0, 2, "eta"))
	// Doesn't fit: word too long for the row.
	assert.Equal(t, 0, enc.entryFitsAcross(0, 0, "hasty"))
}

func TestEntryFitsDownMirrorsAcross(t *testing.T) {
	g, err := ParseGrid(strings.NewReader(".as\n.r.\neta\n"))
	require.NoError(t, err)
	enc := NewEncoder(g, false, xdict.DefaultConfig())

	assert.Equal(t, 1, enc.entryFitsDown(0, 0, "hie"))
	assert.Equal(t, 2, enc.entryFitsDown(1, 0, "art"))
	assert.Equal(t, 1, enc.entryFitsDown(2, 0, "sea"))
	assert.Equal(t, 0, enc.entryFitsDown(0, 0, "xyz"))
}

func TestNewEncoderCompressedSkipsFixedCells(t *testing.T) {
	g, err := ParseGrid(strings.NewReader("eta\n###\n###\n"))
	require.NoError(t, err)
	enc := NewEncoder(g, false, xdict.DefaultConfig())
	// Every cell is fixed (either a letter or black), so the compressed
	// method needs zero slices.
	assert.Equal(t, 0, enc.NumSlices())
	assert.Equal(t, 0, enc.NumColumns())
}

func TestNewEncoderNaiveKeepsEveryCell(t *testing.T) {
	g, err := ParseGrid(strings.NewReader("eta\n###\n###\n"))
	require.NoError(t, err)
	enc := NewEncoder(g, true, xdict.DefaultConfig())
	assert.Equal(t, 9, enc.NumSlices())
	assert.Equal(t, 9*54, enc.NumColumns())
}

func buildTinyDict(t *testing.T) *xdict.Dictionary {
	t.Helper()
	d := xdict.New()
	for _, w := range []string{"art", "eta", "has", "hie", "hit", "ire", "sea"} {
		require.NoError(t, d.Add(w, 0))
	}
	d.Sort()
	return d
}

func TestBuildMatrixCompressedProducesNonEmptyMatrix(t *testing.T) {
	g, err := ParseGrid(strings.NewReader(".as\n.r.\neta\n"))
	require.NoError(t, err)
	dict := buildTinyDict(t)
	enc := NewEncoder(g, false, xdict.DefaultConfig())

	mat, err := enc.BuildMatrix(dict)
	require.NoError(t, err)
	assert.Equal(t, enc.NumColumns(), mat.NumColumns())
	assert.Greater(t, mat.NumRows(), 0)
}
