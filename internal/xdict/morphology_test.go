package xdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTapFamily(t *testing.T) {
	// Scenario E: {tap, taps, tapped, tapping}. "tap" doubles its final
	// consonant, so it classifies as VERB_B and the rest are COVERED.
	d := New()
	for _, w := range []string{"tap", "taps", "tapped", "tapping"} {
		require.NoError(t, d.Add(w, 0))
	}
	d.Sort()

	assert.Equal(t, VerbB, Classify(d, "tap"))
	assert.Equal(t, Covered, Classify(d, "taps"))
	assert.Equal(t, Covered, Classify(d, "tapped"))
	assert.Equal(t, Covered, Classify(d, "tapping"))
}

func TestClassifyNormalWordWithNoDerivatives(t *testing.T) {
	d := New()
	require.NoError(t, d.Add("whoever", 0))
	d.Sort()
	assert.Equal(t, Normal, Classify(d, "whoever"))
}

func TestClassifyPrincePrincess(t *testing.T) {
	// "princess" must not be considered covered by "princes" when
	// "prince" is also present (xdictlib.c's worked example).
	d := New()
	for _, w := range []string{"prince", "princes", "princess"} {
		require.NoError(t, d.Add(w, 0))
	}
	d.Sort()

	assert.Equal(t, Covered, Classify(d, "princes"))
	assert.NotEqual(t, Covered, Classify(d, "princess"))
}

func TestSuffixTable(t *testing.T) {
	tests := []struct {
		pos      POS
		word     string
		wantStem string
		wantCode string
	}{
		{Verb, "bake", "bake", "v"},
		{VerbE, "bake", "bak", "w"},
		{VerbB, "tap", "tap", "x"},
		{Plural, "cat", "cat", "s"},
		{Normal, "whoever", "whoever", ""},
	}
	for _, tt := range tests {
		stem, code := Suffix(tt.pos, tt.word)
		assert.Equal(t, tt.wantStem, stem)
		assert.Equal(t, tt.wantCode, code)
	}
}
