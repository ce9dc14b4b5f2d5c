package xword

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsDuplicatesFindsRepeatedAcrossWords(t *testing.T) {
	g, err := ParseGrid(strings.NewReader("cat\n###\ncat\n"))
	require.NoError(t, err)
	assert.True(t, ContainsDuplicates(g))
	assert.Equal(t, "cat", DuplicateWord(g))
}

func TestContainsDuplicatesIgnoresOpenEntries(t *testing.T) {
	// Second "cat" has an open cell, so it isn't a resolved word yet and
	// can't be flagged as a duplicate.
	g, err := ParseGrid(strings.NewReader("cat\n###\nc.t\n"))
	require.NoError(t, err)
	assert.False(t, ContainsDuplicates(g))
}

func TestContainsDuplicatesAcrossAndDownOverlap(t *testing.T) {
	// "hie"/"art"/"sea" down, none repeat; no duplicates expected.
	g, err := ParseGrid(strings.NewReader("has\nire\neta\n"))
	require.NoError(t, err)
	assert.False(t, ContainsDuplicates(g))
}

func TestContainsDuplicatesSameWordAcrossAndDown(t *testing.T) {
	// Column 0 spells "cat" top-to-bottom, matching row 0's across entry.
	g, err := ParseGrid(strings.NewReader("cat\na##\nt##\n"))
	require.NoError(t, err)
	assert.True(t, ContainsDuplicates(g))
}
