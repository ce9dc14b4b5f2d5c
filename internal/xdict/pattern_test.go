package xdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSimpleSelfMatch(t *testing.T) {
	cfg := DefaultConfig()
	for _, w := range []string{"cat", "crossword", "a"} {
		assert.True(t, MatchSimple(w, w, cfg))
	}
}

func TestMatchStarMatchesEverything(t *testing.T) {
	cfg := DefaultConfig()
	for _, w := range []string{"cat", "a", "dog", ""} {
		assert.True(t, Match(w, "*", cfg))
	}
}

func TestMatchClassSubstitutions(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, MatchSimple("cat", "?at", cfg))
	assert.True(t, MatchSimple("cat", "1at", cfg)) // c is a consonant
	assert.True(t, MatchSimple("eat", "0at", cfg)) // e is a vowel
	assert.False(t, MatchSimple("cat", "0at", cfg))
}

func TestMatchSimpleQuestionMarks(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, MatchSimple("abc", "a??", cfg))
	assert.False(t, MatchSimple("abc", "a?d", cfg))
}

func TestMatchStarWildcard(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, Match("ab", "a*b", cfg))
	assert.True(t, Match("axxxb", "a*b", cfg))
	assert.False(t, Match("axxxc", "a*b", cfg))
}

func TestYIsVowelConfig(t *testing.T) {
	assert.True(t, isVowel('y', Config{YIsVowel: Always}))
	assert.False(t, isConsonant('y', Config{YIsVowel: Always}))

	assert.False(t, isVowel('y', Config{YIsVowel: Never}))
	assert.True(t, isConsonant('y', Config{YIsVowel: Never}))

	assert.True(t, isVowel('y', Config{YIsVowel: Both}))
	assert.True(t, isConsonant('y', Config{YIsVowel: Both}))
}
