package xword

import "sort"

// ContainsDuplicates reports whether the grid's Across and Down entries
// contain the same word twice. An "entry" is a maximal run of two or more
// non-black cells along a row or column; entries containing an open cell (Unknown,
// VowelClass, or ConsonantClass) are not yet resolved to a word and are
// skipped, per xword-fill.c's grid_contains_duplicates.
func ContainsDuplicates(g *Grid) bool {
	words := collectEntries(g)
	sort.Strings(words)
	for i := 1; i < len(words); i++ {
		if words[i] == words[i-1] {
			return true
		}
	}
	return false
}

// DuplicateWord returns the first duplicate word found (in sorted order),
// or "" if there is none. Useful for diagnostics.
func DuplicateWord(g *Grid) string {
	words := collectEntries(g)
	sort.Strings(words)
	for i := 1; i < len(words); i++ {
		if words[i] == words[i-1] {
			return words[i]
		}
	}
	return ""
}

func collectEntries(g *Grid) []string {
	var words []string

	for j := 0; j < g.H; j++ {
		i := 0
		for i < g.W {
			if g.At(j, i) == Black {
				i++
				continue
			}
			start := i
			open := false
			for i < g.W && g.At(j, i) != Black {
				if !isResolved(g.At(j, i)) {
					open = true
				}
				i++
			}
			if !open && i-start > 1 {
				words = append(words, string(g.Cells[j*g.W+start:j*g.W+i]))
			}
		}
	}

	for i := 0; i < g.W; i++ {
		j := 0
		for j < g.H {
			if g.At(j, i) == Black {
				j++
				continue
			}
			start := j
			open := false
			word := make([]byte, 0, g.H)
			for j < g.H && g.At(j, i) != Black {
				if !isResolved(g.At(j, i)) {
					open = true
				}
				word = append(word, g.At(j, i))
				j++
			}
			if !open && j-start > 1 {
				words = append(words, string(word))
			}
		}
	}

	return words
}

func isResolved(ch byte) bool {
	return ch >= 'a' && ch <= 'z'
}
