package xword

import (
	"xwordfill/internal/dance"
	"xwordfill/internal/xdict"
)

// Options controls how Solve builds the matrix and reports results,
// grounded on xword-fill.c's command-line knobs (-n, --every,
// --allow_duplicate_words, --naive).
type Options struct {
	// Naive forces the simple 54*w*h-column encoding instead of the
	// compressed one that omits slices for black and fixed-letter cells.
	Naive bool
	// RejectDuplicateWords discards completed grids that repeat a word
	// across two or more entries.
	RejectDuplicateWords bool
	// MaxSolutions stops the search after this many accepted grids have
	// been reported. Zero or negative means unlimited.
	MaxSolutions int
	// EveryNth reports only every Nth accepted grid (1 reports all of
	// them). Zero or negative is treated as 1.
	EveryNth int
	Cfg      xdict.Config
}

// DefaultOptions mirrors xword-fill.c's defaults: compressed method,
// duplicate words rejected, unlimited solutions, every solution reported.
func DefaultOptions() Options {
	return Options{RejectDuplicateWords: true, EveryNth: 1, Cfg: xdict.DefaultConfig()}
}

// SolutionFunc is invoked once per accepted completed grid. Returning
// false requests Solve stop searching for further solutions.
type SolutionFunc func(g *Grid) bool

// Solve fills g using words from dict, invoking fn for each exact cover
// that survives duplicate-word filtering and --every decimation. Distinct
// covers can paint the same grid (see the naive method's forced rows), so
// fn may see a grid more than once. It returns the number of solutions
// reported to fn.
func Solve(g *Grid, dict *xdict.Dictionary, opts Options, fn SolutionFunc) (int, error) {
	enc := NewEncoder(g, opts.Naive, opts.Cfg)
	mat, err := enc.BuildMatrix(dict)
	if err != nil {
		return 0, err
	}

	everyNth := opts.EveryNth
	if everyNth <= 0 {
		everyNth = 1
	}
	skipped := 0
	reported := 0

	_, err = dance.Solve(mat, func(rows [][]int) int {
		// print_crossword_result advances the decimation counter for
		// every raw exact-cover candidate, and only checks for duplicate
		// words on the one-in-N candidate that survives -- a duplicate
		// candidate still consumes a --every slot.
		skipped++
		if skipped < everyNth {
			return 0
		}
		skipped = 0

		result := enc.reconstruct(g, rows)
		if opts.RejectDuplicateWords && ContainsDuplicates(result) {
			// Doesn't count toward the solution total, per
			// print_crossword_result's "return 0" on a duplicate hit.
			return 0
		}

		keepGoing := fn(result)
		reported++
		if opts.MaxSolutions > 0 && reported >= opts.MaxSolutions {
			return dance.Bailout
		}
		if !keepGoing {
			return dance.Bailout
		}
		return 1
	})
	if err != nil {
		return reported, err
	}
	return reported, nil
}
