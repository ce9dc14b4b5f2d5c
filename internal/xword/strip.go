package xword

import "xwordfill/internal/xdict"

// StripDict removes, from dict, every word that either (a) fits nowhere in
// g, or (b) already fits exactly -- exactly matches an entry's fixed
// letters with no open cells left to fill -- when rejectDuplicates is set,
// since re-placing an already-complete entry can only ever reproduce a
// word already on the grid. Grounded on xword-fill.c's strip_dict; this is
// a pure optimization pass that shrinks the matrix Encoder.BuildMatrix
// will need to build.
func StripDict(g *Grid, dict *xdict.Dictionary, rejectDuplicates bool) int {
	enc := NewEncoder(g, true, xdict.DefaultConfig())
	removed := 0

	for _, word := range dict.Words() {
		fitsSomewhere := false
		removeThis := false

	scan:
		for j := 0; j < g.H; j++ {
			for i := 0; i+len(word) <= g.W; i++ {
				switch enc.entryFitsAcross(i, j, word) {
				case 2:
					if rejectDuplicates {
						removeThis = true
						break scan
					}
					fitsSomewhere = true
				case 1:
					fitsSomewhere = true
					if !rejectDuplicates {
						break scan
					}
				}
			}
		}
		if !removeThis {
		scanDown:
			for i := 0; i < g.W; i++ {
				for j := 0; j+len(word) <= g.H; j++ {
					switch enc.entryFitsDown(i, j, word) {
					case 2:
						if rejectDuplicates {
							removeThis = true
							break scanDown
						}
						fitsSomewhere = true
					case 1:
						fitsSomewhere = true
						if !rejectDuplicates {
							break scanDown
						}
					}
				}
			}
		}

		if removeThis || !fitsSomewhere {
			removed += dict.RemoveExact(word, len(word))
		}
	}
	return removed
}
