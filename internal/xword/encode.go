package xword

import (
	"errors"

	"xwordfill/internal/dance"
	"xwordfill/internal/xdict"
)

// MaxWordLen bounds how long a word placed in a grid may be, grounded on
// xword-fill.c's MAX_WORDLEN (one less than xdict.MaxLen, since xdict
// buckets run 0..MaxLen-1).
const MaxWordLen = xdict.MaxLen - 1

// ErrWordTooLong is never actually returned today -- addRowsForWord simply
// skips over-long words -- but is kept as the named sentinel a future
// strict mode would return, per the dictionary's own TooShortOrLong
// handling.
var ErrWordTooLong = errors.New("xword: word exceeds maximum placeable length")

// Encoder turns grid cells and dictionary words into dance.Matrix rows,
// following xword-fill.c's NUMBER_OF_SLICES/SLICE_TO_CELL/CELL_TO_SLICE
// (compressed method) or the identity mapping (naive method). Each grid
// cell that gets a slice owns 27 column-pairs: one per letter A-Z, plus a
// 27th "Across or Down" discriminator pair.
type Encoder struct {
	Grid  *Grid
	Naive bool
	Cfg   xdict.Config

	cellToSlice []int
	sliceToCell []int
}

// NewEncoder precomputes the cell<->slice mapping for g. In naive mode
// every cell gets its own slice; in compressed mode only cells that are
// not already fixed (black, or committed to a specific letter) get one,
// shrinking the matrix's column count since the solver never needs to
// puzzle out a value the grid already supplies.
func NewEncoder(g *Grid, naive bool, cfg xdict.Config) *Encoder {
	e := &Encoder{Grid: g, Naive: naive, Cfg: cfg}
	n := g.W * g.H
	e.cellToSlice = make([]int, n)
	if naive {
		e.sliceToCell = make([]int, n)
		for i := 0; i < n; i++ {
			e.cellToSlice[i] = i
			e.sliceToCell[i] = i
		}
		return e
	}
	e.sliceToCell = make([]int, 0, n)
	for i := 0; i < n; i++ {
		if IsFixedValue(g.Cells[i]) {
			e.cellToSlice[i] = -1
			continue
		}
		e.cellToSlice[i] = len(e.sliceToCell)
		e.sliceToCell = append(e.sliceToCell, i)
	}
	return e
}

// NumSlices returns the number of grid cells that get a column slice.
func (e *Encoder) NumSlices() int { return len(e.sliceToCell) }

// NumColumns returns the dance.Matrix column count this encoder produces.
func (e *Encoder) NumColumns() int { return 54 * e.NumSlices() }

func ch2idx(ch byte) int {
	if ch >= 'a' && ch <= 'z' {
		return int(ch - 'a')
	}
	return int('x' - 'a')
}

// cellMatches reports whether grid cell value a can coexist with word
// letter b: 0 means never, 1 means yes but only because one side is an
// open class, 2 means they are already the identical letter.
func cellMatches(a, b byte, cfg xdict.Config) int {
	if a == Black || b == Black {
		return 0
	}
	if a == Unknown || b == Unknown {
		return 1
	}
	if xdict.IsVowel(a, cfg) && b == VowelClass {
		return 1
	}
	if xdict.IsVowel(b, cfg) && a == VowelClass {
		return 1
	}
	if xdict.IsConsonant(a, cfg) && b == ConsonantClass {
		return 1
	}
	if xdict.IsConsonant(b, cfg) && a == ConsonantClass {
		return 1
	}
	if a == b {
		return 2
	}
	return 0
}

// entryFitsAcross reports 0 (doesn't fit), 1 (fits, with at least one open
// cell), or 2 (fits and is already fully spelled out) for placing word at
// row j starting at column i, reading left to right.
func (e *Encoder) entryFitsAcross(i, j int, word string) int {
	g := e.Grid
	wlen := len(word)
	if i+wlen > g.W {
		return 0
	}
	if i > 0 && g.At(j, i-1) != Black {
		return 0
	}
	if i+wlen < g.W && g.At(j, i+wlen) != Black {
		return 0
	}
	exact := true
	for k := 0; k < wlen; k++ {
		rc := cellMatches(g.At(j, i+k), word[k], e.Cfg)
		if rc == 0 {
			return 0
		} else if rc == 1 {
			exact = false
		}
	}
	if exact {
		return 2
	}
	return 1
}

// entryFitsDown is entryFitsAcross's top-to-bottom counterpart.
func (e *Encoder) entryFitsDown(i, j int, word string) int {
	g := e.Grid
	wlen := len(word)
	if j+wlen > g.H {
		return 0
	}
	if j > 0 && g.At(j-1, i) != Black {
		return 0
	}
	if j+wlen < g.H && g.At(j+wlen, i) != Black {
		return 0
	}
	exact := true
	for k := 0; k < wlen; k++ {
		rc := cellMatches(g.At(j+k, i), word[k], e.Cfg)
		if rc == 0 {
			return 0
		} else if rc == 1 {
			exact = false
		}
	}
	if exact {
		return 2
	}
	return 1
}

// BuildMatrix constructs the dance.Matrix for every word in dict that fits
// anywhere in the grid, plus (in naive mode only) the black-square and
// forced-placement rows; the compressed method simply omits slices for
// black and fixed-letter cells.
func (e *Encoder) BuildMatrix(dict *xdict.Dictionary) (*dance.Matrix, error) {
	mat := dance.NewMatrix(e.NumColumns())

	var buildErr error
	dict.FindWithConfig("*", func(word string) bool {
		if err := e.addRowsForWord(mat, word); err != nil {
			buildErr = err
			return true
		}
		return false
	}, e.Cfg)
	if buildErr != nil {
		return nil, buildErr
	}

	if e.Naive {
		if err := e.addBlackAndForcedRows(mat); err != nil {
			return nil, err
		}
	}
	return mat, nil
}

func (e *Encoder) addRowsForWord(mat *dance.Matrix, word string) error {
	if len(word) > MaxWordLen {
		return nil
	}
	g := e.Grid
	for j := 0; j < g.H; j++ {
		for i := 0; i < g.W; i++ {
			if e.entryFitsAcross(i, j, word) != 0 {
				if err := e.addRowAcross(mat, i, j, word); err != nil {
					return err
				}
			}
			if e.entryFitsDown(i, j, word) != 0 {
				if err := e.addRowDown(mat, i, j, word); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (e *Encoder) addRowAcross(mat *dance.Matrix, i, j int, word string) error {
	g := e.Grid
	cols := make([]int, 0, len(word)*27)
	for k := 0; k < len(word); k++ {
		cell := j*g.W + i + k
		if !e.Naive && IsFixedValue(g.Cells[cell]) {
			continue
		}
		slice := 54 * e.cellToSlice[cell]
		relevant := ch2idx(word[k])
		for m := 0; m < 26; m++ {
			v := 0
			if relevant != m {
				v = 1
			}
			cols = append(cols, slice+2*m+v)
		}
		cols = append(cols, slice+2*26+0)
	}
	_, err := mat.AddRow(cols)
	return err
}

func (e *Encoder) addRowDown(mat *dance.Matrix, i, j int, word string) error {
	g := e.Grid
	cols := make([]int, 0, len(word)*27)
	for k := 0; k < len(word); k++ {
		cell := (j+k)*g.W + i
		if !e.Naive && IsFixedValue(g.Cells[cell]) {
			continue
		}
		slice := 54 * e.cellToSlice[cell]
		relevant := ch2idx(word[k])
		for m := 0; m < 26; m++ {
			v := 0
			if relevant == m {
				v = 1
			}
			cols = append(cols, slice+2*m+v)
		}
		cols = append(cols, slice+2*26+1)
	}
	_, err := mat.AddRow(cols)
	return err
}

// addBlackAndForcedRows is only invoked in naive mode: every cell has a
// slice there, including black squares and cells that already hold a
// committed letter. No word placement touches a black square, so each
// one gets a filler row; each run whose every cell is already a letter
// gets a forced Across or Down row spelling it. When such a run also
// spells a dictionary word, the forced row has the same columns as that
// word's own placement row, so the solver finds both.
func (e *Encoder) addBlackAndForcedRows(mat *dance.Matrix) error {
	g := e.Grid
	for cell := 0; cell < g.W*g.H; cell++ {
		if g.Cells[cell] == Black {
			if err := e.addRowBlack(mat, cell); err != nil {
				return err
			}
		}
	}

	for j := 0; j < g.H; j++ {
		wordStart := 0
		for i := 0; i <= g.W; i++ {
			switch {
			case i == g.W || g.At(j, i) == Black:
				if wordStart < i {
					if err := e.addRowForcedAcross(mat, wordStart, j, i-wordStart); err != nil {
						return err
					}
				}
				wordStart = i + 1
			case !isAlpha(g.At(j, i)):
				for i < g.W && g.At(j, i) != Black {
					i++
				}
				wordStart = i + 1
			}
		}
	}

	for i := 0; i < g.W; i++ {
		wordStart := 0
		for j := 0; j <= g.H; j++ {
			switch {
			case j == g.H || g.At(j, i) == Black:
				if wordStart < j {
					if err := e.addRowForcedDown(mat, i, wordStart, j-wordStart); err != nil {
						return err
					}
				}
				wordStart = j + 1
			case !isAlpha(g.At(j, i)):
				for j < g.H && g.At(j, i) != Black {
					j++
				}
				wordStart = j + 1
			}
		}
	}
	return nil
}

func isAlpha(ch byte) bool { return ch >= 'a' && ch <= 'z' }

func (e *Encoder) addRowBlack(mat *dance.Matrix, cell int) error {
	slice := 54 * e.cellToSlice[cell]
	cols := make([]int, 0, 54)
	for m := 0; m < 27; m++ {
		cols = append(cols, slice+2*m+0, slice+2*m+1)
	}
	_, err := mat.AddRow(cols)
	return err
}

func (e *Encoder) addRowForcedAcross(mat *dance.Matrix, i, j, wlen int) error {
	g := e.Grid
	cols := make([]int, 0, wlen*27)
	for k := 0; k < wlen; k++ {
		cell := j*g.W + i + k
		relevant := ch2idx(g.Cells[cell])
		slice := 54 * e.cellToSlice[cell]
		for m := 0; m < 26; m++ {
			v := 0
			if relevant != m {
				v = 1
			}
			cols = append(cols, slice+2*m+v)
		}
		cols = append(cols, slice+2*26+0)
	}
	_, err := mat.AddRow(cols)
	return err
}

func (e *Encoder) addRowForcedDown(mat *dance.Matrix, i, j, wlen int) error {
	g := e.Grid
	cols := make([]int, 0, wlen*27)
	for k := 0; k < wlen; k++ {
		cell := (j+k)*g.W + i
		relevant := ch2idx(g.Cells[cell])
		slice := 54 * e.cellToSlice[cell]
		for m := 0; m < 26; m++ {
			v := 0
			if relevant == m {
				v = 1
			}
			cols = append(cols, slice+2*m+v)
		}
		cols = append(cols, slice+2*26+1)
	}
	_, err := mat.AddRow(cols)
	return err
}

// reconstruct applies one dance.Matrix solution (a set of chosen rows,
// each expressed as its absolute 0-based column indices) onto a copy of
// the base grid, extracting letters from Across rows only -- a Down row
// for the same slice always agrees, by construction, so re-reading it
// would be redundant. Grounded on print_crossword_result's column-pair
// decoding.
func (e *Encoder) reconstruct(base *Grid, rows [][]int) *Grid {
	result := base.Clone()
	for _, row := range rows {
		isAcross, isDown := false, false
		for _, col := range row {
			switch col % 54 {
			case 52:
				isAcross = true
			case 53:
				isDown = true
			}
		}
		if isDown {
			// Either a pure Down word (letters match the crossing Across
			// word already) or a black-square row; either way, nothing
			// new to extract here.
			continue
		}
		if !isAcross {
			continue
		}
		for _, col := range row {
			if col%2 != 0 {
				continue
			}
			letterIdx := (col % 54) / 2
			if letterIdx == 26 {
				continue
			}
			slice := col / 54
			cell := e.sliceToCell[slice]
			result.Cells[cell] = byte('a' + letterIdx)
		}
	}
	return result
}
