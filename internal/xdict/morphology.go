package xdict

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gedex/inflector"
	"github.com/surgebase/porter2"
)

// POS classifies a dictionary entry for the compressed save format
// (spec.md section 4.3).
type POS int

const (
	Normal POS = iota
	Plural
	Verb
	VerbE
	VerbB
	Covered
)

// hasWord reports whether word is present in the dictionary, by exact
// length-bucket lookup. Classify requires the dictionary to be sorted,
// matching the reference implementation's "applied while the dictionary
// is sorted" precondition (spec.md section 4.3).
func (d *Dictionary) hasWord(word string) bool {
	k := len(word)
	if k < MinLen || k >= MaxLen {
		return false
	}
	found := false
	d.Find(word, func(string) bool { found = true; return true })
	return found
}

// Classify implements the recursive root/derived categorization from
// pos_categorize in xdictlib.c. Coverage is checked first (does a
// strictly shorter root already cover this word?); only if uncovered is
// word tested for rootness itself.
func Classify(d *Dictionary, word string) POS {
	k := len(word)

	endsWithIng := k >= 6 && word[k-3:] == "ing"
	endsWithEd := k >= 5 && word[k-2:] == "ed"
	endsWithEs := k >= 4 && word[k-2:] == "es"
	endsWithS := k >= 4 && word[k-1] == 's'
	endsWithE := k >= 3 && word[k-1] == 'e'

	switch {
	case endsWithS || endsWithEs:
		root := word[:k-1]
		if d.hasWord(root) {
			switch Classify(d, root) {
			case Verb, VerbE, VerbB, Plural:
				return Covered
			}
		}
	case endsWithEd:
		if root := word[:k-2]; d.hasWord(root) {
			if Classify(d, root) == Verb {
				return Covered
			}
		}
		if root := word[:k-2] + "e"; d.hasWord(root) {
			if Classify(d, root) == VerbE {
				return Covered
			}
		}
		if word[k-4] == word[k-3] {
			if root := word[:k-3]; d.hasWord(root) {
				if Classify(d, root) == VerbB {
					return Covered
				}
			}
		}
	case endsWithIng:
		if root := word[:k-3]; d.hasWord(root) {
			if Classify(d, root) == Verb {
				return Covered
			}
		}
		if root := word[:k-3] + "e"; d.hasWord(root) {
			if Classify(d, root) == VerbE {
				return Covered
			}
		}
		if word[k-5] == word[k-4] {
			if root := word[:k-4]; d.hasWord(root) {
				if Classify(d, root) == VerbB {
					return Covered
				}
			}
		}
	}

	// Not covered by any shorter root. Is this word a root itself?
	if endsWithE {
		if !d.hasWord(word[:k-1] + "es") {
			return Normal
		}
		if !d.hasWord(word[:k-1] + "ing") {
			return Plural
		}
		if !d.hasWord(word[:k-1] + "ed") {
			return Plural
		}
		return VerbE
	}

	if !d.hasWord(word + "s") {
		return Normal
	}
	hasTaping := d.hasWord(word + "ing")
	if hasTaping {
		hasTaped := d.hasWord(word + "ed")
		if hasTaped {
			return Verb
		}
		return Plural
	}
	last := word[k-1]
	if !d.hasWord(word + string(last) + "ing") {
		return Plural
	}
	if !d.hasWord(word + string(last) + "ed") {
		return Plural
	}
	return VerbB
}

// Suffix returns the "/s /v /w /x" compressed-save suffix code for pos,
// and the stem to print it with (spec.md section 4.3/4.3's save formats).
// Covered words are not printed at all; callers should skip them.
func Suffix(pos POS, word string) (stem, code string) {
	switch pos {
	case Verb:
		return word, "v"
	case VerbE:
		return word[:len(word)-1], "w"
	case VerbB:
		return word, "x"
	case Plural:
		return word, "s"
	default:
		return word, ""
	}
}

// conflictCheck runs the inflector/porter2 second opinion described in
// spec.md's expanded section 4.3 and Open Question 1: if the recursive
// classifier calls a word VERB or VERB_E but inflector's pluralizer
// disagrees that the word looks like a genuine plural-bearing root, or
// porter2 stems two differently-classified root candidates to the same
// stem (the car/care situation), degrade to PLURAL and warn rather than
// silently emit a duplicated derived form.
func conflictCheck(word string, pos POS, seenStems map[string]string) POS {
	switch pos {
	case Verb, VerbE:
		stem := porter2.Stem(word)
		if prevWord, ok := seenStems[stem]; ok && prevWord != word {
			fmt.Fprintf(os.Stderr, "%s morphology: %q and %q share stem %q; degrading %q to plural form\n",
				color.New(color.FgRed).Sprint("warning:"), prevWord, word, stem, word)
			return Plural
		}
		seenStems[stem] = word
		plural := inflector.Pluralize(word)
		singular := inflector.Singularize(plural)
		if singular != word && !strings.HasSuffix(plural, "s") {
			fmt.Fprintf(os.Stderr, "%s morphology: inflector disagrees that %q pluralizes regularly; degrading to plural form\n",
				color.New(color.FgRed).Sprint("warning:"), word)
			return Plural
		}
	}
	return pos
}
