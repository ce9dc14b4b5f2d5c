// Package xdict implements the length-bucketed word dictionary: wildcard
// search, class matching, scrabble-style rack search, and the morphology
// compressor used by the plain/compressed on-disk formats.
package xdict

import (
	"errors"
	"sort"
)

// MaxLen is the compile-time bucket-count limit shared by the dictionary
// and the grid encoder. Words of length MaxLen or longer are never admitted.
const MaxLen = 16

// MinLen is the shortest word the dictionary will admit.
const MinLen = 3

// Sentinel errors map onto the integer error-propagation surface of
// spec.md section 6.3: TooShortOrLong is "-1", ErrCorrupt is "-2", and so on.
var (
	ErrTooShortOrLong    = errors.New("xdict: word length out of range")
	ErrCorrupt           = errors.New("xdict: truncated dictionary line")
	ErrOutOfMemory       = errors.New("xdict: out of memory")
	ErrNotFound          = errors.New("xdict: not found")
	ErrInvalidPattern    = errors.New("xdict: invalid pattern length")
)

// YIsVowel selects how the letter 'y' is classified by the pattern
// matcher. See Open Question 3 in spec.md section 9.
type YIsVowel int

const (
	// Always treats 'y' as exclusively a vowel (the historical default).
	Always YIsVowel = iota
	// Never treats 'y' as exclusively a consonant.
	Never
	// Both lets 'y' satisfy either the vowel class or the consonant class.
	Both
)

// Config carries the tuning knobs that the reference implementation kept
// as process-global statics. Threading it explicitly avoids the
// process-global callback state spec.md section 9 warns against.
type Config struct {
	YIsVowel YIsVowel
}

// DefaultConfig matches the historical 'y' is always a vowel behavior.
func DefaultConfig() Config {
	return Config{YIsVowel: Always}
}

// bucket holds every word of one fixed length. Order is insertion order
// until Sort runs; after Sort it is lexicographic with no duplicates.
type bucket struct {
	words []string
}

// Dictionary is a length-bucketed set of words, indexed 0..MaxLen-1.
// Bucket 0 is never used (MinLen is 3); buckets MinLen..MaxLen-1 hold
// words of exactly that length.
type Dictionary struct {
	buckets [MaxLen]bucket
	sorted  bool
}

// New returns an empty, sorted dictionary.
func New() *Dictionary {
	return &Dictionary{sorted: true}
}

// Sorted reports whether every bucket is currently lexicographically
// sorted and deduplicated, i.e. no mutation has happened since the last Sort.
func (d *Dictionary) Sorted() bool { return d.sorted }

// Len returns the total number of words across all buckets.
func (d *Dictionary) Len() int {
	n := 0
	for k := range d.buckets {
		n += len(d.buckets[k].words)
	}
	return n
}

// BucketLen returns the number of words of exactly length k.
func (d *Dictionary) BucketLen(k int) int {
	if k < 0 || k >= MaxLen {
		return 0
	}
	return len(d.buckets[k].words)
}

// Add appends word to its length bucket. If k is 0, the bucket is derived
// from len(word). Add never deduplicates eagerly; call Sort to dedupe.
func (d *Dictionary) Add(word string, k int) error {
	if k == 0 {
		k = len(word)
	}
	if k < MinLen || k >= MaxLen {
		return ErrTooShortOrLong
	}
	b := &d.buckets[k]
	b.words = append(b.words, word)
	d.sorted = false
	return nil
}

// RemoveExact removes every bucket entry equal to word, returning the
// count removed. Order within the bucket is not preserved.
func (d *Dictionary) RemoveExact(word string, k int) int {
	if k == 0 {
		k = len(word)
	}
	if k < MinLen || k >= MaxLen {
		return 0
	}
	b := &d.buckets[k]
	count := 0
	for i := 0; i < len(b.words); {
		if b.words[i] == word {
			last := len(b.words) - 1
			if i != last {
				b.words[i] = b.words[last]
				d.sorted = false
			}
			b.words = b.words[:last]
			count++
			continue
		}
		i++
	}
	return count
}

// RemoveMatch removes every word matching pattern, returning the count
// removed. If k != 0 and pattern has no '*', only bucket k is scanned;
// otherwise every bucket of length >= the pattern's literal length is
// scanned (spec.md section 4.1).
func (d *Dictionary) RemoveMatch(pattern string, k int) int {
	if k != 0 && !hasStar(pattern) {
		b := &d.buckets[k]
		count := 0
		for i := 0; i < len(b.words); {
			if Match(b.words[i], pattern, DefaultConfig()) {
				last := len(b.words) - 1
				if i != last {
					b.words[i] = b.words[last]
					d.sorted = false
				}
				b.words = b.words[:last]
				count++
				continue
			}
			i++
		}
		return count
	}

	literalLen := 0
	for _, ch := range pattern {
		if ch != '*' {
			literalLen++
		}
	}
	count := 0
	for k := literalLen; k < MaxLen; k++ {
		b := &d.buckets[k]
		for i := 0; i < len(b.words); {
			if Match(b.words[i], pattern, DefaultConfig()) {
				last := len(b.words) - 1
				if i != last {
					b.words[i] = b.words[last]
					d.sorted = false
				}
				b.words = b.words[:last]
				count++
				continue
			}
			i++
		}
	}
	return count
}

// Sort lexicographically sorts each bucket, drops duplicates, and marks
// the dictionary sorted.
func (d *Dictionary) Sort() {
	for k := range d.buckets {
		b := &d.buckets[k]
		if len(b.words) < 2 {
			continue
		}
		sort.Strings(b.words)
		out := b.words[:1]
		for _, w := range b.words[1:] {
			if w != out[len(out)-1] {
				out = append(out, w)
			}
		}
		b.words = out
	}
	d.sorted = true
}

// FindFunc is invoked once per match found by Find. Returning true
// requests early termination of the scan.
type FindFunc func(word string) bool

// Find enumerates dictionary words matching pattern, invoking fn for each.
// For a star-free pattern only the bucket of that exact length is
// searched. When the dictionary is sorted and the pattern is purely
// alphabetic, a binary search is used (at most one hit); otherwise a
// linear scan invokes fn for every match, stopping early if fn returns
// true. Returns the number of matches found (before any early stop is
// honored for the count already emitted) or -1 on a malformed pattern.
func (d *Dictionary) Find(pattern string, fn FindFunc) int {
	return d.FindWithConfig(pattern, fn, DefaultConfig())
}

// FindWithConfig is Find with an explicit Config (for YIsVowel handling).
func (d *Dictionary) FindWithConfig(pattern string, fn FindFunc, cfg Config) int {
	if !hasStar(pattern) {
		n := len(pattern)
		if n < 2 || n >= MaxLen {
			return -1
		}
		b := &d.buckets[n]

		if d.sorted && isPurelyAlphabetic(pattern) {
			lo, hi := 0, len(b.words)
			for lo < hi {
				mid := lo + (hi-lo)/2
				switch {
				case b.words[mid] == pattern:
					if fn != nil {
						fn(b.words[mid])
					}
					return 1
				case b.words[mid] > pattern:
					hi = mid
				default:
					lo = mid + 1
				}
			}
			return 0
		}

		count := 0
		for _, w := range b.words {
			if MatchSimple(w, pattern, cfg) {
				count++
				if fn != nil && fn(w) {
					return count
				}
			}
		}
		return count
	}

	literalLen := 0
	for _, ch := range pattern {
		if ch != '*' {
			literalLen++
		}
	}
	count := 0
	for k := literalLen; k < MaxLen; k++ {
		for _, w := range d.buckets[k].words {
			if Match(w, pattern, cfg) {
				count++
				if fn != nil && fn(w) {
					return count
				}
			}
		}
	}
	return count
}

// Words returns a copy of every word in the dictionary, ascending by
// bucket length and, within a bucket, in whatever order Find would
// traverse it (insertion order unless sorted).
func (d *Dictionary) Words() []string {
	out := make([]string, 0, d.Len())
	for k := range d.buckets {
		out = append(out, d.buckets[k].words...)
	}
	return out
}

func hasStar(pattern string) bool {
	for _, ch := range pattern {
		if ch == '*' {
			return true
		}
	}
	return false
}

func isPurelyAlphabetic(pattern string) bool {
	for _, ch := range pattern {
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
