package xdict

// Pattern characters: a lowercase letter is literal, '?' is any letter,
// '0' is any vowel, '1' is any consonant, and '*' (General match only)
// is zero-or-more letters. Unknown characters are treated as literals.

const vowels = "aeiouy"
const consonants = "bcdfghjklmnpqrstvwxyz"

func isVowel(ch byte, cfg Config) bool {
	if ch == 'y' {
		switch cfg.YIsVowel {
		case Never:
			return false
		case Both:
			return true
		default:
			return true
		}
	}
	for i := 0; i < len(vowels); i++ {
		if vowels[i] == ch {
			return true
		}
	}
	return false
}

// IsVowel reports whether ch belongs to the vowel class under cfg. Exported
// so callers outside this package (the grid encoder's cell-matching logic,
// grounded on xword-fill.c's matches()) share the exact same alphabet.
func IsVowel(ch byte, cfg Config) bool { return isVowel(ch, cfg) }

// IsConsonant reports whether ch belongs to the consonant class under cfg.
func IsConsonant(ch byte, cfg Config) bool { return isConsonant(ch, cfg) }

func isConsonant(ch byte, cfg Config) bool {
	if ch == 'y' {
		switch cfg.YIsVowel {
		case Never:
			return true
		case Both:
			return true
		default:
			return false
		}
	}
	for i := 0; i < len(consonants); i++ {
		if consonants[i] == ch {
			return true
		}
	}
	return false
}

// classMatches reports whether word byte w satisfies pattern byte p under
// the wildcard alphabet: '?' any letter, '0' vowel, '1' consonant, else
// literal equality.
func classMatches(w, p byte, cfg Config) bool {
	switch p {
	case '?':
		return true
	case '0':
		return isVowel(w, cfg)
	case '1':
		return isConsonant(w, cfg)
	default:
		return w == p
	}
}

// MatchSimple performs a star-free positional match: w and p must have
// equal length, and every position must satisfy its class.
func MatchSimple(w, p string, cfg Config) bool {
	if len(w) != len(p) {
		return false
	}
	for i := 0; i < len(p); i++ {
		if !classMatches(w[i], p[i], cfg) {
			return false
		}
	}
	return true
}

// Match performs a general match allowing '*' (zero-or-more letters). On
// encountering '*' it recursively tries matching the remaining pattern
// against every suffix of the remaining word, including the empty suffix.
func Match(w, p string, cfg Config) bool {
	if p == "" {
		return w == ""
	}
	if p[0] == '*' {
		rest := p[1:]
		for i := 0; i <= len(w); i++ {
			if Match(w[i:], rest, cfg) {
				return true
			}
		}
		return false
	}
	if w == "" {
		return false
	}
	if !classMatches(w[0], p[0], cfg) {
		return false
	}
	return Match(w[1:], p[1:], cfg)
}
