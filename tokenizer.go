package clawdoc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize normalizes text into lowercase index terms. Every rune that
// is not alphanumeric, whitespace, hyphen, underscore, or period is
// replaced with a space before splitting, so technical tokens like
// "--verbose", "os.exec", or "snake_case" survive intact. Tokens of
// length one and purely numeric tokens are dropped. No stemming is
// applied; ordering and duplicates are preserved for term-frequency
// counting.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := fields[:0]
	for _, t := range fields {
		if utf8.RuneCountInString(t) <= 1 || isNumeric(t) {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// isNumeric reports whether s consists entirely of digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
