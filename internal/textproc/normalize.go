// Package textproc normalizes raw document text for search: it tokenizes,
// removes Spanish stopwords, and stems each remaining token. The output is a
// lossy, space-joined matching string, never shown to users.
package textproc

import (
	"strings"
	"unicode"
)

// Tokenize splits text into word tokens on non-alphanumeric boundaries.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Normalize converts raw text to its normalized search form. Token order is
// preserved. It never fails: empty or unusable input yields "".
func Normalize(text string) string {
	tokens := Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		if IsStopWord(lower) {
			continue
		}
		if !isAlphanumeric(lower) {
			continue
		}
		out = append(out, Stem(lower))
	}
	return strings.Join(out, " ")
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
