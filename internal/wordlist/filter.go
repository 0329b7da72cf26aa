package wordlist

import (
	"unicode"

	"github.com/verte-zerg/akshara/internal/grapheme"
	"github.com/verte-zerg/akshara/internal/layout"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Devanagari keeps words written only in Devanagari that start with an
// independent letter rather than a vowel sign or virama.
func Devanagari(word string) bool {
	if word == "" {
		return false
	}
	for i, r := range word {
		if !grapheme.IsDevanagari(r) {
			return false
		}
		if i == 0 && (unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)) {
			return false
		}
	}
	return true
}

// Typeable keeps Devanagari words whose every character has an Inscript key.
func Typeable(word string) bool {
	return Devanagari(word) && layout.Covers(word)
}

// Filter returns the words accepted by keep, dropping duplicates while
// preserving the first occurrence order.
func Filter(words []string, keep FilterFunc) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !keep(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
