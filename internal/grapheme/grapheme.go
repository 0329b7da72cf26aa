// Package grapheme splits text into user-perceived characters.
package grapheme

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

const (
	virama = '\u094D'
	nukta  = '\u093C'
	zwj    = '\u200D'
)

// Segment splits text into extended grapheme clusters. Devanagari conjuncts
// (consonant, virama, consonant) stay in one cluster.
func Segment(text string) []string {
	clusters := []string{}
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if n := len(clusters); n > 0 && endsWithLinker(clusters[n-1]) && startsWithConsonant(cluster) {
			clusters[n-1] += cluster
			continue
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}

// Count returns the number of clusters in text.
func Count(text string) int {
	return len(Segment(text))
}

// IsConsonant reports whether r is a Devanagari consonant.
func IsConsonant(r rune) bool {
	switch {
	case r >= '\u0915' && r <= '\u0939':
		return true
	case r >= '\u0958' && r <= '\u095F':
		return true
	case r >= '\u0978' && r <= '\u097F':
		return true
	default:
		return false
	}
}

// IsDevanagari reports whether r belongs to the Devanagari block.
func IsDevanagari(r rune) bool {
	return r >= '\u0900' && r <= '\u097F'
}

func startsWithConsonant(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return IsConsonant(r)
}

// endsWithLinker matches Consonant [Extend Linker]* Linker [Extend Linker]*
// at the end of the cluster.
func endsWithLinker(cluster string) bool {
	runes := []rune(cluster)
	i := len(runes) - 1
	sawLinker := false
	for ; i >= 0; i-- {
		r := runes[i]
		if r == virama {
			sawLinker = true
			continue
		}
		if r == nukta || r == zwj {
			continue
		}
		break
	}
	return sawLinker && i >= 0 && IsConsonant(runes[i])
}
