// Package layout describes the Devanagari Inscript keyboard.
package layout

import (
	"strings"
	"unicode"
)

// Key is one physical key of the layout.
type Key struct {
	// Code is the physical key name, e.g. "KeyQ" or "ShiftLeft".
	Code string
	// Latin and LatinShift are the characters a US QWERTY layout produces.
	Latin      rune
	LatinShift rune
	// Normal and Shift are the Inscript characters.
	Normal  string
	Shift   string
	Label   string
	Width   float64
	Special bool
}

// Display returns the label shown on the key.
func (k Key) Display(shift bool) string {
	if k.Special {
		return k.Label
	}
	if shift {
		return k.Shift
	}
	return k.Normal
}

// Stroke is one key press, optionally with shift.
type Stroke struct {
	Key   Key
	Shift bool
}

// Rows is the Inscript layout from the top letter row down to the space bar.
var Rows = [][]Key{
	{
		{Code: "KeyQ", Latin: 'q', LatinShift: 'Q', Normal: "ौ", Shift: "औ"},
		{Code: "KeyW", Latin: 'w', LatinShift: 'W', Normal: "ै", Shift: "ऐ"},
		{Code: "KeyE", Latin: 'e', LatinShift: 'E', Normal: "ा", Shift: "आ"},
		{Code: "KeyR", Latin: 'r', LatinShift: 'R', Normal: "ी", Shift: "ई"},
		{Code: "KeyT", Latin: 't', LatinShift: 'T', Normal: "ू", Shift: "ऊ"},
		{Code: "KeyY", Latin: 'y', LatinShift: 'Y', Normal: "ब", Shift: "भ"},
		{Code: "KeyU", Latin: 'u', LatinShift: 'U', Normal: "ह", Shift: "ङ"},
		{Code: "KeyI", Latin: 'i', LatinShift: 'I', Normal: "ग", Shift: "घ"},
		{Code: "KeyO", Latin: 'o', LatinShift: 'O', Normal: "द", Shift: "ध"},
		{Code: "KeyP", Latin: 'p', LatinShift: 'P', Normal: "ज", Shift: "झ"},
		{Code: "BracketLeft", Latin: '[', LatinShift: '{', Normal: "ड", Shift: "ढ"},
		{Code: "BracketRight", Latin: ']', LatinShift: '}', Normal: "\u093C", Shift: "ञ"},
	},
	{
		{Code: "KeyA", Latin: 'a', LatinShift: 'A', Normal: "ो", Shift: "ओ"},
		{Code: "KeyS", Latin: 's', LatinShift: 'S', Normal: "े", Shift: "ए"},
		{Code: "KeyD", Latin: 'd', LatinShift: 'D', Normal: "\u094D", Shift: "अ"},
		{Code: "KeyF", Latin: 'f', LatinShift: 'F', Normal: "ि", Shift: "इ"},
		{Code: "KeyG", Latin: 'g', LatinShift: 'G', Normal: "ु", Shift: "उ"},
		{Code: "KeyH", Latin: 'h', LatinShift: 'H', Normal: "प", Shift: "फ"},
		{Code: "KeyJ", Latin: 'j', LatinShift: 'J', Normal: "र", Shift: "\u0931"},
		{Code: "KeyK", Latin: 'k', LatinShift: 'K', Normal: "क", Shift: "ख"},
		{Code: "KeyL", Latin: 'l', LatinShift: 'L', Normal: "त", Shift: "थ"},
		{Code: "Semicolon", Latin: ';', LatinShift: ':', Normal: "च", Shift: "छ"},
		{Code: "Quote", Latin: '\'', LatinShift: '"', Normal: "ट", Shift: "ठ"},
	},
	{
		{Code: "ShiftLeft", Label: "Shift", Width: 1.5, Special: true},
		{Code: "KeyZ", Latin: 'z', LatinShift: 'Z', Normal: "ं", Shift: "ँ"},
		{Code: "KeyX", Latin: 'x', LatinShift: 'X', Normal: "म", Shift: "ण"},
		{Code: "KeyC", Latin: 'c', LatinShift: 'C', Normal: "न", Shift: "\u0929"},
		{Code: "KeyV", Latin: 'v', LatinShift: 'V', Normal: "व", Shift: "\u0934"},
		{Code: "KeyB", Latin: 'b', LatinShift: 'B', Normal: "ल", Shift: "ळ"},
		{Code: "KeyN", Latin: 'n', LatinShift: 'N', Normal: "स", Shift: "श"},
		{Code: "KeyM", Latin: 'm', LatinShift: 'M', Normal: "य", Shift: "ष"},
		{Code: "ShiftRight", Label: "Shift", Width: 1.5, Special: true},
	},
	{
		{Code: "Space", Latin: ' ', LatinShift: ' ', Normal: " ", Shift: " ", Label: "Space", Width: 6, Special: true},
	},
}

type position struct {
	row, col int
	shift    bool
}

var (
	byChar  = map[rune]position{}
	byLatin = map[rune]position{}
)

func init() {
	for r, row := range Rows {
		for c, k := range row {
			if k.Special && k.Code != "Space" {
				continue
			}
			addChar(k.Normal, position{row: r, col: c})
			addChar(k.Shift, position{row: r, col: c, shift: true})
			if k.Latin != 0 {
				byLatin[k.Latin] = position{row: r, col: c}
			}
			if k.LatinShift != 0 && k.LatinShift != k.Latin {
				byLatin[k.LatinShift] = position{row: r, col: c, shift: true}
			}
		}
	}
}

func addChar(s string, p position) {
	runes := []rune(s)
	if len(runes) != 1 {
		return
	}
	if _, ok := byChar[runes[0]]; !ok {
		byChar[runes[0]] = p
	}
}

// Lookup returns the key that produces r and whether shift is held.
func Lookup(r rune) (Key, bool, bool) {
	p, ok := byChar[r]
	if !ok {
		return Key{}, false, false
	}
	return Rows[p.row][p.col], p.shift, true
}

// StrokesFor lists the key presses that type a grapheme cluster. Runes with
// no Inscript key are skipped.
func StrokesFor(cluster string) []Stroke {
	var strokes []Stroke
	for _, r := range cluster {
		if k, shift, ok := Lookup(r); ok {
			strokes = append(strokes, Stroke{Key: k, Shift: shift})
		}
	}
	return strokes
}

// Translate maps a character typed on a US QWERTY layout to the Inscript
// character on the same physical key. Other runes pass through unchanged.
func Translate(r rune) rune {
	p, ok := byLatin[r]
	if !ok {
		return r
	}
	k := Rows[p.row][p.col]
	out := k.Normal
	if p.shift {
		out = k.Shift
	}
	runes := []rune(out)
	if len(runes) != 1 {
		return r
	}
	return runes[0]
}

// TranslateString maps every rune of s with Translate.
func TranslateString(s string) string {
	return strings.Map(Translate, s)
}

// Covers reports whether every non-space rune of s can be typed on the layout.
func Covers(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if _, ok := byChar[r]; !ok {
			return false
		}
	}
	return true
}
