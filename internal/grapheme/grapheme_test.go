package grapheme

import (
	"reflect"
	"testing"
)

func TestSegmentDevanagari(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"कि", []string{"कि"}},
		{"क्ष", []string{"क्ष"}},
		{"स्त्र", []string{"स्त्र"}},
		{"विद्यालय", []string{"वि", "द्या", "ल", "य"}},
		{"अहिंसा", []string{"अ", "हिं", "सा"}},
		{"पाँच", []string{"पाँ", "च"}},
		{"धर्मः", []string{"ध", "र्मः"}},
		{"जय ते", []string{"ज", "य", " ", "ते"}},
		{"क्", []string{"क्"}},
	}
	for _, tc := range cases {
		got := Segment(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Segment(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSegmentLatinCombining(t *testing.T) {
	got := Segment("e\u0301a")
	if len(got) != 2 || got[0] != "e\u0301" || got[1] != "a" {
		t.Fatalf("unexpected clusters: %q", got)
	}
}

func TestSegmentIndependentVowelsSplit(t *testing.T) {
	got := Segment("अआ")
	if len(got) != 2 {
		t.Fatalf("expected independent vowels to be separate clusters, got %q", got)
	}
}

func TestCount(t *testing.T) {
	if n := Count("नमस्ते"); n != 3 {
		t.Fatalf("expected 3 clusters, got %d", n)
	}
}
