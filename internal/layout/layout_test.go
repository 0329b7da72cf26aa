package layout

import "testing"

func TestLookup(t *testing.T) {
	cases := []struct {
		char  rune
		code  string
		shift bool
	}{
		{'क', "KeyK", false},
		{'ख', "KeyK", true},
		{'्', "KeyD", false},
		{'अ', "KeyD", true},
		{'ष', "KeyM", true},
		{' ', "Space", false},
	}
	for _, tc := range cases {
		key, shift, ok := Lookup(tc.char)
		if !ok {
			t.Fatalf("expected key for %q", tc.char)
		}
		if key.Code != tc.code || shift != tc.shift {
			t.Fatalf("Lookup(%q) = %s shift=%v, want %s shift=%v", tc.char, key.Code, shift, tc.code, tc.shift)
		}
	}
	if _, _, ok := Lookup('x'); ok {
		t.Fatalf("expected no key for latin x")
	}
}

func TestStrokesForConjunct(t *testing.T) {
	strokes := StrokesFor("क्ष")
	want := []struct {
		code  string
		shift bool
	}{
		{"KeyK", false},
		{"KeyD", false},
		{"KeyM", true},
	}
	if len(strokes) != len(want) {
		t.Fatalf("expected %d strokes, got %d", len(want), len(strokes))
	}
	for i, w := range want {
		if strokes[i].Key.Code != w.code || strokes[i].Shift != w.shift {
			t.Fatalf("stroke %d = %s shift=%v, want %s shift=%v", i, strokes[i].Key.Code, strokes[i].Shift, w.code, w.shift)
		}
	}
}

func TestTranslate(t *testing.T) {
	if got := TranslateString("kdM"); got != "क्ष" {
		t.Fatalf("unexpected translation: %q", got)
	}
	if got := TranslateString("hf"); got != "पि" {
		t.Fatalf("unexpected translation: %q", got)
	}
	if got := Translate('1'); got != '1' {
		t.Fatalf("expected digits to pass through, got %q", got)
	}
}

func TestCovers(t *testing.T) {
	if !Covers("कमल नयन") {
		t.Fatalf("expected home and bottom row letters to be covered")
	}
	if Covers("abc") {
		t.Fatalf("expected latin text not to be covered")
	}
}

func TestDisplay(t *testing.T) {
	key, _, _ := Lookup('प')
	if key.Display(false) != "प" || key.Display(true) != "फ" {
		t.Fatalf("unexpected display for %s", key.Code)
	}
	shift := Rows[2][0]
	if shift.Display(true) != "Shift" {
		t.Fatalf("unexpected special label %q", shift.Display(true))
	}
}
