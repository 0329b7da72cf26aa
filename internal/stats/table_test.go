package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Lesson", "Stage", "Keys"}
	rows := [][]string{
		{"1", "home-row", "6"},
		{"12", "words", "0"},
	}
	rightAlign := map[int]bool{0: true, 2: true}

	lines := FormatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Lesson Stage    Keys" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "     1 home-row    6" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "    12 words       0" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableMeasuresCells(t *testing.T) {
	lines := FormatTable(nil, [][]string{{"कखग", "x"}, {"a", "y"}}, nil)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[1] != "a   y" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := FormatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}
