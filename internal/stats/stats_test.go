package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/akshara/internal/model"
)

func TestWPM(t *testing.T) {
	cases := []struct {
		chars   int
		elapsed float64
		want    int
	}{
		{0, 30, 0},
		{40, 0, 0},
		{40, -1, 0},
		{50, 60, 10},
		{25, 30, 10},
		{33, 60, 7},
	}
	for _, tc := range cases {
		if got := WPM(tc.chars, tc.elapsed); got != tc.want {
			t.Fatalf("WPM(%d, %v) = %d, want %d", tc.chars, tc.elapsed, got, tc.want)
		}
	}
}

func TestAccuracy(t *testing.T) {
	cases := []struct {
		correct, total, want int
	}{
		{0, 0, 100},
		{5, -1, 100},
		{8, 10, 80},
		{2, 3, 67},
		{0, 4, 0},
	}
	for _, tc := range cases {
		if got := Accuracy(tc.correct, tc.total); got != tc.want {
			t.Fatalf("Accuracy(%d, %d) = %d, want %d", tc.correct, tc.total, got, tc.want)
		}
	}
}

func TestSparklineFlat(t *testing.T) {
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
}

func TestHistorySparklineRange(t *testing.T) {
	got := HistorySparkline([]int{0, 10, 20}, 1)
	if got != " +@" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
}

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	res := model.Result{
		NetWPM:           42,
		RawWPM:           45,
		Accuracy:         93,
		CorrectChars:     105,
		IncorrectChars:   7,
		ExtraChars:       1,
		MissedChars:      2,
		TotalTimeSeconds: 30,
		WPMHistory:       []int{30, 40, 42},
	}
	cfg := model.Config{LessonID: 1, Mode: model.ModeTime, Value: 30}
	lesson := model.Lesson{ID: 1, LabelEn: "Home Row"}
	if err := RenderResult(&buf, cfg, lesson, res); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"time 30 · Home Row", "wpm", "42", "93%", "105/7/1/2", "30s", "history"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
