// Package stats contains scoring calculations and result reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/akshara/internal/model"
)

const (
	sparkChars = " .:-=+*#%@"
	// CharsPerWord is the standard word length used for WPM.
	CharsPerWord = 5
)

// WPM converts a character count and elapsed seconds to words per minute.
func WPM(chars int, elapsedSeconds float64) int {
	if elapsedSeconds <= 0 {
		return 0
	}
	minutes := elapsedSeconds / 60
	return int(math.Round(float64(chars) / CharsPerWord / minutes))
}

// Accuracy returns the share of correct characters as a 0-100 percentage.
func Accuracy(correct, total int) int {
	if total <= 0 {
		return 100
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// HistorySparkline smooths a per-second WPM history and renders it.
func HistorySparkline(history []int, window int) string {
	values := make([]float64, len(history))
	for i, v := range history {
		values[i] = float64(v)
	}
	return Sparkline(MovingAverage(values, window))
}

// ResultRows returns the label/value pairs shown for a finished session.
func ResultRows(res model.Result) [][]string {
	return [][]string{
		{"wpm", fmt.Sprintf("%d", res.NetWPM)},
		{"raw", fmt.Sprintf("%d", res.RawWPM)},
		{"accuracy", fmt.Sprintf("%d%%", res.Accuracy)},
		{"characters", fmt.Sprintf("%d/%d/%d/%d", res.CorrectChars, res.IncorrectChars, res.ExtraChars, res.MissedChars)},
		{"time", fmt.Sprintf("%ds", res.TotalTimeSeconds)},
	}
}

// RenderResult prints a finished session as a two-column table.
func RenderResult(w io.Writer, cfg model.Config, lesson model.Lesson, res model.Result) error {
	title := fmt.Sprintf("%s %d", cfg.Mode, cfg.Value)
	if cfg.Mode != model.ModeQuote {
		title = fmt.Sprintf("%s · %s", title, lesson.LabelEn)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	rows := ResultRows(res)
	if len(res.WPMHistory) > 1 {
		rows = append(rows, []string{"history", HistorySparkline(res.WPMHistory, 3)})
	}
	for _, line := range FormatTable(nil, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
