package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/akshara/internal/model"
)

type styledCell struct {
	s       string
	width   int
	isSpace bool
	cursor  bool
}

func newCell(text string, style lipgloss.Style) styledCell {
	width := runewidth.StringWidth(text)
	if width == 0 {
		width = 1
	}
	return styledCell{s: style.Render(text), width: width}
}

// buildCells renders the words of a session as cells separated by spaces.
// pending is the text still being composed; it is drawn at the cursor.
func buildCells(words []model.WordState, wordIndex, charIndex int, pending string, active bool) []styledCell {
	out := make([]styledCell, 0, len(words)*6)
	for wi, w := range words {
		if wi > 0 {
			out = append(out, styledCell{s: " ", width: 1, isSpace: true})
		}
		current := active && wi == wordIndex
		for ci, ch := range w.Chars {
			if current && ci == charIndex {
				out = append(out, cursorCell(ch.Expected, pending))
				continue
			}
			out = append(out, charCell(ch, wi, wordIndex, current))
		}
		if current && charIndex >= len(w.Chars) {
			if pending != "" {
				out = append(out, cursorCell("", pending))
			} else {
				cell := newCell(" ", cursorStyle)
				cell.cursor = true
				out = append(out, cell)
			}
		}
	}
	return out
}

func cursorCell(expected, pending string) styledCell {
	var cell styledCell
	if pending != "" {
		cell = newCell(pending, composingStyle)
	} else {
		cell = newCell(expected, cursorStyle)
	}
	cell.cursor = true
	return cell
}

func charCell(ch model.CharState, wi, wordIndex int, current bool) styledCell {
	switch ch.Status {
	case model.StatusCorrect:
		return newCell(ch.Expected, correctStyle)
	case model.StatusIncorrect:
		return newCell(ch.Expected, incorrectStyle)
	case model.StatusExtra:
		return newCell(ch.Typed, extraStyle)
	}
	switch {
	case wi < wordIndex:
		return newCell(ch.Expected, missedStyle)
	case current:
		return newCell(ch.Expected, currentWordStyle)
	default:
		return newCell(ch.Expected, pendingStyle)
	}
}

func renderCells(cells []styledCell) string {
	var b strings.Builder
	for _, item := range cells {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapCells breaks cells into lines no wider than width, preferring to break
// at spaces. The space a line breaks on is dropped.
func wrapCells(cells []styledCell, width int) [][]styledCell {
	if width <= 0 {
		return [][]styledCell{cells}
	}
	var lines [][]styledCell
	line := make([]styledCell, 0, len(cells))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(cells); {
		item := cells[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if item.isSpace {
				lines = append(lines, line)
				line = make([]styledCell, 0, len(cells)-i)
				lineWidth = 0
				lastSpaceIdx = -1
				i++
				continue
			}
			if lastSpaceIdx >= 0 {
				lines = append(lines, line[:lastSpaceIdx:lastSpaceIdx])
				line = append([]styledCell{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				lines = append(lines, line)
				line = make([]styledCell, 0, len(cells)-i)
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	return append(lines, line)
}

// visibleLines returns up to count lines, starting one line above the line
// holding the cursor so the previous line stays in view.
func visibleLines(lines [][]styledCell, count int) [][]styledCell {
	if count <= 0 || len(lines) <= count {
		return lines
	}
	cursorLine := 0
	for i, line := range lines {
		for _, c := range line {
			if c.cursor {
				cursorLine = i
			}
		}
	}
	start := cursorLine - 1
	if start < 0 {
		start = 0
	}
	if start+count > len(lines) {
		start = len(lines) - count
	}
	return lines[start : start+count]
}

func renderLines(lines [][]styledCell) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = renderCells(line)
	}
	return strings.Join(parts, "\n")
}

func lineWidthOf(line []styledCell) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledCell) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
