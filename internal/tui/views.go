package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/akshara/internal/layout"
	"github.com/verte-zerg/akshara/internal/model"
	"github.com/verte-zerg/akshara/internal/quotes"
	"github.com/verte-zerg/akshara/internal/stats"
)

const (
	visibleLineCount = 3
	dottedCircle     = "◌"
)

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.engine.Snapshot()
	if snap.Phase == model.PhaseFinished && snap.Result != nil {
		return m.place(m.renderResults(snap))
	}

	contentWidth := m.width * 70 / 100
	cells := buildCells(snap.Words, snap.WordIndex, snap.CharIndex, m.composer.Pending(), true)
	lines := visibleLines(wrapCells(cells, contentWidth), visibleLineCount)
	text := renderLines(lines)
	if contentWidth > 0 {
		text = lipgloss.NewStyle().Width(contentWidth).Render(text)
	}

	header := m.renderSelector(snap)
	if snap.Phase == model.PhaseRunning {
		header = renderStatsBar(snap)
	}
	parts := []string{header, "", text}
	if m.showKeyboard {
		parts = append(parts, "", renderKeyboard(nextExpected(snap)))
	}
	if m.notice != "" {
		parts = append(parts, "", footerStyle.Render(m.notice))
	}
	parts = append(parts, "", m.help.View(m.keys))
	return m.place(lipgloss.JoinVertical(lipgloss.Center, parts...))
}

func (m *Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderStatsBar shows live numbers while a session is running.
func renderStatsBar(snap model.Snapshot) string {
	segments := []string{
		fmt.Sprintf("%d WPM", snap.LiveWPM),
		fmt.Sprintf("%d%%", snap.LiveAccuracy),
	}
	elapsed := int(snap.ElapsedSeconds)
	switch snap.Config.Mode {
	case model.ModeWords:
		segments = append(segments, fmt.Sprintf("%d/%d", snap.CompletedWords(), snap.Config.Value))
		segments = append(segments, fmt.Sprintf("%ds", elapsed))
	case model.ModeTime:
		remaining := snap.Config.Value - elapsed
		if remaining < 0 {
			remaining = 0
		}
		segments = append(segments, fmt.Sprintf("%ds left", remaining))
	default:
		segments = append(segments, fmt.Sprintf("%ds", elapsed))
	}
	return accentStyle.Render(strings.Join(segments, "  "))
}

// renderSelector shows the lesson and mode choices while idle.
func (m *Model) renderSelector(snap model.Snapshot) string {
	lesson := snap.Lesson
	lessonLine := fmt.Sprintf("%d. %s · %s", lesson.ID, lesson.LabelHi, lesson.LabelEn)
	if lesson.Stage != "" {
		lessonLine += footerStyle.Render("  [" + lesson.Stage + "]")
	}

	modes := make([]string, 0, len(model.Modes))
	for _, mode := range model.Modes {
		label := string(mode)
		if mode == snap.Config.Mode {
			label = accentStyle.Render(label)
		} else {
			label = footerStyle.Render(label)
		}
		modes = append(modes, label)
	}
	presets := modePresets[snap.Config.Mode]
	values := make([]string, 0, len(presets))
	for _, v := range presets {
		label := presetLabel(snap.Config.Mode, v)
		if label == "" {
			continue
		}
		if v == snap.Config.Value {
			label = accentStyle.Render(label)
		} else {
			label = footerStyle.Render(label)
		}
		values = append(values, label)
	}
	modeLine := strings.Join(modes, " ")
	if len(values) > 0 {
		modeLine += footerStyle.Render("  |  ") + strings.Join(values, " ")
	}
	return lipgloss.JoinVertical(lipgloss.Center, lessonLine, modeLine)
}

func presetLabel(mode model.Mode, value int) string {
	switch mode {
	case model.ModeQuote:
		return string(quotes.BucketFor(value))
	case model.ModeZen:
		return ""
	default:
		return fmt.Sprintf("%d", value)
	}
}

// nextExpected returns the grapheme the user should type next. At the end
// of a word it is the space that advances.
func nextExpected(snap model.Snapshot) string {
	if snap.WordIndex >= len(snap.Words) {
		return ""
	}
	chars := snap.Words[snap.WordIndex].Chars
	if snap.CharIndex < len(chars) && chars[snap.CharIndex].Status == model.StatusPending {
		return chars[snap.CharIndex].Expected
	}
	return " "
}

// renderKeyboard draws the Inscript layout and highlights the keys that
// type cluster.
func renderKeyboard(cluster string) string {
	hot := map[string]bool{}
	shift := false
	for _, s := range layout.StrokesFor(cluster) {
		hot[s.Key.Code] = true
		shift = shift || s.Shift
	}
	if shift {
		hot["ShiftLeft"] = true
		hot["ShiftRight"] = true
	}

	rows := make([]string, 0, len(layout.Rows))
	for _, row := range layout.Rows {
		keys := make([]string, 0, len(row))
		for _, k := range row {
			label := keyLabel(k.Display(shift))
			style := keyStyle
			if hot[k.Code] {
				style = keyHotStyle
			}
			keys = append(keys, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// keyLabel prefixes combining marks with a dotted circle so they render on
// their own.
func keyLabel(s string) string {
	if s == "" {
		return " "
	}
	r := []rune(s)[0]
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) {
		return dottedCircle + s
	}
	return s
}

func (m *Model) renderResults(snap model.Snapshot) string {
	res := *snap.Result
	title := fmt.Sprintf("%s %d", snap.Config.Mode, snap.Config.Value)
	if snap.Config.Mode != model.ModeQuote {
		title += " · " + snap.Lesson.LabelHi
	}
	total := res.CorrectChars + res.IncorrectChars + res.MissedChars
	rows := [][]string{
		{"शुद्ध WPM", fmt.Sprintf("%d", res.NetWPM)},
		{"कच्चा WPM", fmt.Sprintf("%d", res.RawWPM)},
		{"सटीकता", fmt.Sprintf("%d%%", res.Accuracy)},
		{"समय", fmt.Sprintf("%ds", res.TotalTimeSeconds)},
		{"अक्षर", fmt.Sprintf("%d/%d", res.CorrectChars, total)},
		{"सही / गलत / अतिरिक्त / छूटे", fmt.Sprintf("%d / %d / %d / %d", res.CorrectChars, res.IncorrectChars, res.ExtraChars, res.MissedChars)},
	}
	if len(res.WPMHistory) > 1 {
		rows = append(rows, []string{"WPM", stats.HistorySparkline(res.WPMHistory, 3)})
	}
	lines := stats.FormatTable(nil, rows, map[int]bool{1: true})
	parts := []string{accentStyle.Render(title), ""}
	parts = append(parts, lines...)
	parts = append(parts, "", m.help.View(m.resultKeys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
