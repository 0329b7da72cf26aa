// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/akshara/internal/layout"
	"github.com/verte-zerg/akshara/internal/lessons"
	"github.com/verte-zerg/akshara/internal/model"
	"github.com/verte-zerg/akshara/internal/session"
)

const tickInterval = 100 * time.Millisecond

// Keyboard selects how key presses are turned into Devanagari text.
type Keyboard string

// Keyboard modes.
const (
	// KeyboardNative passes runes through; the OS layout produces Devanagari.
	KeyboardNative Keyboard = "native"
	// KeyboardQwerty maps US QWERTY key presses onto the Inscript layout.
	KeyboardQwerty Keyboard = "qwerty"
)

// ParseKeyboard parses a keyboard mode name. Empty means native.
func ParseKeyboard(name string) (Keyboard, error) {
	switch Keyboard(strings.ToLower(strings.TrimSpace(name))) {
	case KeyboardNative, "":
		return KeyboardNative, nil
	case KeyboardQwerty:
		return KeyboardQwerty, nil
	default:
		return "", fmt.Errorf("unknown keyboard %q (use native or qwerty)", name)
	}
}

// Options configure the typing UI.
type Options struct {
	Compose      session.ComposeMode
	Keyboard     Keyboard
	ShowKeyboard bool
}

// modePresets are the values offered for each mode, in cycle order.
var modePresets = map[model.Mode][]int{
	model.ModeTime:  {15, 30, 60},
	model.ModeWords: {10, 25, 50},
	model.ModeQuote: {1, 2, 3},
	model.ModeZen:   {0},
}

type tickMsg struct {
	epoch uint64
	at    time.Time
}

func tickCmd(epoch uint64) tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg{epoch: epoch, at: t}
	})
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	ctx      context.Context
	engine   *session.Engine
	catalog  *lessons.Catalog
	composer *session.Composer
	keyboard Keyboard

	keys       keyMap
	resultKeys resultKeyMap
	help       help.Model

	width  int
	height int

	tabPressed   bool
	showKeyboard bool
	notice       string

	lastResult  *model.Result
	resultEpoch uint64
	lastConfig  model.Config
	lastLesson  model.Lesson
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	extraStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8071A"))
	missedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Strikethrough(true)
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = pendingStyle.Underline(true)
	composingStyle   = currentWordStyle.Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	accentStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	keyStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3A3A3A")).Padding(0, 1)
	keyHotStyle      = keyStyle.Foreground(lipgloss.Color("#141414")).Background(lipgloss.Color("#C89A3A")).BorderForeground(lipgloss.Color("#C89A3A"))
)

// NewModel constructs a typing TUI model around a configured engine.
func NewModel(ctx context.Context, engine *session.Engine, catalog *lessons.Catalog, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	kb := opts.Keyboard
	if kb != KeyboardQwerty {
		kb = KeyboardNative
	}
	return &Model{
		ctx:          ctx,
		engine:       engine,
		catalog:      catalog,
		composer:     session.NewComposer(opts.Compose),
		keyboard:     kb,
		keys:         defaultKeyMap(),
		resultKeys:   defaultResultKeyMap(),
		help:         help.New(),
		showKeyboard: opts.ShowKeyboard,
	}
}

// LastResult returns the most recent finished session, if any, with the
// config and lesson it ran with.
func (m *Model) LastResult() (model.Result, model.Config, model.Lesson, bool) {
	if m.lastResult == nil {
		return model.Result{}, model.Config{}, model.Lesson{}, false
	}
	return *m.lastResult, m.lastConfig, m.lastLesson, true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		if m.engine.Phase() == model.PhaseFinished {
			return m, m.handleResultKey(msg)
		}
		return m, m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.epoch != m.engine.Epoch() {
		return nil
	}
	m.engine.Tick(msg.at)
	m.syncResult()
	if m.engine.Phase() != model.PhaseRunning {
		return nil
	}
	return tickCmd(msg.epoch)
}

func (m *Model) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.resultKeys.Quit):
		return tea.Quit
	case key.Matches(msg, m.resultKeys.Again):
		m.restart()
	case key.Matches(msg, m.resultKeys.Next):
		cfg := m.engine.Config()
		cfg.LessonID = m.catalog.Next(cfg.LessonID)
		m.configure(cfg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	tab := m.tabPressed
	m.tabPressed = false
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case tab && msg.Type == tea.KeyEnter:
		m.restart()
		return nil
	case key.Matches(msg, m.keys.TabRestart):
		m.tabPressed = true
		return nil
	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return nil
	case key.Matches(msg, m.keys.Finish):
		m.commit(m.composer.Flush())
		m.engine.Finish()
		m.syncResult()
		return nil
	case key.Matches(msg, m.keys.Keyboard):
		m.showKeyboard = !m.showKeyboard
		return nil
	case key.Matches(msg, m.keys.NextLesson):
		m.changeSettings(func(cfg model.Config) model.Config {
			cfg.LessonID = m.catalog.Next(cfg.LessonID)
			return cfg
		})
		return nil
	case key.Matches(msg, m.keys.PrevLesson):
		m.changeSettings(func(cfg model.Config) model.Config {
			cfg.LessonID = m.catalog.Prev(cfg.LessonID)
			return cfg
		})
		return nil
	case key.Matches(msg, m.keys.CycleMode):
		m.changeSettings(nextMode)
		return nil
	case key.Matches(msg, m.keys.CycleValue):
		m.changeSettings(nextValue)
		return nil
	}

	wasIdle := m.engine.Phase() == model.PhaseIdle
	switch msg.Type {
	case tea.KeyBackspace:
		if !m.composer.Backspace() {
			m.engine.Backspace()
		}
	case tea.KeySpace:
		m.handleRunes([]rune{' '})
	case tea.KeyRunes:
		m.handleRunes(msg.Runes)
	default:
		return nil
	}
	m.syncResult()
	if wasIdle && m.engine.Phase() == model.PhaseRunning {
		return tickCmd(m.engine.Epoch())
	}
	return nil
}

// handleRunes feeds typed runes through the composer. A space commits any
// pending cluster and advances to the next word.
func (m *Model) handleRunes(runes []rune) {
	buf := make([]rune, 0, len(runes))
	for _, r := range runes {
		if m.keyboard == KeyboardQwerty {
			r = layout.Translate(r)
		}
		if r != ' ' {
			buf = append(buf, r)
			continue
		}
		m.commit(m.composer.Feed(buf))
		buf = buf[:0]
		m.commit(m.composer.Flush())
		m.engine.AdvanceWord()
	}
	if len(buf) > 0 {
		m.commit(m.composer.Feed(buf))
	}
}

func (m *Model) commit(clusters []string) {
	if len(clusters) == 0 {
		return
	}
	m.engine.SubmitText(clusters)
}

func (m *Model) changeSettings(update func(model.Config) model.Config) {
	if m.engine.Phase() == model.PhaseRunning {
		m.notice = "finish the test (esc) before changing settings"
		return
	}
	m.configure(update(m.engine.Config()))
}

func (m *Model) configure(cfg model.Config) {
	m.engine.Configure(m.ctx, cfg)
	m.composer.Reset()
	m.tabPressed = false
	log.Debug().Int("lesson", cfg.LessonID).Str("mode", string(cfg.Mode)).Int("value", cfg.Value).Msg("settings changed")
}

func (m *Model) restart() {
	m.engine.Reset(m.ctx)
	m.composer.Reset()
	m.tabPressed = false
}

// syncResult keeps a copy of the finished result so it survives restarts.
func (m *Model) syncResult() {
	if m.lastResult != nil && m.resultEpoch == m.engine.Epoch() {
		return
	}
	res, ok := m.engine.Result()
	if !ok {
		return
	}
	m.lastResult = &res
	m.resultEpoch = m.engine.Epoch()
	m.lastConfig = m.engine.Config()
	m.lastLesson = m.engine.Lesson()
}

func nextMode(cfg model.Config) model.Config {
	idx := 0
	for i, mode := range model.Modes {
		if mode == cfg.Mode {
			idx = i
		}
	}
	next := model.Modes[(idx+1)%len(model.Modes)]
	return model.Config{LessonID: cfg.LessonID, Mode: next}.Normalize()
}

func nextValue(cfg model.Config) model.Config {
	presets := modePresets[cfg.Mode]
	if len(presets) == 0 {
		return cfg
	}
	idx := -1
	for i, v := range presets {
		if v == cfg.Value {
			idx = i
		}
	}
	cfg.Value = presets[(idx+1)%len(presets)]
	return cfg
}
