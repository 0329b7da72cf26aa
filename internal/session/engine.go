// Package session implements the typing test state machine.
package session

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/akshara/internal/generator"
	"github.com/verte-zerg/akshara/internal/grapheme"
	"github.com/verte-zerg/akshara/internal/lessons"
	"github.com/verte-zerg/akshara/internal/model"
	"github.com/verte-zerg/akshara/internal/quotes"
	"github.com/verte-zerg/akshara/internal/stats"
)

// Preferences persists the last used session configuration.
type Preferences interface {
	Save(ctx context.Context, cfg model.Config)
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for start and finish timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

type state struct {
	phase     model.Phase
	words     []model.WordState
	wordIndex int
	charIndex int
	startedAt time.Time
	elapsed   float64
	counters  model.Counters
	history   []int
	result    *model.Result
}

// Engine owns one typing session at a time. It is not safe for concurrent
// use; callers serialize events through a single loop.
type Engine struct {
	catalog *lessons.Catalog
	quotes  *quotes.Bank
	gen     *generator.Generator
	prefs   Preferences
	now     func() time.Time

	cfg    model.Config
	lesson model.Lesson
	st     state
	epoch  uint64
}

// New returns an engine with no session configured. Call Configure before
// submitting input.
func New(catalog *lessons.Catalog, bank *quotes.Bank, gen *generator.Generator, prefs Preferences, opts ...Option) *Engine {
	if gen == nil {
		gen = generator.New()
	}
	e := &Engine{
		catalog: catalog,
		quotes:  bank,
		gen:     gen,
		prefs:   prefs,
		now:     time.Now,
		st:      state{phase: model.PhaseIdle, words: []model.WordState{}},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Configure starts a fresh session for cfg and persists it. Any running
// session is discarded.
func (e *Engine) Configure(ctx context.Context, cfg model.Config) {
	cfg = cfg.Normalize()
	e.lesson = e.catalog.Resolve(cfg.LessonID)
	cfg.LessonID = e.lesson.ID
	e.cfg = cfg

	pool := e.gen.ForConfig(cfg, e.lesson, e.quotes)
	e.st = state{
		phase: model.PhaseIdle,
		words: buildWords(pool),
	}
	e.epoch++
	log.Debug().
		Int("lesson", cfg.LessonID).
		Str("mode", string(cfg.Mode)).
		Int("value", cfg.Value).
		Int("words", len(pool)).
		Uint64("epoch", e.epoch).
		Msg("session configured")

	if e.prefs != nil {
		e.prefs.Save(ctx, cfg)
	}
}

// Reset restarts the session with the current configuration.
func (e *Engine) Reset(ctx context.Context) {
	e.Configure(ctx, e.cfg)
}

// Config returns the active configuration.
func (e *Engine) Config() model.Config {
	return e.cfg
}

// Lesson returns the lesson the active session was generated from.
func (e *Engine) Lesson() model.Lesson {
	return e.lesson
}

// Phase returns the session phase.
func (e *Engine) Phase() model.Phase {
	return e.st.phase
}

// Epoch identifies the active session. It changes on every Configure, so
// timers scheduled for an older session can be recognized and dropped.
func (e *Engine) Epoch() uint64 {
	return e.epoch
}

// SubmitText writes committed graphemes into the current word. The first
// call of a session starts the timer.
func (e *Engine) SubmitText(graphemes []string) {
	if e.st.phase == model.PhaseFinished {
		return
	}
	input := make([]string, 0, len(graphemes))
	for _, g := range graphemes {
		if g != "" {
			input = append(input, g)
		}
	}
	if len(input) == 0 {
		return
	}
	if e.st.phase == model.PhaseIdle {
		e.st.phase = model.PhaseRunning
		e.st.startedAt = e.now()
	}

	for _, g := range input {
		if e.st.wordIndex >= len(e.st.words) {
			break
		}
		word := &e.st.words[e.st.wordIndex]
		if e.st.charIndex < len(word.Chars) {
			cell := &word.Chars[e.st.charIndex]
			cell.Typed = g
			if g == cell.Expected {
				cell.Status = model.StatusCorrect
				e.st.counters.Correct++
			} else {
				cell.Status = model.StatusIncorrect
				e.st.counters.Incorrect++
			}
		} else {
			word.Chars = append(word.Chars, model.CharState{Typed: g, Status: model.StatusExtra})
			e.st.counters.Extra++
		}
		e.st.charIndex++
	}
}

// SubmitString segments text into graphemes and submits them.
func (e *Engine) SubmitString(text string) {
	e.SubmitText(grapheme.Segment(text))
}

// AdvanceWord completes the current word and moves to the next one, ending
// the session when the pool or the word target is exhausted.
func (e *Engine) AdvanceWord() {
	if e.st.phase != model.PhaseRunning {
		return
	}
	if e.st.wordIndex < len(e.st.words) {
		e.st.words[e.st.wordIndex].Completed = true
	}
	next := e.st.wordIndex + 1

	if e.cfg.Mode == model.ModeWords && next >= e.cfg.Value {
		e.finalizeAt(e.now())
		return
	}
	if next >= len(e.st.words) && e.cfg.Mode == model.ModeZen {
		e.extendPool()
	}
	if next >= len(e.st.words) {
		e.finalizeAt(e.now())
		return
	}
	e.st.wordIndex = next
	e.st.charIndex = 0
}

func (e *Engine) extendPool() {
	more := e.gen.Generate(e.lesson, generator.ZenBuffer)
	e.st.words = append(e.st.words, buildWords(more)...)
	log.Debug().Int("added", len(more)).Int("total", len(e.st.words)).Msg("zen pool extended")
}

// Backspace clears the previous cell of the current word. It never crosses
// into the previous word.
func (e *Engine) Backspace() {
	if e.st.phase != model.PhaseRunning || e.st.charIndex == 0 {
		return
	}
	if e.st.wordIndex >= len(e.st.words) {
		return
	}
	word := &e.st.words[e.st.wordIndex]
	e.st.charIndex--
	if e.st.charIndex >= len(word.Chars) {
		return
	}
	cell := &word.Chars[e.st.charIndex]
	switch cell.Status {
	case model.StatusExtra:
		word.Chars = append(word.Chars[:e.st.charIndex], word.Chars[e.st.charIndex+1:]...)
		e.st.counters.Extra = decrement(e.st.counters.Extra)
		return
	case model.StatusCorrect:
		e.st.counters.Correct = decrement(e.st.counters.Correct)
	case model.StatusIncorrect:
		e.st.counters.Incorrect = decrement(e.st.counters.Incorrect)
	}
	cell.Typed = ""
	cell.Status = model.StatusPending
}

func decrement(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}

// Tick updates the elapsed time of a running session and ends time-mode
// sessions whose duration has passed. Ticks outside the running phase are
// ignored.
func (e *Engine) Tick(now time.Time) {
	if e.st.phase != model.PhaseRunning {
		return
	}
	e.st.elapsed = elapsedSeconds(e.st.startedAt, now)
	e.sampleHistory()
	if e.cfg.Mode == model.ModeTime && e.st.elapsed >= float64(e.cfg.Value) {
		e.finalizeAt(now)
	}
}

// sampleHistory records the live WPM once for every whole second elapsed.
func (e *Engine) sampleHistory() {
	for sec := len(e.st.history) + 1; float64(sec) <= e.st.elapsed; sec++ {
		e.st.history = append(e.st.history, stats.WPM(e.st.counters.Correct, float64(sec)))
	}
}

// Finish ends a running session now.
func (e *Engine) Finish() {
	if e.st.phase != model.PhaseRunning {
		return
	}
	e.finalizeAt(e.now())
}

func (e *Engine) finalizeAt(now time.Time) {
	if e.st.phase != model.PhaseRunning {
		return
	}
	elapsed := 0.0
	if !e.st.startedAt.IsZero() {
		elapsed = elapsedSeconds(e.st.startedAt, now)
	}
	e.st.elapsed = elapsed
	e.st.phase = model.PhaseFinished

	countUpTo := len(e.st.words)
	if e.cfg.Mode == model.ModeTime || e.cfg.Mode == model.ModeZen {
		countUpTo = min(e.st.wordIndex+1, len(e.st.words))
	}
	var res model.Result
	for wi := 0; wi < countUpTo; wi++ {
		w := e.st.words[wi]
		for _, ch := range w.Chars {
			switch ch.Status {
			case model.StatusCorrect:
				res.CorrectChars++
			case model.StatusIncorrect:
				res.IncorrectChars++
			case model.StatusExtra:
				res.ExtraChars++
			case model.StatusPending:
				if wi < e.st.wordIndex || (wi == e.st.wordIndex && w.Completed) {
					res.MissedChars++
				}
			}
		}
	}
	typed := res.CorrectChars + res.IncorrectChars + res.ExtraChars
	res.RawWPM = stats.WPM(typed, elapsed)
	res.NetWPM = stats.WPM(res.CorrectChars, elapsed)
	res.Accuracy = stats.Accuracy(res.CorrectChars, typed)
	res.TotalTimeSeconds = int(math.Round(elapsed))

	e.sampleHistory()
	res.WPMHistory = append([]int(nil), e.st.history...)
	e.st.result = &res

	log.Info().
		Int("lesson", e.cfg.LessonID).
		Str("mode", string(e.cfg.Mode)).
		Int("wpm", res.NetWPM).
		Int("raw", res.RawWPM).
		Int("accuracy", res.Accuracy).
		Int("seconds", res.TotalTimeSeconds).
		Msg("session finished")
}

// Result returns the final report once the session has finished.
func (e *Engine) Result() (model.Result, bool) {
	if e.st.result == nil {
		return model.Result{}, false
	}
	res := *e.st.result
	res.WPMHistory = append([]int(nil), res.WPMHistory...)
	return res, true
}

// Snapshot returns a deep copy of the session for rendering.
func (e *Engine) Snapshot() model.Snapshot {
	words := make([]model.WordState, len(e.st.words))
	for i, w := range e.st.words {
		chars := make([]model.CharState, len(w.Chars))
		copy(chars, w.Chars)
		words[i] = model.WordState{Chars: chars, Completed: w.Completed}
	}
	snap := model.Snapshot{
		Config:         e.cfg,
		Lesson:         e.lesson,
		Phase:          e.st.phase,
		Words:          words,
		WordIndex:      e.st.wordIndex,
		CharIndex:      e.st.charIndex,
		StartedAt:      e.st.startedAt,
		ElapsedSeconds: e.st.elapsed,
		Counters:       e.st.counters,
		LiveWPM:        stats.WPM(e.st.counters.Correct, e.st.elapsed),
		LiveAccuracy:   stats.Accuracy(e.st.counters.Correct, e.st.counters.Typed()),
	}
	if res, ok := e.Result(); ok {
		snap.Result = &res
	}
	return snap
}

func buildWords(pool []string) []model.WordState {
	words := make([]model.WordState, 0, len(pool))
	for _, w := range pool {
		clusters := grapheme.Segment(w)
		chars := make([]model.CharState, len(clusters))
		for i, g := range clusters {
			chars[i] = model.CharState{Expected: g, Status: model.StatusPending}
		}
		words = append(words, model.WordState{Chars: chars})
	}
	return words
}

func elapsedSeconds(start, now time.Time) float64 {
	d := now.Sub(start).Seconds()
	if d < 0 {
		return 0
	}
	return d
}
