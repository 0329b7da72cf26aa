package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/verte-zerg/akshara/internal/generator"
	"github.com/verte-zerg/akshara/internal/lessons"
	"github.com/verte-zerg/akshara/internal/model"
	"github.com/verte-zerg/akshara/internal/quotes"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recordingPrefs struct {
	saved []model.Config
}

func (p *recordingPrefs) Save(_ context.Context, cfg model.Config) {
	p.saved = append(p.saved, cfg)
}

// EngineSuite drives the session state machine with a fake clock.
type EngineSuite struct {
	suite.Suite
	ctx    context.Context
	clock  *fakeClock
	prefs  *recordingPrefs
	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &fakeClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	s.prefs = &recordingPrefs{}
	s.engine = New(lessons.Default(), quotes.Default(), generator.NewWithSeed(42), s.prefs, WithClock(s.clock.Now))
}

func (s *EngineSuite) expected(word int) []string {
	snap := s.engine.Snapshot()
	out := make([]string, 0, len(snap.Words[word].Chars))
	for _, ch := range snap.Words[word].Chars {
		out = append(out, ch.Expected)
	}
	return out
}

func (s *EngineSuite) TestConfigureStartsIdle() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeWords, Value: 10})

	snap := s.engine.Snapshot()
	s.Equal(model.PhaseIdle, snap.Phase)
	s.Len(snap.Words, 10)
	s.Equal(0, snap.WordIndex)
	s.Equal(0, snap.CharIndex)
	s.Zero(snap.Counters.Typed())
	s.Nil(snap.Result)
	s.Equal([]model.Config{{LessonID: 1, Mode: model.ModeWords, Value: 10}}, s.prefs.saved)
}

func (s *EngineSuite) TestConfigureUnknownLessonFallsBack() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 999, Mode: model.ModeWords, Value: 5})

	s.Equal(1, s.engine.Lesson().ID)
	s.Equal(1, s.engine.Config().LessonID)
	s.Equal(1, s.prefs.saved[0].LessonID)
}

func (s *EngineSuite) TestConfigureClampsHugeValue() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeWords, Value: 1 << 40})
	s.Equal(model.MaxWordsValue, s.engine.Config().Value)
	s.Len(s.engine.Snapshot().Words, model.MaxWordsValue)

	s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeTime, Value: 1 << 62})
	s.Equal(model.MaxTimeValue, s.engine.Config().Value)
	s.Len(s.engine.Snapshot().Words, model.MaxTimeValue*generator.TimeWordsPerSecond)
	s.Equal(model.MaxTimeValue, s.prefs.saved[1].Value)
}

func (s *EngineSuite) TestConfigureBumpsEpoch() {
	s.engine.Configure(s.ctx, model.DefaultConfig())
	first := s.engine.Epoch()
	s.engine.Reset(s.ctx)
	s.Greater(s.engine.Epoch(), first)
}

func (s *EngineSuite) TestSubmitEmptyIsIgnored() {
	s.engine.Configure(s.ctx, model.DefaultConfig())
	s.engine.SubmitText(nil)
	s.engine.SubmitText([]string{""})
	s.Equal(model.PhaseIdle, s.engine.Phase())
}

func (s *EngineSuite) TestRoundTripWordIsAllCorrect() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 11, Mode: model.ModeWords, Value: 5})
	want := s.expected(0)

	for _, g := range want {
		s.engine.SubmitText([]string{g})
	}

	snap := s.engine.Snapshot()
	s.Equal(model.PhaseRunning, snap.Phase)
	s.Equal(s.clock.now, snap.StartedAt)
	for _, ch := range snap.Words[0].Chars {
		s.Equal(model.StatusCorrect, ch.Status)
	}
	s.Equal(len(want), snap.Counters.Correct)
	s.Zero(snap.Counters.Incorrect)
	s.Equal(len(want), snap.CharIndex)
}

func (s *EngineSuite) TestSubmitStringSegments() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 11, Mode: model.ModeWords, Value: 5})
	want := s.expected(0)
	word := ""
	for _, g := range want {
		word += g
	}

	s.engine.SubmitString(word)

	snap := s.engine.Snapshot()
	s.Equal(len(want), snap.Counters.Correct)
}

func (s *EngineSuite) TestIncorrectAndExtraCells() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeWords, Value: 3})
	n := len(s.expected(0))

	wrong := make([]string, n+2)
	for i := range wrong {
		wrong[i] = "x"
	}
	s.engine.SubmitText(wrong)

	snap := s.engine.Snapshot()
	s.Equal(n, snap.Counters.Incorrect)
	s.Equal(2, snap.Counters.Extra)
	s.Len(snap.Words[0].Chars, n+2)
	s.Equal(model.StatusExtra, snap.Words[0].Chars[n].Status)
	s.Empty(snap.Words[0].Chars[n].Expected)
	s.Equal(0, snap.WordIndex)
}

func (s *EngineSuite) TestScenarioWordsModeFinishesAfterTarget() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeWords, Value: 10})
	s.Len(s.engine.Snapshot().Words, 10)

	for i := 0; i < 10; i++ {
		s.engine.SubmitText(s.expected(i))
		s.clock.Advance(time.Second)
		s.engine.AdvanceWord()
	}

	snap := s.engine.Snapshot()
	s.Equal(model.PhaseFinished, snap.Phase)
	s.Require().NotNil(snap.Result)
	s.Zero(snap.Result.MissedChars)
	s.Zero(snap.Result.IncorrectChars)
	s.Equal(100, snap.Result.Accuracy)
	s.Equal(10, snap.Result.TotalTimeSeconds)
	s.Equal(snap.Counters.Correct, snap.Result.CorrectChars)
}

func (s *EngineSuite) TestScenarioTimeModeExpiresOnce() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeTime, Value: 15})
	s.Len(s.engine.Snapshot().Words, 45)
	start := s.clock.now

	s.engine.SubmitText(s.expected(0)[:1])
	s.engine.Tick(start.Add(14 * time.Second))
	s.Equal(model.PhaseRunning, s.engine.Phase())

	s.engine.Tick(start.Add(15 * time.Second))
	s.Equal(model.PhaseFinished, s.engine.Phase())
	first, ok := s.engine.Result()
	s.Require().True(ok)
	s.Equal(15, first.TotalTimeSeconds)
	s.Len(first.WPMHistory, 15)

	s.engine.Tick(start.Add(20 * time.Second))
	second, _ := s.engine.Result()
	s.Equal(first, second)
	s.InDelta(15.0, s.engine.Snapshot().ElapsedSeconds, 1e-9)
}

func (s *EngineSuite) TestScenarioBackspaceRemovesExtraCell() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeWords, Value: 3})
	want := s.expected(0)

	for _, g := range want {
		s.engine.SubmitText([]string{g})
	}
	s.engine.SubmitText([]string{"ज"})
	s.Len(s.engine.Snapshot().Words[0].Chars, len(want)+1)

	s.engine.Backspace()

	snap := s.engine.Snapshot()
	s.Len(snap.Words[0].Chars, len(want))
	s.Zero(snap.Counters.Extra)
	s.Equal(len(want), snap.Counters.Correct)
	s.Equal(len(want), snap.CharIndex)
}

func (s *EngineSuite) TestBackspaceResetsCell() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeWords, Value: 3})
	s.engine.SubmitText([]string{"x"})
	s.engine.Backspace()

	snap := s.engine.Snapshot()
	s.Equal(model.StatusPending, snap.Words[0].Chars[0].Status)
	s.Empty(snap.Words[0].Chars[0].Typed)
	s.Zero(snap.Counters.Incorrect)
	s.Equal(0, snap.CharIndex)
}

func (s *EngineSuite) TestBackspaceAtColumnZeroIsIdempotent() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeWords, Value: 3})
	s.engine.Backspace()
	s.Equal(model.PhaseIdle, s.engine.Phase())

	s.engine.SubmitText(s.expected(0))
	s.engine.AdvanceWord()
	before := s.engine.Snapshot()
	for i := 0; i < 5; i++ {
		s.engine.Backspace()
	}
	after := s.engine.Snapshot()
	s.Equal(before.Counters, after.Counters)
	s.Equal(1, after.WordIndex)
	s.Equal(0, after.CharIndex)
}

func (s *EngineSuite) TestAdvanceWordIgnoredWhileIdle() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeWords, Value: 3})
	s.engine.AdvanceWord()
	snap := s.engine.Snapshot()
	s.Equal(0, snap.WordIndex)
	s.False(snap.Words[0].Completed)
}

func (s *EngineSuite) TestSkippedCellsCountAsMissed() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeWords, Value: 2})
	first := s.expected(0)
	second := s.expected(1)

	s.engine.SubmitText(first[:1])
	s.engine.AdvanceWord()
	s.engine.SubmitText(second)
	s.engine.AdvanceWord()

	res, ok := s.engine.Result()
	s.Require().True(ok)
	s.Equal(len(first)-1, res.MissedChars)
	s.Equal(1+len(second), res.CorrectChars)
}

func (s *EngineSuite) TestTimeModeIgnoresTrailingPartialWord() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeTime, Value: 15})
	first := s.expected(0)
	start := s.clock.now

	s.engine.SubmitText(first)
	s.engine.AdvanceWord()
	s.engine.SubmitText(s.expected(1)[:1])
	s.engine.Tick(start.Add(15 * time.Second))

	res, ok := s.engine.Result()
	s.Require().True(ok)
	s.Zero(res.MissedChars)
	s.Equal(len(first)+1, res.CorrectChars)
}

func (s *EngineSuite) TestScenarioQuoteModeUsesShortQuotes() {
	short := map[string]bool{}
	for _, q := range quotes.Default().InBucket(model.LengthShort) {
		for _, w := range quotes.Words(q) {
			short[w] = true
		}
	}
	for i := 0; i < 10; i++ {
		s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeQuote, Value: 1})
		snap := s.engine.Snapshot()
		s.NotEmpty(snap.Words)
		for wi := range snap.Words {
			word := ""
			for _, ch := range snap.Words[wi].Chars {
				word += ch.Expected
			}
			s.True(short[word], "word %q is not from a short quote", word)
		}
	}
}

func (s *EngineSuite) TestScenarioResetNeverCarriesState() {
	cfg := model.Config{LessonID: 1, Mode: model.ModeWords, Value: 1}
	s.engine.Configure(s.ctx, cfg)
	s.engine.SubmitText([]string{"x", "y"})
	s.engine.AdvanceWord()
	s.Equal(model.PhaseFinished, s.engine.Phase())

	s.engine.Configure(s.ctx, cfg)

	snap := s.engine.Snapshot()
	s.Equal(model.PhaseIdle, snap.Phase)
	s.Zero(snap.Counters.Correct)
	s.Zero(snap.Counters.Incorrect)
	s.Zero(snap.Counters.Extra)
	s.Nil(snap.Result)
	s.True(snap.StartedAt.IsZero())
}

func (s *EngineSuite) TestFinishedSessionIgnoresInput() {
	cfg := model.Config{LessonID: 1, Mode: model.ModeWords, Value: 1}
	s.engine.Configure(s.ctx, cfg)
	s.engine.SubmitText([]string{"x"})
	s.engine.AdvanceWord()
	before := s.engine.Snapshot()

	s.engine.SubmitText([]string{"y"})
	s.engine.Backspace()
	s.engine.AdvanceWord()
	s.engine.Finish()

	s.Equal(before, s.engine.Snapshot())
}

func (s *EngineSuite) TestZenPoolExtends() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeZen})
	s.Len(s.engine.Snapshot().Words, generator.ZenBuffer)

	for i := 0; i < generator.ZenBuffer; i++ {
		s.engine.SubmitText([]string{"x"})
		s.engine.AdvanceWord()
	}

	snap := s.engine.Snapshot()
	s.Equal(model.PhaseRunning, snap.Phase)
	s.Equal(generator.ZenBuffer, snap.WordIndex)
	s.Len(snap.Words, 2*generator.ZenBuffer)

	s.engine.Finish()
	s.Equal(model.PhaseFinished, s.engine.Phase())
}

func (s *EngineSuite) TestFinishBeforeStartIsNoop() {
	s.engine.Configure(s.ctx, model.DefaultConfig())
	s.engine.Finish()
	s.Equal(model.PhaseIdle, s.engine.Phase())
	_, ok := s.engine.Result()
	s.False(ok)
}

func (s *EngineSuite) TestLiveStats() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeTime, Value: 60})
	start := s.clock.now
	s.engine.SubmitText([]string{"x"})
	s.engine.SubmitText(s.expected(0)[1:])
	s.engine.Tick(start.Add(6 * time.Second))

	snap := s.engine.Snapshot()
	typed := len(s.expected(0))
	s.Equal(typed-1, snap.Counters.Correct)
	s.InDelta(6.0, snap.ElapsedSeconds, 1e-9)
	s.Equal(int(float64(typed-1)/5/0.1+0.5), snap.LiveWPM)
	s.Len(snap.Words, 180)
}

func (s *EngineSuite) TestSnapshotIsACopy() {
	s.engine.Configure(s.ctx, model.Config{LessonID: 1, Mode: model.ModeWords, Value: 3})
	snap := s.engine.Snapshot()
	snap.Words[0].Chars[0].Status = model.StatusCorrect
	s.Equal(model.StatusPending, s.engine.Snapshot().Words[0].Chars[0].Status)
}

func (s *EngineSuite) TestNilPreferencesAllowed() {
	e := New(lessons.Default(), quotes.Default(), generator.NewWithSeed(1), nil)
	e.Configure(s.ctx, model.DefaultConfig())
	s.Equal(model.PhaseIdle, e.Phase())
}
