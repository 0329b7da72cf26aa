package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/akshara/internal/grapheme"
	"github.com/verte-zerg/akshara/internal/lessons"
	"github.com/verte-zerg/akshara/internal/model"
	"github.com/verte-zerg/akshara/internal/quotes"
)

func TestGenerateWordsCoversBeforeRepeating(t *testing.T) {
	g := NewWithSeed(1)
	lesson := lessons.Default().Resolve(11)
	n := len(lesson.Words)

	got := g.Generate(lesson, n)
	require.Len(t, got, n)
	seen := map[string]bool{}
	for _, w := range got {
		assert.Contains(t, lesson.Words, w)
		assert.False(t, seen[w], "word %q repeated within one cycle", w)
		seen[w] = true
	}
}

func TestGenerateWordsCyclesShuffle(t *testing.T) {
	g := NewWithSeed(2)
	lesson := model.Lesson{ID: 1, Words: []string{"क", "ख", "ग"}}
	got := g.Generate(lesson, 8)
	require.Len(t, got, 8)
	for i := range got {
		assert.Equal(t, got[i%3], got[i])
	}
}

func TestGenerateCombos(t *testing.T) {
	g := NewWithSeed(3)
	lesson := lessons.Default().Resolve(9)
	got := g.Generate(lesson, 50)
	require.Len(t, got, 50)
	for _, w := range got {
		assert.Contains(t, lesson.Combos, w)
	}
}

func TestGenerateKeyGroups(t *testing.T) {
	g := NewWithSeed(4)
	lesson := lessons.Default().Resolve(1)
	got := g.Generate(lesson, 100)
	require.Len(t, got, 100)
	for _, w := range got {
		clusters := grapheme.Segment(w)
		assert.GreaterOrEqual(t, len(clusters), 3)
		assert.LessOrEqual(t, len(clusters), 5)
		for _, c := range clusters {
			assert.Contains(t, lesson.Keys, c)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	g := NewWithSeed(5)
	assert.Empty(t, g.Generate(model.Lesson{ID: 1}, 10))
	assert.Empty(t, g.Generate(lessons.Default().First(), 0))
}

func TestShuffleKeepsInput(t *testing.T) {
	g := NewWithSeed(6)
	in := []string{"a", "b", "c", "d"}
	out := g.Shuffle(in)
	assert.ElementsMatch(t, in, out)
	assert.Equal(t, []string{"a", "b", "c", "d"}, in)
}

func TestForConfigModes(t *testing.T) {
	g := NewWithSeed(7)
	lesson := lessons.Default().First()
	bank := quotes.Default()

	assert.Len(t, g.ForConfig(model.Config{Mode: model.ModeWords, Value: 10}, lesson, bank), 10)
	assert.Len(t, g.ForConfig(model.Config{Mode: model.ModeTime, Value: 15}, lesson, bank), 45)
	assert.Len(t, g.ForConfig(model.Config{Mode: model.ModeZen, Value: 3}, lesson, bank), ZenBuffer)
}

func TestCountIsBounded(t *testing.T) {
	assert.Equal(t, model.MaxWordsValue, Count(model.Config{Mode: model.ModeWords, Value: 1 << 40}))
	assert.Equal(t, model.MaxTimeValue*TimeWordsPerSecond, Count(model.Config{Mode: model.ModeTime, Value: 1 << 62}))
	assert.Equal(t, model.DefaultTimeValue*TimeWordsPerSecond, Count(model.Config{Mode: model.ModeTime, Value: -5}))
}

func TestForConfigQuoteUsesBucket(t *testing.T) {
	g := NewWithSeed(8)
	bank := quotes.Default()
	short := map[string]bool{}
	for _, q := range bank.InBucket(model.LengthShort) {
		short[q.Text] = true
	}
	for i := 0; i < 20; i++ {
		words := g.ForConfig(model.Config{Mode: model.ModeQuote, Value: 1}, model.Lesson{}, bank)
		require.NotEmpty(t, words)
		text := joinWords(words)
		assert.True(t, short[text], "quote %q is not a short quote", text)
	}
}

func TestQuoteFallsBackToWholeBank(t *testing.T) {
	g := NewWithSeed(9)
	bank := quotes.New([]model.Quote{{Text: "एक दो", Length: model.LengthLong}})
	q, ok := g.Quote(bank, model.LengthShort)
	require.True(t, ok)
	assert.Equal(t, "एक दो", q.Text)

	_, ok = g.Quote(quotes.New(nil), model.LengthShort)
	assert.False(t, ok)
}

func joinWords(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += " "
		}
		out += w
	}
	return out
}
