// Package generator builds practice word sequences.
package generator

import (
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/akshara/internal/model"
	"github.com/verte-zerg/akshara/internal/quotes"
)

const (
	// ZenBuffer is the number of words generated for zen mode at a time.
	ZenBuffer = 200
	// TimeWordsPerSecond sizes the time-mode buffer so it does not run out.
	TimeWordsPerSecond = 3

	minGroup = 3
	maxGroup = 5
)

// Generator produces randomized practice words.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate returns count words for a lesson. Word lessons cycle through one
// shuffle of their list, combo lessons draw combos with replacement, and key
// lessons join three to five random keys per word.
func (g *Generator) Generate(lesson model.Lesson, count int) []string {
	if count <= 0 {
		return []string{}
	}
	if len(lesson.Words) > 0 {
		shuffled := g.Shuffle(lesson.Words)
		result := make([]string, 0, count)
		for i := 0; i < count; i++ {
			result = append(result, shuffled[i%len(shuffled)])
		}
		return result
	}
	if len(lesson.Combos) > 0 {
		result := make([]string, 0, count)
		for i := 0; i < count; i++ {
			result = append(result, lesson.Combos[g.rnd.Intn(len(lesson.Combos))])
		}
		return result
	}
	if len(lesson.Keys) == 0 {
		return []string{}
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		size := minGroup + g.rnd.Intn(maxGroup-minGroup+1)
		var b strings.Builder
		for j := 0; j < size; j++ {
			b.WriteString(lesson.Keys[g.rnd.Intn(len(lesson.Keys))])
		}
		result = append(result, b.String())
	}
	return result
}

// Shuffle returns a Fisher-Yates shuffled copy of items.
func (g *Generator) Shuffle(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Quote picks a random quote from a bucket, falling back to the whole bank
// when the bucket is empty.
func (g *Generator) Quote(bank *quotes.Bank, length model.LengthBucket) (model.Quote, bool) {
	candidates := bank.InBucket(length)
	if len(candidates) == 0 {
		candidates = bank.All()
	}
	if len(candidates) == 0 {
		return model.Quote{}, false
	}
	return candidates[g.rnd.Intn(len(candidates))], true
}

// Count returns the number of words a mode needs up front. Values are
// normalized first so an oversized time or word count stays bounded.
func Count(cfg model.Config) int {
	cfg = cfg.Normalize()
	switch cfg.Mode {
	case model.ModeWords:
		return cfg.Value
	case model.ModeTime:
		return cfg.Value * TimeWordsPerSecond
	case model.ModeZen:
		return ZenBuffer
	default:
		return 0
	}
}

// ForConfig builds the word pool for a session. Quote mode ignores the lesson.
func (g *Generator) ForConfig(cfg model.Config, lesson model.Lesson, bank *quotes.Bank) []string {
	if cfg.Mode == model.ModeQuote {
		if bank == nil {
			return []string{}
		}
		q, ok := g.Quote(bank, quotes.BucketFor(cfg.Value))
		if !ok {
			return []string{}
		}
		return quotes.Words(q)
	}
	return g.Generate(lesson, Count(cfg))
}
