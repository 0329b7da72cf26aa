// Package model defines shared data structures.
package model

import "time"

// Mode selects how a typing session ends.
type Mode string

// Supported test modes.
const (
	ModeWords Mode = "words"
	ModeTime  Mode = "time"
	ModeQuote Mode = "quote"
	ModeZen   Mode = "zen"
)

// Modes lists the test modes in display order.
var Modes = []Mode{ModeTime, ModeWords, ModeQuote, ModeZen}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeWords, ModeTime, ModeQuote, ModeZen:
		return true
	default:
		return false
	}
}

// Phase is the lifecycle state of a typing session.
type Phase string

// Session phases.
const (
	PhaseIdle     Phase = "idle"
	PhaseRunning  Phase = "running"
	PhaseFinished Phase = "finished"
)

// CharStatus is the status of one grapheme cell.
type CharStatus string

// Cell statuses.
const (
	StatusPending   CharStatus = "pending"
	StatusCorrect   CharStatus = "correct"
	StatusIncorrect CharStatus = "incorrect"
	StatusExtra     CharStatus = "extra"
)

// LengthBucket groups quotes by size.
type LengthBucket string

// Quote length buckets.
const (
	LengthShort  LengthBucket = "short"
	LengthMedium LengthBucket = "medium"
	LengthLong   LengthBucket = "long"
)

// Default session settings.
const (
	DefaultLessonID   = 1
	DefaultMode       = ModeTime
	DefaultTimeValue  = 30
	DefaultWordsValue = 25
	DefaultQuoteValue = 2
	MaxTimeValue      = 3600
	MaxWordsValue     = 1000
)

// Config defines the settings of one typing session.
type Config struct {
	LessonID int  `json:"lessonId"`
	Mode     Mode `json:"mode"`
	Value    int  `json:"value"`
}

// DefaultConfig returns the configuration used when nothing is stored.
func DefaultConfig() Config {
	return Config{LessonID: DefaultLessonID, Mode: DefaultMode, Value: DefaultTimeValue}
}

// Normalize replaces an unknown mode and out-of-range values with defaults.
// Time and word counts above their maximum are clamped to it.
func (c Config) Normalize() Config {
	if !c.Mode.Valid() {
		c.Mode = DefaultMode
	}
	if c.LessonID < 1 {
		c.LessonID = DefaultLessonID
	}
	switch c.Mode {
	case ModeTime:
		if c.Value <= 0 {
			c.Value = DefaultTimeValue
		}
		c.Value = min(c.Value, MaxTimeValue)
	case ModeWords:
		if c.Value <= 0 {
			c.Value = DefaultWordsValue
		}
		c.Value = min(c.Value, MaxWordsValue)
	case ModeQuote:
		if c.Value < 1 || c.Value > 3 {
			c.Value = DefaultQuoteValue
		}
	case ModeZen:
		if c.Value < 0 {
			c.Value = 0
		}
	}
	return c
}

// Lesson is one entry of the practice catalog.
type Lesson struct {
	ID      int      `yaml:"id"`
	Stage   string   `yaml:"stage"`
	LabelHi string   `yaml:"label_hi"`
	LabelEn string   `yaml:"label_en"`
	Keys    []string `yaml:"keys"`
	Words   []string `yaml:"words,omitempty"`
	Combos  []string `yaml:"combos,omitempty"`
}

// Quote is one entry of the quote bank.
type Quote struct {
	Text   string
	Source string
	Length LengthBucket
}

// CharState is one grapheme cell of a word.
type CharState struct {
	Expected string
	Typed    string
	Status   CharStatus
}

// WordState holds the cells of one practice word.
type WordState struct {
	Chars     []CharState
	Completed bool
}

// Counters tracks live per-status totals.
type Counters struct {
	Correct   int
	Incorrect int
	Extra     int
}

// Typed returns the number of committed graphemes.
func (c Counters) Typed() int {
	return c.Correct + c.Incorrect + c.Extra
}

// Result is the final report of a finished session.
type Result struct {
	NetWPM           int
	RawWPM           int
	Accuracy         int
	CorrectChars     int
	IncorrectChars   int
	ExtraChars       int
	MissedChars      int
	TotalTimeSeconds int
	WPMHistory       []int
}

// Snapshot is a read-only copy of session state for rendering.
type Snapshot struct {
	Config         Config
	Lesson         Lesson
	Phase          Phase
	Words          []WordState
	WordIndex      int
	CharIndex      int
	StartedAt      time.Time
	ElapsedSeconds float64
	Counters       Counters
	LiveWPM        int
	LiveAccuracy   int
	Result         *Result
}

// CompletedWords counts words the user has advanced past.
func (s Snapshot) CompletedWords() int {
	n := 0
	for _, w := range s.Words {
		if w.Completed {
			n++
		}
	}
	return n
}
