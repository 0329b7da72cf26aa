package session

// Inscript keystrokes arrive as loose code points while the session compares
// whole grapheme clusters. The composer buffers the cluster under
// construction and decides when it is complete enough to commit.

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/akshara/internal/grapheme"
)

// ComposeMode selects how keystrokes become committed graphemes.
type ComposeMode string

// Compose modes.
const (
	// ComposeAuto holds the trailing cluster until the next keystroke shows
	// it cannot grow any further.
	ComposeAuto ComposeMode = "auto"
	// ComposeDirect commits every keystroke as soon as it arrives.
	ComposeDirect ComposeMode = "direct"
)

// ParseComposeMode parses a compose mode name.
func ParseComposeMode(name string) (ComposeMode, error) {
	switch ComposeMode(strings.ToLower(strings.TrimSpace(name))) {
	case ComposeAuto, "":
		return ComposeAuto, nil
	case ComposeDirect:
		return ComposeDirect, nil
	default:
		return "", fmt.Errorf("unknown compose mode %q", name)
	}
}

// Composer buffers keystrokes while a grapheme cluster is still being
// built, for example a consonant followed by a virama and a second
// consonant. Only whole clusters leave the buffer.
type Composer struct {
	mode    ComposeMode
	pending []rune
}

// NewComposer returns a composer for mode.
func NewComposer(mode ComposeMode) *Composer {
	if mode != ComposeDirect {
		mode = ComposeAuto
	}
	return &Composer{mode: mode}
}

// Mode returns the compose mode.
func (c *Composer) Mode() ComposeMode {
	return c.mode
}

// Feed adds keystrokes and returns the clusters that are now complete.
func (c *Composer) Feed(runes []rune) []string {
	if len(runes) == 0 {
		return nil
	}
	c.pending = append(c.pending, runes...)
	if c.mode == ComposeDirect {
		return c.Flush()
	}
	clusters := grapheme.Segment(string(c.pending))
	if len(clusters) <= 1 {
		return nil
	}
	last := clusters[len(clusters)-1]
	c.pending = []rune(last)
	return clusters[:len(clusters)-1]
}

// Flush commits everything held in the buffer.
func (c *Composer) Flush() []string {
	if len(c.pending) == 0 {
		return nil
	}
	clusters := grapheme.Segment(string(c.pending))
	c.pending = nil
	return clusters
}

// Backspace drops the last buffered keystroke. It reports false when the
// buffer was empty and the backspace belongs to the session.
func (c *Composer) Backspace() bool {
	if len(c.pending) == 0 {
		return false
	}
	c.pending = c.pending[:len(c.pending)-1]
	return true
}

// Pending returns the text still being composed.
func (c *Composer) Pending() string {
	return string(c.pending)
}

// Composing reports whether a cluster is in progress.
func (c *Composer) Composing() bool {
	return len(c.pending) > 0
}

// Reset discards the buffer.
func (c *Composer) Reset() {
	c.pending = nil
}
