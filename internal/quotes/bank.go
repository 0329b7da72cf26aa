package quotes

import (
	"strings"

	"github.com/verte-zerg/akshara/internal/model"
)

// Bank indexes quotes by length bucket.
type Bank struct {
	quotes   []model.Quote
	byLength map[model.LengthBucket][]model.Quote
}

// New builds a bank from the given quotes. Quotes with no words are skipped.
func New(list []model.Quote) *Bank {
	b := &Bank{byLength: map[model.LengthBucket][]model.Quote{}}
	for _, q := range list {
		if len(strings.Fields(q.Text)) == 0 {
			continue
		}
		b.quotes = append(b.quotes, q)
		b.byLength[q.Length] = append(b.byLength[q.Length], q)
	}
	return b
}

// Default returns the built-in quote bank.
func Default() *Bank {
	return New(builtin)
}

// Len returns the number of quotes.
func (b *Bank) Len() int {
	return len(b.quotes)
}

// All returns every quote in definition order.
func (b *Bank) All() []model.Quote {
	out := make([]model.Quote, len(b.quotes))
	copy(out, b.quotes)
	return out
}

// InBucket returns the quotes of one length bucket.
func (b *Bank) InBucket(length model.LengthBucket) []model.Quote {
	src := b.byLength[length]
	out := make([]model.Quote, len(src))
	copy(out, src)
	return out
}

// BucketFor maps a quote-mode value to a length bucket: 1 short, 2 medium, 3 long.
// Any other value selects medium.
func BucketFor(value int) model.LengthBucket {
	switch value {
	case 1:
		return model.LengthShort
	case 3:
		return model.LengthLong
	default:
		return model.LengthMedium
	}
}

// ParseBucket parses a bucket name.
func ParseBucket(name string) (model.LengthBucket, bool) {
	switch model.LengthBucket(strings.ToLower(strings.TrimSpace(name))) {
	case model.LengthShort:
		return model.LengthShort, true
	case model.LengthMedium:
		return model.LengthMedium, true
	case model.LengthLong:
		return model.LengthLong, true
	default:
		return "", false
	}
}

// Words splits a quote on whitespace.
func Words(q model.Quote) []string {
	return strings.Fields(q.Text)
}
