package lessons

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/verte-zerg/akshara/internal/grapheme"
	"github.com/verte-zerg/akshara/internal/model"
)

// StageCustom groups lessons built from user word lists.
const StageCustom = "custom"

// ErrEmptyCatalog is returned when a catalog would contain no lessons.
var ErrEmptyCatalog = errors.New("lesson catalog is empty")

// Catalog is an immutable, id-indexed set of lessons.
type Catalog struct {
	lessons []model.Lesson
	byID    map[int]int
}

// StageGroup lists the lessons of one stage in catalog order.
type StageGroup struct {
	Stage   string
	Lessons []model.Lesson
}

// New validates lessons and builds a catalog ordered by id.
func New(list []model.Lesson) (*Catalog, error) {
	if len(list) == 0 {
		return nil, ErrEmptyCatalog
	}
	lessons := make([]model.Lesson, len(list))
	copy(lessons, list)
	sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].ID < lessons[j].ID })

	byID := make(map[int]int, len(lessons))
	for i, l := range lessons {
		if err := Validate(l); err != nil {
			return nil, err
		}
		if _, ok := byID[l.ID]; ok {
			return nil, fmt.Errorf("duplicate lesson id %d", l.ID)
		}
		byID[l.ID] = i
	}
	return &Catalog{lessons: lessons, byID: byID}, nil
}

// Default returns the catalog of built-in lessons.
func Default() *Catalog {
	c, err := New(Builtin())
	if err != nil {
		panic(fmt.Sprintf("invalid built-in lessons: %v", err))
	}
	return c
}

// Validate checks that a lesson has an id and something to generate from.
func Validate(l model.Lesson) error {
	if l.ID < 1 {
		return fmt.Errorf("lesson id must be >= 1, got %d", l.ID)
	}
	for _, k := range l.Keys {
		if grapheme.Count(k) != 1 {
			return fmt.Errorf("lesson %d: key %q is not a single character", l.ID, k)
		}
	}
	if len(nonEmpty(l.Words)) == 0 && len(nonEmpty(l.Combos)) == 0 && len(l.Keys) == 0 {
		return fmt.Errorf("lesson %d: no keys, combos or words", l.ID)
	}
	return nil
}

// Len returns the number of lessons.
func (c *Catalog) Len() int {
	return len(c.lessons)
}

// All returns the lessons in id order.
func (c *Catalog) All() []model.Lesson {
	out := make([]model.Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}

// First returns the lesson with the lowest id.
func (c *Catalog) First() model.Lesson {
	return c.lessons[0]
}

// Lookup returns the lesson with the given id.
func (c *Catalog) Lookup(id int) (model.Lesson, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Lesson{}, false
	}
	return c.lessons[i], true
}

// Resolve returns the lesson with the given id, or the first lesson.
func (c *Catalog) Resolve(id int) model.Lesson {
	if l, ok := c.Lookup(id); ok {
		return l
	}
	return c.First()
}

// Next returns the id following id, or the last id when already at the end.
func (c *Catalog) Next(id int) int {
	i, ok := c.byID[id]
	if !ok {
		return c.First().ID
	}
	if i+1 < len(c.lessons) {
		return c.lessons[i+1].ID
	}
	return c.lessons[i].ID
}

// Prev returns the id preceding id, or the first id when already at the start.
func (c *Catalog) Prev(id int) int {
	i, ok := c.byID[id]
	if !ok || i == 0 {
		return c.First().ID
	}
	return c.lessons[i-1].ID
}

// HasNext reports whether a lesson follows id.
func (c *Catalog) HasNext(id int) bool {
	i, ok := c.byID[id]
	return ok && i+1 < len(c.lessons)
}

// Stages groups lessons by stage in order of first appearance.
func (c *Catalog) Stages() []StageGroup {
	var groups []StageGroup
	index := map[string]int{}
	for _, l := range c.lessons {
		i, ok := index[l.Stage]
		if !ok {
			i = len(groups)
			index[l.Stage] = i
			groups = append(groups, StageGroup{Stage: l.Stage})
		}
		groups[i].Lessons = append(groups[i].Lessons, l)
	}
	return groups
}

// Merge overlays extra lessons on base: equal ids replace, new ids are appended.
func Merge(base, extra []model.Lesson) []model.Lesson {
	out := make([]model.Lesson, len(base))
	copy(out, base)
	pos := make(map[int]int, len(out))
	for i, l := range out {
		pos[l.ID] = i
	}
	for _, l := range extra {
		if i, ok := pos[l.ID]; ok {
			out[i] = l
			continue
		}
		pos[l.ID] = len(out)
		out = append(out, l)
	}
	return out
}

// FromWords builds a custom word lesson placed after the given lessons.
func FromWords(after []model.Lesson, words []string) model.Lesson {
	maxID := 0
	for _, l := range after {
		if l.ID > maxID {
			maxID = l.ID
		}
	}
	return model.Lesson{
		ID:      maxID + 1,
		Stage:   StageCustom,
		LabelHi: "अपने शब्द",
		LabelEn: "Custom Words",
		Keys:    []string{},
		Words:   nonEmpty(words),
	}
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
