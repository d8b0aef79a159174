package viewer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jask/lessonbook/internal/lesson"
)

var ErrLessonNotInFilter = errors.New("lesson is not in the active age filter")

// Catalog is the browsing state over an immutable lesson catalog.
type Catalog struct {
	lessons *lesson.Catalog
	age     lesson.Age
	cursor  int
	query   string
	detail  Detail
}

// NewCatalog starts a session on lessons with start selected. An unsupported
// start tier falls back to lesson.DefaultAge.
func NewCatalog(lessons *lesson.Catalog, start lesson.Age) *Catalog {
	if !start.Valid() {
		start = lesson.DefaultAge
	}
	c := &Catalog{lessons: lessons, age: start}
	c.detail.reset()
	return c
}

// Age returns the selected age tier.
func (c *Catalog) Age() lesson.Age { return c.age }

// SelectAge switches the age filter. The selected lesson and the settings are
// left untouched; reselecting the current tier is a no-op.
func (c *Catalog) SelectAge(age lesson.Age) error {
	if !age.Valid() {
		return fmt.Errorf("%w: %d", lesson.ErrUnknownAge, int(age))
	}
	if age == c.age {
		return nil
	}
	c.age = age
	c.cursor = 0
	return nil
}

// StepAge moves the age filter delta tiers along lesson.Ages, clamped to the
// ends of the list.
func (c *Catalog) StepAge(delta int) {
	idx := 0
	for i, a := range lesson.Ages {
		if a == c.age {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(lesson.Ages) {
		idx = len(lesson.Ages) - 1
	}
	_ = c.SelectAge(lesson.Ages[idx])
}

// FilteredLessons derives the lessons for the selected tier in catalog order.
func (c *Catalog) FilteredLessons() []lesson.Lesson {
	return c.lessons.Filter(c.age)
}

// Cards is FilteredLessons narrowed by the search query, if any.
func (c *Catalog) Cards() []lesson.Lesson {
	filtered := c.FilteredLessons()
	if strings.TrimSpace(c.query) == "" {
		return filtered
	}
	return lesson.Search(filtered, c.query)
}

// Summary is the one-line description under the programme heading.
func (c *Catalog) Summary() string {
	return fmt.Sprintf("%d lessons • September – May", len(c.FilteredLessons()))
}

// Query returns the active search text.
func (c *Catalog) Query() string { return c.query }

// SetQuery narrows the visible cards and resets the cursor.
func (c *Catalog) SetQuery(q string) {
	if q == c.query {
		return
	}
	c.query = q
	c.cursor = 0
}

// Cursor returns the index of the highlighted card.
func (c *Catalog) Cursor() int {
	n := len(c.Cards())
	if n == 0 {
		return 0
	}
	if c.cursor >= n {
		return n - 1
	}
	return c.cursor
}

// MoveCursor shifts the highlighted card by delta, clamped to the card list.
func (c *Catalog) MoveCursor(delta int) {
	n := len(c.Cards())
	if n == 0 {
		c.cursor = 0
		return
	}
	c.cursor = c.Cursor() + delta
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.cursor >= n {
		c.cursor = n - 1
	}
}

// Current returns the highlighted card, if there is one.
func (c *Catalog) Current() (lesson.Lesson, bool) {
	cards := c.Cards()
	if len(cards) == 0 {
		return lesson.Lesson{}, false
	}
	return cards[c.Cursor()], true
}

// SelectLesson opens l in the detail overlay. The lesson must belong to the
// catalog and to the active age tier.
func (c *Catalog) SelectLesson(l lesson.Lesson) error {
	if _, ok := c.lessons.Get(l.ID); !ok {
		return fmt.Errorf("%w: unknown lesson %q", ErrLessonNotInFilter, l.ID)
	}
	if l.Age != c.age {
		return fmt.Errorf("%w: lesson %q is for %s, filter is %s", ErrLessonNotInFilter, l.ID, l.Age, c.age)
	}
	c.detail.open(l)
	return nil
}

// OpenCurrent selects the highlighted card.
func (c *Catalog) OpenCurrent() error {
	l, ok := c.Current()
	if !ok {
		return nil
	}
	return c.SelectLesson(l)
}

// SelectedLesson returns the lesson shown in the detail overlay.
func (c *Catalog) SelectedLesson() (lesson.Lesson, bool) {
	return c.detail.Lesson()
}

// Detail exposes the detail overlay bound to this catalog.
func (c *Catalog) Detail() *Detail { return &c.detail }
