package viewer

import "github.com/jask/lessonbook/internal/lesson"

const noStep = -1

// Detail is the lesson detail overlay. It is visible exactly while a lesson
// is selected. At most one step is expanded at a time.
type Detail struct {
	lesson   *lesson.Lesson
	expanded int
	cursor   int
	scroll   int
}

func (d *Detail) reset() {
	d.expanded = noStep
	d.cursor = 0
	d.scroll = 0
}

func (d *Detail) open(l lesson.Lesson) {
	d.lesson = &l
	d.reset()
}

// Visible reports whether a lesson is selected.
func (d *Detail) Visible() bool { return d.lesson != nil }

// Lesson returns the selected lesson.
func (d *Detail) Lesson() (lesson.Lesson, bool) {
	if d.lesson == nil {
		return lesson.Lesson{}, false
	}
	return *d.lesson, true
}

// Dismiss clears the selection and collapses every step.
func (d *Detail) Dismiss() {
	d.lesson = nil
	d.reset()
}

// Expanded returns the index of the open step.
func (d *Detail) Expanded() (int, bool) {
	if d.expanded == noStep {
		return 0, false
	}
	return d.expanded, true
}

// ToggleStep opens step i and closes any other. Toggling the open step
// closes it. Out of range indices are ignored.
func (d *Detail) ToggleStep(i int) {
	if d.lesson == nil || i < 0 || i >= len(d.lesson.Steps) {
		return
	}
	if d.expanded == i {
		d.expanded = noStep
		return
	}
	d.expanded = i
}

// StepCursor is the step the keyboard focus is on.
func (d *Detail) StepCursor() int { return d.cursor }

// MoveStep moves the step focus by delta, clamped.
func (d *Detail) MoveStep(delta int) {
	if d.lesson == nil || len(d.lesson.Steps) == 0 {
		return
	}
	d.cursor += delta
	if d.cursor < 0 {
		d.cursor = 0
	}
	if last := len(d.lesson.Steps) - 1; d.cursor > last {
		d.cursor = last
	}
}

// ToggleFocused toggles the step under the cursor.
func (d *Detail) ToggleFocused() { d.ToggleStep(d.cursor) }

// Scroll is the first rendered line of the overlay body.
func (d *Detail) Scroll() int { return d.scroll }

// ScrollBy moves the overlay body; the renderer clamps the upper bound.
func (d *Detail) ScrollBy(delta int) {
	d.scroll += delta
	if d.scroll < 0 {
		d.scroll = 0
	}
}

// ClampScroll keeps the scroll offset inside a body of the given height.
func (d *Detail) ClampScroll(limit int) {
	if limit < 0 {
		limit = 0
	}
	if d.scroll > limit {
		d.scroll = limit
	}
}
