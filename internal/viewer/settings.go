package viewer

import (
	"errors"
	"fmt"
)

// FontSize is a text size tier.
type FontSize string

const (
	FontBase  FontSize = "base"
	FontLarge FontSize = "lg"
	FontXL    FontSize = "xl"
)

// FontSizes lists the tiers smallest first.
var FontSizes = []FontSize{FontBase, FontLarge, FontXL}

var ErrUnknownFontSize = errors.New("unknown font size")

// Label is the human-readable name of the tier.
func (f FontSize) Label() string {
	switch f {
	case FontLarge:
		return "Large"
	case FontXL:
		return "Extra large"
	default:
		return "Normal"
	}
}

func (f FontSize) valid() bool {
	for _, s := range FontSizes {
		if s == f {
			return true
		}
	}
	return false
}

// Values is a snapshot of the accessibility settings.
type Values struct {
	FontSize      FontSize
	HighContrast  bool
	ReducedMotion bool
}

// DefaultValues is what every session starts with.
func DefaultValues() Values {
	return Values{FontSize: FontBase}
}

// Modifiers is the presentation decoration derived from Values.
type Modifiers struct {
	FontClass     string
	HighContrast  bool
	ReducedMotion bool
}

// Classes lists the active modifier class names.
func (m Modifiers) Classes() []string {
	out := []string{m.FontClass}
	if m.HighContrast {
		out = append(out, "high-contrast")
	}
	if m.ReducedMotion {
		out = append(out, "reduced-motion")
	}
	return out
}

// SettingsField is a row of the settings overlay.
type SettingsField int

const (
	FieldFontSize SettingsField = iota
	FieldHighContrast
	FieldReducedMotion
	fieldCount
)

// Settings is the accessibility settings overlay and the values it edits.
// Values live only for the session.
type Settings struct {
	values Values
	open   bool
	field  SettingsField
}

// NewSettings returns settings at their defaults with the overlay closed.
func NewSettings() *Settings {
	return &Settings{values: DefaultValues()}
}

func (s *Settings) Values() Values { return s.values }

func (s *Settings) Visible() bool { return s.open }

// Open shows the overlay with focus on the first row.
func (s *Settings) Open() {
	s.open = true
	s.field = FieldFontSize
}

func (s *Settings) Dismiss() { s.open = false }

func (s *Settings) SetFontSize(f FontSize) error {
	if !f.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownFontSize, string(f))
	}
	s.values.FontSize = f
	return nil
}

// CycleFontSize steps through FontSizes, clamped at both ends.
func (s *Settings) CycleFontSize(delta int) {
	idx := 0
	for i, f := range FontSizes {
		if f == s.values.FontSize {
			idx = i
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(FontSizes) {
		idx = len(FontSizes) - 1
	}
	s.values.FontSize = FontSizes[idx]
}

func (s *Settings) SetHighContrast(on bool) { s.values.HighContrast = on }

func (s *Settings) SetReducedMotion(on bool) { s.values.ReducedMotion = on }

// Field returns the focused row.
func (s *Settings) Field() SettingsField { return s.field }

// MoveField moves row focus by delta, wrapping around.
func (s *Settings) MoveField(delta int) {
	s.field = SettingsField((int(s.field) + delta%int(fieldCount) + int(fieldCount)) % int(fieldCount))
}

// ToggleField flips the focused switch. On the font size row it advances to
// the next tier, wrapping back to the smallest.
func (s *Settings) ToggleField() {
	switch s.field {
	case FieldFontSize:
		next := FontBase
		for i, f := range FontSizes {
			if f == s.values.FontSize && i+1 < len(FontSizes) {
				next = FontSizes[i+1]
			}
		}
		s.values.FontSize = next
	case FieldHighContrast:
		s.values.HighContrast = !s.values.HighContrast
	case FieldReducedMotion:
		s.values.ReducedMotion = !s.values.ReducedMotion
	}
}

// Modifiers derives the presentation decoration from the current values.
func (s *Settings) Modifiers() Modifiers {
	return ModifiersFor(s.values)
}

// ModifiersFor maps a settings snapshot to its presentation decoration.
func ModifiersFor(v Values) Modifiers {
	font := "text-base-accessible"
	switch v.FontSize {
	case FontLarge:
		font = "text-lg-accessible"
	case FontXL:
		font = "text-xl-accessible"
	}
	return Modifiers{FontClass: font, HighContrast: v.HighContrast, ReducedMotion: v.ReducedMotion}
}
