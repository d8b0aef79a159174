package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/lessonbook/internal/viewer"
)

func (a *App) renderSettings() string {
	s := a.styles
	v := a.settings.Values()

	rows := []struct {
		field viewer.SettingsField
		label string
		value string
		hint  string
	}{
		{viewer.FieldFontSize, "Text size", "◂ " + v.FontSize.Label() + " ▸", ""},
		{viewer.FieldHighContrast, "High contrast", a.renderSwitch(v.HighContrast), "Improves visibility of elements"},
		{viewer.FieldReducedMotion, "Reduced motion", a.renderSwitch(v.ReducedMotion), "Turns off moving elements"},
	}

	var b strings.Builder
	b.WriteString(s.title.Render("⚙ Accessibility settings"))
	b.WriteString("\n")
	b.WriteString(s.subtitle.Render("Adjust the interface for comfortable work"))
	for _, r := range rows {
		b.WriteString(s.spacer())
		marker := "  "
		label := s.text.Render(r.label)
		if a.settings.Field() == r.field {
			marker = s.cursor.Render(glyphCursor) + " "
			label = s.cursor.Render(r.label)
		}
		line := marker + lipgloss.NewStyle().Width(18).Render(label) + r.value
		b.WriteString(line)
		if r.hint != "" {
			b.WriteString("\n  " + s.muted.Render(r.hint))
		}
	}
	b.WriteString(s.spacer())
	b.WriteString(s.muted.Render("active: " + strings.Join(a.settings.Modifiers().Classes(), " ")))
	return b.String()
}

func (a *App) renderSwitch(on bool) string {
	if on {
		return a.styles.switchOn.Render("ON ")
	}
	return a.styles.switchOff.Render("off")
}
