package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/lessonbook/internal/viewer"
)

// styles is everything the renderer needs for one combination of
// accessibility modifiers. It is rebuilt whenever a setting changes.
type styles struct {
	mods viewer.Modifiers
	pal  palette

	// gap is the number of blank lines between blocks; larger text tiers
	// spread content out.
	gap       int
	cardWidth int
	upper     bool

	title    lipgloss.Style
	subtitle lipgloss.Style
	heading  lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	cursor   lipgloss.Style

	tabActive   lipgloss.Style
	tabInactive lipgloss.Style

	card      lipgloss.Style
	cardFocus lipgloss.Style
	cardPulse lipgloss.Style
	cardTitle lipgloss.Style
	pill      lipgloss.Style

	section lipgloss.Style
	modal   lipgloss.Style

	switchOn  lipgloss.Style
	switchOff lipgloss.Style

	footer     lipgloss.Style
	footerKey  lipgloss.Style
	footerDesc lipgloss.Style
	status     lipgloss.Style
	statusErr  lipgloss.Style
}

func newStyles(mods viewer.Modifiers) styles {
	pal := paletteFor(mods.HighContrast)
	s := styles{mods: mods, pal: pal}

	padX, padY := 1, 0
	switch mods.FontClass {
	case "text-lg-accessible":
		s.gap, s.cardWidth, padX = 1, 40, 2
	case "text-xl-accessible":
		s.gap, s.cardWidth, padX, padY = 1, 48, 2, 1
		s.upper = true
	default:
		s.cardWidth = 34
	}

	s.title = lipgloss.NewStyle().Foreground(pal.Brand).Bold(true)
	s.subtitle = lipgloss.NewStyle().Foreground(pal.Muted)
	s.heading = lipgloss.NewStyle().Foreground(pal.Accent).Bold(true)
	s.text = lipgloss.NewStyle().Foreground(pal.Text)
	s.muted = lipgloss.NewStyle().Foreground(pal.Subtle)
	s.cursor = lipgloss.NewStyle().Foreground(pal.Accent).Bold(true)

	s.tabActive = lipgloss.NewStyle().
		Foreground(pal.Base).
		Background(pal.Accent).
		Bold(true).
		Padding(0, padX+1)
	s.tabInactive = lipgloss.NewStyle().
		Foreground(pal.Muted).
		Background(pal.Surface).
		Padding(0, padX+1)

	s.card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.Border).
		Padding(padY, padX).
		Width(s.cardWidth)
	s.cardFocus = s.card.BorderForeground(pal.Accent)
	s.cardPulse = s.card.BorderForeground(pal.Focus)
	s.cardTitle = lipgloss.NewStyle().Foreground(pal.Text).Bold(true)
	s.pill = lipgloss.NewStyle().Foreground(pal.Muted).Background(pal.Surface).Padding(0, 1)

	s.section = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.Border).
		Padding(padY, padX)
	s.modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.Accent).
		Padding(padY, padX)

	s.switchOn = lipgloss.NewStyle().Foreground(pal.Base).Background(pal.Success).Bold(true).Padding(0, 1)
	s.switchOff = lipgloss.NewStyle().Foreground(pal.Muted).Background(pal.Surface).Padding(0, 1)

	s.footer = lipgloss.NewStyle().Foreground(pal.Muted).Background(pal.Base).Padding(0, 2)
	s.footerKey = lipgloss.NewStyle().Foreground(pal.Accent).Background(pal.Base).Bold(true)
	s.footerDesc = lipgloss.NewStyle().Foreground(pal.Muted).Background(pal.Base)
	s.status = lipgloss.NewStyle().Foreground(pal.Text).Background(pal.Surface).Padding(0, 2)
	s.statusErr = lipgloss.NewStyle().Foreground(pal.Error).Background(pal.Surface).Padding(0, 2)

	if mods.HighContrast {
		s.text = s.text.Bold(true)
		s.card = s.card.BorderStyle(lipgloss.ThickBorder())
		s.cardFocus = s.cardFocus.BorderStyle(lipgloss.ThickBorder())
		s.cardPulse = s.cardPulse.BorderStyle(lipgloss.ThickBorder())
		s.modal = s.modal.BorderStyle(lipgloss.ThickBorder())
	}
	return s
}

// headingText renders a section heading, upper-cased on the largest tier.
func (s styles) headingText(text string) string {
	if s.upper {
		text = strings.ToUpper(text)
	}
	return s.heading.Render(text)
}

// badge renders the coloured category label with its icon. Lessons without
// a category still get a visible label.
func (s styles) badge(category string) string {
	label := strings.TrimSpace(category)
	if label == "" {
		label = "Other"
	}
	st := viewer.CategoryStyle(category)
	b := lipgloss.NewStyle().
		Foreground(st.Foreground).
		Background(st.Background).
		Padding(0, 1)
	if s.mods.HighContrast {
		b = b.Bold(true).Underline(true)
	}
	return b.Render(label)
}

// icon renders the category glyph in the accent colour.
func (s styles) icon(category string) string {
	return lipgloss.NewStyle().Foreground(s.pal.Accent).Render(glyph(viewer.CategoryIcon(category)))
}

// spacer returns the block separator for the current text tier.
func (s styles) spacer() string {
	return strings.Repeat("\n", s.gap+1)
}
