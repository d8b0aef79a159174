package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/lessonbook/internal/lesson"
)

const (
	appTitle    = "Lessons for children with special needs"
	appSubtitle = "Year development programme (September – May)"
)

func (a *App) View() string {
	body, focusTop, focusBottom := a.renderCatalog()
	status := a.renderStatus()
	footer := a.renderFooter(a.keys.helpBindings(a.scope()))

	if a.width == 0 || a.height == 0 {
		out := body
		if a.catalog.Detail().Visible() {
			out += "\n\n" + a.styles.modal.Render(a.renderDetail(0))
		}
		if a.settings.Visible() {
			out += "\n\n" + a.styles.modal.Render(a.renderSettings())
		}
		return out + "\n\n" + status + "\n" + footer
	}

	contentHeight := max(1, a.height-2)
	offset := 0
	if focusBottom > contentHeight {
		offset = focusBottom - contentHeight
	}
	if focusTop < offset {
		offset = focusTop
	}
	main := window(body, offset, contentHeight)
	main = lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, main)

	if a.catalog.Detail().Visible() {
		box := a.styles.modal.Width(a.detailWidth()).Render(a.renderDetail(a.detailViewport()))
		main = centerOverlay(main, box, a.width, contentHeight)
	}
	if a.settings.Visible() {
		box := a.styles.modal.Width(min(64, a.width-4)).Render(a.renderSettings())
		main = centerOverlay(main, box, a.width, contentHeight)
	}

	lines := splitLines(main)
	for i, line := range lines {
		lines[i] = padRight(line, a.width)
	}
	return strings.Join(lines, "\n") + "\n" + status + "\n" + footer
}

// renderCatalog draws the header, age selector and card grid. It also
// returns the line span of the focused card row so the caller can scroll.
func (a *App) renderCatalog() (string, int, int) {
	s := a.styles
	var blocks []string

	title := s.title.Render("✿ "+appTitle) + "\n" + s.subtitle.Render(appSubtitle)
	hint := s.muted.Render("[s] accessibility settings")
	if a.width > 0 {
		gap := a.width - lipgloss.Width(title) - lipgloss.Width(hint) - 2
		if gap > 0 {
			title = lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", gap), hint)
		} else {
			title += "\n" + hint
		}
	} else {
		title += "\n" + hint
	}
	blocks = append(blocks, title)

	tabs := make([]string, 0, len(lesson.Ages))
	for _, age := range lesson.Ages {
		label := fmt.Sprintf("%d years", int(age))
		if age == a.catalog.Age() {
			tabs = append(tabs, s.tabActive.Render(label))
		} else {
			tabs = append(tabs, s.tabInactive.Render(label))
		}
	}
	blocks = append(blocks, s.headingText("Choose an age group")+"\n"+strings.Join(tabs, " "))

	programme := s.headingText(fmt.Sprintf("Programme for %d years", int(a.catalog.Age()))) + "\n" +
		s.muted.Render(a.catalog.Summary())
	if a.searching {
		programme += "\n" + a.search.View()
	} else if q := a.catalog.Query(); q != "" {
		programme += "\n" + s.muted.Render(fmt.Sprintf("search %q: %d found  [esc] clear", q, len(a.catalog.Cards())))
	}
	blocks = append(blocks, programme)

	header := strings.Join(blocks, s.spacer())
	top := lipgloss.Height(header) + s.gap

	cards := a.catalog.Cards()
	if len(cards) == 0 {
		msg := "No lessons for this age group yet."
		if a.catalog.Query() != "" {
			msg = "No lessons match the search."
		}
		return header + s.spacer() + s.muted.Render(msg), 0, 0
	}

	cols := a.columns()
	cursor := a.catalog.Cursor()
	var rows []string
	focusTop, focusBottom := top, top
	line := top
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		rendered := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			if i > start {
				rendered = append(rendered, " ")
			}
			rendered = append(rendered, a.renderCard(cards[i], i == cursor))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
		h := lipgloss.Height(row)
		if cursor >= start && cursor < end {
			focusTop, focusBottom = line, line+h
		}
		line += h + s.gap
		rows = append(rows, row)
	}
	sep := "\n" + strings.Repeat("\n", s.gap)
	return header + s.spacer() + strings.Join(rows, sep), focusTop, focusBottom
}

func (a *App) renderCard(l lesson.Lesson, focused bool) string {
	s := a.styles
	style := s.card
	if focused {
		style = s.cardFocus
		if a.pulse && !s.mods.ReducedMotion {
			style = s.cardPulse
		}
	}
	inner := s.cardWidth - style.GetHorizontalPadding()

	when := s.pill.Render(fmt.Sprintf("%s • Week %d", l.Month, l.Week))
	icon := s.icon(l.Category)
	pad := inner - lipgloss.Width(when) - lipgloss.Width(icon)
	top := when + strings.Repeat(" ", max(1, pad)) + icon

	title := s.cardTitle.Width(inner).Render(l.Title)
	if focused {
		title = s.cursor.Render(glyphCursor+" ") + s.cardTitle.Width(inner-2).Render(l.Title)
	}

	desc := clampLines(s.muted.Width(inner).Render(l.Description), 2, inner)
	duration := s.muted.Render(fmt.Sprintf("%s %d min", glyphClock, l.Duration))

	return style.Render(strings.Join([]string{top, title, s.badge(l.Category), desc, duration}, "\n"))
}

// clampLines keeps the first n lines of a wrapped block, marking the cut.
func clampLines(block string, n, width int) string {
	lines := splitLines(block)
	if len(lines) <= n {
		return block
	}
	lines = lines[:n]
	lines[n-1] = truncate(strings.TrimRight(lines[n-1], " ")+" …", width)
	return strings.Join(lines, "\n")
}

func (a *App) renderStatus() string {
	st := a.styles.status
	if a.statusErr {
		st = a.styles.statusErr
	}
	text := strings.ReplaceAll(a.status, "\n", " ")
	if a.width == 0 {
		return st.Render(text)
	}
	return st.Width(a.width).Render(truncate(text, a.width-4))
}

func (a *App) renderFooter(bindings []key.Binding) string {
	s := a.styles
	space := lipgloss.NewStyle().Background(s.pal.Base).Render(" ")
	sep := lipgloss.NewStyle().Background(s.pal.Base).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, s.footerKey.Render(help.Key)+space+s.footerDesc.Render(help.Desc))
	}
	content := strings.Join(parts, sep)
	if a.width == 0 {
		return s.footer.Render(content)
	}
	return s.footer.Width(a.width).Render(truncate(content, a.width-4))
}
