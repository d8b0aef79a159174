package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/lessonbook/internal/lesson"
)

// detailWidth is the outer width of the lesson overlay.
func (a *App) detailWidth() int {
	if a.width <= 0 {
		return 80
	}
	return max(30, min(96, a.width-4))
}

// detailInner is the text width inside the overlay border and padding.
func (a *App) detailInner() int {
	return a.detailWidth() - a.styles.modal.GetHorizontalPadding()
}

// detailViewport is how many body lines fit in the overlay; 0 means no limit.
func (a *App) detailViewport() int {
	if a.height <= 0 {
		return 0
	}
	return max(3, a.height-2-a.styles.modal.GetVerticalFrameSize())
}

// renderDetail draws the overlay body, windowed to height lines when
// height is positive.
func (a *App) renderDetail(height int) string {
	body, _ := a.detailBody()
	if height <= 0 {
		return body
	}
	return window(body, a.catalog.Detail().Scroll(), height)
}

// detailBody renders the full lesson and reports the line of the focused
// step.
func (a *App) detailBody() (string, int) {
	d := a.catalog.Detail()
	l, ok := d.Lesson()
	if !ok {
		return "", 0
	}
	s := a.styles
	inner := a.detailInner()
	wrap := s.text.Width(inner)

	var b strings.Builder
	write := func(text string) {
		b.WriteString(text)
		b.WriteString("\n")
	}
	gap := func() {
		b.WriteString(strings.Repeat("\n", s.gap+1))
	}

	write(s.icon(l.Category) + " " + s.badge(l.Category))
	write(s.title.Width(inner).Render(l.Title))
	write(s.muted.Width(inner).Render(fmt.Sprintf("%s • Week %d • %d minutes • Age: %s", l.Month, l.Week, l.Duration, l.Age)))
	gap()

	write(s.headingText("◎ Goal"))
	write(wrap.Render(l.Goal))
	gap()

	write(s.headingText("▣ Materials"))
	writeList(&b, s, l.Materials, glyphCheck, inner)
	gap()

	write(s.headingText("☰ Procedure"))
	focusLine := strings.Count(b.String(), "\n")
	expanded, isOpen := d.Expanded()
	if len(l.Steps) == 0 {
		write(s.muted.Render("—"))
	}
	for i, step := range l.Steps {
		if i == d.StepCursor() {
			focusLine = strings.Count(b.String(), "\n")
		}
		write(a.stepHeader(i, step, isOpen && expanded == i, i == d.StepCursor()))
		if isOpen && expanded == i {
			body := s.text.Width(inner - 4).Render(step.Description)
			write(indent(body, 4))
			if step.HasInstructions() {
				for _, ins := range step.Instructions {
					write(indent(s.muted.Width(inner-6).Render("• "+ins), 6))
				}
			}
		}
	}
	gap()

	write(s.headingText(glyphHeart + " Adaptations for children with special needs"))
	writeList(&b, s, l.Adaptations, glyphHeart, inner)
	gap()

	write(s.headingText("✓ Expected results"))
	writeList(&b, s, l.ExpectedResults, glyphStar, inner)

	return strings.TrimRight(b.String(), "\n"), focusLine
}

func (a *App) stepHeader(i int, step lesson.Step, open, focused bool) string {
	s := a.styles
	marker := "  "
	if focused {
		marker = s.cursor.Render(glyphCursor) + " "
	}
	fold := glyphFolded
	if open {
		fold = glyphExpanded
	}
	title := fmt.Sprintf("%s %d. %s", fold, i+1, step.Title)
	if focused {
		title = s.cursor.Render(title)
	} else {
		title = s.text.Render(title)
	}
	return marker + title + " " + s.muted.Render(fmt.Sprintf("(%d min)", step.Duration))
}

func writeList(b *strings.Builder, s styles, items []string, bullet string, width int) {
	if len(items) == 0 {
		b.WriteString(s.muted.Render("—"))
		b.WriteString("\n")
		return
	}
	for _, item := range items {
		text := s.text.Width(max(1, width-2)).Render(item)
		lines := splitLines(text)
		b.WriteString(bulletStyle(s, bullet) + " " + lines[0])
		b.WriteString("\n")
		for _, rest := range lines[1:] {
			b.WriteString("  " + rest)
			b.WriteString("\n")
		}
	}
}

func bulletStyle(s styles, bullet string) string {
	switch bullet {
	case glyphCheck:
		return lipgloss.NewStyle().Foreground(s.pal.Success).Render(bullet)
	case glyphStar:
		return s.heading.Render(bullet)
	default:
		return s.title.Render(bullet)
	}
}

func indent(block string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := splitLines(block)
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
