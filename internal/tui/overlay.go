package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt composites box on top of base with its top-left corner at column
// x, row y. Rows outside height are dropped; the base shows through on both
// sides of the box.
func overlayAt(base, box string, x, y, width, height int) string {
	baseLines := splitLines(base)
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	boxLines := splitLines(box)
	boxWidth := maxLineWidth(boxLines)
	for i, line := range boxLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		line = padRight(line, boxWidth)
		right := ""
		if width > 0 {
			right = ansi.TruncateLeft(target, x+ansi.StringWidth(line), "")
		}
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

// centerOverlay places box in the middle of a width x height base.
func centerOverlay(base, box string, width, height int) string {
	lines := splitLines(box)
	x := (width - maxLineWidth(lines)) / 2
	if x < 0 {
		x = 0
	}
	y := (height - len(lines)) / 2
	if y < 0 {
		y = 0
	}
	return overlayAt(base, box, x, y, width, height)
}

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// maxLineWidth returns the visual width of the widest line.
func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate shortens s to width cells, appending an ellipsis if cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// window returns at most height lines of s starting at offset.
func window(s string, offset, height int) string {
	lines := splitLines(s)
	if height <= 0 || len(lines) <= height {
		return s
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(lines)-height {
		offset = len(lines) - height
	}
	return strings.Join(lines[offset:offset+height], "\n")
}
