package tui

import "github.com/jask/lessonbook/internal/viewer"

var iconGlyphs = map[viewer.Icon]string{
	viewer.IconHeart:         "♥",
	viewer.IconMessageCircle: "❝",
	viewer.IconHand:          "☚",
	viewer.IconLightbulb:     "✦",
	viewer.IconPalette:       "✿",
	viewer.IconUsers:         "☺",
	viewer.IconBookOpen:      "▤",
}

// glyph returns the terminal glyph for icon, falling back to the book.
func glyph(icon viewer.Icon) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return iconGlyphs[viewer.DefaultIcon]
}

const (
	glyphClock    = "◷"
	glyphCheck    = "✔"
	glyphStar     = "★"
	glyphHeart    = "♥"
	glyphExpanded = "▾"
	glyphFolded   = "▸"
	glyphCursor   = "▶"
)
