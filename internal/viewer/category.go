package viewer

import "github.com/charmbracelet/lipgloss"

// Icon identifies the glyph drawn next to a category.
type Icon string

const (
	IconHeart         Icon = "heart"
	IconMessageCircle Icon = "message-circle"
	IconHand          Icon = "hand"
	IconLightbulb     Icon = "lightbulb"
	IconPalette       Icon = "palette"
	IconUsers         Icon = "users"
	IconBookOpen      Icon = "book-open"
)

// DefaultIcon is used for any category without a dedicated icon.
const DefaultIcon = IconBookOpen

// Style is the badge styling for a category: a class name plus the colours
// the terminal renderer paints it with.
type Style struct {
	Class      string
	Foreground lipgloss.Color
	Background lipgloss.Color
	Border     lipgloss.Color
}

// DefaultStyle is the neutral style for unrecognised categories.
var DefaultStyle = Style{
	Class:      "bg-gray-100 text-gray-700 border-gray-200",
	Foreground: "#374151",
	Background: "#f3f4f6",
	Border:     "#e5e7eb",
}

var categoryIcons = map[string]Icon{
	"Emotions":      IconHeart,
	"Communication": IconMessageCircle,
	"Motor skills":  IconHand,
	"Cognition":     IconLightbulb,
	"Creativity":    IconPalette,
	"Socialization": IconUsers,
}

var categoryStyles = map[string]Style{
	"Emotions": {
		Class:      "bg-pink-100 text-pink-700 border-pink-200",
		Foreground: "#be185d", Background: "#fce7f3", Border: "#fbcfe8",
	},
	"Communication": {
		Class:      "bg-purple-100 text-purple-700 border-purple-200",
		Foreground: "#7e22ce", Background: "#f3e8ff", Border: "#e9d5ff",
	},
	"Motor skills": {
		Class:      "bg-yellow-100 text-yellow-700 border-yellow-200",
		Foreground: "#a16207", Background: "#fef9c3", Border: "#fef08a",
	},
	"Cognition": {
		Class:      "bg-green-100 text-green-700 border-green-200",
		Foreground: "#15803d", Background: "#dcfce7", Border: "#bbf7d0",
	},
	"Creativity": {
		Class:      "bg-blue-100 text-blue-700 border-blue-200",
		Foreground: "#1d4ed8", Background: "#dbeafe", Border: "#bfdbfe",
	},
	"Socialization": {
		Class:      "bg-orange-100 text-orange-700 border-orange-200",
		Foreground: "#c2410c", Background: "#ffedd5", Border: "#fed7aa",
	},
}

// CategoryIcon returns the icon for category, or DefaultIcon.
func CategoryIcon(category string) Icon {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return DefaultIcon
}

// CategoryStyle returns the badge style for category, or DefaultStyle.
func CategoryStyle(category string) Style {
	if style, ok := categoryStyles[category]; ok {
		return style
	}
	return DefaultStyle
}
