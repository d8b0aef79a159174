package tui

import "github.com/charmbracelet/lipgloss"

// palette is the set of semantic colours a screen is painted with.
type palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Subtle  lipgloss.Color
	Border  lipgloss.Color
	Surface lipgloss.Color
	Base    lipgloss.Color
	Brand   lipgloss.Color
	Accent  lipgloss.Color
	Focus   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

// Catppuccin Mocha, https://catppuccin.com/palette
var defaultPalette = palette{
	Text:    "#cdd6f4",
	Muted:   "#a6adc8",
	Subtle:  "#7f849c",
	Border:  "#45475a",
	Surface: "#313244",
	Base:    "#181825",
	Brand:   "#f5c2e7",
	Accent:  "#cba6f7",
	Focus:   "#b4befe",
	Success: "#a6e3a1",
	Error:   "#f38ba8",
}

// High contrast keeps to black, white and one saturated accent.
var highContrastPalette = palette{
	Text:    "#ffffff",
	Muted:   "#ffffff",
	Subtle:  "#e0e0e0",
	Border:  "#ffffff",
	Surface: "#000000",
	Base:    "#000000",
	Brand:   "#ffff00",
	Accent:  "#ffff00",
	Focus:   "#00ffff",
	Success: "#00ff00",
	Error:   "#ff5555",
}

func paletteFor(highContrast bool) palette {
	if highContrast {
		return highContrastPalette
	}
	return defaultPalette
}
