package style

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Text  = lipgloss.Color("#cdd6f4")
	Mauve = lipgloss.Color("#cba6f7")
	Red   = lipgloss.Color("#f38ba8")
	Green = lipgloss.Color("#a6e3a1")

	AccentColor = Mauve
	HiRed       = Red
)
