package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color
	Warn   lipgloss.Color
}

var palettes = map[string]palette{
	"catppuccin": {
		Text:   lipgloss.Color("#cdd6f4"),
		Muted:  lipgloss.Color("#a6adc8"),
		Accent: lipgloss.Color("#cba6f7"),
		Border: lipgloss.Color("#585b70"),
		Warn:   lipgloss.Color("#f9e2af"),
	},
	"gruvbox": {
		Text:   lipgloss.Color("#ebdbb2"),
		Muted:  lipgloss.Color("#a89984"),
		Accent: lipgloss.Color("#fabd2f"),
		Border: lipgloss.Color("#665c54"),
		Warn:   lipgloss.Color("#fe8019"),
	},
	"dracula": {
		Text:   lipgloss.Color("#f8f8f2"),
		Muted:  lipgloss.Color("#6272a4"),
		Accent: lipgloss.Color("#ff79c6"),
		Border: lipgloss.Color("#44475a"),
		Warn:   lipgloss.Color("#f1fa8c"),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["catppuccin"]
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
