package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Muted   lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor

	// Plain disables colored prompts.
	Plain bool
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "default"

var themes = map[string]Palette{
	"default": {
		Primary: lipgloss.AdaptiveColor{Light: "#3b5bdb", Dark: "#7aa2f7"},
		Accent:  lipgloss.AdaptiveColor{Light: "#0c8599", Dark: "#7dcfff"},
		Muted:   lipgloss.AdaptiveColor{Light: "#868e96", Dark: "#565f89"},
		Success: lipgloss.AdaptiveColor{Light: "#2b8a3e", Dark: "#9ece6a"},
		Warning: lipgloss.AdaptiveColor{Light: "#e67700", Dark: "#e0af68"},
		Error:   lipgloss.AdaptiveColor{Light: "#c92a2a", Dark: "#f7768e"},
	},
	"mono": {
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Plain:   true,
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}
