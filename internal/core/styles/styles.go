// Package styles provides shared lipgloss styles for CLI output and prompts.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

var (
	TitleStyle   lipgloss.Style
	QuoteStyle   lipgloss.Style
	HeadingStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	QuoteStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Italic(true)
	HeadingStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Underline(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	WarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
}

// FormTheme returns the huh theme matching the active palette.
func FormTheme() *huh.Theme {
	if CurrentPalette.Plain {
		return huh.ThemeBase()
	}
	return huh.ThemeCharm()
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
