// Package style provides a functional API for composing and applying lipgloss-based TUI styles.
package style

import (
	"github.com/ava-vibe/ava/settings"
	"github.com/charmbracelet/lipgloss"
)

// Chrome is the color scheme of the application frame. Vibe palettes are drawn
// inside it and never change it.
type Chrome struct {
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color

	Accent    lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

// Dark is the default chrome.
var Dark = Chrome{
	Base:    lipgloss.Color("#1e1e2e"),
	Surface: lipgloss.Color("#313244"),
	Overlay: lipgloss.Color("#6c7086"),
	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),

	Accent:    lipgloss.Color("#cba6f7"),
	Secondary: lipgloss.Color("#b4befe"),
	Success:   lipgloss.Color("#a6e3a1"),
	Warning:   lipgloss.Color("#f9e2af"),
	Error:     lipgloss.Color("#f38ba8"),
}

var Light = Chrome{
	Base:    lipgloss.Color("#eff1f5"),
	Surface: lipgloss.Color("#ccd0da"),
	Overlay: lipgloss.Color("#9ca0b0"),
	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),

	Accent:    lipgloss.Color("#8839ef"),
	Secondary: lipgloss.Color("#7287fd"),
	Success:   lipgloss.Color("#40a02b"),
	Warning:   lipgloss.Color("#df8e1d"),
	Error:     lipgloss.Color("#d20f39"),
}

// ChromeFor returns the chrome of a theme.
func ChromeFor(theme settings.Theme) Chrome {
	if theme == settings.Light {
		return Light
	}
	return Dark
}
