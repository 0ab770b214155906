// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/ava-vibe/ava/config"
	"github.com/ava-vibe/ava/generation"
	"github.com/ava-vibe/ava/settings"
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Settings *settings.Store
	// Controller is created from the configured latency when nil.
	Controller *generation.Controller
	// Vibe is typed into the input on start.
	Vibe string
}

// Run initializes and executes the primary Bubble Tea application loop.
// The generation controller is closed when the program exits.
func Run(options *Options) error {
	bubble := newBubble(options)
	defer bubble.controller.Close()

	config.Watch(func() {
		bubble.controller.SetLatency(config.Latency())
	})

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
