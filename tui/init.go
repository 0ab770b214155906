// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the cursor blink and the subscription to generation changes.
func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, b.waitForGeneration())
}
