// Package ui provides internal state management and rendering utilities for ephemeral terminal notifications.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NotificationLifetime is how long a notification stays on screen.
const NotificationLifetime = 3 * time.Second

// Model encapsulates the state for displaying non-blocking terminal alerts.
type Model struct {
	Style lipgloss.Style

	notification string
	serial       int
}

// NotificationMsg shows a notification.
type NotificationMsg string

// ClearNotificationMsg is a Bubbletea message used to reset the visual notification state.
type ClearNotificationMsg struct {
	serial int
}

// Notify returns a tea.Cmd that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

// Current returns the visible notification, if any.
func (m *Model) Current() string {
	return m.notification
}

// Update processes incoming messages to modify the notification state.
// A clear scheduled by an older notification never hides a newer one.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = string(msg)
		m.serial++
		serial := m.serial
		return tea.Tick(NotificationLifetime, func(time.Time) tea.Msg {
			return ClearNotificationMsg{serial: serial}
		})
	case ClearNotificationMsg:
		if msg.serial == m.serial {
			m.notification = ""
		}
	}
	return nil
}

// View appends the current notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] += "  " + m.Style.Render(m.notification)
	return strings.Join(lines, "\n")
}
