// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/ava-vibe/ava/icon"
	"github.com/ava-vibe/ava/internal/ui"
	"github.com/ava-vibe/ava/preview"
	"github.com/ava-vibe/ava/query"
	"github.com/ava-vibe/ava/typewriter"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmds = append(cmds, uiCmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, tea.Batch(append(cmds, b.recompose())...)
	case generationChangedMsg:
		cmds = append(cmds, b.syncGeneration(), b.waitForGeneration())
		return b, tea.Batch(cmds...)
	case loadingTickMsg:
		if msg.tag != b.loadingTag || b.state != pendingState {
			return b, nil
		}
		b.loadingMessage = (b.loadingMessage + 1) % len(loadingMessages)
		return b, b.rotateLoadingMessage()
	case spinner.TickMsg:
		if b.state != pendingState {
			return b, nil
		}
		var cmd tea.Cmd
		b.loaderC, cmd = b.loaderC.Update(msg)
		return b, cmd
	case preview.FrameMsg, typewriter.TickMsg:
		var cmd tea.Cmd
		b.previewC, cmd = b.previewC.Update(msg)
		return b, cmd
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if cmd, handled := b.handleKey(msg); handled {
			return b, tea.Batch(append(cmds, cmd)...)
		}
	}

	return b, tea.Batch(append(cmds, b.updateInput(msg))...)
}

// handleKey processes the shortcuts shared by every state.
func (b *statefulBubble) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case bubblesKey.Matches(msg, b.keymap.generate):
		b.generate()
		return b.syncGeneration(), true
	case bubblesKey.Matches(msg, b.keymap.acceptVibeSuggestion):
		suggestion, ok := b.vibeSuggestion.Get()
		if !ok {
			return nil, true
		}
		b.inputC.SetValue(suggestion)
		b.inputC.CursorEnd()
		b.vibeSuggestion = mo.None[string]()
		return nil, true
	case bubblesKey.Matches(msg, b.keymap.cycleSpeed):
		// write failures are logged by the store, the new value holds for the session
		speed, _ := b.settings.CycleSpeed()
		return tea.Batch(b.recompose(), ui.Notify(fmt.Sprintf("%s speed: %s", icon.Get(icon.Speed), speed))), true
	case bubblesKey.Matches(msg, b.keymap.cycleComplexity):
		complexity, _ := b.settings.CycleComplexity()
		return tea.Batch(b.recompose(), ui.Notify(fmt.Sprintf("%s complexity: %s", icon.Get(icon.Complexity), complexity))), true
	case bubblesKey.Matches(msg, b.keymap.toggleTheme):
		_, _ = b.settings.ToggleTheme()
		b.applyTheme()
		return nil, true
	case bubblesKey.Matches(msg, b.keymap.replay):
		if b.state != readyState {
			return nil, true
		}
		return b.previewC.Replay(), true
	case bubblesKey.Matches(msg, b.keymap.cancel):
		switch b.state {
		case pendingState:
			b.controller.Cancel()
		case readyState:
			b.controller.Clear()
		default:
			b.inputC.SetValue("")
			b.vibeSuggestion = mo.None[string]()
		}
		return b.syncGeneration(), true
	}

	return nil, false
}

// updateInput forwards msg to the text input and refreshes the vibe suggestion.
func (b *statefulBubble) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)

	if value := b.inputC.Value(); value != "" {
		if suggestion, ok := query.Suggest(value).Get(); ok && suggestion != value {
			b.vibeSuggestion = mo.Some(suggestion)
		} else {
			b.vibeSuggestion = mo.None[string]()
		}
	} else if b.vibeSuggestion.IsPresent() {
		b.vibeSuggestion = mo.None[string]()
	}

	return cmd
}
