// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"time"

	"github.com/ava-vibe/ava/log"
	"github.com/ava-vibe/ava/preview"
	"github.com/ava-vibe/ava/query"
	"github.com/ava-vibe/ava/vibe"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/samber/mo"
)

const loadingMessageInterval = 1500 * time.Millisecond

var loadingMessages = []string{
	"Ava is dreaming your vibe...",
	"Compiling aesthetics...",
	"Visualizing concepts...",
	"Rendering pixels with soul...",
	"Harmonizing design elements...",
}

// generationChangedMsg reports that the controller went through a transition.
type generationChangedMsg struct{}

// loadingTickMsg rotates the loading message.
type loadingTickMsg struct {
	tag int
}

// waitForGeneration blocks until the next controller transition. The channel
// is taken before the command runs so no transition in between is missed.
func (b *statefulBubble) waitForGeneration() tea.Cmd {
	if b.controller.Closed() {
		return nil
	}

	changed := b.controller.Changed()
	return func() tea.Msg {
		<-changed
		return generationChangedMsg{}
	}
}

// generate submits the current input. Blank input does nothing.
func (b *statefulBubble) generate() {
	text := b.inputC.Value()
	job, ok := b.controller.Request(text)
	if !ok {
		return
	}

	log.Infof("generating %q as %s", text, job.ID)
	b.vibeSuggestion = mo.None[string]()

	go func() {
		if err := query.Remember(text, 1); err != nil {
			log.Warnf("failed to remember vibe: %v", err)
		}
	}()
}

// syncGeneration brings the screen in line with the controller.
func (b *statefulBubble) syncGeneration() tea.Cmd {
	snapshot := b.controller.Snapshot()
	previous := b.state
	b.setState(stateOf(snapshot.State))

	var cmds []tea.Cmd

	switch b.state {
	case pendingState:
		if previous != pendingState {
			cmds = append(cmds, b.startLoading())
		}
		cmds = append(cmds, b.showStyle(mo.None[vibe.Style]()))
		b.shown = mo.None[uuid.UUID]()
	case readyState:
		job := snapshot.Job.MustGet()
		if id, ok := b.shown.Get(); !ok || id != job.ID {
			b.shown = mo.Some(job.ID)
			cmds = append(cmds, b.showStyle(snapshot.Style))
		}
	default:
		b.shown = mo.None[uuid.UUID]()
		cmds = append(cmds, b.showStyle(mo.None[vibe.Style]()))
	}

	if b.state != pendingState {
		b.loadingTag++
	}

	return tea.Batch(cmds...)
}

// showStyle composes the preview for style and restarts its reveal.
func (b *statefulBubble) showStyle(style mo.Option[vibe.Style]) tea.Cmd {
	b.current = style
	return b.previewC.SetLayout(preview.Compose(style, b.settings.Customization()))
}

// recompose rebuilds the preview after a customization change.
func (b *statefulBubble) recompose() tea.Cmd {
	if b.current.IsAbsent() {
		return nil
	}
	return b.previewC.SetLayout(preview.Compose(b.current, b.settings.Customization()))
}

func (b *statefulBubble) startLoading() tea.Cmd {
	b.loadingMessage = 0
	b.loadingTag++
	return tea.Batch(b.loaderC.Tick, b.rotateLoadingMessage())
}

func (b *statefulBubble) rotateLoadingMessage() tea.Cmd {
	tag := b.loadingTag
	return tea.Tick(loadingMessageInterval, func(time.Time) tea.Msg {
		return loadingTickMsg{tag: tag}
	})
}
