// Package mini implements a lightweight line-mode interface: prompts instead of a full-screen program.
package mini

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/ava-vibe/ava/config"
	"github.com/ava-vibe/ava/generation"
	"github.com/ava-vibe/ava/settings"
	"github.com/ava-vibe/ava/util"
	"github.com/ava-vibe/ava/vibe"
	"github.com/samber/mo"
)

var truncateAt = 80

type Options struct {
	Settings   *settings.Store
	Controller *generation.Controller
	// Vibe skips the first prompt when set.
	Vibe string
	Out  io.Writer
}

type mini struct {
	state         state
	statesHistory []state

	prompt     prompter
	out        io.Writer
	settings   *settings.Store
	controller *generation.Controller

	vibe  string
	style mo.Option[vibe.Style]
}

func newMini(options *Options, prompt prompter) *mini {
	controller := options.Controller
	if controller == nil {
		controller = generation.New(&generation.Options{Latency: config.Latency()})
	}

	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	m := &mini{
		state:      vibeInputState,
		prompt:     prompt,
		out:        out,
		settings:   options.Settings,
		controller: controller,
		vibe:       options.Vibe,
	}

	if m.vibe != "" {
		m.state = generateState
	}

	return m
}

func (m *mini) previousState() {
	if n := len(m.statesHistory); n > 0 {
		m.setState(m.statesHistory[n-1])
		m.statesHistory = m.statesHistory[:n-1]
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	// generation is transient, going back returns to the prompt before it
	if m.state != generateState {
		m.statesHistory = append(m.statesHistory, m.state)
	}

	m.setState(s)
}

// Run loops over the prompts until the user quits or interrupts.
func Run(ctx context.Context, options *Options) error {
	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	m := newMini(options, surveyPrompter{})
	defer m.controller.Close()

	return m.run(ctx)
}

func (m *mini) run(ctx context.Context) error {
	for m.state != quitState {
		if err := m.handleState(ctx); err != nil {
			if errors.Is(err, terminal.InterruptErr) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}

	return nil
}

func (m *mini) handleState(ctx context.Context) error {
	switch m.state {
	case vibeInputState:
		return m.handleVibeInputState()
	case generateState:
		return m.handleGenerateState(ctx)
	case resultState:
		return m.handleResultState()
	case customizeState:
		return m.handleCustomizeState()
	}

	return nil
}
