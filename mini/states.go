package mini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ava-vibe/ava/generation"
	"github.com/ava-vibe/ava/icon"
	"github.com/ava-vibe/ava/key"
	"github.com/ava-vibe/ava/log"
	"github.com/ava-vibe/ava/preview"
	"github.com/ava-vibe/ava/query"
	"github.com/ava-vibe/ava/settings"
	"github.com/ava-vibe/ava/style"
	"github.com/ava-vibe/ava/util"
	"github.com/ava-vibe/ava/vibe"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type state int

const (
	vibeInputState state = iota + 1
	generateState
	resultState
	customizeState
	quitState
)

// Result menu entries.
const (
	actionNewVibe    = "New vibe"
	actionRegenerate = "Generate again"
	actionCustomize  = "Customize preview"
	actionQuit       = "Quit"

	actionBack = "Back"
)

func (m *mini) handleVibeInputState() error {
	m.title("Describe your vibe")

	in, err := m.prompt.Input(icon.Get(icon.Vibe), query.SuggestMany)
	if err != nil {
		return err
	}

	m.vibe = strings.TrimSpace(in)
	m.newState(generateState)
	return nil
}

func (m *mini) handleGenerateState(ctx context.Context) error {
	job, ok := m.controller.Request(m.vibe)
	if !ok {
		m.fail("Describe a vibe first")
		m.newState(vibeInputState)
		return nil
	}

	erase := m.progress("Generating...")
	s, err := m.controller.Await(ctx)
	erase()

	switch {
	case errors.Is(err, generation.ErrCancelled):
		m.fail("Generation cancelled")
		m.newState(vibeInputState)
		return nil
	case err != nil:
		return fmt.Errorf("generation %s: %w", job.ID, err)
	}

	if viper.GetBool(key.VibesRemember) {
		if err := query.Remember(m.vibe, 1); err != nil {
			log.Warnf("failed to remember vibe: %v", err)
		}
	}

	m.style = mo.Some(s)
	m.printStyle(s)
	m.newState(resultState)
	return nil
}

func (m *mini) handleResultState() error {
	action, err := m.prompt.Select(
		icon.Get(icon.Question)+" What next?",
		[]string{actionNewVibe, actionRegenerate, actionCustomize, actionQuit},
		actionNewVibe,
	)
	if err != nil {
		return err
	}

	switch action {
	case actionNewVibe:
		m.style = mo.None[vibe.Style]()
		m.newState(vibeInputState)
	case actionRegenerate:
		m.newState(generateState)
	case actionCustomize:
		m.newState(customizeState)
	case actionQuit:
		m.newState(quitState)
	}

	return nil
}

func (m *mini) handleCustomizeState() error {
	c := m.settings.Customization()

	speed, err := m.prompt.Select(
		icon.Get(icon.Speed)+" Speed",
		append(names(settings.Speeds()), actionBack),
		string(c.Speed),
	)
	if err != nil {
		return err
	}
	if speed == actionBack {
		m.previousState()
		return nil
	}

	complexity, err := m.prompt.Select(
		icon.Get(icon.Complexity)+" Complexity",
		append(names(settings.Complexities()), actionBack),
		string(c.Complexity),
	)
	if err != nil {
		return err
	}
	if complexity == actionBack {
		m.previousState()
		return nil
	}

	// a failed write is logged by the store and the new values hold for this session
	_ = m.settings.SetCustomization(settings.Customization{
		Speed:      settings.Speed(speed),
		Complexity: settings.Complexity(complexity),
	})

	if s, ok := m.style.Get(); ok {
		m.printLayout(s)
	}

	m.previousState()
	return nil
}

func names[T ~string](options []T) []string {
	return lo.Map(options, func(o T, _ int) string { return string(o) })
}

func (m *mini) printStyle(s vibe.Style) {
	m.title(util.Capitalize(s.Title))
	_, _ = fmt.Fprintln(m.out, style.Faint(s.Description))
	_, _ = fmt.Fprintln(m.out)

	for _, c := range s.Colors() {
		_, _ = fmt.Fprintf(m.out, "%s %-10s %s  %s\n", style.Swatch(c.HSL, 4), c.Name, c.Hex(), style.Faint(c.HSL.String()))
	}

	_, _ = fmt.Fprintln(m.out)
	m.printLayout(s)
}

func (m *mini) printLayout(s vibe.Style) {
	c := m.settings.Customization()
	l := preview.Compose(mo.Some(s), c)

	_, _ = fmt.Fprintf(
		m.out,
		"%s %s, %s speed, revealed in %dms: %s\n",
		icon.Get(icon.Mark),
		util.Quantify(len(l.Blocks), "block", "blocks"),
		c.Speed,
		l.Total().Milliseconds(),
		strings.Join(l.Names(), ", "),
	)
}
