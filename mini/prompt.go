package mini

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/ava-vibe/ava/color"
	"github.com/ava-vibe/ava/icon"
	"github.com/ava-vibe/ava/style"
	"github.com/mattn/go-runewidth"
)

// prompter asks the user for input.
type prompter interface {
	Input(message string, suggest func(string) []string) (string, error)
	Select(message string, options []string, def string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message string, suggest func(string) []string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{
		Message: message,
		Suggest: suggest,
	}, &answer, survey.WithValidator(func(ans any) error {
		if s, ok := ans.(string); ok && strings.TrimSpace(s) == "" {
			return errors.New("describe a vibe first")
		}
		return nil
	}))
	return answer, err
}

func (surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var answer string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if def != "" {
		prompt.Default = def
	}
	err := survey.AskOne(prompt, &answer)
	return answer, err
}

func (m *mini) title(text string) {
	_, _ = fmt.Fprintln(m.out, style.Title(runewidth.Truncate(text, truncateAt, "…")))
}

func (m *mini) fail(text string) {
	_, _ = fmt.Fprintln(m.out, style.Fg(color.Red)(icon.Get(icon.Fail)+" "+text))
}

func (m *mini) progress(text string) func() {
	_, _ = fmt.Fprint(m.out, style.Faint(icon.Get(icon.Progress)+" "+text))
	return func() {
		_, _ = fmt.Fprint(m.out, "\r\033[K")
	}
}
