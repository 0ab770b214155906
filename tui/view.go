// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"strings"

	"github.com/ava-vibe/ava/constant"
	"github.com/ava-vibe/ava/icon"
	"github.com/ava-vibe/ava/key"
	"github.com/ava-vibe/ava/settings"
	"github.com/ava-vibe/ava/style"
	"github.com/ava-vibe/ava/util"
	"github.com/ava-vibe/ava/vibe"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const swatchWidth = 6

var (
	paddingStyle      = lipgloss.NewStyle().Padding(1, 2)
	previewFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (b *statefulBubble) View() string {
	lines := []string{
		b.viewHeader(),
		"",
		b.viewInput(),
		"",
	}

	if s, ok := b.current.Get(); ok {
		lines = append(lines, b.viewDescription(s), "")
	}

	lines = append(lines, b.viewPreview())

	if s, ok := b.current.Get(); ok && viper.GetBool(key.TUIShowPalette) {
		lines = append(lines, "", b.viewPalette(s))
	}

	return b.notifier.View(b.renderLines(lines))
}

func (b *statefulBubble) viewHeader() string {
	themeIcon := icon.Get(icon.Dark)
	if b.settings.Theme() == settings.Light {
		themeIcon = icon.Get(icon.Light)
	}

	title := style.Colored(b.chrome.Base, b.chrome.Accent).Bold(true).Padding(0, 1).Render(constant.Ava)
	version := style.Fg(b.chrome.Overlay)("v" + constant.Version)

	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", version, "  ", themeIcon)
}

func (b *statefulBubble) viewInput() string {
	accent := style.Fg(b.chrome.Accent)
	faint := style.Fg(b.chrome.Overlay)

	label := lipgloss.NewStyle().Foreground(b.chrome.Text).Bold(true).Render("Describe your vibe")

	input := b.inputC.View()
	if suggestion, ok := b.vibeSuggestion.Get(); ok {
		input += "  " + faint(icon.Get(icon.Mark)+" "+suggestion+" (tab)")
	}

	c := b.settings.Customization()
	toggles := lipgloss.JoinHorizontal(
		lipgloss.Top,
		viewToggle(b.chrome, icon.Get(icon.Speed)+" Speed", settings.Speeds(), c.Speed),
		"    ",
		viewToggle(b.chrome, icon.Get(icon.Complexity)+" Complexity", settings.Complexities(), c.Complexity),
	)

	var status string
	switch b.state {
	case pendingState:
		status = b.loaderC.View() + " " + accent(loadingMessages[b.loadingMessage])
	default:
		status = faint("press enter to generate")
	}

	return strings.Join([]string{label, input, "", toggles, "", status}, "\n")
}

func viewToggle[T ~string](chrome style.Chrome, label string, options []T, current T) string {
	values := lo.Map(options, func(option T, _ int) string {
		if option == current {
			return style.Colored(chrome.Base, chrome.Accent).Padding(0, 1).Render(string(option))
		}
		return style.New().Foreground(chrome.Subtext).Padding(0, 1).Render(string(option))
	})

	return style.Fg(chrome.Subtext)(label+" ") + strings.Join(values, "")
}

func (b *statefulBubble) viewDescription(s vibe.Style) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(s.Primary.Lipgloss()).Render(util.Capitalize(s.Title))
	description := wordwrap.String(s.Description, max(b.width, 20))
	return title + "\n" + style.Fg(b.chrome.Subtext)(description)
}

func (b *statefulBubble) viewPreview() string {
	return previewFrameStyle.
		BorderForeground(b.chrome.Surface).
		Render(b.previewC.View())
}

func (b *statefulBubble) viewPalette(s vibe.Style) string {
	swatches := lo.Map(s.Colors(), func(c vibe.NamedColor, _ int) string {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			style.Swatch(c.HSL, swatchWidth),
			style.Fg(b.chrome.Subtext)(c.Name),
			style.Fg(b.chrome.Overlay)(c.Hex()),
		)
	})

	header := style.Fg(b.chrome.Subtext)(icon.Get(icon.Palette) + " Palette")
	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, lo.Interleave(swatches, lo.Times(len(swatches)-1, func(int) string { return "  " }))...)
}

// renderLines pins the help to the bottom of the screen.
func (b *statefulBubble) renderLines(lines []string) string {
	l := strings.Join(lines, "\n")
	if h := lipgloss.Height(l); b.height > h+1 {
		l += strings.Repeat("\n", b.height-h-1)
	}
	l += "\n" + b.helpC.View(b.keymap)

	return paddingStyle.Render(l)
}
