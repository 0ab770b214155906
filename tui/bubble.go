// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/ava-vibe/ava/config"
	"github.com/ava-vibe/ava/constant"
	"github.com/ava-vibe/ava/generation"
	"github.com/ava-vibe/ava/internal/ui"
	"github.com/ava-vibe/ava/key"
	"github.com/ava-vibe/ava/preview"
	"github.com/ava-vibe/ava/settings"
	"github.com/ava-vibe/ava/style"
	"github.com/ava-vibe/ava/util"
	"github.com/ava-vibe/ava/vibe"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

const maxPreviewWidth = 72

// statefulBubble encapsulates the comprehensive application state, including component models and workflow tracking.
type statefulBubble struct {
	state state

	keymap *statefulKeymap
	chrome style.Chrome

	// components
	inputC   textinput.Model
	loaderC  spinner.Model
	previewC preview.Model
	helpC    help.Model
	notifier *ui.Model

	settings   *settings.Store
	controller *generation.Controller

	// shown identifies the job whose style the preview currently shows.
	shown          mo.Option[uuid.UUID]
	current        mo.Option[vibe.Style]
	vibeSuggestion mo.Option[string]

	loadingMessage int
	loadingTag     int

	width, height int
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y

	b.inputC.Width = max(b.width-len(b.inputC.Prompt)-1, 10)
	b.helpC.Width = b.width
	b.previewC.Width = min(max(b.width-previewFrameStyle.GetHorizontalFrameSize(), 20), maxPreviewWidth)
}

// applyTheme restyles every component for the current theme.
func (b *statefulBubble) applyTheme() {
	b.chrome = style.ChromeFor(b.settings.Theme())

	b.inputC.PromptStyle = lipgloss.NewStyle().Foreground(b.chrome.Accent)
	b.inputC.TextStyle = lipgloss.NewStyle().Foreground(b.chrome.Text)
	b.inputC.PlaceholderStyle = lipgloss.NewStyle().Foreground(b.chrome.Overlay)
	b.inputC.Cursor.Style = lipgloss.NewStyle().Foreground(b.chrome.Accent)

	b.loaderC.Style = lipgloss.NewStyle().Foreground(b.chrome.Accent)

	b.helpC.Styles.ShortKey = lipgloss.NewStyle().Foreground(b.chrome.Subtext)
	b.helpC.Styles.ShortDesc = lipgloss.NewStyle().Foreground(b.chrome.Overlay)
	b.helpC.Styles.FullKey = b.helpC.Styles.ShortKey
	b.helpC.Styles.FullDesc = b.helpC.Styles.ShortDesc
	b.helpC.Styles.FullSeparator = b.helpC.Styles.ShortDesc
	b.helpC.Styles.ShortSeparator = b.helpC.Styles.ShortDesc

	b.notifier.Style = lipgloss.NewStyle().Foreground(b.chrome.Overlay)
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(options *Options) *statefulBubble {
	controller := options.Controller
	if controller == nil {
		controller = generation.New(&generation.Options{Latency: config.Latency()})
	}

	bubble := statefulBubble{
		keymap:     newStatefulKeymap(),
		settings:   options.Settings,
		controller: controller,
		notifier:   &ui.Model{},
	}

	bubble.helpC = help.New()
	bubble.helpC.ShowAll = true

	bubble.loaderC = spinner.New()
	bubble.loaderC.Spinner = spinner.Pulse

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Describe your vibe (v%s)", constant.Version)
	bubble.inputC.CharLimit = 0
	bubble.inputC.Prompt = viper.GetString(key.TUIVibePrompt)
	bubble.inputC.SetValue(options.Vibe)

	bubble.previewC = preview.New(
		preview.WithFPS(config.FPS()),
		preview.WithTypewriterInterval(config.TypewriterInterval()),
	)

	bubble.applyTheme()

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	} else {
		bubble.resize(maxPreviewWidth+paddingStyle.GetHorizontalFrameSize(), 0)
	}

	bubble.inputC.Focus()

	return &bubble
}
