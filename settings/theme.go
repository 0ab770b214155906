package settings

import (
	"os"

	"github.com/muesli/termenv"
	"github.com/samber/mo"
	"golang.org/x/term"
)

// ThemeDetector reports the ambient theme, if there is any signal for it.
type ThemeDetector func() mo.Option[Theme]

// DetectTheme asks the terminal for its background color. Without a terminal there is no signal.
func DetectTheme() mo.Option[Theme] {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return mo.None[Theme]()
	}
	if termenv.HasDarkBackground() {
		return mo.Some(Dark)
	}
	return mo.Some(Light)
}

// NoThemeSignal is a detector that never answers.
func NoThemeSignal() mo.Option[Theme] {
	return mo.None[Theme]()
}
