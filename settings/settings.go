// Package settings holds the user's customization (speed, complexity) and theme,
// and persists each of them as an independent record on every change.
package settings

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// Speed controls the per-block reveal duration of the preview.
type Speed string

const (
	Slow   Speed = "slow"
	Normal Speed = "normal"
	Fast   Speed = "fast"
)

// Complexity controls how many mock blocks the preview shows.
type Complexity string

const (
	Low    Complexity = "low"
	Medium Complexity = "medium"
	High   Complexity = "high"
)

// Theme is the chrome color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

var (
	ErrUnknownSpeed      = errors.New("unknown speed")
	ErrUnknownComplexity = errors.New("unknown complexity")
	ErrUnknownTheme      = errors.New("unknown theme")
)

// Speeds lists the speed options in toggle order.
func Speeds() []Speed { return []Speed{Slow, Normal, Fast} }

// Complexities lists the complexity options in toggle order.
func Complexities() []Complexity { return []Complexity{Low, Medium, High} }

// Themes lists the theme options in toggle order.
func Themes() []Theme { return []Theme{Light, Dark} }

// Customization is the persisted pair of preview parameters.
type Customization struct {
	Speed      Speed      `json:"speed" validate:"required,oneof=slow normal fast"`
	Complexity Complexity `json:"complexity" validate:"required,oneof=low medium high"`
}

// DefaultCustomization is used when nothing valid is stored.
func DefaultCustomization() Customization {
	return Customization{Speed: Normal, Complexity: Medium}
}

// ParseSpeed validates a user-supplied speed.
func ParseSpeed(s string) (Speed, error) {
	if lo.Contains(Speeds(), Speed(s)) {
		return Speed(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSpeed, s)
}

// ParseComplexity validates a user-supplied complexity.
func ParseComplexity(s string) (Complexity, error) {
	if lo.Contains(Complexities(), Complexity(s)) {
		return Complexity(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownComplexity, s)
}

// ParseTheme validates a user-supplied theme.
func ParseTheme(s string) (Theme, error) {
	if lo.Contains(Themes(), Theme(s)) {
		return Theme(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// next returns the element after current, wrapping around.
func next[T comparable](options []T, current T) T {
	_, i, ok := lo.FindIndexOf(options, func(o T) bool { return o == current })
	if !ok {
		return options[0]
	}
	return options[(i+1)%len(options)]
}
