// Package vibe turns a free-text description into a deterministic style record.
//
// Synthesize is a pure function: no randomness, no clock, no I/O. The same text
// always yields the same palette, on every machine.
package vibe

import (
	"fmt"
	"strings"

	"github.com/ava-vibe/ava/color"
)

// FallbackTitle is used when the vibe has no words.
const FallbackTitle = "Generated Vibe"

const titleWords = 3

// Base offsets of the palette. Saturation spans [70, 84], lightness [55, 64].
const (
	baseSaturation  = 70
	saturationSpan  = 15
	baseLightness   = 55
	lightnessSpan   = 10
	accentHueShift  = 120
	accentSatDrop   = 10
	accentLightRise = 15
	neutralHueShift = 200
)

// Style is the synthesized palette plus the display copy derived from a vibe.
type Style struct {
	Vibe        string    `json:"vibe" yaml:"vibe"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Hash        int32     `json:"hash" yaml:"hash"`
	Primary     color.HSL `json:"primary" yaml:"primary"`
	Accent      color.HSL `json:"accent" yaml:"accent"`
	Background  color.HSL `json:"background" yaml:"background"`
	Text        color.HSL `json:"text" yaml:"text"`
}

// Synthesize maps any string, empty included, to its style.
func Synthesize(input string) Style {
	hash := Hash(input)

	hue := mod(hash, 360)
	saturation := baseSaturation + mod(hash, saturationSpan)
	lightness := baseLightness + mod(hash, lightnessSpan)
	neutralHue := (hue + neutralHueShift) % 360

	title := Title(input)

	return Style{
		Vibe:        input,
		Title:       title,
		Description: describe(title),
		Hash:        hash,
		Primary:     color.HSL{H: hue, S: saturation, L: lightness},
		Accent: color.HSL{
			H: (hue + accentHueShift) % 360,
			S: saturation - accentSatDrop,
			L: lightness + accentLightRise,
		},
		Background: color.HSL{H: neutralHue, S: 10, L: 15},
		Text:       color.HSL{H: neutralHue, S: 5, L: 85},
	}
}

// Title keeps the first three words of the trimmed vibe.
func Title(input string) string {
	words := strings.Fields(input)
	if len(words) == 0 {
		return FallbackTitle
	}
	if len(words) > titleWords {
		words = words[:titleWords]
	}
	return strings.Join(words, " ")
}

func describe(title string) string {
	return fmt.Sprintf("A %s inspired interface with a palette tuned to your vibe.", title)
}

// Colors lists the palette in display order.
func (s Style) Colors() []NamedColor {
	return []NamedColor{
		{Name: "primary", HSL: s.Primary},
		{Name: "accent", HSL: s.Accent},
		{Name: "background", HSL: s.Background},
		{Name: "text", HSL: s.Text},
	}
}

// NamedColor pairs a palette slot with its value.
type NamedColor struct {
	Name string
	color.HSL
}
