// Package preview composes the mock interface shown for a synthesized style and
// animates its staged reveal.
//
// Compose is pure: it picks the blocks for a complexity, colors them from the
// style and times them from the speed. Model drives the animation of a Layout.
package preview

import (
	"time"

	"github.com/ava-vibe/ava/color"
	"github.com/ava-vibe/ava/settings"
	"github.com/ava-vibe/ava/vibe"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Placeholder is shown while there is no style to preview.
const Placeholder = "Your generated UI will appear here."

// FallbackTitle is typed on the engage block when the style has no title.
const FallbackTitle = "Engage"

// Tier is the complexity level that introduces a block.
type Tier int

const (
	TierBase Tier = iota
	TierMedium
	TierHigh
)

// Group ties blocks that render on the same row.
type Group string

const (
	GroupHeader  Group = "header"
	GroupContent Group = "content"
	GroupGrid2   Group = "grid-2"
	GroupGrid3   Group = "grid-3"
	GroupEngage  Group = "engage"
)

var blockDurations = map[settings.Speed]time.Duration{
	settings.Slow:   800 * time.Millisecond,
	settings.Normal: 500 * time.Millisecond,
	settings.Fast:   200 * time.Millisecond,
}

// BlockDuration is the fade and scale duration of one block. Unknown speeds use normal.
func BlockDuration(speed settings.Speed) time.Duration {
	if d, ok := blockDurations[speed]; ok {
		return d
	}
	return blockDurations[settings.Normal]
}

// Block is one element of the mock interface.
type Block struct {
	Name     string
	Group    Group
	Tier     Tier
	Delay    time.Duration
	Duration time.Duration

	Fill   color.HSL
	Border color.HSL
	Ink    color.HSL
}

// Layout is the composed preview. A layout without blocks shows Placeholder instead.
type Layout struct {
	Placeholder string
	Title       string
	Style       mo.Option[vibe.Style]
	Blocks      []Block
}

// Empty reports whether the layout is the static placeholder.
func (l Layout) Empty() bool {
	return len(l.Blocks) == 0
}

// Total is the wall-clock length of the full reveal.
func (l Layout) Total() time.Duration {
	if l.Empty() {
		return 0
	}
	last := l.Blocks[len(l.Blocks)-1]
	return last.Delay + last.Duration
}

// Names lists block names in reveal order.
func (l Layout) Names() []string {
	return lo.Map(l.Blocks, func(b Block, _ int) string { return b.Name })
}

type blockSpec struct {
	name  string
	group Group
	tier  Tier
	paint func(vibe.Style) (fill, border, ink color.HSL)
}

func onPrimary(s vibe.Style) (color.HSL, color.HSL, color.HSL) {
	return s.Primary, s.Primary, s.Background
}

func onAccent(s vibe.Style) (color.HSL, color.HSL, color.HSL) {
	return s.Background, s.Accent, s.Accent
}

func onSurface(s vibe.Style) (color.HSL, color.HSL, color.HSL) {
	return s.Background, s.Text, s.Text
}

func engage(s vibe.Style) (color.HSL, color.HSL, color.HSL) {
	return s.Primary, s.Primary, s.Text
}

var (
	baseSpecs = []blockSpec{
		{"header", GroupHeader, TierBase, onPrimary},
		{"content", GroupContent, TierBase, onAccent},
	}
	mediumSpecs = []blockSpec{
		{"card", GroupGrid2, TierMedium, onSurface},
		{"visualize", GroupGrid2, TierMedium, onAccent},
	}
	highSpecs = []blockSpec{
		{"tile-1", GroupGrid3, TierHigh, onSurface},
		{"tile-2", GroupGrid3, TierHigh, onSurface},
		{"tile-3", GroupGrid3, TierHigh, onSurface},
	}
	engageSpec = blockSpec{"engage", GroupEngage, TierBase, engage}
)

func specsFor(complexity settings.Complexity) []blockSpec {
	specs := append([]blockSpec{}, baseSpecs...)

	switch complexity {
	case settings.Low:
	case settings.High:
		specs = append(specs, mediumSpecs...)
		specs = append(specs, highSpecs...)
	default:
		specs = append(specs, mediumSpecs...)
	}

	return append(specs, engageSpec)
}

// Compose builds the layout for a style, or the placeholder when there is none.
// Block i starts at i times half the block duration.
func Compose(style mo.Option[vibe.Style], c settings.Customization) Layout {
	s, ok := style.Get()
	if !ok {
		return Layout{Placeholder: Placeholder, Style: style}
	}

	duration := BlockDuration(c.Speed)
	stagger := duration / 2

	blocks := lo.Map(specsFor(c.Complexity), func(spec blockSpec, i int) Block {
		fill, border, ink := spec.paint(s)
		return Block{
			Name:     spec.name,
			Group:    spec.group,
			Tier:     spec.tier,
			Delay:    time.Duration(i) * stagger,
			Duration: duration,
			Fill:     fill,
			Border:   border,
			Ink:      ink,
		}
	})

	title := s.Title
	if title == "" {
		title = FallbackTitle
	}

	return Layout{
		Title:  title,
		Style:  style,
		Blocks: blocks,
	}
}
