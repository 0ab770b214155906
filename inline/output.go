package inline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ava-vibe/ava/preview"
	"github.com/ava-vibe/ava/settings"
	"github.com/ava-vibe/ava/vibe"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Block is one preview block with its timing in milliseconds.
type Block struct {
	Name       string `json:"name" yaml:"name"`
	Tier       string `json:"tier" yaml:"tier"`
	DelayMs    int64  `json:"delay_ms" yaml:"delay_ms"`
	DurationMs int64  `json:"duration_ms" yaml:"duration_ms"`
}

// Layout is the composed preview for the requested customization.
type Layout struct {
	Speed      settings.Speed      `json:"speed" yaml:"speed"`
	Complexity settings.Complexity `json:"complexity" yaml:"complexity"`
	TotalMs    int64               `json:"total_ms" yaml:"total_ms"`
	Title      string              `json:"title" yaml:"title"`
	Blocks     []Block             `json:"blocks" yaml:"blocks"`
}

type Output struct {
	Vibe   string            `json:"vibe" yaml:"vibe"`
	Style  vibe.Style        `json:"style" yaml:"style"`
	// Hex holds the #rrggbb form of every palette slot, keyed like Style.
	Hex    map[string]string `json:"hex" yaml:"hex"`
	Layout *Layout           `json:"layout,omitempty" yaml:"layout,omitempty"`
}

func hexOf(s vibe.Style) map[string]string {
	return lo.SliceToMap(s.Colors(), func(c vibe.NamedColor) (string, string) {
		return c.Name, c.Hex()
	})
}

var tierNames = map[preview.Tier]string{
	preview.TierBase:   "base",
	preview.TierMedium: "medium",
	preview.TierHigh:   "high",
}

func newLayout(l preview.Layout, c settings.Customization) *Layout {
	return &Layout{
		Speed:      c.Speed,
		Complexity: c.Complexity,
		TotalMs:    l.Total().Milliseconds(),
		Title:      l.Title,
		Blocks: lo.Map(l.Blocks, func(b preview.Block, _ int) Block {
			return Block{
				Name:       b.Name,
				Tier:       tierNames[b.Tier],
				DelayMs:    b.Delay.Milliseconds(),
				DurationMs: b.Duration.Milliseconds(),
			}
		}),
	}
}

func write(out io.Writer, output *Output, format Format) error {
	switch format {
	case YAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(output); err != nil {
			return err
		}
		return encoder.Close()
	case Text:
		_, err := io.WriteString(out, asText(output))
		return err
	default:
		return json.NewEncoder(out).Encode(output)
	}
}

func asText(output *Output) string {
	var b strings.Builder

	s := output.Style
	fmt.Fprintf(&b, "%s\n", s.Title)
	fmt.Fprintf(&b, "%s\n\n", s.Description)

	for _, c := range s.Colors() {
		fmt.Fprintf(&b, "%-12s %-20s %s\n", c.Name, c.HSL, c.Hex())
	}

	if output.Layout != nil {
		l := output.Layout
		fmt.Fprintf(&b, "\nlayout %s/%s, %dms\n", l.Speed, l.Complexity, l.TotalMs)
		for _, block := range l.Blocks {
			fmt.Fprintf(&b, "%-12s %-8s +%dms %dms\n", block.Name, block.Tier, block.DelayMs, block.DurationMs)
		}
	}

	return b.String()
}
