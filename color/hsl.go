package color

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/invopop/jsonschema"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSL is a hue/saturation/lightness triple. H is in degrees, S and L in percent.
// It encodes as its css notation in JSON and YAML.
type HSL struct {
	H int
	S int
	L int
}

var hslPattern = regexp.MustCompile(`^\s*hsl\(\s*(\d{1,3})\s*,\s*(\d{1,3})%\s*,\s*(\d{1,3})%\s*\)\s*$`)

// String renders the CSS notation, e.g. hsl(262, 77%, 57%).
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// Hex converts the triple to a #rrggbb string.
func (c HSL) Hex() string {
	return colorful.Hsl(float64(c.H), float64(c.S)/100, float64(c.L)/100).Clamped().Hex()
}

// Lipgloss returns the color in a form lipgloss can render.
func (c HSL) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// ParseHSL reads the notation produced by String.
func ParseHSL(s string) (HSL, error) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return HSL{}, fmt.Errorf("invalid hsl color %q", s)
	}

	h, _ := strconv.Atoi(m[1])
	sat, _ := strconv.Atoi(m[2])
	l, _ := strconv.Atoi(m[3])

	if h > 359 || sat > 100 || l > 100 {
		return HSL{}, fmt.Errorf("hsl color out of range %q", s)
	}

	return HSL{H: h, S: sat, L: l}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (c HSL) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *HSL) UnmarshalText(text []byte) error {
	parsed, err := ParseHSL(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// JSONSchema describes the css notation for schema reflection.
func (HSL) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     hslPattern.String(),
		Description: "css hsl() color",
	}
}
