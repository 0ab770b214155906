package inline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ava-vibe/ava/settings"
	"github.com/samber/lo"
)

// Format of the written output.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	Text Format = "text"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{JSON, YAML, Text}
}

// ParseFormat accepts a format name in any case.
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	if !lo.Contains(Formats(), format) {
		return "", fmt.Errorf("unknown format: %s", name)
	}
	return format, nil
}

type Options struct {
	Out    io.Writer
	Vibe   string
	Format Format
	// Layout includes the composed preview layout in the output.
	Layout        bool
	Customization settings.Customization
	Latency       time.Duration
	// Remember adds the vibe to the suggestion history.
	Remember bool
}
