// Package icon renders the symbols printed in front of CLI and TUI messages.
//
// Every icon has a form for each variant: emoji, nerd-font glyphs, plain ASCII,
// kaomoji or Unicode squares. The variant comes from the icons.variant key.
package icon

import (
	"github.com/ava-vibe/ava/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

var variants = []string{emoji, nerd, plain, kaomoji, squares}

// AvailableVariants returns every supported variant name.
func AvailableVariants() []string {
	return append([]string(nil), variants...)
}

// iconDef maps a variant to its rendering.
type iconDef map[string]string

// variant is the configured variant, or plain when the configured one is unknown.
func variant() string {
	if v := viper.GetString(key.IconsVariant); lo.Contains(variants, v) {
		return v
	}
	return plain
}

// Get returns icon i in the configured variant.
func Get(i Icon) string {
	return icons[i][variant()]
}
