// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"fmt"
	"strings"

	"github.com/ava-vibe/ava/constant"
	"github.com/ava-vibe/ava/filesystem"
	"github.com/ava-vibe/ava/icon"
	"github.com/ava-vibe/ava/key"
	"github.com/ava-vibe/ava/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// choices lists the accepted values of the keys that take one of a few words.
var choices = map[string][]string{
	key.ThemeFallback: {"light", "dark"},
	key.IconsVariant:  icon.AvailableVariants(),
	key.LogsLevel:     {"panic", "fatal", "error", "warn", "warning", "info", "debug", "trace"},
}

// Setup loads defaults, then the environment, then ava.toml from the config
// directory. A missing file is fine; a file or variable naming an unknown
// choice is an error.
func Setup() error {
	viper.SetConfigName(constant.Ava)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Ava)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return validate()
}

func validate() error {
	for k, options := range choices {
		value := viper.GetString(k)
		if !lo.Contains(options, value) {
			return fmt.Errorf("config %s: %q is not one of %s", k, value, strings.Join(options, ", "))
		}
	}
	return nil
}
