package config

import (
	"time"

	"github.com/ava-vibe/ava/key"
	"github.com/ava-vibe/ava/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

func millis(k string) time.Duration {
	ms := viper.GetInt(k)
	if ms < 0 {
		ms = 0
	}
	return time.Duration(ms) * time.Millisecond
}

// Latency is the simulated generation time.
func Latency() time.Duration {
	return millis(key.GenerationLatencyMs)
}

// TypewriterInterval is the delay between two typed runes.
func TypewriterInterval() time.Duration {
	if d := millis(key.TypewriterIntervalMs); d > 0 {
		return d
	}
	return time.Duration(Default[key.TypewriterIntervalMs].Value.(int)) * time.Millisecond
}

// FPS is the preview frame rate.
func FPS() int {
	if fps := viper.GetInt(key.PreviewFPS); fps > 0 {
		return fps
	}
	return Default[key.PreviewFPS].Value.(int)
}

// Watch calls onChange after the config file changes on disk. It does nothing
// when no config file was loaded.
func Watch(onChange func()) {
	if viper.ConfigFileUsed() == "" {
		return
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Infof("config file changed: %s (%s)", e.Name, e.Op)
		onChange()
	})
	viper.WatchConfig()
}
