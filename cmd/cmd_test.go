package cmd

import (
	"testing"

	"github.com/ava-vibe/ava/config"
	"github.com/ava-vibe/ava/filesystem"
	"github.com/ava-vibe/ava/key"
	"github.com/ava-vibe/ava/settings"
	"github.com/ava-vibe/ava/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestClosest(t *testing.T) {
	Convey("closest picks the nearest candidate", t, func() {
		So(closest("fats", settingOptions("speed")), ShouldEqual, "fast")
		So(closest("hihg", settingOptions("complexity")), ShouldEqual, "high")
		So(closest("complex", settingNames), ShouldEqual, "complexity")
	})

	Convey("an unknown config key suggests a registered one", t, func() {
		err := errUnknownKey("preview.fsp")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, key.PreviewFPS)
	})
}

func TestSetSetting(t *testing.T) {
	Convey("Given a settings store", t, func() {
		store := settings.Open(&settings.Options{
			Storage: settings.NewFileStorage(afero.NewMemMapFs(), "/ava/storage"),
		})

		Convey("valid values are applied", func() {
			So(setSetting(store, "speed", "fast"), ShouldBeNil)
			So(setSetting(store, "complexity", "low"), ShouldBeNil)
			So(setSetting(store, "theme", "light"), ShouldBeNil)

			So(store.Customization(), ShouldResemble, settings.Customization{Speed: settings.Fast, Complexity: settings.Low})
			So(store.Theme(), ShouldEqual, settings.Light)
		})

		Convey("an invalid value suggests the nearest option and changes nothing", func() {
			err := setSetting(store, "speed", "slwo")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "slow")
			So(store.Customization().Speed, ShouldEqual, settings.Normal)
		})

		Convey("an unknown setting name suggests the nearest one", func() {
			err := setSetting(store, "them", "dark")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "theme")
		})
	})
}

func TestParseValue(t *testing.T) {
	Convey("values follow the type of the default", t, func() {
		v, err := parseValue(key.GenerationLatencyMs, "500")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 500)

		v, err = parseValue(key.LogsWrite, "true")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, true)

		v, err = parseValue(key.TUIVibePrompt, "~ ")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "~ ")

		_, err = parseValue(key.PreviewFPS, "fast")
		So(err, ShouldNotBeNil)
	})
}

func TestEnvVariables(t *testing.T) {
	Convey("every config key has an environment variable", t, func() {
		vars := envVariables()
		So(vars, ShouldHaveLength, len(config.Default)+1)
		So(vars["AVA_GENERATION_LATENCY_MS"], ShouldEqual, key.GenerationLatencyMs)
		So(vars, ShouldContainKey, where.EnvConfigPath)
	})
}
