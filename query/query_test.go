package query

import (
	"testing"

	"github.com/ava-vibe/ava/filesystem"
	"github.com/ava-vibe/ava/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.VibesSuggestions, true)
	viper.Set(key.VibesRemember, true)
}

func TestQuery(t *testing.T) {
	Convey("Given an empty vibe history", t, func() {
		So(Forget(), ShouldBeNil)

		Convey("When remembering vibes", func() {
			So(Remember("calm ocean breeze", 1), ShouldBeNil)
			So(Remember("Calm Ocean Storm", 10), ShouldBeNil)
			So(Remember("neon tokyo nights", 1), ShouldBeNil)

			Convey("Then suggestions are sorted by rank and keep their case", func() {
				So(SuggestMany("calm"), ShouldResemble, []string{"Calm Ocean Storm", "calm ocean breeze"})
				So(Suggest("neon").MustGet(), ShouldEqual, "neon tokyo nights")
			})

			Convey("Then ranks accumulate across spellings", func() {
				So(Remember("  CALM   ocean breeze ", 20), ShouldBeNil)
				So(Suggest("calm").MustGet(), ShouldEqual, "CALM   ocean breeze")
			})

			Convey("Then a complete match is not suggested back", func() {
				So(SuggestMany("neon tokyo nights"), ShouldBeEmpty)
			})

			Convey("Then blank input suggests nothing", func() {
				So(Suggest("   ").IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("When suggestions are off", func() {
			So(Remember("calm ocean breeze", 1), ShouldBeNil)
			viper.Set(key.VibesSuggestions, false)
			defer viper.Set(key.VibesSuggestions, true)

			So(SuggestMany("calm"), ShouldBeEmpty)
		})

		Convey("When remembering is off", func() {
			viper.Set(key.VibesRemember, false)
			defer viper.Set(key.VibesRemember, true)

			So(Remember("forgotten vibe", 1), ShouldBeNil)
			So(SuggestMany("forgot"), ShouldBeEmpty)
		})
	})
}
