package icon

import (
	"testing"

	"github.com/ava-vibe/ava/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given the palette icon", t, func() {
		defer viper.Set(key.IconsVariant, plain)

		Convey("Every variant has its own rendering", func() {
			for _, v := range AvailableVariants() {
				viper.Set(key.IconsVariant, v)
				So(Get(Palette), ShouldEqual, icons[Palette][v])
				So(Get(Palette), ShouldNotBeEmpty)
			}
		})

		Convey("An unknown variant falls back to plain", func() {
			viper.Set(key.IconsVariant, "hieroglyphs")
			So(Get(Palette), ShouldEqual, "#")

			viper.Set(key.IconsVariant, "")
			So(Get(Fail), ShouldEqual, "X")
		})
	})

	Convey("Every icon defines every variant", t, func() {
		for i, def := range icons {
			So(i, ShouldBeLessThan, iconCount)
			for _, v := range AvailableVariants() {
				So(def[v], ShouldNotBeEmpty)
			}
			So(def, ShouldHaveLength, len(AvailableVariants()))
		}
		So(len(icons), ShouldEqual, int(iconCount))
	})

	Convey("The variant list cannot be changed by callers", t, func() {
		list := AvailableVariants()
		list[0] = "changed"
		So(AvailableVariants()[0], ShouldEqual, emoji)
	})
}
