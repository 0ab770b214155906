package color

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHSL(t *testing.T) {
	Convey("Given an HSL triple", t, func() {
		c := HSL{H: 262, S: 77, L: 57}

		Convey("It renders the css notation", func() {
			So(c.String(), ShouldEqual, "hsl(262, 77%, 57%)")
		})

		Convey("It converts to a stable hex string", func() {
			So(regexp.MustCompile(`^#[0-9a-f]{6}$`).MatchString(c.Hex()), ShouldBeTrue)
			So(c.Hex(), ShouldEqual, c.Hex())
		})

		Convey("Pure colors land on exact hex values", func() {
			So(HSL{H: 0, S: 100, L: 50}.Hex(), ShouldEqual, "#ff0000")
			So(HSL{H: 120, S: 100, L: 50}.Hex(), ShouldEqual, "#00ff00")
			So(HSL{H: 0, S: 0, L: 100}.Hex(), ShouldEqual, "#ffffff")
		})

		Convey("It parses back what it prints", func() {
			parsed, err := ParseHSL(c.String())
			So(err, ShouldBeNil)
			So(parsed, ShouldResemble, c)
		})
	})

	Convey("ParseHSL rejects garbage", t, func() {
		_, err := ParseHSL("rgb(1, 2, 3)")
		So(err, ShouldNotBeNil)

		_, err = ParseHSL("hsl(400, 10%, 10%)")
		So(err, ShouldNotBeNil)
	})
}

func TestHSLEncoding(t *testing.T) {
	Convey("HSL encodes as text", t, func() {
		c := HSL{H: 22, S: 67, L: 72}

		text, err := c.MarshalText()
		So(err, ShouldBeNil)
		So(string(text), ShouldEqual, "hsl(22, 67%, 72%)")

		var back HSL
		So(back.UnmarshalText(text), ShouldBeNil)
		So(back, ShouldResemble, c)

		So(back.UnmarshalText([]byte("nope")), ShouldNotBeNil)
	})

	Convey("HSL advertises a string schema", t, func() {
		schema := HSL{}.JSONSchema()
		So(schema.Type, ShouldEqual, "string")
		So(schema.Pattern, ShouldNotBeEmpty)
	})
}
