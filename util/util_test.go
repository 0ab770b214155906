package util

import (
	"testing"

	"github.com/ava-vibe/ava/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize("élan"), ShouldEqual, "Élan")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory with a file", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/ava/storage", 0o755), ShouldBeNil)
		So(fs.WriteFile("/tmp/ava/storage/record", []byte("x"), 0o644), ShouldBeNil)

		Convey("A file is removed", func() {
			So(Delete("/tmp/ava/storage/record"), ShouldBeNil)
			So(Exists("/tmp/ava/storage/record"), ShouldBeFalse)
			So(Exists("/tmp/ava/storage"), ShouldBeTrue)
		})

		Convey("A directory is removed recursively", func() {
			So(Delete("/tmp/ava"), ShouldBeNil)
			So(Exists("/tmp/ava/storage/record"), ShouldBeFalse)
		})

		Convey("A missing path is an error", func() {
			So(Delete("/tmp/nowhere"), ShouldNotBeNil)
		})
	})
}
