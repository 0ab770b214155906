package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestGacheFs(t *testing.T) {
	Convey("Given a fresh in-memory backend", t, func() {
		SetMemMapFs()
		var fs GacheFs

		Convey("Creating a file also creates its directories", func() {
			file, err := fs.OpenFile("/ava/storage/history/vibes", os.O_CREATE|os.O_WRONLY, 0o644)
			So(err, ShouldBeNil)
			_, err = file.Write([]byte("calm ocean breeze"))
			So(err, ShouldBeNil)
			So(file.Close(), ShouldBeNil)

			data, err := afero.ReadFile(API(), "/ava/storage/history/vibes")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "calm ocean breeze")
		})

		Convey("Opening a missing file for reading still fails", func() {
			_, err := fs.OpenFile("/ava/missing/vibes", os.O_RDONLY, 0)
			So(err, ShouldNotBeNil)

			exists, _ := afero.DirExists(API(), "/ava/missing")
			So(exists, ShouldBeFalse)
		})
	})
}

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Should accept a custom backend", func() {
			SetFs(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			err := API().WriteFile("/settings", []byte("x"), 0o644)
			So(err, ShouldNotBeNil)
			SetMemMapFs()
		})
	})
}
