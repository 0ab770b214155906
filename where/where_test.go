package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ava-vibe/ava/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config() honours the override", func() {
			custom := filepath.Join(os.TempDir(), "ava-where-test")
			t.Setenv(EnvConfigPath, custom)

			So(Config(), ShouldEqual, custom)
			So(lo.Must(filesystem.API().IsDir(custom)), ShouldBeTrue)
		})

		Convey("Storage() lives under Config()", func() {
			t.Setenv(EnvConfigPath, filepath.Join(os.TempDir(), "ava-where-test"))

			path := Storage()
			So(filepath.Dir(path), ShouldEqual, Config())
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			t.Setenv(EnvConfigPath, filepath.Join(os.TempDir(), "ava-where-test"))

			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Vibes() is a file inside Cache()", func() {
			So(filepath.Dir(Vibes()), ShouldEqual, Cache())
		})
	})
}
