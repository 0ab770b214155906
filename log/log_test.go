package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ava-vibe/ava/filesystem"
	"github.com/ava-vibe/ava/key"
	"github.com/ava-vibe/ava/where"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given the logging subsystem", t, func() {
		t.Setenv(where.EnvConfigPath, filepath.Join(os.TempDir(), "ava-log-test"))

		Convey("When logs.write is off", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)

			Convey("Then entries are discarded", func() {
				entry := WithFields(logrus.Fields{"job": 1})
				So(entry.Logger, ShouldEqual, silent)
			})
		})

		Convey("When logs.write is on", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			defer viper.Set(key.LogsWrite, false)

			So(Setup(), ShouldBeNil)
			Info("hello from the test")

			Convey("Then a daily log file exists", func() {
				files := lo.Must(filesystem.API().ReadDir(where.Logs()))
				So(len(files), ShouldBeGreaterThan, 0)
				So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)
			})
		})
	})
}
