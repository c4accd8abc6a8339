package log

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/anisan-cli/reel/filesystem"
	"github.com/anisan-cli/reel/key"
	"github.com/anisan-cli/reel/where"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup should succeed without creating a file", func() {
			So(Setup(), ShouldBeNil)
			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeFalse)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, true)
		defer viper.Set(key.LogsWrite, false)

		Convey("Entries should land in today's file", func() {
			So(Setup(), ShouldBeNil)
			Debugf("seek to %d", 42)

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "seek to 42")
		})

		Convey("An unknown level should be rejected", func() {
			viper.Set(key.LogsLevel, "loud")
			defer viper.Set(key.LogsLevel, "info")
			So(Setup(), ShouldNotBeNil)
		})
	})
}

func TestWithField(t *testing.T) {
	Convey("Given a buffer as output", t, func() {
		var buf bytes.Buffer
		SetOutput(&buf)
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})

		Convey("Fields should be rendered", func() {
			WithField("backend", "direct").Info("opened")
			So(buf.String(), ShouldContainSubstring, "backend=direct")
		})
	})
}
