package open

import (
	"runtime"
	"testing"

	"github.com/anisan-cli/reel/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given a surface URL", t, func() {
		const url = "http://127.0.0.1:41234/?a=1&b=2"

		Convey("The default handler receives it as the last argument", func() {
			cmd, ok := command(url, "")
			if !ok {
				return
			}
			So(cmd.Args[len(cmd.Args)-1], ShouldEqual, url)
		})

		Convey("A named application is used when given", func() {
			cmd, ok := command(url, "firefox")
			if !ok {
				return
			}
			if runtime.GOOS == constant.Linux {
				So(cmd.Args, ShouldResemble, []string{"firefox", url})
			}
		})
	})
}
