package player

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

// deadSocket leaves a socket file behind with nobody listening on it.
func deadSocket(t *testing.T, path string) {
	t.Helper()

	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ln.(*net.UnixListener).SetUnlinkOnClose(false)
	_ = ln.Close()
}

func age(t *testing.T, path string) {
	t.Helper()

	old := time.Now().Add(-time.Minute)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRemoveStaleSockets(t *testing.T) {
	Convey("Given a socket directory shared by several sessions", t, func() {
		live := fakeMPV(t, func(ipcCommand) ipcResponse {
			return ipcResponse{Data: false, Error: "success"}
		})
		dir := filepath.Dir(live)

		dead := filepath.Join(dir, "mpv-dead.sock")
		starting := filepath.Join(dir, "mpv-starting.sock")
		other := filepath.Join(dir, "notes.txt")

		deadSocket(t, dead)
		deadSocket(t, starting)
		So(os.WriteFile(other, []byte("keep"), 0o644), ShouldBeNil)

		age(t, live)
		age(t, dead)
		age(t, other)

		removed, err := RemoveStaleSockets(dir)
		So(err, ShouldBeNil)

		Convey("Only the old socket nobody listens on is removed", func() {
			So(removed, ShouldEqual, 1)
			So(exists(dead), ShouldBeFalse)
			So(exists(starting), ShouldBeTrue)
			So(exists(other), ShouldBeTrue)
		})

		Convey("A running session keeps answering", func() {
			So(exists(live), ShouldBeTrue)

			_, err := doSendCommand(live, 1, []any{"get_property", "mute"})
			So(err, ShouldBeNil)
		})
	})

	Convey("A missing directory is reported", t, func() {
		_, err := RemoveStaleSockets(filepath.Join(t.TempDir(), "gone"))
		So(err, ShouldNotBeNil)
	})
}
