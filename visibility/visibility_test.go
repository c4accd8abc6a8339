package visibility

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/smartystreets/goconvey/convey"
)

const delay = 3500 * time.Millisecond

func waitHidden(hidden <-chan struct{}) bool {
	select {
	case <-hidden:
		return true
	case <-time.After(time.Second):
		return false
	}
}

func TestTimer(t *testing.T) {
	Convey("Given a fresh timer", t, func() {
		clock := clockwork.NewFakeClock()
		hidden := make(chan struct{}, 8)
		timer := New(clock, delay, func() { hidden <- struct{}{} })
		defer timer.Stop()

		Convey("It starts visible and armed", func() {
			So(timer.Visible(), ShouldBeTrue)
			So(timer.Pending(), ShouldBeTrue)
		})

		Convey("It hides after the delay without activity", func() {
			clock.BlockUntil(1)
			clock.Advance(delay)

			So(waitHidden(hidden), ShouldBeTrue)
			So(timer.State(), ShouldEqual, Hidden)
			So(timer.Pending(), ShouldBeFalse)
		})

		Convey("It stays visible just before the delay", func() {
			clock.BlockUntil(1)
			clock.Advance(delay - time.Millisecond)

			So(timer.Visible(), ShouldBeTrue)
		})

		Convey("Activity before expiry restarts the countdown", func() {
			clock.BlockUntil(1)
			clock.Advance(3 * time.Second)
			timer.Activity()

			clock.BlockUntil(1)
			clock.Advance(3 * time.Second)
			So(timer.Visible(), ShouldBeTrue)

			clock.Advance(delay - 3*time.Second)
			So(waitHidden(hidden), ShouldBeTrue)
			So(timer.Visible(), ShouldBeFalse)
		})

		Convey("Activity after hiding shows the overlay again", func() {
			clock.BlockUntil(1)
			clock.Advance(delay)
			So(waitHidden(hidden), ShouldBeTrue)

			timer.Activity()
			So(timer.Visible(), ShouldBeTrue)
			So(timer.Pending(), ShouldBeTrue)
		})

		Convey("Hide is immediate and disarms", func() {
			timer.Hide()
			So(timer.State(), ShouldEqual, Hidden)
			So(timer.Pending(), ShouldBeFalse)
		})

		Convey("Stop cancels the pending expiry", func() {
			clock.BlockUntil(1)
			timer.Stop()
			clock.Advance(10 * delay)

			So(timer.Pending(), ShouldBeFalse)
			So(timer.Visible(), ShouldBeTrue)
			fired := false
			select {
			case <-hidden:
				fired = true
			case <-time.After(50 * time.Millisecond):
			}
			So(fired, ShouldBeFalse)
		})

		Convey("Activity after Stop is ignored", func() {
			timer.Stop()
			timer.Activity()
			So(timer.Pending(), ShouldBeFalse)
		})
	})
}

func TestState(t *testing.T) {
	Convey("States render by name", t, func() {
		So(Visible.String(), ShouldEqual, "visible")
		So(Hidden.String(), ShouldEqual, "hidden")
	})
}
