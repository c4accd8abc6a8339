package tui

import (
	"errors"
	"sync"
	"testing"

	"github.com/anisan-cli/reel/controller"
	"github.com/anisan-cli/reel/internal/ui"
	"github.com/anisan-cli/reel/player"
	"github.com/anisan-cli/reel/source"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	. "github.com/smartystreets/goconvey/convey"
)

type media struct {
	mu       sync.Mutex
	listener player.Listener
	playErr  error
	plays    int
	seeks    []float64
	volume   float64
	speed    float64
	muted    bool
	exit     chan struct{}
}

func (m *media) emit(e player.Event) {
	m.mu.Lock()
	l := m.listener
	m.mu.Unlock()

	if l != nil {
		l(e)
	}
}

func (m *media) Observe(l player.Listener) (func(), error) {
	m.mu.Lock()
	m.listener = l
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		m.listener = nil
		m.mu.Unlock()
	}, nil
}

func (m *media) Play() error {
	m.mu.Lock()
	m.plays++
	err := m.playErr
	m.mu.Unlock()

	if err != nil {
		return err
	}
	m.emit(player.Event{Kind: player.EventPlaying})
	return nil
}

func (m *media) Pause() error {
	m.emit(player.Event{Kind: player.EventPaused})
	return nil
}

func (m *media) SetTimePos(seconds float64) error {
	m.mu.Lock()
	m.seeks = append(m.seeks, seconds)
	m.mu.Unlock()

	m.emit(player.Event{Kind: player.EventTimeUpdate, Value: seconds})
	return nil
}

func (m *media) SetVolume(volume float64) error {
	m.mu.Lock()
	m.volume = volume
	m.mu.Unlock()

	m.emit(player.Event{Kind: player.EventVolumeChange, Value: volume})
	return nil
}

func (m *media) Muted() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted, nil
}

func (m *media) SetMuted(muted bool) error {
	m.mu.Lock()
	m.muted = muted
	m.mu.Unlock()

	m.emit(player.Event{Kind: player.EventMuteChange, Flag: muted})
	return nil
}

func (m *media) SetSpeed(rate float64) error {
	m.mu.Lock()
	m.speed = rate
	m.mu.Unlock()

	m.emit(player.Event{Kind: player.EventRateChange, Value: rate})
	return nil
}

func (m *media) SetFullscreen(on bool) error {
	m.emit(player.Event{Kind: player.EventFullscreenChange, Flag: on})
	return nil
}

func (m *media) Done() <-chan struct{} { return m.exit }
func (m *media) Close() error          { return nil }

func (m *media) lastSeek() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.seeks) == 0 {
		return -1
	}
	return m.seeks[len(m.seeks)-1]
}

type signaler struct{}

func (signaler) Send(player.Signal) error { return nil }
func (signaler) Close() error             { return nil }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newDirectBubble(res *media) (*playerBubble, *controller.Controller) {
	open := func(_ source.Source, listener player.Listener) (player.Backend, error) {
		return player.NewDirect(res, listener)
	}

	ctrl := controller.New(
		source.Source{URL: "https://cdn.example.com/movie.mp4", Kind: source.Direct, Title: "Movie"},
		open,
		controller.Options{Clock: clockwork.NewFakeClock()},
	)
	res.emit(player.Event{Kind: player.EventDurationKnown, Value: 100})

	b := newBubble(ctrl, Options{SeekStep: 5})
	b.resize(118, 30)
	b.sync(ctrl.Snapshot())
	return b, ctrl
}

func TestIdleScreen(t *testing.T) {
	Convey("Given a session without a source", t, func() {
		ctrl := controller.New(source.Source{}, nil, controller.Options{Clock: clockwork.NewFakeClock()})
		defer ctrl.Close()

		b := newBubble(ctrl, Options{Title: "nothing"})
		b.resize(80, 20)

		Convey("The empty state is shown", func() {
			So(b.View(), ShouldContainSubstring, "no video source")
		})

		Convey("Keys do nothing but quit", func() {
			_, cmd := b.Update(runes("k"))
			So(cmd(), ShouldBeNil)
			So(ctrl.Snapshot().IsPlaying, ShouldBeFalse)

			_, cmd = b.Update(runes("q"))
			So(cmd, ShouldNotBeNil)
			_, ok := cmd().(tea.QuitMsg)
			So(ok, ShouldBeTrue)
		})
	})
}

func TestDirectScreen(t *testing.T) {
	Convey("Given a direct session with a 100s timeline", t, func() {
		res := &media{}
		b, ctrl := newDirectBubble(res)
		defer ctrl.Close()

		Convey("The header and timeline are rendered", func() {
			view := b.View()
			So(view, ShouldContainSubstring, "Movie")
			So(view, ShouldContainSubstring, "1:40")
		})

		Convey("Arrow keys seek by the configured step", func() {
			b.Update(tea.KeyMsg{Type: tea.KeyRight})
			So(res.lastSeek(), ShouldEqual, 5)

			b.Update(tea.KeyMsg{Type: tea.KeyLeft})
			So(res.lastSeek(), ShouldEqual, 0)
		})

		Convey("A click on the progress row seeks to that point", func() {
			b.Update(tea.MouseMsg{X: trackLeft + 50, Y: progressRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			So(res.lastSeek(), ShouldEqual, 50)
			So(b.state.CurrentTime, ShouldEqual, 50)
		})

		Convey("A click elsewhere does not seek", func() {
			b.Update(tea.MouseMsg{X: trackLeft + 50, Y: progressRow + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			So(res.lastSeek(), ShouldEqual, -1)
		})

		Convey("Volume keys step the volume", func() {
			b.Update(tea.KeyMsg{Type: tea.KeyDown})
			So(res.volume, ShouldAlmostEqual, 0.95, 0.0001)
			So(b.state.Volume, ShouldAlmostEqual, 0.95, 0.0001)
		})

		Convey("m toggles mute", func() {
			b.Update(runes("m"))
			So(b.state.Muted, ShouldBeTrue)
			So(b.View(), ShouldContainSubstring, "muted")
		})

		Convey("The speed menu picks a rate", func() {
			b.Update(runes("s"))
			So(b.state.SpeedMenuOpen, ShouldBeTrue)
			So(b.rateCursor, ShouldEqual, 2)

			b.Update(tea.KeyMsg{Type: tea.KeyRight})
			So(b.rateCursor, ShouldEqual, 3)
			So(res.lastSeek(), ShouldEqual, -1)

			b.Update(tea.KeyMsg{Type: tea.KeyEnter})
			So(res.speed, ShouldEqual, 1.25)
			So(b.state.PlaybackRate, ShouldEqual, 1.25)
			So(b.state.SpeedMenuOpen, ShouldBeFalse)
		})

		Convey("Escape closes the speed menu", func() {
			b.Update(runes("s"))
			b.Update(tea.KeyMsg{Type: tea.KeyEsc})
			So(b.state.SpeedMenuOpen, ShouldBeFalse)
			So(res.speed, ShouldEqual, 0)
		})

		Convey("k starts playback", func() {
			_, cmd := b.Update(runes("k"))
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldBeNil)
			So(res.plays, ShouldEqual, 1)
		})

		Convey("A refused play raises a notification", func() {
			res.playErr = errors.New("autoplay blocked")

			_, cmd := b.Update(runes("k"))
			msg, ok := cmd().(ui.NotificationMsg)
			So(ok, ShouldBeTrue)
			So(string(msg), ShouldContainSubstring, "playback refused")
			So(b.state.IsPlaying, ShouldBeFalse)
		})

		Convey("Closing the controller ends the program", func() {
			So(ctrl.Close(), ShouldBeNil)

			msg := waitForState(ctrl.Updates())()
			// a pending snapshot may still be buffered
			if _, ok := msg.(stateMsg); ok {
				msg = waitForState(ctrl.Updates())()
			}
			So(msg, ShouldHaveSameTypeAs, closedMsg{})

			_, cmd := b.Update(msg)
			_, ok := cmd().(tea.QuitMsg)
			So(ok, ShouldBeTrue)
		})
	})
}

func TestEngineExit(t *testing.T) {
	Convey("Given a direct session whose player window is closed", t, func() {
		res := &media{exit: make(chan struct{})}
		b, ctrl := newDirectBubble(res)
		defer ctrl.Close()

		close(res.exit)

		Convey("The program quits once the updates end", func() {
			msg := waitForState(ctrl.Updates())()
			for {
				if _, ok := msg.(stateMsg); !ok {
					break
				}
				msg = waitForState(ctrl.Updates())()
			}
			So(msg, ShouldHaveSameTypeAs, closedMsg{})

			_, cmd := b.Update(msg)
			_, ok := cmd().(tea.QuitMsg)
			So(ok, ShouldBeTrue)
		})
	})
}

func TestEmbeddedScreen(t *testing.T) {
	Convey("Given an embedded session", t, func() {
		open := func(_ source.Source, listener player.Listener) (player.Backend, error) {
			return player.NewEmbedded(signaler{}, listener), nil
		}
		ctrl := controller.New(
			source.Source{URL: "https://www.youtube.com/embed/abc", Kind: source.Embedded},
			open,
			controller.Options{Clock: clockwork.NewFakeClock()},
		)
		defer ctrl.Close()

		b := newBubble(ctrl, Options{})
		b.resize(100, 20)

		Convey("The timeline is replaced by a browser hint", func() {
			So(b.View(), ShouldContainSubstring, "playing in the browser")
		})

		Convey("Seeking and the speed menu are unavailable", func() {
			b.Update(tea.KeyMsg{Type: tea.KeyRight})
			b.Update(runes("s"))
			So(b.state.SpeedMenuOpen, ShouldBeFalse)
		})

		Convey("Toggling flips the assumed playing state", func() {
			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeySpace})
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldBeNil)
			So(ctrl.Snapshot().IsPlaying, ShouldBeTrue)
		})
	})
}
