// Package controller is the single control surface a UI drives.
//
// A Controller owns one backend for its whole life and the canonical playback
// state. Backends only report events; the controller commits them. Confirmed
// facts and optimistic guesses are stored apart and merged into each snapshot.
package controller

import (
	"math"
	"sync"
	"time"

	"github.com/anisan-cli/reel/constant"
	"github.com/anisan-cli/reel/log"
	"github.com/anisan-cli/reel/player"
	"github.com/anisan-cli/reel/seek"
	"github.com/anisan-cli/reel/source"
	"github.com/anisan-cli/reel/visibility"
	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Opener builds the backend for a source. Events must go to listener.
type Opener func(src source.Source, listener player.Listener) (player.Backend, error)

// Options tune a controller. Zero values pick the defaults.
type Options struct {
	Clock         clockwork.Clock
	AutoHideDelay time.Duration
	// Volume, when present, is pushed to the backend once it is open.
	Volume mo.Option[float64]
}

// Controller dispatches UI operations to the active backend.
//
// mu is never held while calling into the backend, so backends may report
// events synchronously from inside an operation.
type Controller struct {
	src   source.Source
	timer *visibility.Timer

	mu            sync.Mutex
	backend       player.Backend
	confirmed     confirmed
	optimistic    bool
	speedMenuOpen bool
	closed        bool
	updates       chan State
	// stop is closed with the controller and ends the engine watch.
	stop chan struct{}
}

// New opens a backend for src. Without a playable source, or when open
// fails, the controller stays Idle.
func New(src source.Source, open Opener, opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.AutoHideDelay <= 0 {
		opts.AutoHideDelay = constant.AutoHideDelay
	}

	c := &Controller{
		src:       src,
		confirmed: newConfirmed(),
		updates:   make(chan State, 1),
		stop:      make(chan struct{}),
	}
	c.timer = visibility.New(opts.Clock, opts.AutoHideDelay, c.controlsHidden)

	if !src.Playable() || open == nil {
		log.WithField("url", src.URL).Info("no video source")
		c.publish()
		return c
	}

	backend, err := open(src, c.report)
	if err != nil {
		log.WithField("kind", src.Kind).Errorf("open backend: %v", err)
		c.publish()
		return c
	}

	c.mu.Lock()
	c.backend = backend
	c.publishLocked()
	c.mu.Unlock()

	if done := backend.Done(); done != nil {
		go c.watchEngine(done)
	}

	if volume, ok := opts.Volume.Get(); ok {
		c.SetVolume(volume)
	}

	return c
}

// watchEngine closes the session when the engine ends on its own, e.g. the
// mpv window was closed.
func (c *Controller) watchEngine(done <-chan struct{}) {
	select {
	case <-done:
		log.WithField("kind", c.src.Kind).Info("player exited")
		if err := c.Close(); err != nil {
			log.Warnf("close ended session: %v", err)
		}
	case <-c.stop:
	}
}

// Source returns the session's source.
func (c *Controller) Source() source.Source {
	return c.src
}

// Updates delivers the newest snapshot after each change. An unread snapshot
// is replaced by a newer one. The channel closes with the controller.
func (c *Controller) Updates() <-chan State {
	return c.updates
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	st := State{
		Phase:           Idle,
		Kind:            c.src.Kind,
		Volume:          c.confirmed.volume,
		PlaybackRate:    c.confirmed.rate,
		ControlsVisible: c.timer.Visible(),
	}
	st.SpeedMenuOpen = c.speedMenuOpen && st.ControlsVisible

	if c.backend == nil || c.closed {
		return st
	}

	st.Phase = Ready
	st.Kind = c.backend.Kind()
	st.Capabilities = c.backend.Capabilities()

	if st.Kind == source.Embedded {
		st.IsPlaying = c.optimistic
		return st
	}

	st.IsPlaying = c.confirmed.playing
	st.CurrentTime = c.confirmed.currentTime
	st.Duration = c.confirmed.duration
	st.Muted = c.confirmed.muted
	st.Fullscreen = c.confirmed.fullscreen
	return st
}

func (c *Controller) publish() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.publishLocked()
}

func (c *Controller) publishLocked() {
	if c.closed {
		return
	}

	select {
	case <-c.updates:
	default:
	}
	c.updates <- c.snapshotLocked()
}

// active returns the backend when the session is Ready.
func (c *Controller) active() (player.Backend, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.backend == nil {
		return nil, false
	}
	return c.backend, true
}

// capable returns the backend when it declares the capability picked by has.
func (c *Controller) capable(has func(player.Capabilities) bool) (player.Backend, bool) {
	backend, ok := c.active()
	if !ok || !has(backend.Capabilities()) {
		return nil, false
	}
	return backend, true
}

// report commits an adapter event. It is the only writer of playback fields.
func (c *Controller) report(e player.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if e.Origin == player.Optimistic {
		switch e.Kind {
		case player.EventPlaying:
			c.optimistic = true
		case player.EventPaused:
			c.optimistic = false
		default:
			return
		}
		c.publishLocked()
		return
	}

	cf := &c.confirmed
	switch e.Kind {
	case player.EventTimeUpdate:
		cf.currentTime = clampTime(e.Value, cf.duration)
	case player.EventDurationKnown:
		cf.duration = math.Max(0, e.Value)
		cf.currentTime = clampTime(cf.currentTime, cf.duration)
	case player.EventPlaying:
		cf.playing = true
	case player.EventPaused:
		cf.playing = false
	case player.EventVolumeChange:
		cf.volume = lo.Clamp(e.Value, 0, 1)
	case player.EventMuteChange:
		cf.muted = e.Flag
	case player.EventRateChange:
		if e.Value > 0 {
			cf.rate = e.Value
		}
	case player.EventFullscreenChange:
		cf.fullscreen = e.Flag
	default:
		return
	}

	c.publishLocked()
}

func clampTime(t, duration float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if duration > 0 {
		return math.Min(t, duration)
	}
	return t
}

// touch counts as activity after a successful transport operation.
func (c *Controller) touch() {
	c.timer.Activity()
	c.publish()
}

// Toggle plays when paused and pauses when playing. The returned future
// settles with the backend's answer; a refused play leaves the session paused.
func (c *Controller) Toggle() *mo.Future[struct{}] {
	backend, ok := c.active()
	if !ok {
		return settled(nil)
	}

	if c.Snapshot().IsPlaying {
		if err := backend.Pause(); err != nil {
			log.Warnf("pause: %v", err)
			return settled(err)
		}
		c.touch()
		return settled(nil)
	}

	return backend.Play().
		Then(func(v struct{}) (struct{}, error) {
			c.touch()
			return v, nil
		}).
		Catch(func(err error) (struct{}, error) {
			log.Warnf("play: %v", err)
			return struct{}{}, err
		})
}

// SeekByPointerPosition seeks to where a pointer at clickX lands on a track
// starting at trackLeft. It reports whether a seek was dispatched.
func (c *Controller) SeekByPointerPosition(clickX, trackLeft, trackWidth float64) bool {
	backend, ok := c.capable(func(caps player.Capabilities) bool { return caps.Seek })
	if !ok {
		return false
	}

	target, ok := seek.Translate(clickX, trackLeft, trackWidth, c.Snapshot().Duration).Get()
	if !ok {
		return false
	}

	return c.seekTo(backend, target)
}

// SeekBy moves the playhead by delta seconds within the known timeline.
func (c *Controller) SeekBy(delta float64) bool {
	backend, ok := c.capable(func(caps player.Capabilities) bool { return caps.Seek })
	if !ok {
		return false
	}

	st := c.Snapshot()
	if st.Duration <= 0 || math.IsNaN(delta) {
		return false
	}

	return c.seekTo(backend, lo.Clamp(st.CurrentTime+delta, 0, st.Duration))
}

func (c *Controller) seekTo(backend player.Backend, target float64) bool {
	if err := backend.SeekTo(target); err != nil {
		log.Warnf("seek to %s: %v", seek.Format(target), err)
		return false
	}

	c.touch()
	return true
}

func (c *Controller) dispatch(name string, has func(player.Capabilities) bool, op func(player.Backend) error) {
	backend, ok := c.capable(has)
	if !ok {
		return
	}

	if err := op(backend); err != nil {
		log.Warnf("%s: %v", name, err)
		return
	}

	c.touch()
}

// SetVolume sets the volume, clamped to [0,1].
func (c *Controller) SetVolume(volume float64) {
	if math.IsNaN(volume) {
		return
	}

	c.dispatch("set volume", func(caps player.Capabilities) bool { return caps.Volume }, func(b player.Backend) error {
		return b.SetVolume(lo.Clamp(volume, 0, 1))
	})
}

// ToggleMute flips the backend's mute flag.
func (c *Controller) ToggleMute() {
	c.dispatch("toggle mute", func(caps player.Capabilities) bool { return caps.Volume }, player.Backend.ToggleMute)
}

// SetRate changes the playback speed. Non-positive or non-finite rates are ignored.
func (c *Controller) SetRate(rate float64) {
	if !(rate > 0) || math.IsInf(rate, 0) {
		return
	}

	c.dispatch("set rate", func(caps player.Capabilities) bool { return caps.Rate }, func(b player.Backend) error {
		return b.SetRate(rate)
	})
}

// RequestFullscreen asks the backend to go fullscreen. The resulting state
// arrives as a fullscreen event.
func (c *Controller) RequestFullscreen() {
	c.dispatch("fullscreen", func(caps player.Capabilities) bool { return caps.Fullscreen }, player.Backend.RequestFullscreen)
}

// Activity records pointer or keyboard activity on the player surface.
func (c *Controller) Activity() {
	if _, ok := c.active(); !ok {
		return
	}
	c.touch()
}

// ToggleSpeedMenu opens or closes the speed menu. Opening counts as activity.
func (c *Controller) ToggleSpeedMenu() {
	if _, ok := c.capable(func(caps player.Capabilities) bool { return caps.Rate }); !ok {
		return
	}

	c.mu.Lock()
	open := !(c.speedMenuOpen && c.timer.Visible())
	c.speedMenuOpen = open
	c.mu.Unlock()

	if open {
		c.timer.Activity()
	}
	c.publish()
}

// CloseSpeedMenu closes the speed menu if it is open.
func (c *Controller) CloseSpeedMenu() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.speedMenuOpen {
		return
	}
	c.speedMenuOpen = false
	c.publishLocked()
}

// SelectRate applies a rate chosen from the speed menu and closes the menu.
func (c *Controller) SelectRate(rate float64) {
	c.SetRate(rate)
	c.CloseSpeedMenu()
}

// controlsHidden runs when the overlay auto-hides; the menu goes with it.
func (c *Controller) controlsHidden() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.speedMenuOpen = false
	c.publishLocked()
}

// Close ends the session: the timer is cancelled, the backend closed and
// the updates channel closed. Every later call is a no-op. It also runs on
// its own when the engine exits.
func (c *Controller) Close() error {
	c.timer.Stop()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	backend := c.backend
	close(c.stop)
	close(c.updates)
	c.mu.Unlock()

	if backend == nil {
		return nil
	}
	return backend.Close()
}

func settled(err error) *mo.Future[struct{}] {
	return mo.NewFuture(func(resolve func(struct{}), reject func(error)) {
		if err != nil {
			reject(err)
			return
		}
		resolve(struct{}{})
	})
}
