package player

import (
	"fmt"
	"math"
	"sync"

	"github.com/anisan-cli/reel/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Resource is a natively timed media element.
type Resource interface {
	Play() error
	Pause() error
	SetTimePos(seconds float64) error
	SetVolume(volume float64) error
	Muted() (bool, error)
	SetMuted(muted bool) error
	SetSpeed(rate float64) error
	SetFullscreen(on bool) error

	// Observe starts reporting confirmed events. detach stops them.
	Observe(listener Listener) (detach func(), err error)
	// Done is closed when the resource ends on its own, such as the window being closed.
	Done() <-chan struct{}
	Close() error
}

// Direct adapts a Resource. It never predicts timeline values: every field
// reaches the listener only when the resource reports it.
type Direct struct {
	res    Resource
	detach func()

	mu       sync.Mutex
	duration float64
	closed   bool
}

// NewDirect attaches to res and forwards its events to listener.
func NewDirect(res Resource, listener Listener) (*Direct, error) {
	d := &Direct{res: res}

	detach, err := res.Observe(func(e Event) {
		d.mu.Lock()
		if d.closed {
			d.mu.Unlock()
			return
		}
		if e.Kind == EventDurationKnown {
			d.duration = e.Value
		}
		d.mu.Unlock()

		if listener != nil {
			listener(e)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("observe resource: %w", err)
	}

	d.detach = detach
	return d, nil
}

func (d *Direct) Kind() source.Kind {
	return source.Direct
}

func (d *Direct) Capabilities() Capabilities {
	return Capabilities{Seek: true, Volume: true, Rate: true, Fullscreen: true}
}

func (d *Direct) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.closed
}

// Play asks the resource to start. A refusal surfaces as ErrPlayRejected;
// the playing state is left to the resource's events.
func (d *Direct) Play() *mo.Future[struct{}] {
	return mo.NewFuture(func(resolve func(struct{}), reject func(error)) {
		if d.isClosed() {
			resolve(struct{}{})
			return
		}

		if err := d.res.Play(); err != nil {
			reject(fmt.Errorf("%w: %w", ErrPlayRejected, err))
			return
		}

		resolve(struct{}{})
	})
}

func (d *Direct) Pause() error {
	if d.isClosed() {
		return nil
	}
	return d.res.Pause()
}

// SeekTo clamps seconds into the known timeline. Without a known duration it does nothing.
func (d *Direct) SeekTo(seconds float64) error {
	d.mu.Lock()
	duration, closed := d.duration, d.closed
	d.mu.Unlock()

	if closed || duration <= 0 || math.IsNaN(seconds) {
		return nil
	}

	return d.res.SetTimePos(lo.Clamp(seconds, 0, duration))
}

func (d *Direct) SetVolume(volume float64) error {
	if d.isClosed() || math.IsNaN(volume) {
		return nil
	}
	return d.res.SetVolume(lo.Clamp(volume, 0, 1))
}

// ToggleMute flips the resource's live mute flag.
func (d *Direct) ToggleMute() error {
	if d.isClosed() {
		return nil
	}

	muted, err := d.res.Muted()
	if err != nil {
		return fmt.Errorf("read mute: %w", err)
	}

	return d.res.SetMuted(!muted)
}

func (d *Direct) SetRate(rate float64) error {
	if d.isClosed() || !(rate > 0) || math.IsInf(rate, 0) {
		return nil
	}
	return d.res.SetSpeed(rate)
}

func (d *Direct) RequestFullscreen() error {
	if d.isClosed() {
		return nil
	}
	return d.res.SetFullscreen(true)
}

func (d *Direct) Done() <-chan struct{} {
	return d.res.Done()
}

// Close detaches from the resource, then closes it.
func (d *Direct) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.mu.Unlock()

	if d.detach != nil {
		d.detach()
	}

	return d.res.Close()
}
