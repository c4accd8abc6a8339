package player

import (
	"sync"

	"github.com/anisan-cli/reel/constant"
	"github.com/anisan-cli/reel/log"
	"github.com/anisan-cli/reel/source"
	"github.com/samber/mo"
)

// Signal is a one-way command understood by an embedded surface.
type Signal string

const (
	SignalPlay  Signal = constant.SignalPlay
	SignalPause Signal = constant.SignalPause
)

// Signaler delivers signals to an embedded surface. Nothing comes back.
type Signaler interface {
	Send(sig Signal) error
	Close() error
}

// Embedded adapts a Signaler. Its playing state is whatever it last asked for.
type Embedded struct {
	mu       sync.Mutex
	signaler Signaler
	listener Listener
	closed   bool
}

// NewEmbedded reports optimistic events to listener.
func NewEmbedded(signaler Signaler, listener Listener) *Embedded {
	return &Embedded{signaler: signaler, listener: listener}
}

func (e *Embedded) Kind() source.Kind {
	return source.Embedded
}

func (e *Embedded) Capabilities() Capabilities {
	return Capabilities{}
}

// signal sends sig and reports the assumed outcome. A failed send is logged
// and the assumption stands, since the surface never acknowledges anyway.
func (e *Embedded) signal(sig Signal, assumed EventKind) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	if err := e.signaler.Send(sig); err != nil {
		log.WithField("signal", sig).Warnf("embedded surface: %v", err)
	}

	if e.listener != nil {
		e.listener(Event{Kind: assumed, Origin: Optimistic})
	}
}

func (e *Embedded) Play() *mo.Future[struct{}] {
	e.signal(SignalPlay, EventPlaying)
	return settled(nil)
}

func (e *Embedded) Pause() error {
	e.signal(SignalPause, EventPaused)
	return nil
}

func (e *Embedded) SeekTo(float64) error     { return nil }
func (e *Embedded) SetVolume(float64) error  { return nil }
func (e *Embedded) ToggleMute() error        { return nil }
func (e *Embedded) SetRate(float64) error    { return nil }
func (e *Embedded) RequestFullscreen() error { return nil }

// Done never fires: the surface cannot tell when the page is gone.
func (e *Embedded) Done() <-chan struct{} { return nil }

// Close silences the adapter and closes the signaler.
func (e *Embedded) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mu.Unlock()

	return e.signaler.Close()
}
