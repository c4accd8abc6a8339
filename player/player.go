// Package player adapts concrete playback engines to one control contract.
//
// Two adapters exist. Direct drives a natively timed resource (mpv) and learns
// every timeline fact from the resource's own events. Embedded drives an opaque
// surface through one-way signals and can only report what it just asked for.
package player

import (
	"errors"

	"github.com/anisan-cli/reel/source"
	"github.com/samber/mo"
)

var (
	// ErrPlayRejected wraps any refusal to start playback.
	ErrPlayRejected = errors.New("play rejected")
	// ErrNotRunning is returned when the engine process is gone.
	ErrNotRunning = errors.New("player is not running")
)

// Capabilities describes which optional operations a backend honours.
// Calls outside the set are accepted and ignored.
type Capabilities struct {
	Seek       bool `json:"seek"`
	Volume     bool `json:"volume"`
	Rate       bool `json:"rate"`
	Fullscreen bool `json:"fullscreen"`
}

// Backend is the operation set every adapter exposes.
type Backend interface {
	Kind() source.Kind
	Capabilities() Capabilities

	// Play settles once the engine accepted or refused the request.
	Play() *mo.Future[struct{}]
	Pause() error

	SeekTo(seconds float64) error
	SetVolume(volume float64) error
	ToggleMute() error
	SetRate(rate float64) error
	RequestFullscreen() error

	// Done is closed when the engine ends the session on its own. A nil
	// channel means the backend cannot observe that.
	Done() <-chan struct{}

	// Close detaches listeners and releases the engine. No events are
	// reported after Close returns.
	Close() error
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
