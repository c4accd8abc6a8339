package player

import (
	"errors"
	"sync"
	"time"
)

// fakeResource behaves like a media element: commands fire the matching events synchronously.
type fakeResource struct {
	mu       sync.Mutex
	listener Listener
	detached bool
	closed   bool

	playErr error
	// playGate, when set, holds Play until it is closed.
	playGate chan struct{}
	exit     chan struct{}
	muteErr  error
	muted    bool
	plays    int
	pauses   int
	seeks    []float64
	volumes  []float64
	speeds   []float64
	fullOn   int
}

func (f *fakeResource) emit(e Event) {
	f.mu.Lock()
	l, detached := f.listener, f.detached
	f.mu.Unlock()

	if l != nil && !detached {
		l(e)
	}
}

func (f *fakeResource) Observe(listener Listener) (func(), error) {
	f.mu.Lock()
	f.listener = listener
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		f.detached = true
		f.mu.Unlock()
	}, nil
}

func (f *fakeResource) Play() error {
	f.mu.Lock()
	f.plays++
	err, gate := f.playErr, f.playGate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return err
	}
	f.emit(Event{Kind: EventPlaying})
	return nil
}

func (f *fakeResource) Pause() error {
	f.mu.Lock()
	f.pauses++
	f.mu.Unlock()

	f.emit(Event{Kind: EventPaused})
	return nil
}

func (f *fakeResource) SetTimePos(seconds float64) error {
	f.mu.Lock()
	f.seeks = append(f.seeks, seconds)
	f.mu.Unlock()

	f.emit(Event{Kind: EventTimeUpdate, Value: seconds})
	return nil
}

func (f *fakeResource) SetVolume(volume float64) error {
	f.mu.Lock()
	f.volumes = append(f.volumes, volume)
	f.mu.Unlock()

	f.emit(Event{Kind: EventVolumeChange, Value: volume})
	return nil
}

func (f *fakeResource) Muted() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.muted, f.muteErr
}

func (f *fakeResource) SetMuted(muted bool) error {
	f.mu.Lock()
	f.muted = muted
	f.mu.Unlock()

	f.emit(Event{Kind: EventMuteChange, Flag: muted})
	return nil
}

func (f *fakeResource) SetSpeed(rate float64) error {
	f.mu.Lock()
	f.speeds = append(f.speeds, rate)
	f.mu.Unlock()

	f.emit(Event{Kind: EventRateChange, Value: rate})
	return nil
}

func (f *fakeResource) SetFullscreen(on bool) error {
	f.mu.Lock()
	f.fullOn++
	f.mu.Unlock()

	f.emit(Event{Kind: EventFullscreenChange, Flag: on})
	return nil
}

func (f *fakeResource) Done() <-chan struct{} {
	return f.exit
}

func (f *fakeResource) playCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.plays
}

func (f *fakeResource) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	return nil
}

// fakeSignaler records every signal it is asked to deliver.
type fakeSignaler struct {
	mu      sync.Mutex
	sent    []Signal
	sendErr error
	closed  bool
}

var errSurfaceGone = errors.New("surface gone")

func (f *fakeSignaler) Send(sig Signal) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, sig)
	return f.sendErr
}

func (f *fakeSignaler) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	return nil
}

func (f *fakeSignaler) signals() []Signal {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]Signal(nil), f.sent...)
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) listen(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
}

func (r *recorder) kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()

	kinds := make([]EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func (r *recorder) last() Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.events[len(r.events)-1]
}

func waitUntil(cond func() bool) bool {
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}
