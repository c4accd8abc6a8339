package player

// EventKind names a fact about playback.
type EventKind int

const (
	EventTimeUpdate EventKind = iota
	EventDurationKnown
	EventPlaying
	EventPaused
	EventVolumeChange
	EventMuteChange
	EventRateChange
	EventFullscreenChange
)

var eventKindNames = map[EventKind]string{
	EventTimeUpdate:       "time-update",
	EventDurationKnown:    "duration-known",
	EventPlaying:          "playing",
	EventPaused:           "paused",
	EventVolumeChange:     "volume-change",
	EventMuteChange:       "mute-change",
	EventRateChange:       "rate-change",
	EventFullscreenChange: "fullscreen-change",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Origin tells confirmed facts apart from optimistic guesses.
type Origin int

const (
	// Confirmed events were reported by the playing resource itself.
	Confirmed Origin = iota
	// Optimistic events mirror a command that has no feedback channel.
	Optimistic
)

// Event is a single report from an adapter.
// Value carries seconds, volume in [0,1] or rate; Flag carries mute and fullscreen.
type Event struct {
	Kind   EventKind
	Origin Origin
	Value  float64
	Flag   bool
}

// Listener receives events in delivery order.
type Listener func(Event)
