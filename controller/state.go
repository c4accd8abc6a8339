package controller

import (
	"github.com/anisan-cli/reel/player"
	"github.com/anisan-cli/reel/source"
)

// Phase of a playback session.
type Phase int

const (
	// Idle sessions have no backend; every operation is a no-op.
	Idle Phase = iota
	// Ready sessions own exactly one backend.
	Ready
)

func (p Phase) String() string {
	if p == Ready {
		return "ready"
	}
	return "idle"
}

// State is a read-only snapshot of a session.
type State struct {
	Phase        Phase
	Kind         source.Kind
	Capabilities player.Capabilities

	IsPlaying    bool
	CurrentTime  float64
	Duration     float64
	Volume       float64
	Muted        bool
	PlaybackRate float64
	Fullscreen   bool

	ControlsVisible bool
	SpeedMenuOpen   bool
}

// confirmed holds facts reported by a resource.
type confirmed struct {
	playing     bool
	currentTime float64
	duration    float64
	volume      float64
	muted       bool
	rate        float64
	fullscreen  bool
}

func newConfirmed() confirmed {
	return confirmed{volume: 1, rate: 1}
}
