package constant

import "time"

// AutoHideDelay is how long the control overlay stays up after the last interaction.
const AutoHideDelay = 3500 * time.Millisecond

// PlaybackRates are the speeds offered by the speed menu, slowest first.
var PlaybackRates = []float64{0.5, 0.75, 1, 1.25, 1.5, 1.75, 2}

// Signal names understood by the embedded surface page.
const (
	SignalPlay  = "play"
	SignalPause = "pause"
)
