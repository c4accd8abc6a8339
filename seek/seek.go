// Package seek translates pointer positions on a progress track into timeline offsets.
package seek

import (
	"fmt"
	"math"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

func finite(values ...float64) bool {
	return lo.EveryBy(values, func(v float64) bool {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	})
}

// Translate maps pointerX on a track starting at trackLeft and trackWidth wide
// onto [0, duration]. It returns None when no seek should happen: a collapsed
// track, an unknown duration, or non-finite input.
func Translate(pointerX, trackLeft, trackWidth, duration float64) mo.Option[float64] {
	if !finite(pointerX, trackLeft, trackWidth, duration) || trackWidth <= 0 || duration <= 0 {
		return mo.None[float64]()
	}

	fraction := lo.Clamp((pointerX-trackLeft)/trackWidth, 0, 1)
	return mo.Some(lo.Clamp(fraction*duration, 0, duration))
}

// Fraction is the share of duration already played, in [0,1].
func Fraction(current, duration float64) float64 {
	if !finite(current, duration) || duration <= 0 {
		return 0
	}
	return lo.Clamp(current/duration, 0, 1)
}

// Format renders seconds as m:ss, or h:mm:ss from one hour up.
func Format(seconds float64) string {
	if !finite(seconds) || seconds < 0 {
		seconds = 0
	}

	total := int(seconds)
	h, m, s := total/3600, (total%3600)/60, total%60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
