// Package anim implements time based animation of scalar values and colors,
// for smooth transitions in a display UI that is redrawn every tick.
package anim

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Easing selects the curve that maps normalized time (0 to 1) to normalized
// progress. All curves map 0 to 0 and 1 to 1, but the elastic and bounce
// curves overshoot in between.
type Easing uint8

const (
	Linear Easing = iota
	EaseIn
	EaseOut
	EaseInOut
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInElastic
	EaseOutElastic
	Bounce
)

var easingNames = [...]string{
	Linear:         "Linear",
	EaseIn:         "EaseIn",
	EaseOut:        "EaseOut",
	EaseInOut:      "EaseInOut",
	EaseInQuad:     "EaseInQuad",
	EaseOutQuad:    "EaseOutQuad",
	EaseInOutQuad:  "EaseInOutQuad",
	EaseInCubic:    "EaseInCubic",
	EaseOutCubic:   "EaseOutCubic",
	EaseInOutCubic: "EaseInOutCubic",
	EaseInElastic:  "EaseInElastic",
	EaseOutElastic: "EaseOutElastic",
	Bounce:         "Bounce",
}

func (e Easing) String() string {
	if int(e) < len(easingNames) {
		return easingNames[e]
	}
	return fmt.Sprintf("Easing(%d)", uint8(e))
}

// Period factor of the elastic curves.
const c4 = 2 * math32.Pi / 3

// Apply maps t, normally in the range 0 to 1, through the easing curve. An
// unknown easing behaves like Linear.
func (e Easing) Apply(t float32) float32 {
	switch e {
	case EaseIn, EaseInQuad:
		return t * t
	case EaseOut, EaseOutQuad:
		return t * (2 - t)
	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	case EaseInOutQuad:
		// Same curve as EaseInOut, written the way the cubic variant is.
		if t < 0.5 {
			return 2 * t * t
		}
		u := -2*t + 2
		return 1 - u*u/2
	case EaseInCubic:
		return t * t * t
	case EaseOutCubic:
		u := 1 - t
		return 1 - u*u*u
	case EaseInOutCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	case EaseInElastic:
		if t == 0 || t == 1 {
			return t
		}
		return -math32.Pow(2, 10*t-10) * math32.Sin((t*10-10.75)*c4)
	case EaseOutElastic:
		if t == 0 || t == 1 {
			return t
		}
		return math32.Pow(2, -10*t)*math32.Sin((t*10-0.75)*c4) + 1
	case Bounce:
		return bounce(t)
	default:
		return t
	}
}

// bounce is evaluated in float64, so that the last segment lands exactly on 1
// after rounding back to float32.
func bounce(t32 float32) float32 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	t := float64(t32)
	switch {
	case t < 1/d1:
		return float32(n1 * t * t)
	case t < 2/d1:
		t -= 1.5 / d1
		return float32(n1*t*t + 0.75)
	case t < 2.5/d1:
		t -= 2.25 / d1
		return float32(n1*t*t + 0.9375)
	default:
		t -= 2.625 / d1
		return float32(n1*t*t + 0.984375)
	}
}
