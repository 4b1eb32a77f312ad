package anim

import "time"

// Clock returns the current time. Animations only ever subtract two results
// of the same clock, so it only needs to be monotonic.
type Clock func() time.Time

// Animation moves a single value from a start to an end value over a fixed
// duration, following an easing curve. The zero value is not useful, create
// one with NewAnimation.
type Animation struct {
	startValue float32
	endValue   float32
	duration   time.Duration
	easing     Easing

	startTime time.Time
	started   bool
	completed bool

	clock Clock
}

// NewAnimation returns an animation that hasn't been started yet.
func NewAnimation(start, end float32, duration time.Duration, easing Easing) Animation {
	return Animation{
		startValue: start,
		endValue:   end,
		duration:   duration,
		easing:     easing,
		clock:      time.Now,
	}
}

// SetClock replaces the time source, which is time.Now by default.
func (a *Animation) SetClock(clock Clock) {
	a.clock = clock
}

func (a *Animation) now() time.Time {
	if a.clock == nil {
		return time.Now()
	}
	return a.clock()
}

// Start starts (or restarts) the animation from the beginning.
func (a *Animation) Start() {
	a.startTime = a.now()
	a.started = true
	a.completed = false
}

// Update returns the current value of the animation.
//
// Before the animation is started this is the start value. Once the duration
// has passed it is exactly the end value, and the animation is marked as
// completed. In between the easing curve is applied, which may overshoot for
// the elastic and bounce curves.
func (a *Animation) Update() float32 {
	if !a.started {
		return a.startValue
	}
	elapsed := a.now().Sub(a.startTime)
	if elapsed >= a.duration {
		a.completed = true
		return a.endValue
	}
	progress := float32(float64(elapsed) / float64(a.duration))
	return Lerp(a.startValue, a.endValue, a.easing.Apply(progress))
}

// IsCompleted returns whether Update has seen the animation reach its end.
func (a *Animation) IsCompleted() bool {
	return a.completed
}

// IsStarted returns whether Start was called since the last reset.
func (a *Animation) IsStarted() bool {
	return a.started
}

// Reset stops the animation and brings it back to the state before Start.
func (a *Animation) Reset() {
	a.started = false
	a.startTime = time.Time{}
	a.completed = false
}

// Reverse swaps the start and end value and resets the animation. Call Start
// afterwards to play the same curve backwards.
func (a *Animation) Reverse() {
	a.startValue, a.endValue = a.endValue, a.startValue
	a.Reset()
}

func (a *Animation) StartValue() float32     { return a.startValue }
func (a *Animation) EndValue() float32       { return a.endValue }
func (a *Animation) Duration() time.Duration { return a.duration }
func (a *Animation) Easing() Easing          { return a.easing }
