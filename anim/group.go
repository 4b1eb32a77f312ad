package anim

import (
	"errors"
	"fmt"
)

// MaxGroupSize is the maximum number of animations in a Group. The storage is
// allocated up front, so a group never grows after it is created.
const MaxGroupSize = 8

// ErrGroupFull is returned (wrapped in a *GroupFullError) when adding to a
// group that already holds MaxGroupSize animations.
var ErrGroupFull = errors.New("anim: animation group is full")

// GroupFullError is returned by Group.Add and hands back the animation that
// could not be added.
type GroupFullError struct {
	Animation Animation
}

func (e *GroupFullError) Error() string {
	return fmt.Sprintf("%s (%d animations)", ErrGroupFull, MaxGroupSize)
}

func (e *GroupFullError) Unwrap() error {
	return ErrGroupFull
}

// Group runs a number of animations either all at once (parallel) or one
// after the other (sequential).
type Group struct {
	animations [MaxGroupSize]Animation
	n          int
	parallel   bool
	current    int // sequential: index of the running animation
	clock      Clock
}

// NewGroup returns an empty animation group.
func NewGroup(parallel bool) *Group {
	return &Group{parallel: parallel}
}

// SetClock replaces the time source of all animations in the group, including
// the ones that are added later.
func (g *Group) SetClock(clock Clock) {
	g.clock = clock
	for i := range g.animations[:g.n] {
		g.animations[i].SetClock(clock)
	}
}

// Add appends an animation to the group. When the group is full, it returns a
// *GroupFullError holding the animation.
func (g *Group) Add(a Animation) error {
	if g.n >= MaxGroupSize {
		return &GroupFullError{Animation: a}
	}
	if g.clock != nil {
		a.SetClock(g.clock)
	}
	g.animations[g.n] = a
	g.n++
	return nil
}

// Len returns the number of animations in the group.
func (g *Group) Len() int {
	return g.n
}

// At returns the animation at the given index, to read its current value.
func (g *Group) At(i int) *Animation {
	return &g.animations[:g.n][i]
}

// Parallel returns whether the animations run at the same time.
func (g *Group) Parallel() bool {
	return g.parallel
}

// Start starts all animations (parallel) or only the first one (sequential).
func (g *Group) Start() {
	if g.parallel {
		for i := range g.animations[:g.n] {
			g.animations[i].Start()
		}
	} else if g.n > 0 {
		g.animations[0].Start()
	}
	g.current = 0
}

// Update advances the group by one tick and returns whether the entire group
// is done. An empty group is always done.
//
// In sequential mode only the running animation is updated. When it
// completes, the next one is started.
func (g *Group) Update() bool {
	if g.parallel {
		done := true
		for i := range g.animations[:g.n] {
			a := &g.animations[i]
			a.Update()
			if !a.IsCompleted() {
				done = false
			}
		}
		return done
	}

	if g.current >= g.n {
		return true
	}
	a := &g.animations[g.current]
	a.Update()
	if !a.IsCompleted() {
		return false
	}
	g.current++
	if g.current < g.n {
		g.animations[g.current].Start()
		return false
	}
	return true
}

// IsCompleted returns whether all animations have completed, without
// advancing anything.
func (g *Group) IsCompleted() bool {
	if g.parallel {
		for i := range g.animations[:g.n] {
			if !g.animations[i].IsCompleted() {
				return false
			}
		}
		return true
	}
	return g.current >= g.n
}

// Current returns the index of the running animation in sequential mode. It
// equals Len once all animations are done.
func (g *Group) Current() int {
	return g.current
}

// Reset resets every animation and rewinds the group.
func (g *Group) Reset() {
	for i := range g.animations[:g.n] {
		g.animations[i].Reset()
	}
	g.current = 0
}
