package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allEasings = []Easing{
	Linear, EaseIn, EaseOut, EaseInOut,
	EaseInQuad, EaseOutQuad, EaseInOutQuad,
	EaseInCubic, EaseOutCubic, EaseInOutCubic,
	EaseInElastic, EaseOutElastic, Bounce,
}

func TestEasingEndpoints(t *testing.T) {
	for _, e := range allEasings {
		t.Run(e.String(), func(t *testing.T) {
			assert.Equal(t, float32(0), e.Apply(0))
			assert.Equal(t, float32(1), e.Apply(1))
		})
	}
}

func TestLinearEasing(t *testing.T) {
	for _, v := range []float32{0, 0.25, 0.5, 0.75, 1} {
		assert.Equal(t, v, Linear.Apply(v))
	}
}

func TestEaseInOutShape(t *testing.T) {
	for _, e := range []Easing{EaseInOut, EaseInOutQuad, EaseInOutCubic} {
		// Starts slow, roughly linear in the middle, ends slow.
		assert.Less(t, e.Apply(0.1), float32(0.1), e.String())
		assert.InDelta(t, 0.5, e.Apply(0.5), 0.01, e.String())
		assert.Greater(t, e.Apply(0.9), float32(0.9), e.String())
	}
}

func TestEaseInAndOut(t *testing.T) {
	for _, e := range []Easing{EaseIn, EaseInQuad, EaseInCubic} {
		assert.Less(t, e.Apply(0.2), float32(0.2), e.String())
		assert.Less(t, e.Apply(0.8), float32(0.8), e.String())
	}
	for _, e := range []Easing{EaseOut, EaseOutQuad, EaseOutCubic} {
		assert.Greater(t, e.Apply(0.2), float32(0.2), e.String())
		assert.Greater(t, e.Apply(0.9), float32(0.9), e.String())
	}
}

func TestEasingValues(t *testing.T) {
	for _, tc := range []struct {
		easing Easing
		t      float32
		want   float32
	}{
		{EaseIn, 0.5, 0.25},
		{EaseOut, 0.5, 0.75},
		{EaseInOut, 0.25, 0.125},
		{EaseInOut, 0.75, 0.875},
		{EaseInOutQuad, 0.75, 0.875},
		{EaseInCubic, 0.5, 0.125},
		{EaseOutCubic, 0.5, 0.875},
		{EaseInOutCubic, 0.25, 0.0625},
		{EaseInOutCubic, 0.75, 0.9375},
		{Bounce, 0.2, 7.5625 * 0.2 * 0.2},
		{Bounce, 0.5, 0.765625},
	} {
		assert.InDelta(t, tc.want, tc.easing.Apply(tc.t), 1e-6, "%v(%v)", tc.easing, tc.t)
	}
}

// EaseInOut and EaseInOutQuad are written differently but describe the same
// curve.
func TestEaseInOutVariantsAgree(t *testing.T) {
	for i := 0; i <= 100; i++ {
		v := float32(i) / 100
		assert.InDelta(t, EaseInOut.Apply(v), EaseInOutQuad.Apply(v), 1e-6)
	}
}

func TestElasticOvershoots(t *testing.T) {
	var minIn, maxOut float32
	for i := 1; i < 100; i++ {
		v := float32(i) / 100
		minIn = min(minIn, EaseInElastic.Apply(v))
		maxOut = max(maxOut, EaseOutElastic.Apply(v))
	}
	assert.Less(t, minIn, float32(0))
	assert.Greater(t, maxOut, float32(1))
}

func TestEasingString(t *testing.T) {
	assert.Equal(t, "EaseOutElastic", EaseOutElastic.String())
	assert.Equal(t, "Easing(99)", Easing(99).String())
	assert.Equal(t, float32(0.3), Easing(99).Apply(0.3))
}
