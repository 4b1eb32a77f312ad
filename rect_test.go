package display

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	for name, tc := range map[string]struct {
		a, b Rect
		want bool
	}{
		"overlap":        {NewRect(0, 0, 100, 100), NewRect(50, 50, 100, 100), true},
		"contained":      {NewRect(0, 0, 100, 100), NewRect(10, 10, 5, 5), true},
		"touching right": {NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		"touching below": {NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		"disjoint":       {NewRect(0, 0, 10, 10), NewRect(100, 100, 10, 10), false},
		"empty on edge":  {NewRect(0, 0, 10, 10), NewRect(10, 5, 0, 0), false},
		"near 16-bit end": {
			NewRect(65530, 65530, 10, 10), NewRect(0, 0, 65535, 65535), true,
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Intersects(tc.b))
			assert.Equal(t, tc.want, tc.b.Intersects(tc.a))
		})
	}
}

func TestRectIntersection(t *testing.T) {
	got, ok := NewRect(0, 0, 100, 100).Intersection(NewRect(50, 50, 100, 100))
	assert.True(t, ok)
	assert.Equal(t, NewRect(50, 50, 50, 50), got)

	_, ok = NewRect(0, 0, 10, 10).Intersection(NewRect(10, 10, 10, 10))
	assert.False(t, ok)
}

func TestRectUnion(t *testing.T) {
	assert.Equal(t, NewRect(0, 0, 150, 150), NewRect(0, 0, 100, 100).Union(NewRect(50, 50, 100, 100)))
	// Disjoint rects still produce the bounding box.
	assert.Equal(t, NewRect(0, 0, 110, 110), NewRect(0, 0, 10, 10).Union(NewRect(100, 100, 10, 10)))
	// Far edges past the 16-bit range are clamped.
	assert.Equal(t, NewRect(0, 0, 65535, 10), NewRect(0, 0, 10, 10).Union(NewRect(65000, 0, 1000, 10)))
}

func TestRectArea(t *testing.T) {
	assert.Equal(t, uint32(54400), NewRect(0, 0, 320, 170).Area())
	assert.Equal(t, uint32(65535*65535), NewRect(0, 0, 65535, 65535).Area())
	assert.Equal(t, uint32(0), NewRect(5, 5, 0, 10).Area())
	assert.True(t, NewRect(5, 5, 0, 10).IsEmpty())
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 5, 5)
	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(14, 24))
	assert.False(t, r.Contains(15, 24))
	assert.False(t, r.Contains(14, 25))
	assert.False(t, r.Contains(9, 20))

	assert.True(t, r.ContainsRect(NewRect(11, 21, 4, 4)))
	assert.False(t, r.ContainsRect(NewRect(11, 21, 5, 4)))
}

func randomRect(rng *rand.Rand) Rect {
	return NewRect(uint16(rng.Intn(100)), uint16(rng.Intn(100)), uint16(rng.Intn(50)+1), uint16(rng.Intn(50)+1))
}

// Properties that must hold for any pair of rects.
func TestRectProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a, b := randomRect(rng), randomRect(rng)

		assert.Equal(t, a.Intersects(b), b.Intersects(a), "%v %v", a, b)
		ab, okAB := a.Intersection(b)
		ba, okBA := b.Intersection(a)
		assert.Equal(t, okAB, okBA, "%v %v", a, b)
		assert.Equal(t, ab, ba, "%v %v", a, b)
		if okAB {
			assert.True(t, a.ContainsRect(ab), "%v %v", a, b)
			assert.True(t, b.ContainsRect(ab), "%v %v", a, b)
		}

		u := a.Union(b)
		assert.Equal(t, u, b.Union(a), "%v %v", a, b)
		assert.True(t, u.ContainsRect(a), "%v %v", a, b)
		assert.True(t, u.ContainsRect(b), "%v %v", a, b)
		assert.GreaterOrEqual(t, u.Area(), a.Area())
		assert.GreaterOrEqual(t, u.Area(), b.Area())
	}
}
