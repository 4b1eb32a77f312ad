package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(0), Lerp(0, 100, 0))
	assert.Equal(t, float32(50), Lerp(0, 100, 0.5))
	assert.Equal(t, float32(100), Lerp(0, 100, 1))
	// No clamping.
	assert.Equal(t, float32(150), Lerp(0, 100, 1.5))
	assert.Equal(t, float32(-50), Lerp(0, 100, -0.5))
}

func TestLerpColor(t *testing.T) {
	const (
		a = 0xFFFF
		b = 0x0000
	)
	assert.Equal(t, uint16(a), LerpColor(a, b, 0))
	assert.Equal(t, uint16(b), LerpColor(a, b, 1))

	mid := LerpColor(a, b, 0.5)
	assert.Equal(t, uint16(15), mid>>11&0x1F)
	assert.Equal(t, uint16(31), mid>>5&0x3F)
	assert.Equal(t, uint16(15), mid&0x1F)
}

func TestLerpColorEndpoints(t *testing.T) {
	colors := []uint16{0x0000, 0xFFFF, 0xF800, 0x07E0, 0x001F, 0x1234, 0xABCD}
	for _, c1 := range colors {
		for _, c2 := range colors {
			assert.Equal(t, c1, LerpColor(c1, c2, 0), "%04x %04x", c1, c2)
			assert.Equal(t, c2, LerpColor(c1, c2, 1), "%04x %04x", c1, c2)
		}
	}
}

func TestLerpColorTruncates(t *testing.T) {
	// 0 -> 31 at 0.999 is 30.969, which truncates to 30.
	assert.Equal(t, uint16(30), LerpColor(0x0000, 0x001F, 0.999))
}

func TestLerpColorClamps(t *testing.T) {
	assert.Equal(t, uint16(0x001F), LerpColor(0x0000, 0x001F, 2))
	assert.Equal(t, uint16(0x0000), LerpColor(0x0000, 0x001F, -1))
}
