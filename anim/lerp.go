package anim

// Lerp interpolates linearly between start and end. The amount t is not
// clamped, so values outside 0 to 1 extrapolate.
func Lerp(start, end, t float32) float32 {
	return start + (end-start)*t
}

// LerpColor interpolates between two packed 5-6-5 colors. Each of the three
// bit fields is interpolated on its own and truncated towards zero, so the
// result may be one step below a rounded blend. The order of the channels
// (RGB or BGR) doesn't matter.
//
// Channels that extrapolate beyond their bit width are clamped.
func LerpColor(start, end uint16, t float32) uint16 {
	c1 := lerpChannel(start>>11&0x1f, end>>11&0x1f, t, 0x1f)
	c2 := lerpChannel(start>>5&0x3f, end>>5&0x3f, t, 0x3f)
	c3 := lerpChannel(start&0x1f, end&0x1f, t, 0x1f)
	return c1<<11 | c2<<5 | c3
}

func lerpChannel(start, end uint16, t float32, limit uint16) uint16 {
	v := Lerp(float32(start), float32(end), t)
	if v <= 0 {
		return 0
	}
	if v >= float32(limit) {
		return limit
	}
	return uint16(v)
}
