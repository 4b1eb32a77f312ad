package display

// Colors are stored as packed 16-bit RGB565 values in native byte order: red
// in bits 11-15, green in bits 5-10 and blue in bits 0-4. They are only
// converted to big endian when they are sent to the display.

// Some commonly used colors.
const (
	Black   uint16 = 0x0000
	White   uint16 = 0xFFFF
	Red     uint16 = 0xF800
	Green   uint16 = 0x07E0
	Blue    uint16 = 0x001F
	Yellow  uint16 = 0xFFE0
	Cyan    uint16 = 0x07FF
	Magenta uint16 = 0xF81F
	Gray    uint16 = 0x8410
)

// RGB888ToRGB565 packs an 8-bit per channel color, dropping the lower bits of
// each channel.
func RGB888ToRGB565(r, g, b uint8) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b&0xF8)>>3
}

// RGB565ToRGB888 unpacks a color to 8 bits per channel. The upper bits of each
// channel are replicated into the lower bits, so that white stays white.
func RGB565ToRGB888(c uint16) (r, g, b uint8) {
	r = uint8(c>>11) & 0x1F
	g = uint8(c>>5) & 0x3F
	b = uint8(c) & 0x1F
	return r<<3 | r>>2, g<<2 | g>>4, b<<3 | b>>2
}

// BlendRGB565 draws fg over bg with the given alpha, where 255 is fully
// opaque and 0 is fully transparent.
func BlendRGB565(fg, bg uint16, alpha uint8) uint16 {
	switch alpha {
	case 255:
		return fg
	case 0:
		return bg
	}
	fr, fgreen, fb := RGB565ToRGB888(fg)
	br, bgreen, bb := RGB565ToRGB888(bg)
	a := uint16(alpha)
	blend := func(f, b uint8) uint8 {
		return uint8((uint16(f)*a + uint16(b)*(255-a)) / 255)
	}
	return RGB888ToRGB565(blend(fr, br), blend(fgreen, bgreen), blend(fb, bb))
}

// AdjustBrightness scales a color to the given brightness percentage. Values
// above 100 are treated as 100.
func AdjustBrightness(c uint16, percent uint8) uint16 {
	p := uint16(min(percent, 100))
	r, g, b := RGB565ToRGB888(c)
	return RGB888ToRGB565(uint8(uint16(r)*p/100), uint8(uint16(g)*p/100), uint8(uint16(b)*p/100))
}
