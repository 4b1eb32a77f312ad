package display

import (
	"fmt"
	"log/slog"

	"github.com/aykevl/tinygl/pixel"
)

// Framebuffer is an in-memory copy of the panel contents. Drawing happens in
// logical coordinates (as configured by the orientation), pixels are stored
// the way the panel expects them. Every drawing operation marks the pixels it
// touched as dirty, and Flush sends only those regions to the display.
//
// A Framebuffer is not safe for concurrent use.
type Framebuffer struct {
	width, height   uint16 // logical size
	pwidth, pheight uint16 // physical size
	orientation     Orientation
	pix             []uint16
	dirty           *DirtyRegion
	fullInterval    int
	frames          int
	buf             []uint8
	log             *slog.Logger
}

// FlushStats describes a single call to Flush.
type FlushStats struct {
	Regions int    // number of separate transfers
	Pixels  uint32 // pixels sent to the display
	Full    bool   // the whole screen was sent
}

// NewFramebuffer allocates a framebuffer for the given configuration, which
// should have been validated. The initial content is black, but nothing is
// marked dirty: the panel content is unknown until the first full flush.
// A nil logger uses slog.Default().
func NewFramebuffer(config Config, logger *slog.Logger) *Framebuffer {
	if logger == nil {
		logger = slog.Default()
	}
	pw, ph := config.Orientation.PhysicalSize(config.Width, config.Height)
	return &Framebuffer{
		width:        config.Width,
		height:       config.Height,
		pwidth:       pw,
		pheight:      ph,
		orientation:  config.Orientation,
		pix:          make([]uint16, int(pw)*int(ph)),
		dirty:        NewDirtyRegion(config.MaxDirtyRects),
		fullInterval: config.FullFlushInterval,
		log:          logger,
	}
}

// Size returns the logical screen size.
func (fb *Framebuffer) Size() (width, height uint16) {
	return fb.width, fb.height
}

// Bounds returns the logical screen as a rect.
func (fb *Framebuffer) Bounds() Rect {
	return Rect{Width: fb.width, Height: fb.height}
}

// Dirty returns the dirty region, in physical coordinates.
func (fb *Framebuffer) Dirty() *DirtyRegion {
	return fb.dirty
}

// SetPixel sets a single pixel. Pixels outside the screen are ignored.
func (fb *Framebuffer) SetPixel(x, y uint16, c uint16) {
	px, py, err := TransformCoordinates(x, y, fb.width, fb.height, fb.orientation)
	if err != nil {
		return
	}
	fb.pix[int(py)*int(fb.pwidth)+int(px)] = c
	fb.dirty.Mark(Rect{X: px, Y: py, Width: 1, Height: 1})
}

// Pixel returns the color of a single pixel, or black outside the screen.
func (fb *Framebuffer) Pixel(x, y uint16) uint16 {
	px, py, err := TransformCoordinates(x, y, fb.width, fb.height, fb.orientation)
	if err != nil {
		return Black
	}
	return fb.pix[int(py)*int(fb.pwidth)+int(px)]
}

// FillRect fills the given rect, clipped to the screen.
func (fb *Framebuffer) FillRect(r Rect, c uint16) {
	phys, ok := fb.physical(r)
	if !ok {
		return
	}
	for y := phys.Y; uint32(y) < phys.Bottom(); y++ {
		row := fb.pix[int(y)*int(fb.pwidth):]
		for x := phys.X; uint32(x) < phys.Right(); x++ {
			row[x] = c
		}
	}
	fb.dirty.Mark(phys)
}

// Fill fills the entire screen with a single color.
func (fb *Framebuffer) Fill(c uint16) {
	fb.FillRect(fb.Bounds(), c)
}

// DrawHLine draws a horizontal line of the given length starting at (x, y).
func (fb *Framebuffer) DrawHLine(x, y, length uint16, c uint16) {
	fb.FillRect(Rect{X: x, Y: y, Width: length, Height: 1}, c)
}

// DrawVLine draws a vertical line of the given length starting at (x, y).
func (fb *Framebuffer) DrawVLine(x, y, length uint16, c uint16) {
	fb.FillRect(Rect{X: x, Y: y, Width: 1, Height: length}, c)
}

// MarkDirty marks a logical rect as changed without drawing anything, for
// example after the panel lost its contents.
func (fb *Framebuffer) MarkDirty(r Rect) {
	if phys, ok := fb.physical(r); ok {
		fb.dirty.Mark(phys)
	}
}

// physical clips a logical rect to the screen and converts it to panel
// coordinates. It returns false when nothing is left after clipping.
func (fb *Framebuffer) physical(r Rect) (Rect, bool) {
	clipped, ok := r.Intersection(fb.Bounds())
	if !ok {
		return Rect{}, false
	}
	phys, err := TransformRect(clipped, fb.width, fb.height, fb.orientation)
	if err != nil {
		// Can't happen after clipping.
		return Rect{}, false
	}
	return phys, true
}

// Flush sends all dirty regions to the display and clears them. Every
// FullFlushInterval frames the entire screen is sent instead.
//
// The display must have the physical size of the framebuffer. When the
// display returns an error, the dirty regions are kept so the next Flush
// tries again.
func (fb *Framebuffer) Flush(display Displayer[pixel.RGB565BE]) (FlushStats, error) {
	var stats FlushStats
	fb.frames++
	var regions []Rect
	if fb.fullInterval > 0 && fb.frames >= fb.fullInterval {
		regions = []Rect{{Width: fb.pwidth, Height: fb.pheight}}
		stats.Full = true
	} else {
		if fb.dirty.IsEmpty() {
			return stats, nil
		}
		regions = fb.dirty.Regions()
	}

	for _, r := range regions {
		if err := fb.send(display, r); err != nil {
			return stats, fmt.Errorf("display: could not flush %v: %w", r, err)
		}
		stats.Regions++
		stats.Pixels += r.Area()
	}
	if err := display.Display(); err != nil {
		return stats, fmt.Errorf("display: could not show frame: %w", err)
	}

	if stats.Full {
		fb.frames = 0
	}
	fb.log.Debug("flushed framebuffer",
		"regions", stats.Regions,
		"marked", fb.dirty.Len(),
		"pixels", stats.Pixels,
		"full", stats.Full)
	fb.dirty.Clear()
	return stats, nil
}

// send writes a single physical region as big endian RGB565.
func (fb *Framebuffer) send(display Displayer[pixel.RGB565BE], r Rect) error {
	n := int(r.Area()) * 2
	if cap(fb.buf) < n {
		fb.buf = make([]uint8, n)
	}
	buf := fb.buf[:n]
	i := 0
	for y := int(r.Y); y < int(r.Bottom()); y++ {
		row := fb.pix[y*int(fb.pwidth)+int(r.X) : y*int(fb.pwidth)+int(r.Right())]
		for _, c := range row {
			buf[i] = uint8(c >> 8)
			buf[i+1] = uint8(c)
			i += 2
		}
	}
	return display.DrawRGBBitmap8(int16(r.X), int16(r.Y), buf, int16(r.Width), int16(r.Height))
}
