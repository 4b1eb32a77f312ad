package main

import (
	"time"

	"github.com/aykevl/tinygl/pixel"
	"github.com/tdisplay-s3/display"
)

func main() {
	// Verify board name constant.
	var _ string = display.Name

	// Assert that display.Display returns a display the framebuffer can
	// flush to.
	checkScreen(display.Display.Configure())

	// Assert that Display uses the usual interface.
	var _ interface {
		Size() (int16, int16)
		PPI() int
		MaxBrightness() int
		SetBrightness(int)
		WaitForVBlank(time.Duration)
	} = display.Display

	// Assert that display.Buttons uses the usual interface.
	var _ interface {
		Configure()
		ReadInput()
		NextEvent() display.KeyEvent
	} = display.Buttons
}

func checkScreen(d display.Displayer[pixel.RGB565BE]) {
	fb := display.NewFramebuffer(display.DefaultConfig(), nil)
	fb.Flush(d)
}
