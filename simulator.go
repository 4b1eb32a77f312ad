//go:build !baremetal

package display

// The simulator window. It shows the panel the way it is wired, so a
// framebuffer in landscape orientation appears rotated, just like it would
// on a panel that doesn't rotate in hardware.
//
// The display API doesn't use a mainloop of any kind, which would not be
// necessary anyway on embedded systems. But it is necessary on OSes, so to work
// around this the simulator is actually run in a separate process by starting
// the current process again and communicating over pipes (stdin/stdout in the
// simulator process).

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/draw"
)

const runWindowCommand = "run-simulator-window"

// How long a flushed region stays outlined.
const regionHighlight = 300 * time.Millisecond

func init() {
	if len(os.Args) >= 2 && os.Args[1] == runWindowCommand {
		// This is the simulator process.
		// Run the entire window in an init function, because that's the only
		// way to do this with the API that is exposed by this package.
		windowMain()
		os.Exit(0)
	}
}

type flushedRegion struct {
	rect Rect
	at   time.Time
}

var (
	displayImageLock     sync.Mutex
	displayImage         *image.RGBA
	displayMaxBrightness = 1
	displayBrightness    = 0
	displayRegions       []flushedRegion
)

var regionColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// The main function for the window process.
func windowMain() {
	displayImage = image.NewRGBA(image.Rect(0, 0, Simulator.WindowWidth, Simulator.WindowHeight))
	display := &displayWidget{}
	display.Generator = func(w, h int) image.Image {
		displayImageLock.Lock()
		defer displayImageLock.Unlock()
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 192, G: 192, B: 192, A: 255}), image.Point{}, draw.Src)
		rect := displayImage.Bounds()
		scale := min(w/max(rect.Dx(), 1), h/max(rect.Dy(), 1))
		if scale < 1 {
			scale = 1
		}
		width := rect.Dx() * scale
		height := rect.Dy() * scale
		x := (w - width) / 2
		y := (h - height) / 2
		displayRect := image.Rect(x, y, x+width, y+height)
		if displayBrightness <= 0 {
			// The backlight is off, so indicate this by making the screen gray.
			draw.Draw(img, displayRect, image.NewUniform(color.RGBA{R: 96, G: 96, B: 96, A: 255}), image.Point{}, draw.Src)
			return img
		}
		draw.NearestNeighbor.Scale(img, displayRect, displayImage, rect, draw.Src, nil)
		if displayBrightness < displayMaxBrightness {
			// Darken the image to simulate a dimmed backlight.
			alpha := uint8(255 - 255*displayBrightness/displayMaxBrightness)
			draw.Draw(img, displayRect, image.NewUniform(color.RGBA{A: alpha}), image.Point{}, draw.Over)
		}
		now := time.Now()
		live := displayRegions[:0]
		for _, region := range displayRegions {
			if now.Sub(region.at) > regionHighlight {
				continue
			}
			live = append(live, region)
			outline(img, region.rect, displayRect.Min, scale)
		}
		displayRegions = live
		return img
	}

	a := app.New()
	w := a.NewWindow(Simulator.WindowTitle)
	w.SetPadded(false)
	w.SetFixedSize(true)
	w.SetContent(display)

	// Listen for keyboard events, and translate them to key codes.
	if deskCanvas, ok := w.Canvas().(desktop.Canvas); ok {
		deskCanvas.SetOnKeyDown(func(event *fyne.KeyEvent) {
			key := decodeFyneKey(event.Name)
			if key != NoKey {
				fmt.Printf("keypress %d\n", key)
			}
		})
		deskCanvas.SetOnKeyUp(func(event *fyne.KeyEvent) {
			key := decodeFyneKey(event.Name)
			if key != NoKey {
				fmt.Printf("keyrelease %d\n", key)
			}
		})
	}

	// Listen for events from the parent process (which includes display data).
	go windowReceiveEvents(w, display)

	w.ShowAndRun()
}

// outline draws a one pixel (scaled) border around a region of the panel.
func outline(img *image.RGBA, r Rect, origin image.Point, scale int) {
	x0 := origin.X + int(r.X)*scale
	y0 := origin.Y + int(r.Y)*scale
	x1 := origin.X + int(r.Right())*scale
	y1 := origin.Y + int(r.Bottom())*scale
	c := image.NewUniform(regionColor)
	draw.Draw(img, image.Rect(x0, y0, x1, y0+1), c, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(x0, y1-1, x1, y1), c, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(x0, y0, x0+1, y1), c, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(x1-1, y0, x1, y1), c, image.Point{}, draw.Src)
}

// Goroutine that listens for commands from the parent process.
func windowReceiveEvents(w fyne.Window, display *displayWidget) {
	r := bufio.NewReader(os.Stdin)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			// Parent process exited.
			os.Exit(0)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd := fields[0]
		switch cmd {
		case "display":
			var width, height int
			fmt.Sscanf(line, "%s %d %d\n", &cmd, &width, &height)
			// Fill with noise, like the contents of uninitialized display RAM.
			newImage := image.NewRGBA(image.Rect(0, 0, width, height))
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					r := rand.Uint32()
					newImage.SetRGBA(x, y, color.RGBA{
						R: uint8(r >> 0),
						G: uint8(r >> 8),
						B: uint8(r >> 16),
						A: 255,
					})
				}
			}

			displayImageLock.Lock()
			displayImage = newImage
			display.SetMinSize(fyne.NewSize(float32(width), float32(height)))
			displayImageLock.Unlock()
		case "display-brightness":
			displayImageLock.Lock()
			fmt.Sscanf(line, "%s %d %d\n", &cmd, &displayBrightness, &displayMaxBrightness)
			displayImageLock.Unlock()
			display.Refresh()
		case "title":
			w.SetTitle(strings.TrimSpace(line[len("title"):]))
		case "draw":
			// Read the image data (which is a single line of RGB565BE pixels).
			var startX, startY, width int
			fmt.Sscanf(line, "%s %d %d %d\n", &cmd, &startX, &startY, &width)
			buf := make([]byte, width*2)
			io.ReadFull(r, buf)

			displayImageLock.Lock()
			for x := 0; x < width; x++ {
				red, green, blue := RGB565ToRGB888(uint16(buf[x*2])<<8 | uint16(buf[x*2+1]))
				displayImage.SetRGBA(startX+x, startY, color.RGBA{R: red, G: green, B: blue, A: 255})
			}
			displayImageLock.Unlock()
		case "region":
			var region Rect
			fmt.Sscanf(line, "%s %d %d %d %d\n", &cmd, &region.X, &region.Y, &region.Width, &region.Height)
			displayImageLock.Lock()
			displayRegions = append(displayRegions, flushedRegion{rect: region, at: time.Now()})
			displayImageLock.Unlock()
			// Refresh once more to remove the outline again.
			time.AfterFunc(regionHighlight+10*time.Millisecond, display.Refresh)
		case "show":
			display.Refresh()
		default:
			fmt.Fprintln(os.Stderr, "unknown command:", cmd)
		}
	}
}

func decodeFyneKey(key fyne.KeyName) KeyEvent {
	var e KeyEvent
	switch key {
	case fyne.KeyLeft:
		e = KeyLeft
	case fyne.KeyRight:
		e = KeyRight
	case fyne.KeyUp:
		e = KeyUp
	case fyne.KeyDown:
		e = KeyDown
	case fyne.KeyEscape:
		e = KeyEscape
	case fyne.KeyReturn:
		e = KeyEnter
	case fyne.KeySpace:
		e = KeySpace
	case fyne.KeyA:
		e = KeyA
	case fyne.KeyB:
		e = KeyB
	default:
		return NoKeyEvent
	}
	return e
}

// Raster widget that shows the simulated panel.
type displayWidget struct {
	canvas.Raster
}

func (r *displayWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(&r.Raster)
}
