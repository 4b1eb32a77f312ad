//go:build !baremetal

package display

// The simulated board exists for testing locally without running on real
// hardware. This avoids potentially long edit-flash-test cycles, and makes it
// possible to see which regions are actually sent to the display.

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/aykevl/tinygl/pixel"
)

const (
	// The board name, as passed to TinyGo in the "-target" flag.
	// This is the special name "simulator" for the simulator.
	Name = "simulator"
)

// List of all devices.
var (
	Display = mainDisplay{}
	Buttons = buttonsConfig{}
)

type mainDisplay struct{}

type simulatedScreen struct {
	width         int
	height        int
	keyevents     []KeyEvent
	keyeventsLock sync.Mutex
}

var screen = &simulatedScreen{}

// Configure returns a new display ready to draw on.
func (d mainDisplay) Configure() Displayer[pixel.RGB565BE] {
	startWindow()
	screen.width = Simulator.WindowWidth
	screen.height = Simulator.WindowHeight
	windowSendCommand(fmt.Sprintf("display %d %d", screen.width, screen.height), nil)
	return screen
}

// Size returns the physical size of the panel in pixels.
func (d mainDisplay) Size() (width, height int16) {
	return int16(Simulator.WindowWidth), int16(Simulator.WindowHeight)
}

// MaxBrightness returns the maximum brightness value. A maximum brightness
// value of 0 means that this display doesn't support changing the brightness.
func (d mainDisplay) MaxBrightness() int {
	return 255
}

// SetBrightness sets brightness level of the display. It should be:
//
//	0 ≤ level ≤ MaxBrightness
//
// A value of 0 turns the backlight off entirely (but may leave the display
// running with nothing visible).
func (d mainDisplay) SetBrightness(level int) {
	windowSendCommand(fmt.Sprintf("display-brightness %d %d", level, d.MaxBrightness()), nil)
}

// Wait until the next vertical blanking interval (vblank) interrupt is
// received. If the vblank interrupt is not available, it waits until the time
// since the previous call to WaitForVBlank is the default interval instead.
//
// Don't use this method for timing, because vblank varies by hardware. Instead,
// use time.Now() to determine the current time and the amount of time since the
// last screen refresh.
func (d mainDisplay) WaitForVBlank(defaultInterval time.Duration) {
	dummyWaitForVBlank(defaultInterval)
}

// Pixels per inch for this display.
func (d mainDisplay) PPI() int {
	return Simulator.WindowPPI
}

func (s *simulatedScreen) Display() error {
	windowSendCommand("show", nil)
	return nil
}

var errOutOfBounds = errors.New("display: drawing out of bounds")

func (s *simulatedScreen) DrawRGBBitmap8(x, y int16, buf []byte, width, height int16) error {
	displayWidth, displayHeight := s.Size()
	if x < 0 || y < 0 || width <= 0 || height <= 0 ||
		x+width > displayWidth || y+height > displayHeight {
		return errOutOfBounds
	}
	if len(buf) < int(width)*int(height)*2 {
		return errors.New("display: bitmap buffer too small")
	}
	drawStart := time.Now()
	for bufy := 0; bufy < int(height); bufy++ {
		// Delay drawing a bit, to simulate a slow bus.
		if Simulator.WindowDrawSpeed != 0 {
			expected := drawStart.Add(Simulator.WindowDrawSpeed * time.Duration(bufy*int(width)))
			if delay := time.Until(expected); delay > 0 {
				time.Sleep(delay)
			}
		}

		index := (bufy * int(width)) * 2
		lineBuf := buf[index : index+int(width)*2]
		windowSendCommand(fmt.Sprintf("draw %d %d %d", x, int(y)+bufy, width), lineBuf)
	}
	if Simulator.ShowRegions {
		windowSendCommand(fmt.Sprintf("region %d %d %d %d", x, y, width, height), nil)
	}
	return nil
}

func (s *simulatedScreen) Size() (width, height int16) {
	return int16(s.width), int16(s.height)
}

type buttonsConfig struct{}

func (b buttonsConfig) Configure() {
}

func (b buttonsConfig) ReadInput() {
}

func (b buttonsConfig) NextEvent() KeyEvent {
	screen.keyeventsLock.Lock()
	defer screen.keyeventsLock.Unlock()

	if len(screen.keyevents) != 0 {
		event := screen.keyevents[0]
		copy(screen.keyevents, screen.keyevents[1:])
		screen.keyevents = screen.keyevents[:len(screen.keyevents)-1]
		return event
	}
	return NoKeyEvent
}

var (
	windowStart  sync.Once
	windowLock   sync.Mutex
	windowStdin  io.WriteCloser
	windowStdout io.ReadCloser
)

// Ensure the window is running in a separate process, starting it if necessary.
func startWindow() {
	windowRunning := make(chan struct{})
	windowStart.Do(func() {
		// Start the separate process that manages the window.
		go func() {
			cmd := exec.Command(os.Args[0], runWindowCommand)
			cmd.Stderr = os.Stderr
			windowStdin, _ = cmd.StdinPipe()
			windowStdout, _ = cmd.StdoutPipe()
			err := cmd.Start()
			if err != nil {
				fmt.Fprintln(os.Stderr, "could not start window process:", err)
				os.Exit(1)
			}
			close(windowRunning)
			err = cmd.Wait()
			if err != nil {
				if exitErr, ok := err.(*exec.ExitError); ok {
					os.Exit(exitErr.ExitCode())
				}
				os.Exit(1)
			}
			// The window was closed, so exit.
			os.Exit(0)
		}()
		<-windowRunning

		// Listen for events (keyboard).
		go windowListenEvents()

		windowSendCommand("title "+Simulator.WindowTitle, nil)
	})
}

// Send a command to the separate process that manages the window.
// The command is a single line (without newline). The data part is optional
// binary data that can be sent with the command. The size of this binary data
// must be part of the textual command.
func windowSendCommand(command string, data []byte) {
	windowLock.Lock()
	defer windowLock.Unlock()

	windowStdin.Write([]byte(command + "\n"))
	windowStdin.Write(data)
}

// Goroutine that listens for keyboard events from the window.
func windowListenEvents() {
	r := bufio.NewReader(windowStdout)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(os.Stderr, "failed to read I/O events from child process:", err)
			}
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd := fields[0]
		switch cmd {
		case "keypress", "keyrelease":
			var key KeyEvent
			fmt.Sscanf(line, "%s %d", &cmd, &key)
			if cmd == "keyrelease" {
				key |= keyReleased
			}

			screen.keyeventsLock.Lock()
			screen.keyevents = append(screen.keyevents, key)
			screen.keyeventsLock.Unlock()
		default:
			fmt.Fprintln(os.Stderr, "unknown command:", cmd)
		}
	}
}
