//go:build gopher_badge

package display

import (
	"machine"
	"math/bits"
	"time"

	"github.com/aykevl/tinygl/pixel"
	"tinygo.org/x/drivers/st7789"
)

const (
	Name = "gopher-badge"
)

var (
	Display = mainDisplay{}
	Buttons = &gpioButtons{}
)

type mainDisplay struct{}

// Configure the ST7789 without hardware rotation: the framebuffer rotates in
// software, so dirty regions map 1:1 to panel regions.
func (d mainDisplay) Configure() Displayer[pixel.RGB565BE] {
	machine.SPI0.Configure(machine.SPIConfig{
		// Mode 3 appears to be compatible with mode 0, but is slightly
		// faster: each byte takes 9 clock cycles instead of 10.
		Mode:      3,
		SCK:       machine.SPI0_SCK_PIN,
		SDO:       machine.SPI0_SDO_PIN,
		SDI:       machine.SPI0_SDI_PIN,
		Frequency: 62_500_000, // datasheet for st7789 says 16ns (62.5MHz) is the max clock speed
	})

	display := st7789.New(machine.SPI0,
		machine.TFT_RST,       // TFT_RESET
		machine.TFT_WRX,       // TFT_DC
		machine.TFT_CS,        // TFT_CS
		machine.TFT_BACKLIGHT) // TFT_LITE

	display.Configure(st7789.Config{
		Rotation: st7789.NO_ROTATION,
		Width:    240,
		Height:   320,
	})

	return &display
}

func (d mainDisplay) Size() (width, height int16) {
	return 240, 320
}

func (d mainDisplay) MaxBrightness() int {
	return 1
}

func (d mainDisplay) SetBrightness(level int) {
	machine.TFT_BACKLIGHT.Set(level > 0)
}

func (d mainDisplay) WaitForVBlank(defaultInterval time.Duration) {
	dummyWaitForVBlank(defaultInterval)
}

func (d mainDisplay) PPI() int {
	return 166 // 2.4" diagonal
}

type gpioButtons struct {
	state         uint8
	previousState uint8
}

var buttonPins = [...]machine.Pin{
	machine.BUTTON_A,
	machine.BUTTON_B,
	machine.BUTTON_UP,
	machine.BUTTON_LEFT,
	machine.BUTTON_DOWN,
	machine.BUTTON_RIGHT,
}

var codes = [len(buttonPins)]Key{
	KeyA,
	KeyB,
	KeyUp,
	KeyLeft,
	KeyDown,
	KeyRight,
}

func (b *gpioButtons) Configure() {
	for _, pin := range buttonPins {
		pin.Configure(machine.PinConfig{Mode: machine.PinInput})
	}
}

func (b *gpioButtons) ReadInput() {
	state := uint8(0)
	for i, pin := range buttonPins {
		// Buttons are active low.
		if !pin.Get() {
			state |= 1 << i
		}
	}
	b.state = state
}

func (b *gpioButtons) NextEvent() KeyEvent {
	// The xor between the previous state and the current state is the buttons
	// that changed.
	change := b.state ^ b.previousState
	if change == 0 {
		return NoKeyEvent
	}

	// Find the index of the button with the lowest index that changed state.
	index := bits.TrailingZeros32(uint32(change))
	e := KeyEvent(codes[index])
	if b.state&(1<<index) == 0 {
		// The button state change was from 1 to 0, so it was released.
		e |= keyReleased
	}

	// This button event was read, so mark it as such.
	b.previousState ^= (1 << index)

	return e
}
