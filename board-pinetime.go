//go:build pinetime_devkit0

package display

import (
	"device/nrf"
	"machine"
	"time"

	"github.com/aykevl/tinygl/pixel"
	"tinygo.org/x/drivers/st7789"
)

const (
	Name = "pinetime"
)

var (
	Display = mainDisplay{}
	Buttons = &singleButton{}
)

func init() {
	// Enable the DC/DC regulator.
	// This doesn't affect sleep power consumption, but significantly reduces
	// runtime power consumpton of the CPU core (almost halving the current
	// required).
	nrf.POWER.DCDCEN.Set(nrf.POWER_DCDCEN_DCDCEN)
}

type mainDisplay struct{}

func (d mainDisplay) Configure() Displayer[pixel.RGB565BE] {
	// Set the chip select line for the flash chip to inactive.
	cs := machine.Pin(5) // SPI CS
	cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	cs.High()

	spi := machine.SPI0
	spi.Configure(machine.SPIConfig{
		Frequency: 8_000_000, // 8MHz is the maximum the nrf52832 supports
		SCK:       machine.SPI0_SCK_PIN,
		SDO:       machine.SPI0_SDO_PIN,
		SDI:       machine.SPI0_SDI_PIN,
		Mode:      3,
	})

	display := st7789.New(spi,
		machine.LCD_RESET,
		machine.LCD_RS, // data/command
		machine.LCD_CS,
		machine.LCD_BACKLIGHT_HIGH)
	// The panel is mounted upside down with an 80 line offset, which the
	// driver compensates for in hardware. Any further orientation is done by
	// the framebuffer.
	display.Configure(st7789.Config{
		Width:     240,
		Height:    240,
		Rotation:  st7789.ROTATION_180,
		RowOffset: 80,
	})
	display.EnableBacklight(true)

	return &display
}

func (d mainDisplay) MaxBrightness() int {
	return 1
}

func (d mainDisplay) SetBrightness(level int) {
	machine.LCD_BACKLIGHT_HIGH.Set(!(level > 0)) // low means on, high means off
}

func (d mainDisplay) WaitForVBlank(defaultInterval time.Duration) {
	dummyWaitForVBlank(defaultInterval)
}

func (d mainDisplay) Size() (width, height int16) {
	return 240, 240
}

func (d mainDisplay) PPI() int {
	return 261
}

// State for the one and only button on the PineTime.
type singleButton struct {
	state         bool
	previousState bool
}

func (b *singleButton) Configure() {
	// BUTTON_OUT must be held high for BUTTON_IN to read anything useful.
	machine.BUTTON_OUT.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machine.BUTTON_OUT.Low()
	machine.BUTTON_IN.Configure(machine.PinConfig{Mode: machine.PinInput})
}

func (b *singleButton) ReadInput() {
	// BUTTON_OUT needs to be kept low most of the time to avoid a ~34µA
	// current increase, but a short delay is needed after setting it high.
	// A few redundant stores provide that delay.
	for i := 0; i < 5; i++ {
		machine.BUTTON_OUT.High()
	}
	b.state = machine.BUTTON_IN.Get()
	machine.BUTTON_OUT.Low()
}

func (b *singleButton) NextEvent() KeyEvent {
	if b.state == b.previousState {
		return NoKeyEvent
	}
	e := KeyEvent(KeyEnter)
	if !b.state {
		e |= keyReleased
	}
	b.previousState = b.state
	return e
}
