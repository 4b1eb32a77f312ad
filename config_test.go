package display

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())
	assert.Equal(t, uint16(320), config.Width)
	assert.Equal(t, uint16(170), config.Height)
	assert.Equal(t, Landscape, config.Orientation)
	assert.True(t, config.AutoDim)
	assert.Equal(t, 30*time.Second, config.DimTimeout)

	pw, ph := config.Orientation.PhysicalSize(config.Width, config.Height)
	assert.Equal(t, uint16(170), pw)
	assert.Equal(t, uint16(320), ph)
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(strings.NewReader(`
width: 240
height: 240
orientation: portrait-flipped
brightness: 250
auto_dim: false
dim_timeout: 1m30s
max_dirty_rects: 4
full_flush_interval: 60
`))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Width:             240,
		Height:            240,
		Orientation:       PortraitFlipped,
		Brightness:        100, // clamped
		AutoDim:           false,
		DimTimeout:        90 * time.Second,
		MaxDirtyRects:     4,
		FullFlushInterval: 60,
	}, config)
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)

	config, err = LoadConfig(strings.NewReader("brightness: 40\n"))
	require.NoError(t, err)
	assert.Equal(t, 40, config.Brightness)
	assert.Equal(t, uint16(320), config.Width)
}

func TestLoadConfigClampsBrightness(t *testing.T) {
	for input, want := range map[string]int{
		"brightness: 300\n":  100,
		"brightness: 1000\n": 100,
		"brightness: -20\n":  0,
		"brightness: 0\n":    0,
	} {
		config, err := LoadConfig(strings.NewReader(input))
		require.NoError(t, err, input)
		assert.Equal(t, want, config.Brightness, input)
	}

	config := DefaultConfig()
	config.Brightness = -5
	require.NoError(t, config.Validate())
	assert.Equal(t, 0, config.BrightnessLevel(255))
}

func TestLoadConfigErrors(t *testing.T) {
	for name, input := range map[string]string{
		"unknown key":   "colour: red\n",
		"zero width":    "width: 0\n",
		"bad rotation":  "orientation: diagonal\n",
		"bad duration":  "dim_timeout: soon\n",
		"negative size": "height: -1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestBrightnessLevel(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 255, config.BrightnessLevel(255))
	assert.Equal(t, 1, config.BrightnessLevel(1))
	assert.Equal(t, 0, config.BrightnessLevel(0))

	config.Brightness = 1
	assert.Equal(t, 1, config.BrightnessLevel(7), "a dim backlight must stay on")
	config.Brightness = 50
	assert.Equal(t, 127, config.BrightnessLevel(255))
	config.Brightness = 0
	assert.Equal(t, 0, config.BrightnessLevel(255))
}
