package display

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Config describes the panel and how frames are pushed to it.
type Config struct {
	// Size of the logical screen that is drawn on, so after rotation.
	Width  uint16 `yaml:"width"`
	Height uint16 `yaml:"height"`

	Orientation Orientation `yaml:"orientation"`

	// Backlight brightness in percent. Validate clamps it to 0-100.
	Brightness int `yaml:"brightness"`

	// Dim the backlight after DimTimeout without input.
	AutoDim    bool          `yaml:"auto_dim"`
	DimTimeout time.Duration `yaml:"dim_timeout"`

	// Maximum number of separate regions sent to the display per frame.
	MaxDirtyRects int `yaml:"max_dirty_rects"`

	// Send the entire screen every this many frames, to repair any updates
	// that were dropped because the region budget was exceeded. Zero means
	// never.
	FullFlushInterval int `yaml:"full_flush_interval"`
}

// DefaultConfig returns the configuration of the T-Display-S3 panel: a 170x320
// ST7789 used in landscape mode.
func DefaultConfig() Config {
	return Config{
		Width:         320,
		Height:        170,
		Orientation:   Landscape,
		Brightness:    100,
		AutoDim:       true,
		DimTimeout:    30 * time.Second,
		MaxDirtyRects: DefaultMaxDirtyRects,
	}
}

var errEmptyScreen = errors.New("display: screen width and height must be non-zero")

// LoadConfig reads a YAML configuration. Keys that are not present keep the
// value from DefaultConfig, unknown keys are an error. The result is
// validated before it is returned.
func LoadConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("display: could not parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the configuration for values that can't work, and clamps
// values that are merely out of range.
func (c *Config) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return errEmptyScreen
	}
	if c.Orientation > LandscapeFlipped {
		return fmt.Errorf("display: invalid orientation %d", c.Orientation)
	}
	c.Brightness = max(0, min(c.Brightness, 100))
	if c.MaxDirtyRects < 1 {
		c.MaxDirtyRects = DefaultMaxDirtyRects
	}
	if c.FullFlushInterval < 0 {
		c.FullFlushInterval = 0
	}
	return nil
}

// BrightnessLevel converts the brightness percentage to a backlight level
// between 0 and maxLevel, as accepted by SetBrightness on a board display.
// Any non-zero brightness results in a level of at least 1, so the backlight
// doesn't turn off.
func (c Config) BrightnessLevel(maxLevel int) int {
	if c.Brightness <= 0 || maxLevel <= 0 {
		return 0
	}
	level := min(c.Brightness, 100) * maxLevel / 100
	return max(level, 1)
}
