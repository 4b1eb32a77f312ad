package display

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"tinygo.org/x/drivers"
)

// Orientation describes how the logical (drawing) coordinate space is mapped
// onto the physical pixels of the panel.
type Orientation uint8

const (
	Portrait Orientation = iota
	Landscape
	PortraitFlipped
	LandscapeFlipped
)

// ErrOutOfBounds is returned when a coordinate lies outside the logical
// screen it is supposed to be in.
var ErrOutOfBounds = errors.New("display: coordinate out of bounds")

var orientationNames = [...]string{
	Portrait:         "portrait",
	Landscape:        "landscape",
	PortraitFlipped:  "portrait-flipped",
	LandscapeFlipped: "landscape-flipped",
}

func (o Orientation) String() string {
	if int(o) < len(orientationNames) {
		return orientationNames[o]
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// ParseOrientation returns the orientation with the given name, as returned
// by Orientation.String. Case is ignored.
func ParseOrientation(name string) (Orientation, error) {
	for i, n := range orientationNames {
		if strings.EqualFold(n, name) {
			return Orientation(i), nil
		}
	}
	return Portrait, fmt.Errorf("display: unknown orientation %q", name)
}

// UnmarshalYAML decodes an orientation from its name.
func (o *Orientation) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("display: line %d: orientation must be a string", value.Line)
	}
	parsed, err := ParseOrientation(value.Value)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalYAML encodes the orientation by name.
func (o Orientation) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// Rotation returns the clockwise display rotation that has the same effect as
// this orientation, for drivers that can rotate in hardware.
func (o Orientation) Rotation() drivers.Rotation {
	switch o {
	case Landscape:
		return drivers.Rotation270
	case PortraitFlipped:
		return drivers.Rotation180
	case LandscapeFlipped:
		return drivers.Rotation90
	default:
		return drivers.Rotation0
	}
}

// PhysicalSize returns the panel size for a logical screen of the given size.
// Landscape orientations swap both dimensions.
func (o Orientation) PhysicalSize(width, height uint16) (uint16, uint16) {
	switch o {
	case Landscape, LandscapeFlipped:
		return height, width
	default:
		return width, height
	}
}

// TransformCoordinates maps the point (x, y) on a logical screen of the given
// width and height to the physical panel coordinate for this orientation:
//
//	Portrait:         (x, y)
//	Landscape:        (y, width-1-x)
//	PortraitFlipped:  (width-1-x, height-1-y)
//	LandscapeFlipped: (height-1-y, x)
//
// The point must lie on the logical screen, otherwise ErrOutOfBounds is
// returned instead of a wrapped-around coordinate.
func TransformCoordinates(x, y, width, height uint16, orientation Orientation) (uint16, uint16, error) {
	if x >= width || y >= height {
		return 0, 0, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, width, height)
	}
	switch orientation {
	case Landscape:
		return y, width - 1 - x, nil
	case PortraitFlipped:
		return width - 1 - x, height - 1 - y, nil
	case LandscapeFlipped:
		return height - 1 - y, x, nil
	default:
		return x, y, nil
	}
}

// TransformRect maps a rect on the logical screen to the physical rect that
// covers exactly the same pixels. The rect must lie entirely on the logical
// screen. Empty rects stay empty and keep their (transformed) corner where
// possible.
func TransformRect(r Rect, width, height uint16, orientation Orientation) (Rect, error) {
	if r.Right() > uint32(width) || r.Bottom() > uint32(height) {
		return Rect{}, fmt.Errorf("%w: %v on %dx%d", ErrOutOfBounds, r, width, height)
	}
	if r.IsEmpty() {
		if r.X >= width || r.Y >= height {
			return Rect{}, nil
		}
		x, y, err := TransformCoordinates(r.X, r.Y, width, height, orientation)
		return Rect{X: x, Y: y}, err
	}
	x0, y0, err := TransformCoordinates(r.X, r.Y, width, height, orientation)
	if err != nil {
		return Rect{}, err
	}
	x1, y1, err := TransformCoordinates(r.X+r.Width-1, r.Y+r.Height-1, width, height, orientation)
	if err != nil {
		return Rect{}, err
	}
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0 + 1, Height: y1 - y0 + 1}, nil
}
