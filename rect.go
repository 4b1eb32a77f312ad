package display

import "fmt"

// Rect is an axis-aligned rectangle in display pixels. X and Y are the top
// left corner, the right and bottom edges are exclusive.
//
// A rect with a zero width or height covers no pixels but is still a valid
// value: it can be compared, unioned and so on.
type Rect struct {
	X, Y          uint16
	Width, Height uint16
}

// NewRect returns a rect with the given top left corner and size.
func NewRect(x, y, width, height uint16) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive right edge. It is widened to 32 bits so that
// rects near the end of the 16-bit range don't wrap around.
func (r Rect) Right() uint32 {
	return uint32(r.X) + uint32(r.Width)
}

// Bottom returns the exclusive bottom edge, widened like Right.
func (r Rect) Bottom() uint32 {
	return uint32(r.Y) + uint32(r.Height)
}

// IsEmpty returns whether the rect covers no pixels at all.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Area returns the number of pixels covered by this rect.
func (r Rect) Area() uint32 {
	return uint32(r.Width) * uint32(r.Height)
}

// Intersects returns whether the two rects share at least one pixel. Rects
// that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return uint32(r.X) < other.Right() &&
		r.Right() > uint32(other.X) &&
		uint32(r.Y) < other.Bottom() &&
		r.Bottom() > uint32(other.Y)
}

// Union returns the smallest rect that contains both rects. This is the
// bounding box, so it may cover a lot of space that is in neither rect when
// the two are far apart.
//
// Edges beyond 65535 are clamped, as they can't be represented in a Rect.
func (r Rect) Union(other Rect) Rect {
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := clampEdge(max(r.Right(), other.Right()))
	y1 := clampEdge(max(r.Bottom(), other.Bottom()))
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Intersection returns the overlapping part of both rects. The boolean is
// false when the rects don't intersect (see Intersects).
func (r Rect) Intersection(other Rect) (Rect, bool) {
	if !r.Intersects(other) {
		return Rect{}, false
	}
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := clampEdge(min(r.Right(), other.Right()))
	y1 := clampEdge(min(r.Bottom(), other.Bottom()))
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

// Contains returns whether the given pixel lies inside the rect.
func (r Rect) Contains(x, y uint16) bool {
	return x >= r.X && uint32(x) < r.Right() && y >= r.Y && uint32(y) < r.Bottom()
}

// ContainsRect returns whether other lies entirely inside r. An empty rect is
// contained in any rect that contains its corner.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)+%dx%d", r.X, r.Y, r.Width, r.Height)
}

func clampEdge(v uint32) uint16 {
	if v > 0xffff {
		return 0xffff
	}
	return uint16(v)
}
