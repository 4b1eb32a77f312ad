package display

// Margin by which a dirty rect is grown on every side when looking for an
// existing region to merge it into. Rects this close together are cheaper to
// send as one transfer than as two.
const mergeMargin = 10

// DefaultMaxDirtyRects is the number of separate regions flushed per frame
// when no other budget is configured.
const DefaultMaxDirtyRects = 16

// MergeDirtyRects reduces a list of dirty rects to at most maxRects regions.
//
// When the list already fits in the budget, a copy of it is returned as-is:
// merging isn't free, so it only happens when it is needed. Otherwise the
// rects are visited in order. Each one is grown by a small margin and merged
// (by bounding box) into the first result region it then touches. If it
// touches none it becomes a new region, unless the budget is already used up
// in which case the rect is dropped. Callers that can't tolerate dropped
// updates should either use a generous budget or flush the whole screen every
// now and then.
//
// The output depends on the input order. A budget below one returns nil.
func MergeDirtyRects(rects []Rect, maxRects int) []Rect {
	merged, _ := mergeDirtyRects(rects, maxRects)
	return merged
}

// mergeDirtyRects is MergeDirtyRects but also returns the number of input
// rects that didn't fit in the budget and were dropped.
func mergeDirtyRects(rects []Rect, maxRects int) (result []Rect, dropped int) {
	if len(rects) == 0 || maxRects < 1 {
		return nil, len(rects)
	}
	if len(rects) <= maxRects {
		return append([]Rect(nil), rects...), 0
	}

	result = make([]Rect, 1, maxRects)
	result[0] = rects[0]
	for _, rect := range rects[1:] {
		grown := expand(rect, mergeMargin)
		merged := false
		for i, existing := range result {
			if grown.Intersects(existing) {
				result[i] = existing.Union(rect)
				merged = true
				break
			}
		}
		if merged {
			continue
		}
		if len(result) < maxRects {
			result = append(result, rect)
		} else {
			dropped++
		}
	}
	return result, dropped
}

// expand grows the rect by margin on every side. The top left corner stops at
// zero, the size grows by twice the margin regardless.
func expand(r Rect, margin uint16) Rect {
	x := r.X - min(r.X, margin)
	y := r.Y - min(r.Y, margin)
	return Rect{
		X:      x,
		Y:      y,
		Width:  clampEdge(uint32(r.Width) + 2*uint32(margin)),
		Height: clampEdge(uint32(r.Height) + 2*uint32(margin)),
	}
}

// DirtyRegion accumulates the rects that changed during one frame, until
// they are flushed to the display. It is meant to be owned by a single
// renderer and is not safe for concurrent use.
type DirtyRegion struct {
	rects    []Rect
	maxRects int
	stats    DirtyStats

	// Outcome of the last Regions call in this frame, added to stats by
	// Clear.
	merged, dropped uint32
}

// DirtyStats counts what happened to dirty rects since the last call to
// DirtyRegion.ResetStats. Merged and Dropped are counted once per frame, when
// the region is cleared, using the last Regions result of that frame.
type DirtyStats struct {
	Marked  uint32 // non-empty rects passed to Mark
	Merged  uint32 // rects folded into another region by Regions
	Dropped uint32 // rects lost because the budget was used up
	Flushes uint32 // number of times the region was cleared
}

// NewDirtyRegion returns an empty dirty region that flushes at most maxRects
// separate regions. A budget below one uses DefaultMaxDirtyRects.
func NewDirtyRegion(maxRects int) *DirtyRegion {
	if maxRects < 1 {
		maxRects = DefaultMaxDirtyRects
	}
	return &DirtyRegion{maxRects: maxRects}
}

// Mark records that the given rect changed. Empty rects are ignored.
func (d *DirtyRegion) Mark(r Rect) {
	if r.IsEmpty() {
		return
	}
	d.rects = append(d.rects, r)
	d.stats.Marked++
}

// Len returns the number of rects marked since the last Clear.
func (d *DirtyRegion) Len() int {
	return len(d.rects)
}

// IsEmpty returns whether nothing was marked since the last Clear.
func (d *DirtyRegion) IsEmpty() bool {
	return len(d.rects) == 0
}

// MaxRects returns the region budget.
func (d *DirtyRegion) MaxRects() int {
	return d.maxRects
}

// Regions returns the marked rects merged down to the region budget. See
// MergeDirtyRects for how this is done. It does not clear the region, and may
// be called any number of times per frame.
func (d *DirtyRegion) Regions() []Rect {
	regions, dropped := mergeDirtyRects(d.rects, d.maxRects)
	d.dropped = uint32(dropped)
	d.merged = uint32(len(d.rects) - len(regions) - dropped)
	return regions
}

// Bounds returns the bounding box of all marked rects: everything merged
// into a single region. It returns an empty rect when nothing was marked.
func (d *DirtyRegion) Bounds() Rect {
	if len(d.rects) == 0 {
		return Rect{}
	}
	bounds := d.rects[0]
	for _, r := range d.rects[1:] {
		bounds = bounds.Union(r)
	}
	return bounds
}

// TotalArea returns the sum of the areas of all marked rects. Overlapping
// parts are counted more than once.
func (d *DirtyRegion) TotalArea() uint32 {
	var area uint32
	for _, r := range d.rects {
		area += r.Area()
	}
	return area
}

// Clear forgets all marked rects, typically after they have been flushed.
func (d *DirtyRegion) Clear() {
	d.rects = d.rects[:0]
	d.stats.Merged += d.merged
	d.stats.Dropped += d.dropped
	d.merged, d.dropped = 0, 0
	d.stats.Flushes++
}

// Stats returns a snapshot of the counters.
func (d *DirtyRegion) Stats() DirtyStats {
	return d.stats
}

// ResetStats sets all counters back to zero.
func (d *DirtyRegion) ResetStats() {
	d.stats = DirtyStats{}
}
