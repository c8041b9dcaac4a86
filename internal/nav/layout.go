package nav

import "math"

// ComputePositions spreads count markers evenly over a container of the given
// extent. The first marker sits at padding and the last at extent-padding,
// whatever the true distance between the items is, so markers stay
// distinguishable however much content separates the turns.
//
// A padding larger than half the extent is reduced to half the extent.
func ComputePositions(count int, extent, padding float64) []float64 {
	if count <= 0 {
		return []float64{}
	}
	if padding < 0 {
		padding = 0
	}
	if extent > 0 && padding > extent/2 {
		padding = extent / 2
	}
	if count == 1 {
		return []float64{padding}
	}

	usable := extent - 2*padding
	out := make([]float64, count)
	for i := range out {
		ratio := float64(i) / float64(count-1)
		out[i] = padding + ratio*usable
	}
	return out
}

// Timeline keeps the last computed marker layout for a container whose size
// may not be known yet.
type Timeline struct {
	padding float64
	count   int
	extent  float64
	offsets []float64
}

func NewTimeline(padding float64) *Timeline {
	return &Timeline{padding: padding}
}

// Update recomputes the layout when the marker count or the container extent
// changed. An extent that is zero or negative means the container has not
// been measured; the previous layout is kept. It reports whether the layout
// changed.
func (t *Timeline) Update(count int, extent float64) bool {
	if extent <= 0 || math.IsNaN(extent) {
		return false
	}
	if t.offsets != nil && count == t.count && extent == t.extent {
		return false
	}
	t.count = count
	t.extent = extent
	t.offsets = ComputePositions(count, extent, t.padding)
	return true
}

func (t *Timeline) Ready() bool {
	return t.offsets != nil
}

func (t *Timeline) Count() int {
	return len(t.offsets)
}

// Rows quantises marker offsets to whole rows inside [0, extent-1].
func (t *Timeline) Rows() []int {
	rows := make([]int, len(t.offsets))
	last := int(t.extent) - 1
	for i, off := range t.offsets {
		rows[i] = clampRow(int(math.Round(off)), last)
	}
	return rows
}

// HitTest maps a row back to the marker drawn on it. When several markers
// share a row the one whose exact offset is closest wins.
func (t *Timeline) HitTest(row int) (int, bool) {
	last := int(t.extent) - 1
	best, bestDist := -1, math.Inf(1)
	for i, off := range t.offsets {
		if clampRow(int(math.Round(off)), last) != row {
			continue
		}
		if d := math.Abs(off - float64(row)); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

func clampRow(row, last int) int {
	if last < 0 {
		return 0
	}
	if row > last {
		return last
	}
	if row < 0 {
		return 0
	}
	return row
}
