// Package nav holds the position index behind turn navigation: the ordered
// item registry, scroll resolution, event coalescing and the timeline layout.
package nav

// Item is one navigable turn of a conversation.
//
// Position is the absolute offset of the turn along the scroll axis (a line
// number in the rendered document). The registry only orders and indexes
// items; it never creates them.
type Item struct {
	ID               string
	Label            string
	Position         float64
	RelativePosition float64
}

// ClampIndex keeps i inside [0, size-1]. An empty range collapses to 0.
func ClampIndex(i, size int) int {
	if size <= 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	if i < 0 {
		return 0
	}
	return i
}
