package nav

// Resolve returns the index of the rightmost item whose position does not
// exceed target. A target above every item resolves to 0 and one past every
// item resolves to the last index. Among equal positions the later index
// wins. items must be sorted by position.
func Resolve(target float64, items []Item) int {
	low, high, result := 0, len(items)-1, 0
	for low <= high {
		mid := (low + high) / 2
		if items[mid].Position <= target {
			result = mid
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	return result
}

// ViewportTarget biases a raw scroll offset to the centre of the viewport so
// the cursor follows the item in the middle of the screen rather than the
// topmost, partially visible one.
func ViewportTarget(offset, viewportExtent float64) float64 {
	if viewportExtent < 0 {
		viewportExtent = 0
	}
	return offset + viewportExtent/2
}
