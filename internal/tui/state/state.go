// Package state holds the view geometry of the reader: how tall the
// document is, where it scrolls to and where the tooltip goes.
package state

// ContentHeight is the number of document rows left once chrome rows are
// taken from a terminal height rows tall.
func ContentHeight(height, chrome int) int {
	if height <= 0 {
		return 0
	}
	return max(height-chrome, 1)
}

// ScrollTopFor is the scroll offset that puts position topOffset rows below
// the top of a viewport, clamped to the scrollable range.
func ScrollTopFor(position, topOffset, totalLines, viewportHeight int) int {
	top := position - topOffset
	maxTop := max(totalLines-viewportHeight, 0)
	if top > maxTop {
		top = maxTop
	}
	if top < 0 {
		top = 0
	}
	return top
}

// TooltipRow places a tooltip of the given height next to anchor while
// keeping it inside a viewport viewportHeight rows tall.
func TooltipRow(anchor, tooltipHeight, viewportHeight int) int {
	row := anchor - tooltipHeight/2
	if row+tooltipHeight > viewportHeight {
		row = viewportHeight - tooltipHeight
	}
	if row < 0 {
		row = 0
	}
	return row
}
