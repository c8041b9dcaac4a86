package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	tuitheme "github.com/glabrego/threadnav/internal/tui/theme"
)

// TimelineWidth is the number of columns the timeline occupies.
const TimelineWidth = 3

// TooltipMaxWidth bounds the prompt shown when hovering a marker.
const TooltipMaxWidth = 80

// Timeline renders the marker column, one string per row. rows holds the
// row of each marker; when several share a row the active one wins, then
// a pinned one.
func Timeline(rows []int, height, active int, pinned func(int) bool, th tuitheme.Theme) []string {
	if height <= 0 {
		return nil
	}
	isPinned := func(i int) bool { return pinned != nil && pinned(i) }
	type cell struct {
		used, active, pinned, anyPinned bool
	}
	cells := make([]cell, height)
	for i, row := range rows {
		if row < 0 || row >= height {
			continue
		}
		c := &cells[row]
		c.used = true
		if i == active {
			c.active = true
			c.pinned = isPinned(i)
		}
		if isPinned(i) {
			c.anyPinned = true
		}
	}

	out := make([]string, height)
	for r, c := range cells {
		glyph := th.TrackCell()
		switch {
		case c.active:
			glyph = th.Marker(true, c.pinned)
		case c.used:
			glyph = th.Marker(false, c.anyPinned)
		}
		out[r] = " " + glyph + " "
	}
	return out
}

// TooltipText is the single-line tooltip label for a marker.
func TooltipText(label string) string {
	label = strings.Join(strings.Fields(label), " ")
	if label == "" {
		label = "(no prompt)"
	}
	return truncate.StringWithTail(label, TooltipMaxWidth, "...")
}

// Overlay draws box onto lines[row] so that it ends at column right.
// Content under and after the box is dropped.
func Overlay(lines []string, row int, box string, right int) []string {
	if row < 0 || row >= len(lines) || right <= 0 {
		return lines
	}
	boxWidth := lipgloss.Width(box)
	if boxWidth > right {
		box = truncate.String(box, uint(right))
		boxWidth = lipgloss.Width(box)
	}
	left := right - boxWidth

	prefix := truncate.String(lines[row], uint(left))
	if gap := left - lipgloss.Width(prefix); gap > 0 {
		prefix += strings.Repeat(" ", gap)
	}

	out := append([]string(nil), lines...)
	out[row] = prefix + box
	return out
}
