package nav

import "sort"

// State is the cursor state of a Registry.
type State int

const (
	StateEmpty State = iota
	StatePositioned
)

func (s State) String() string {
	if s == StatePositioned {
		return "positioned"
	}
	return "empty"
}

// Registry owns the sorted item sequence and the cursor into it.
//
// The cursor is always a valid index while items exist and 0 when there are
// none. A Registry is used from a single goroutine (the UI loop) and is not
// safe for concurrent use.
type Registry struct {
	items  []Item
	cursor int
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Refresh replaces the item sequence wholesale. Items are sorted by position
// and their relative position is recomputed against totalExtent.
func (r *Registry) Refresh(items []Item, totalExtent float64) {
	next := append([]Item(nil), items...)
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Position < next[j].Position
	})

	extent := totalExtent
	if extent < 1 {
		extent = 1
	}
	for i := range next {
		if len(next) == 1 {
			next[i].RelativePosition = 0
			continue
		}
		next[i].RelativePosition = next[i].Position / extent
	}

	r.items = next
	r.cursor = ClampIndex(r.cursor, len(r.items))
}

func (r *Registry) Len() int {
	return len(r.items)
}

func (r *Registry) Cursor() int {
	return r.cursor
}

func (r *Registry) State() State {
	if len(r.items) == 0 {
		return StateEmpty
	}
	return StatePositioned
}

// Items returns a copy of the ordered sequence.
func (r *Registry) Items() []Item {
	return append([]Item(nil), r.items...)
}

// SetCursor moves the cursor to i, clamped into range.
func (r *Registry) SetCursor(i int) {
	r.cursor = ClampIndex(i, len(r.items))
}

// MoveToPrev steps the cursor back one item. It reports false when the cursor
// is already on the first item or the registry is empty.
func (r *Registry) MoveToPrev() bool {
	if r.cursor > 0 {
		r.SetCursor(r.cursor - 1)
		return true
	}
	return false
}

// MoveToNext steps the cursor forward one item. It reports false when the
// cursor is already on the last item or the registry is empty.
func (r *Registry) MoveToNext() bool {
	if r.cursor < len(r.items)-1 {
		r.SetCursor(r.cursor + 1)
		return true
	}
	return false
}

func (r *Registry) ItemAt(i int) (Item, bool) {
	if i < 0 || i >= len(r.items) {
		return Item{}, false
	}
	return r.items[i], true
}

func (r *Registry) Current() (Item, bool) {
	return r.ItemAt(r.cursor)
}

// NeedsRefresh is a cheap structural-change signal: it only compares counts
// and does not notice items changing in place.
func (r *Registry) NeedsRefresh(candidateCount int) bool {
	return candidateCount != len(r.items)
}

// SyncToScroll points the cursor at the item under the centre of the
// viewport. It reports whether the cursor changed.
func (r *Registry) SyncToScroll(offset, viewportExtent float64) bool {
	if len(r.items) == 0 {
		return false
	}
	next := Resolve(ViewportTarget(offset, viewportExtent), r.items)
	if next == r.cursor {
		return false
	}
	r.cursor = next
	return true
}
