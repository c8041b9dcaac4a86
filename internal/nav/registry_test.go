package nav

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemsAt(positions ...float64) []Item {
	out := make([]Item, len(positions))
	for i, p := range positions {
		out[i] = Item{ID: fmt.Sprintf("turn-%d", i), Position: p}
	}
	return out
}

func TestRegistry_RefreshSortsAndComputesRelativePosition(t *testing.T) {
	r := NewRegistry()
	r.Refresh([]Item{
		{ID: "c", Position: 250},
		{ID: "a", Position: 0},
		{ID: "b", Position: 100},
	}, 500)

	items := r.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{items[0].ID, items[1].ID, items[2].ID})
	assert.InDelta(t, 0.0, items[0].RelativePosition, 1e-9)
	assert.InDelta(t, 0.2, items[1].RelativePosition, 1e-9)
	assert.InDelta(t, 0.5, items[2].RelativePosition, 1e-9)
	assert.Equal(t, StatePositioned, r.State())
}

func TestRegistry_RefreshSingleItemHasZeroRelativePosition(t *testing.T) {
	r := NewRegistry()
	r.Refresh([]Item{{ID: "only", Position: 40}}, 100)

	item, ok := r.Current()
	require.True(t, ok)
	assert.Zero(t, item.RelativePosition)
}

func TestRegistry_RefreshGuardsZeroExtent(t *testing.T) {
	r := NewRegistry()
	r.Refresh(itemsAt(0, 3), 0)

	item, ok := r.ItemAt(1)
	require.True(t, ok)
	assert.InDelta(t, 3.0, item.RelativePosition, 1e-9)
}

func TestRegistry_RefreshEmptyResetsCursor(t *testing.T) {
	r := NewRegistry()
	r.Refresh(itemsAt(0, 10, 20), 30)
	r.SetCursor(2)

	r.Refresh(nil, 30)

	assert.Equal(t, 0, r.Cursor())
	assert.Equal(t, StateEmpty, r.State())
	_, ok := r.Current()
	assert.False(t, ok)
}

func TestRegistry_RefreshClampsCursorWhenShrinking(t *testing.T) {
	r := NewRegistry()
	r.Refresh(itemsAt(0, 10, 20, 30, 40), 50)
	r.SetCursor(4)

	r.Refresh(itemsAt(0, 10), 20)
	assert.Equal(t, 1, r.Cursor())

	r.Refresh(itemsAt(0, 10, 20, 30), 40)
	assert.Equal(t, 1, r.Cursor(), "growing keeps the cursor where it was")
}

func TestRegistry_RefreshDoesNotAliasInput(t *testing.T) {
	input := itemsAt(20, 10)
	r := NewRegistry()
	r.Refresh(input, 30)

	assert.Equal(t, 20.0, input[0].Position)
	items := r.Items()
	items[0].ID = "mutated"
	first, _ := r.ItemAt(0)
	assert.NotEqual(t, "mutated", first.ID)
}

func TestRegistry_SetCursorClamps(t *testing.T) {
	r := NewRegistry()
	r.SetCursor(3)
	assert.Equal(t, 0, r.Cursor(), "no-op while empty")

	r.Refresh(itemsAt(0, 10, 20), 30)
	r.SetCursor(-5)
	assert.Equal(t, 0, r.Cursor())
	r.SetCursor(99)
	assert.Equal(t, 2, r.Cursor())
	r.SetCursor(1)
	assert.Equal(t, 1, r.Cursor())
}

func TestRegistry_MoveAtBoundaries(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.MoveToNext())
	assert.False(t, r.MoveToPrev())

	r.Refresh(itemsAt(0, 10, 20, 30, 40), 50)
	r.SetCursor(4)
	assert.False(t, r.MoveToNext())
	assert.Equal(t, 4, r.Cursor())

	r.SetCursor(0)
	assert.False(t, r.MoveToPrev())
	assert.Equal(t, 0, r.Cursor())
}

func TestRegistry_NextThenPrevRestoresCursor(t *testing.T) {
	r := NewRegistry()
	r.Refresh(itemsAt(0, 10, 20, 30, 40), 50)

	for start := 0; start < r.Len()-1; start++ {
		r.SetCursor(start)
		require.True(t, r.MoveToNext())
		require.True(t, r.MoveToPrev())
		assert.Equal(t, start, r.Cursor())
	}
}

func TestRegistry_ItemAtOutOfRange(t *testing.T) {
	r := NewRegistry()
	r.Refresh(itemsAt(0, 10), 20)

	_, ok := r.ItemAt(-1)
	assert.False(t, ok)
	_, ok = r.ItemAt(2)
	assert.False(t, ok)
	item, ok := r.ItemAt(1)
	assert.True(t, ok)
	assert.Equal(t, "turn-1", item.ID)
}

func TestRegistry_NeedsRefresh(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.NeedsRefresh(0))
	assert.True(t, r.NeedsRefresh(1))

	r.Refresh(itemsAt(0, 10), 20)
	assert.False(t, r.NeedsRefresh(2))
	assert.True(t, r.NeedsRefresh(3))
}

func TestRegistry_SyncToScroll(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.SyncToScroll(100, 100), "empty registry never changes")

	r.Refresh(itemsAt(0, 100, 250), 400)

	assert.True(t, r.SyncToScroll(100, 100))
	assert.Equal(t, 1, r.Cursor())

	assert.False(t, r.SyncToScroll(110, 100), "same resolution is not a change")

	assert.True(t, r.SyncToScroll(500, 100))
	assert.Equal(t, 2, r.Cursor())

	assert.True(t, r.SyncToScroll(0, 100))
	assert.Equal(t, 0, r.Cursor())
}
