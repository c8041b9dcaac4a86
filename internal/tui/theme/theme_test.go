package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	dark := func() bool { return true }
	light := func() bool { return false }

	assert.Equal(t, Dark, Resolve(Auto, dark))
	assert.Equal(t, Light, Resolve(Auto, light))
	assert.Equal(t, Light, Resolve("", nil))
	assert.Equal(t, Blue, Resolve(Blue, dark))
	assert.Equal(t, Light, Resolve("solarized", dark))
}

func TestNext_CyclesThroughModes(t *testing.T) {
	mode := Auto
	seen := []string{mode}
	for range len(Modes) {
		mode = Next(mode)
		seen = append(seen, mode)
	}
	assert.Equal(t, []string{Auto, Light, Dark, Blue, Lavender, Auto}, seen)
	assert.Equal(t, Auto, Next("unknown"))
}

func TestByName(t *testing.T) {
	assert.Equal(t, Light, ByName("nope").Name)
	assert.Equal(t, "light", ByName(Light).MarkdownStyle())
	assert.Equal(t, "dark", ByName(Lavender).MarkdownStyle())
}

func TestMarker_StylesEachState(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	th := ByName(Blue)

	normal := th.Marker(false, false)
	active := th.Marker(true, false)
	pinned := th.Marker(false, true)
	both := th.Marker(true, true)

	assert.Contains(t, normal, glyphNormal)
	assert.Contains(t, active, glyphActive)
	assert.Contains(t, pinned, glyphPinned)
	assert.Contains(t, both, glyphPinned)
	assert.NotEqual(t, pinned, both)
	for _, s := range []string{normal, active, pinned, both} {
		assert.True(t, strings.Contains(s, "\x1b["), "expected styled marker, got %q", s)
	}
}
