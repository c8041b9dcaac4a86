package theme

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	Auto     = "auto"
	Light    = "light"
	Dark     = "dark"
	Blue     = "blue"
	Lavender = "lavender"
)

// Modes is the cycling order used by the theme toggle.
var Modes = []string{Auto, Light, Dark, Blue, Lavender}

const (
	glyphNormal = "•"
	glyphActive = "●"
	glyphPinned = "◆"
	glyphTrack  = "│"
)

var pinnedColor = lipgloss.Color("#FF9800")

type Theme struct {
	Name string

	Title     lipgloss.Style
	MetaLabel lipgloss.Style
	MetaValue lipgloss.Style
	StateIdle lipgloss.Style
	StateWarn lipgloss.Style
	StateLoad lipgloss.Style

	Header       lipgloss.Style
	HeaderActive lipgloss.Style
	HeaderPinned lipgloss.Style

	Track              lipgloss.Style
	MarkerNormal       lipgloss.Style
	MarkerActive       lipgloss.Style
	MarkerPinned       lipgloss.Style
	MarkerActivePinned lipgloss.Style
	Tooltip            lipgloss.Style

	markdownStyle string
}

// Resolve turns a mode into a concrete theme name. "auto" follows the
// terminal background; unknown modes fall back to light.
func Resolve(mode string, darkBackground func() bool) string {
	switch mode {
	case Light, Dark, Blue, Lavender:
		return mode
	case Auto, "":
		if darkBackground != nil && darkBackground() {
			return Dark
		}
		return Light
	default:
		return Light
	}
}

// Next returns the mode after mode in Modes.
func Next(mode string) string {
	for i, m := range Modes {
		if m == mode {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return Modes[0]
}

// ByName builds the theme called name; unknown names give the light theme.
func ByName(name string) Theme {
	cpText := lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"}
	cpSubtext := lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#a6adc8"}
	cpOverlay := lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#6c7086"}
	cpSurface := lipgloss.AdaptiveColor{Light: "#ccd0da", Dark: "#313244"}
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")

	accent, markdown := lipgloss.Color("#4CAF50"), "light"
	switch name {
	case Dark:
		accent, markdown = lipgloss.Color("#E0E0E0"), "dark"
	case Blue:
		accent, markdown = lipgloss.Color("#2196F3"), "dark"
	case Lavender:
		accent, markdown = lipgloss.Color("#9C88FF"), "dark"
	default:
		name = Light
	}

	return Theme{
		Name:      name,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		MetaLabel: lipgloss.NewStyle().Foreground(cpOverlay),
		MetaValue: lipgloss.NewStyle().Foreground(cpSubtext),
		StateIdle: lipgloss.NewStyle().Foreground(accent),
		StateWarn: lipgloss.NewStyle().Foreground(cpRed),
		StateLoad: lipgloss.NewStyle().Foreground(cpPeach),

		Header:       lipgloss.NewStyle().Bold(true).Foreground(cpText),
		HeaderActive: lipgloss.NewStyle().Bold(true).Foreground(accent).Background(cpSurface),
		HeaderPinned: lipgloss.NewStyle().Bold(true).Foreground(pinnedColor),

		Track:              lipgloss.NewStyle().Foreground(cpSurface),
		MarkerNormal:       lipgloss.NewStyle().Foreground(cpOverlay),
		MarkerActive:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		MarkerPinned:       lipgloss.NewStyle().Foreground(pinnedColor),
		MarkerActivePinned: lipgloss.NewStyle().Bold(true).Foreground(pinnedColor).Background(cpSurface),
		Tooltip:            lipgloss.NewStyle().Foreground(cpText).Background(cpSurface).Padding(0, 1),

		markdownStyle: markdown,
	}
}

// MarkdownStyle is the glamour style matching the theme.
func (t Theme) MarkdownStyle() string {
	return t.markdownStyle
}

// Marker renders the timeline glyph for a turn.
func (t Theme) Marker(active, pinned bool) string {
	switch {
	case active && pinned:
		return t.MarkerActivePinned.Render(glyphPinned)
	case active:
		return t.MarkerActive.Render(glyphActive)
	case pinned:
		return t.MarkerPinned.Render(glyphPinned)
	default:
		return t.MarkerNormal.Render(glyphNormal)
	}
}

// TrackCell renders an empty timeline row.
func (t Theme) TrackCell() string {
	return t.Track.Render(glyphTrack)
}

// RenderHeader styles one line of a turn header.
func (t Theme) RenderHeader(active, pinned bool, line string) string {
	switch {
	case active:
		return t.HeaderActive.Render(line)
	case pinned:
		return t.HeaderPinned.Render(line)
	default:
		return t.Header.Render(line)
	}
}
