package answer

import "github.com/charmbracelet/lipgloss"

var (
	cpMauve    = lipgloss.Color("#cba6f7")
	cpPeach    = lipgloss.Color("#fab387")
	cpYellow   = lipgloss.Color("#f9e2af")
	cpGreen    = lipgloss.Color("#a6e3a1")
	cpTeal     = lipgloss.Color("#94e2d5")
	cpBlue     = lipgloss.Color("#89b4fa")
	cpSubtext0 = lipgloss.Color("#a6adc8")
	cpOverlay0 = lipgloss.Color("#6c7086")
	cpOverlay1 = lipgloss.Color("#7f849c")
	cpSurface2 = lipgloss.Color("#585b70")

	headingBars = []lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(cpBlue),
		lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		lipgloss.NewStyle().Bold(true).Foreground(cpGreen),
	}
	headingText     = lipgloss.NewStyle().Bold(true)
	quotePrefix     = lipgloss.NewStyle().Foreground(cpOverlay1).Render("│ ")
	quoteText       = lipgloss.NewStyle().Italic(true).Foreground(cpSubtext0)
	inlineCode      = lipgloss.NewStyle().Foreground(cpPeach)
	codeGutter      = lipgloss.NewStyle().Foreground(cpSurface2).Render("┃ ")
	codeLanguage    = lipgloss.NewStyle().Foreground(cpOverlay0).Italic(true)
	tableBorder     = lipgloss.NewStyle().Foreground(cpSurface2)
	tableHeaderCell = lipgloss.NewStyle().Bold(true).Foreground(cpYellow)
)
