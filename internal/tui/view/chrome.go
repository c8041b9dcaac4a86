package view

import (
	"fmt"
	"strings"

	tuitheme "github.com/glabrego/threadnav/internal/tui/theme"
)

func Toolbar(showTimeline bool) string {
	timeline := "t: hide timeline"
	if !showTimeline {
		timeline = "t: show timeline"
	}
	return "[ ]: prev/next turn | g/G: first/last | j/k: scroll | m: pin | y: copy answer | o: open | " + timeline + " | ?: help | q: quit"
}

func Title(title string, th tuitheme.Theme) string {
	if title == "" {
		title = "threadnav"
	}
	return th.Title.Render(title)
}

func Footer(adapter string, cursor, total, pinned int, themeMode string, th tuitheme.Theme) string {
	position := "-"
	if total > 0 {
		position = fmt.Sprintf("%d/%d", cursor+1, total)
	}
	parts := []string{
		th.MetaLabel.Render("site") + " " + th.MetaValue.Render(adapter),
		th.MetaLabel.Render("turn") + " " + th.MetaValue.Render(position),
		th.MetaLabel.Render("pinned") + " " + th.MetaValue.Render(fmt.Sprintf("%d", pinned)),
		th.MetaLabel.Render("theme") + " " + th.MetaValue.Render(themeMode),
	}
	return strings.Join(parts, " • ")
}

func Message(loading, hasWarning bool, status, warning string, th tuitheme.Theme) string {
	state := "idle"
	if loading {
		state = "loading"
	}
	if hasWarning {
		state = "warning"
	}
	main := "Ready"
	if status != "" {
		main = status
	} else if hasWarning {
		main = warning
	}
	stateLabel := th.StateIdle.Render("state")
	switch state {
	case "warning":
		stateLabel = th.StateWarn.Render("state")
	case "loading":
		stateLabel = th.StateLoad.Render("state")
	}
	return fmt.Sprintf("%s: %s | %s", stateLabel, state, th.MetaValue.Render(main))
}
