package tui

import tea "github.com/charmbracelet/bubbletea"

// Named navigation commands accepted by Dispatch.
const (
	CmdPrev  = "nav.prev"
	CmdNext  = "nav.next"
	CmdFirst = "nav.first"
	CmdLast  = "nav.last"
	CmdJump  = "nav.jump"
)

// Command asks the model to move the turn cursor. Index is only read by
// nav.jump.
type Command struct {
	Name  string
	Index int
}

// Ack reports what a command did.
type Ack struct {
	Command string
	Moved   bool
	Cursor  int
}

// CommandMsg delivers a Command through the program loop. When Reply is
// set the Ack is sent on it without blocking, so it should be buffered.
type CommandMsg struct {
	Command Command
	Reply   chan<- Ack
}

// Send returns a tea.Cmd that delivers c to the model.
func Send(c Command) tea.Cmd {
	return func() tea.Msg { return CommandMsg{Command: c} }
}

// Dispatch applies c to the turn registry, scrolls the document to the
// resulting turn and highlights it. Unknown commands are acknowledged
// without moving.
func (m Model) Dispatch(c Command) (Model, Ack) {
	before := m.registry.Cursor()
	switch c.Name {
	case CmdPrev:
		m.registry.MoveToPrev()
	case CmdNext:
		m.registry.MoveToNext()
	case CmdFirst:
		m.registry.SetCursor(0)
	case CmdLast:
		m.registry.SetCursor(m.registry.Len() - 1)
	case CmdJump:
		m.registry.SetCursor(c.Index)
	default:
		return m, Ack{Command: c.Name, Cursor: before}
	}

	ack := Ack{Command: c.Name, Moved: m.registry.Cursor() != before, Cursor: m.registry.Cursor()}
	if m.registry.Len() > 0 {
		// a pending scroll sync would pull the cursor back to the old position
		m.scrollSettle.Stop()
		m.renderContent()
		m.scrollToCursor()
	}
	return m, ack
}
