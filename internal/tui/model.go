package tui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/rs/zerolog"

	"github.com/glabrego/threadnav/internal/app"
	"github.com/glabrego/threadnav/internal/conversation"
	"github.com/glabrego/threadnav/internal/logging"
	"github.com/glabrego/threadnav/internal/nav"
	"github.com/glabrego/threadnav/internal/tui/actions"
	"github.com/glabrego/threadnav/internal/tui/platform"
	"github.com/glabrego/threadnav/internal/tui/state"
	tuitheme "github.com/glabrego/threadnav/internal/tui/theme"
	"github.com/glabrego/threadnav/internal/tui/view"
)

const (
	// title line above the document, message and footer lines below it
	chromeRows = 3

	statusTTL   = 3 * time.Second
	wheelStep   = 3
	defaultCols = 80
)

type Options struct {
	Target   string
	Override string

	ThemeMode      string
	DarkBackground func() bool

	ScrollDebounce  time.Duration
	RefreshDebounce time.Duration
	LongPress       time.Duration
	TopOffset       int
	TimelinePadding int
}

type clearStatusMsg struct {
	id int
}

type scrollSettledMsg struct{}

type structureChangedMsg struct{}

type holdMsg struct {
	seq int
	at  time.Time
}

// programLink lets timer goroutines post messages into the running
// program. Model copies share one link.
type programLink struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (l *programLink) deliver(msg tea.Msg) {
	l.mu.Lock()
	send := l.send
	l.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

type Model struct {
	service   actions.Service
	opts      Options
	link      *programLink
	openURLFn func(string) error
	copyFn    func(string) error
	nowFn     func() time.Time
	logger    zerolog.Logger

	width        int
	height       int
	viewport     viewport.Model
	keys         keyMap
	help         help.Model
	showHelp     bool
	showTimeline bool

	conv        app.Conversation
	loaded      bool
	doc         conversation.Document
	layoutWidth int
	marked      map[string]struct{}

	registry      *nav.Registry
	timeline      *nav.Timeline
	press         *nav.PressMachine
	scrollSettle  *nav.Coalescer
	refreshSettle *nav.Coalescer

	themeMode string
	theme     tuitheme.Theme

	hover    int
	hoverRow int

	loading  bool
	status   string
	statusID int
	err      error
}

func NewModel(service actions.Service, opts Options) Model {
	if opts.ThemeMode == "" {
		opts.ThemeMode = tuitheme.Auto
	}
	if opts.DarkBackground == nil {
		opts.DarkBackground = lipgloss.HasDarkBackground
	}
	if opts.ScrollDebounce <= 0 {
		opts.ScrollDebounce = 150 * time.Millisecond
	}
	if opts.RefreshDebounce <= 0 {
		opts.RefreshDebounce = time.Second
	}
	if opts.LongPress <= 0 {
		opts.LongPress = nav.DefaultHoldThreshold
	}
	opts.TopOffset = max(opts.TopOffset, 0)
	opts.TimelinePadding = max(opts.TimelinePadding, 0)

	link := &programLink{}
	m := Model{
		service:      service,
		opts:         opts,
		link:         link,
		openURLFn:    platform.OpenURLInBrowser,
		copyFn:       platform.CopyToClipboard,
		nowFn:        time.Now,
		logger:       logging.Component("tui"),
		viewport:     viewport.New(0, 0),
		keys:         defaultKeyMap(),
		help:         help.New(),
		showTimeline: true,
		marked:       map[string]struct{}{},
		registry:     nav.NewRegistry(),
		timeline:     nav.NewTimeline(float64(opts.TimelinePadding)),
		press:        nav.NewPressMachine(opts.LongPress),
		themeMode:    opts.ThemeMode,
		hover:        -1,
		loading:      opts.Target != "",
	}
	m.scrollSettle = nav.NewCoalescer(opts.ScrollDebounce, func() { link.deliver(scrollSettledMsg{}) })
	m.refreshSettle = nav.NewCoalescer(opts.RefreshDebounce, func() { link.deliver(structureChangedMsg{}) })
	// Styles are built once here and rebuilt only when the theme is cycled.
	m.theme = tuitheme.ByName(tuitheme.Resolve(opts.ThemeMode, opts.DarkBackground))
	return m
}

func (m Model) Init() tea.Cmd {
	if m.opts.Target == "" {
		return nil
	}
	return actions.LoadConversationCmd(m.service, m.opts.Target, m.opts.Override, actions.SourceStartup)
}

// Bind connects the debounce timers to a running program, usually
// tea.Program.Send.
func (m Model) Bind(send func(tea.Msg)) {
	m.link.mu.Lock()
	m.link.send = send
	m.link.mu.Unlock()
}

// FileChanged reports a change of the underlying file. Bursts are
// coalesced into a single reload.
func (m Model) FileChanged() {
	m.refreshSettle.Trigger()
}

// Close stops pending timers.
func (m Model) Close() {
	m.scrollSettle.Stop()
	m.refreshSettle.Stop()
}

func (m Model) Cursor() int {
	return m.registry.Cursor()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case actions.ConversationLoadedMsg:
		m.loading = false
		m.err = nil
		m.applyConversation(msg.Conversation, msg.Marked, msg.Source)
		m.logger.Debug().
			Str("source", msg.Source).
			Int("turns", m.registry.Len()).
			Dur("duration", msg.Duration).
			Msg("conversation loaded")
		if msg.Source == actions.SourceStartup {
			return m, nil
		}
		return m.setStatus(fmt.Sprintf("Reloaded %d turns", m.registry.Len()))
	case actions.ConversationErrorMsg:
		m.loading = false
		m.err = msg.Err
		m.logger.Warn().Err(msg.Err).Str("source", msg.Source).Msg("conversation load failed")
		return m, nil
	case actions.PinToggledMsg:
		itemKey := app.ItemKey(msg.Index)
		if msg.Pinned {
			m.marked[itemKey] = struct{}{}
		} else {
			delete(m.marked, itemKey)
		}
		m.renderContent()
		return m.setStatus(msg.Status)
	case actions.OpenURLSuccessMsg:
		return m.setStatus(msg.Status)
	case actions.OpenURLErrorMsg:
		m.err = msg.Err
		return m, nil
	case actions.CopySuccessMsg:
		return m.setStatus(msg.Status)
	case actions.CopyErrorMsg:
		m.err = msg.Err
		return m, nil
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	case scrollSettledMsg:
		if m.registry.SyncToScroll(float64(m.viewport.YOffset), float64(m.viewport.Height)) {
			m.renderContent()
		}
		return m, nil
	case structureChangedMsg:
		if m.opts.Target == "" {
			return m, nil
		}
		m.loading = true
		return m, actions.LoadConversationCmd(m.service, m.opts.Target, m.opts.Override, actions.SourceWatch)
	case holdMsg:
		outcome, index := m.press.Hold(msg.seq, msg.at)
		if outcome == nav.PressToggleMark {
			return m.togglePin(index)
		}
		return m, nil
	case CommandMsg:
		var ack Ack
		m, ack = m.Dispatch(msg.Command)
		m.logger.Debug().
			Str("command", ack.Command).
			Bool("moved", ack.Moved).
			Int("cursor", ack.Cursor).
			Msg("command dispatched")
		if msg.Reply != nil {
			select {
			case msg.Reply <- ack:
			default:
			}
		}
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	if m.showHelp {
		if msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		m, _ = m.Dispatch(Command{Name: CmdPrev})
	case key.Matches(msg, m.keys.Next):
		m, _ = m.Dispatch(Command{Name: CmdNext})
	case key.Matches(msg, m.keys.First):
		m, _ = m.Dispatch(Command{Name: CmdFirst})
	case key.Matches(msg, m.keys.Last):
		m, _ = m.Dispatch(Command{Name: CmdLast})
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-max(m.viewport.Height-1, 1))
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(max(m.viewport.Height-1, 1))
	case key.Matches(msg, m.keys.Pin):
		return m.togglePin(m.registry.Cursor())
	case key.Matches(msg, m.keys.Timeline):
		m.showTimeline = !m.showTimeline
		m.hover = -1
		m.resize()
	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()
	case key.Matches(msg, m.keys.Copy):
		return m.copyCurrentAnswer()
	case key.Matches(msg, m.keys.Open):
		return m.openPage()
	case key.Matches(msg, m.keys.Reload):
		return m.reload(actions.SourceManual)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-wheelStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(wheelStep)
		return m, nil
	}

	row := msg.Y - 1
	index, onMarker := m.markerAt(msg.X, row)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onMarker {
			return m, nil
		}
		seq := m.press.Press(index, m.nowFn())
		return m, holdCmd(seq, m.press.Threshold())
	case tea.MouseActionRelease:
		outcome, target := m.press.Release(m.nowFn())
		switch outcome {
		case nav.PressActivate:
			m, _ = m.Dispatch(Command{Name: CmdJump, Index: target})
		case nav.PressToggleMark:
			return m.togglePin(target)
		}
		return m, nil
	case tea.MouseActionMotion:
		if active, ok := m.press.Active(); ok && (!onMarker || index != active) {
			m.press.Cancel()
		}
		if onMarker {
			m.hover, m.hoverRow = index, row
		} else {
			m.hover = -1
		}
	}
	return m, nil
}

func (m Model) markerAt(x, row int) (int, bool) {
	if !m.showTimeline || !m.timeline.Ready() {
		return 0, false
	}
	if x < m.viewport.Width || row < 0 || row >= m.viewport.Height {
		return 0, false
	}
	return m.timeline.HitTest(row)
}

func holdCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(t time.Time) tea.Msg {
		return holdMsg{seq: seq, at: t}
	})
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m Model) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusID++
	return m, clearStatusCmd(m.statusID, statusTTL)
}

func (m Model) togglePin(index int) (tea.Model, tea.Cmd) {
	if _, ok := m.registry.ItemAt(index); !ok {
		return m, nil
	}
	return m, actions.TogglePinCmd(m.service, m.conv.SessionID, index, m.isPinned(index))
}

func (m Model) copyCurrentAnswer() (tea.Model, tea.Cmd) {
	text, ok := m.doc.Answer(m.registry.Cursor())
	if !ok || strings.TrimSpace(text) == "" {
		return m.setStatus("Nothing to copy")
	}
	return m, actions.CopyTextCmd(text, "answer", m.copyFn)
}

func (m Model) openPage() (tea.Model, tea.Cmd) {
	if m.conv.Page == nil || m.conv.Page.Location == nil {
		m.err = fmt.Errorf("no conversation loaded")
		return m, nil
	}
	url, err := platform.ValidatePageURL(m.conv.Page.Location.String())
	if err != nil {
		m.err = err
		return m, nil
	}
	return m, actions.OpenURLCmd(url, m.openURLFn, m.copyFn)
}

func (m Model) reload(source string) (tea.Model, tea.Cmd) {
	if m.opts.Target == "" {
		return m, nil
	}
	m.loading = true
	m.err = nil
	return m, actions.LoadConversationCmd(m.service, m.opts.Target, m.opts.Override, source)
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	m.themeMode = tuitheme.Next(m.themeMode)
	m.theme = tuitheme.ByName(tuitheme.Resolve(m.themeMode, m.opts.DarkBackground))
	m.relayout()
	return m.setStatus("Theme: " + m.themeMode)
}

func (m *Model) scrollBy(lines int) {
	if lines < 0 {
		m.viewport.ScrollUp(-lines)
	} else {
		m.viewport.ScrollDown(lines)
	}
	m.scrollSettle.Trigger()
}

func (m *Model) applyConversation(conv app.Conversation, marked map[string]struct{}, source string) {
	if marked == nil {
		marked = map[string]struct{}{}
	}
	m.conv = conv
	m.marked = marked
	m.loaded = true
	m.layoutWidth = m.docWidth()
	m.doc = conversation.Layout(conv.Turns, m.layoutWidth, conversation.WithMarkdownStyle(m.theme.MarkdownStyle()))

	// A watched file that still has the same number of turns keeps its
	// items; only the text is swapped.
	items := m.doc.Items()
	if source != actions.SourceWatch || m.registry.NeedsRefresh(len(items)) {
		m.registry.Refresh(items, m.doc.Extent())
	}
	m.timeline.Update(m.registry.Len(), float64(m.viewport.Height))
	m.renderContent()
	if source == actions.SourceStartup {
		m.viewport.GotoTop()
	}
}

func (m *Model) relayout() {
	if !m.loaded {
		return
	}
	m.layoutWidth = m.docWidth()
	m.doc = conversation.Layout(m.conv.Turns, m.layoutWidth, conversation.WithMarkdownStyle(m.theme.MarkdownStyle()))
	m.registry.Refresh(m.doc.Items(), m.doc.Extent())
	m.timeline.Update(m.registry.Len(), float64(m.viewport.Height))
	m.renderContent()
	m.scrollToCursor()
}

func (m *Model) resize() {
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = state.ContentHeight(m.height, chromeRows)
	m.help.Width = m.width
	if m.loaded && m.docWidth() != m.layoutWidth {
		m.relayout()
		return
	}
	m.timeline.Update(m.registry.Len(), float64(m.viewport.Height))
}

func (m Model) contentWidth() int {
	w := m.width
	if m.showTimeline {
		w -= view.TimelineWidth
	}
	return max(w, 0)
}

func (m Model) docWidth() int {
	w := m.contentWidth()
	if w <= 0 {
		w = defaultCols
	}
	return max(w-1, 8)
}

func (m *Model) scrollToCursor() {
	item, ok := m.registry.Current()
	if !ok {
		return
	}
	top := state.ScrollTopFor(int(item.Position), m.opts.TopOffset, len(m.doc.Lines()), m.viewport.Height)
	m.viewport.SetYOffset(top)
}

// renderContent pushes the document into the viewport with the current
// turn's header highlighted.
func (m *Model) renderContent() {
	if !m.loaded {
		m.viewport.SetContent("")
		return
	}
	lines := append([]string(nil), m.doc.Lines()...)
	cursor := m.registry.Cursor()
	for i := 0; i < m.doc.Len(); i++ {
		start, n, _ := m.doc.Header(i)
		for j := start; j < start+n && j < len(lines); j++ {
			lines[j] = m.theme.RenderHeader(i == cursor, m.isPinned(i), lines[j])
		}
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m Model) isPinned(index int) bool {
	_, ok := m.marked[app.ItemKey(index)]
	return ok
}

func (m Model) View() string {
	var b strings.Builder
	header := view.Title(m.title(), m.theme) + "  " + m.theme.MetaLabel.Render(view.Toolbar(m.showTimeline))
	b.WriteString(fitWidth(header, m.width))
	b.WriteString("\n")
	if m.showHelp {
		b.WriteString("Help (? to close)\n\n")
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.bodyView())
	}
	b.WriteString("\n")
	b.WriteString(m.messagePanel())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) bodyView() string {
	switch {
	case !m.loaded && m.loading:
		return "Loading conversation..."
	case !m.loaded && m.err != nil:
		return "Could not load conversation."
	case !m.loaded:
		return "No conversation loaded."
	case m.registry.Len() == 0:
		return "No turns found on this page."
	}

	height := max(m.viewport.Height, 1)
	lines := strings.Split(m.viewport.View(), "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	if !m.showTimeline {
		return strings.Join(lines, "\n")
	}

	for i := range lines {
		lines[i] = fitWidth(lines[i], m.viewport.Width)
	}
	if item, ok := m.registry.ItemAt(m.hover); ok {
		box := m.theme.Tooltip.Render(view.TooltipText(item.Label))
		lines = view.Overlay(lines, state.TooltipRow(m.hoverRow, 1, height), box, m.viewport.Width)
	}
	column := view.Timeline(m.timeline.Rows(), height, m.registry.Cursor(), m.isPinned, m.theme)
	for i := range lines {
		lines[i] += column[i]
	}
	return strings.Join(lines, "\n")
}

func (m Model) title() string {
	if m.conv.Page != nil && m.conv.Page.Location != nil {
		return m.conv.Page.Location.String()
	}
	return m.opts.Target
}

func (m Model) messagePanel() string {
	warning := ""
	if m.err != nil {
		warning = m.err.Error()
	}
	return fitWidth(view.Message(m.loading, m.err != nil, m.status, warning, m.theme), m.width)
}

func (m Model) footer() string {
	adapter := "-"
	if m.conv.Adapter != nil {
		adapter = m.conv.Adapter.Name()
	}
	return fitWidth(view.Footer(adapter, m.registry.Cursor(), m.registry.Len(), len(m.marked), m.themeMode, m.theme), m.width)
}

// fitWidth pads or cuts s to exactly width cells. A width of zero leaves s
// untouched.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	if lipgloss.Width(s) > width {
		s = truncate.String(s, uint(width))
	}
	if gap := width - lipgloss.Width(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}
