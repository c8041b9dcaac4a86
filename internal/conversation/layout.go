package conversation

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"

	"github.com/glabrego/threadnav/internal/nav"
	"github.com/glabrego/threadnav/internal/render/answer"
)

// Document is a conversation rendered to lines. Each turn starts with a
// header block holding its prompt; the first header line is the turn's
// position.
type Document struct {
	lines   []string
	starts  []int
	headers []int
	prompts []string
	turns   []Turn
}

type layoutOptions struct {
	markdownStyle string
}

type LayoutOption func(*layoutOptions)

// WithMarkdownStyle picks the glamour style used for Markdown answers
// ("dark", "light", "notty", ...).
func WithMarkdownStyle(style string) LayoutOption {
	return func(o *layoutOptions) {
		if style != "" {
			o.markdownStyle = style
		}
	}
}

// Layout renders turns for a viewport width columns wide.
func Layout(turns []Turn, width int, opts ...LayoutOption) Document {
	o := layoutOptions{markdownStyle: "dark"}
	for _, opt := range opts {
		opt(&o)
	}
	width = max(width, 8)

	doc := Document{
		starts:  make([]int, 0, len(turns)),
		headers: make([]int, 0, len(turns)),
		prompts: make([]string, 0, len(turns)),
		turns:   turns,
	}
	md := newMarkdownRenderer(o.markdownStyle, width)

	for i, turn := range turns {
		if i > 0 {
			doc.lines = append(doc.lines, "")
		}
		header := headerLines(i, len(turns), turn.Prompt, width)
		doc.starts = append(doc.starts, len(doc.lines))
		doc.headers = append(doc.headers, len(header))
		doc.lines = append(doc.lines, header...)
		doc.lines = append(doc.lines, "")

		var body []string
		if turn.Answer != nil {
			body = answer.Lines(turn.Answer, width)
		} else {
			body = md.render(turn.Markdown)
		}
		if len(body) == 0 {
			body = []string{"(empty answer)"}
		}
		doc.lines = append(doc.lines, body...)
		doc.prompts = append(doc.prompts, turn.Prompt)
	}
	return doc
}

func headerLines(i, total int, prompt string, width int) []string {
	tag := fmt.Sprintf("▍ %d/%d ", i+1, total)
	prompt = strings.Join(strings.Fields(prompt), " ")
	if prompt == "" {
		return []string{tag + "(no prompt)"}
	}
	rest := strings.Repeat(" ", runewidth.StringWidth(tag))
	lines := answer.Wrap(prompt, max(1, width-runewidth.StringWidth(tag)))
	for j := range lines {
		if j == 0 {
			lines[j] = tag + lines[j]
		} else {
			lines[j] = rest + lines[j]
		}
	}
	return lines
}

// Lines are the rendered document lines without turn highlighting.
func (d Document) Lines() []string { return d.lines }

// Len is the number of turns.
func (d Document) Len() int { return len(d.starts) }

// Extent is the document height in lines.
func (d Document) Extent() float64 { return float64(len(d.lines)) }

// Items lists the turns in document order, ready for a nav.Registry.
func (d Document) Items() []nav.Item {
	items := make([]nav.Item, len(d.starts))
	for i, start := range d.starts {
		items[i] = nav.Item{
			ID:       fmt.Sprintf("turn-%d", i),
			Label:    strings.Join(strings.Fields(d.prompts[i]), " "),
			Position: float64(start),
		}
	}
	return items
}

// Header returns the line range of turn i's header.
func (d Document) Header(i int) (start, n int, ok bool) {
	if i < 0 || i >= len(d.starts) {
		return 0, 0, false
	}
	return d.starts[i], d.headers[i], true
}

// Answer returns turn i's answer as plain text.
func (d Document) Answer(i int) (string, bool) {
	if i < 0 || i >= len(d.turns) {
		return "", false
	}
	return d.turns[i].Text(), true
}

type markdownRenderer struct {
	width    int
	renderer *glamour.TermRenderer
}

func newMarkdownRenderer(style string, width int) markdownRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdownRenderer{width: width}
	}
	return markdownRenderer{width: width, renderer: r}
}

// render falls back to wrapped source text when glamour is unavailable.
func (m markdownRenderer) render(src string) []string {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil
	}
	if m.renderer != nil {
		if out, err := m.renderer.Render(src); err == nil {
			lines := strings.Split(strings.Trim(out, "\n"), "\n")
			for i, line := range lines {
				lines[i] = strings.TrimRight(line, " ")
			}
			return lines
		}
	}
	return answer.Wrap(src, m.width)
}
