package answer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	nethtml "golang.org/x/net/html"
)

// blockRenderer turns block elements into lines. A plain renderer emits
// text without styles or decorative glyphs.
type blockRenderer struct {
	width int
	plain bool
}

func (r blockRenderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

func (r blockRenderer) renderNodes(nodes []*nethtml.Node, depth int) []string {
	lines := make([]string, 0, len(nodes)*2)
	inline := make([]string, 0, 4)
	appendBlock := func(block []string) {
		if len(block) == 0 {
			return
		}
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
	}
	flush := func() {
		text := normalizeInlineText(strings.Join(inline, " "))
		inline = inline[:0]
		if text != "" {
			appendBlock(Wrap(text, r.width))
		}
	}

	for _, node := range nodes {
		switch node.Type {
		case nethtml.TextNode:
			inline = append(inline, node.Data)
		case nethtml.ElementNode:
			if isChromeElement(node.Data) {
				continue
			}
			if isBlockElement(node.Data) {
				flush()
				appendBlock(r.renderBlock(node, depth))
				continue
			}
			inline = append(inline, r.renderInline(node))
		}
	}
	flush()
	return compactBlankLines(lines)
}

func (r blockRenderer) renderBlock(node *nethtml.Node, depth int) []string {
	tag := strings.ToLower(node.Data)
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(tag[1] - '0')
		text := normalizeInlineText(r.renderInlineChildren(node))
		if r.plain {
			return Wrap(text, r.width)
		}
		prefix := headingBars[min(level, len(headingBars))-1].Render("▌") + " "
		return styleLines(prefixedWrap(text, r.width, prefix, "  "), headingText)
	case "p", "div", "section", "article", "main", "header", "footer":
		if hasBlockChild(node) {
			return r.renderNodes(elementChildren(node), depth)
		}
		return Wrap(normalizeInlineText(r.renderInlineChildren(node)), r.width)
	case "blockquote":
		inner := r.renderNodes(elementChildren(node), depth)
		out := make([]string, 0, len(inner))
		for _, line := range Wrap(strings.Join(inner, "\n"), r.width-2) {
			if strings.TrimSpace(line) == "" {
				out = append(out, "")
				continue
			}
			if r.plain {
				out = append(out, "> "+line)
				continue
			}
			out = append(out, quotePrefix+quoteText.Render(line))
		}
		return compactBlankLines(out)
	case "ul":
		return r.renderList(node, false, depth+1)
	case "ol":
		return r.renderList(node, true, depth+1)
	case "li":
		return r.renderListItem(node, depth, "- ")
	case "pre":
		return r.renderCode(node)
	case "table":
		return r.renderTable(node)
	case "hr":
		return []string{strings.Repeat("─", min(max(r.width, 3), 24))}
	default:
		text := normalizeInlineText(r.renderInlineChildren(node))
		if text != "" && !hasBlockChild(node) {
			return Wrap(text, r.width)
		}
		return r.renderNodes(elementChildren(node), depth)
	}
}

// renderCode keeps code lines verbatim behind a gutter. Chat pages put the
// language name in a header above the code element; it is shown once on top.
func (r blockRenderer) renderCode(node *nethtml.Node) []string {
	code := FindElement(node, "code")
	language := ""
	if code != nil {
		for _, class := range strings.Fields(Attr(code, "class")) {
			if lang, ok := strings.CutPrefix(class, "language-"); ok {
				language = lang
				break
			}
		}
	} else {
		code = node
	}

	text := strings.ReplaceAll(collectRawText(code), "\r\n", "\n")
	out := make([]string, 0, strings.Count(text, "\n")+2)
	gutter := codeGutter
	if r.plain {
		gutter = ""
	} else if language != "" {
		out = append(out, codeLanguage.Render(language))
	}
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		out = append(out, gutter+strings.TrimRight(line, " \t"))
	}
	return out
}

func (r blockRenderer) renderList(node *nethtml.Node, ordered bool, depth int) []string {
	lines := make([]string, 0, 16)
	n := 0
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != nethtml.ElementNode || strings.ToLower(child.Data) != "li" {
			continue
		}
		n++
		marker := bulletFor(depth)
		if r.plain {
			marker = "- "
		}
		if ordered {
			marker = fmt.Sprintf("%d. ", n)
		}
		lines = append(lines, r.renderListItem(child, depth, marker)...)
	}
	return compactBlankLines(lines)
}

func (r blockRenderer) renderListItem(node *nethtml.Node, depth int, marker string) []string {
	indent := strings.Repeat("  ", max(0, depth-1))
	first := indent + marker
	rest := indent + strings.Repeat(" ", visibleLen(marker))

	parts := make([]string, 0, 4)
	var nested []string
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.ElementNode {
			switch strings.ToLower(child.Data) {
			case "ul":
				nested = append(nested, r.renderList(child, false, depth+1)...)
				continue
			case "ol":
				nested = append(nested, r.renderList(child, true, depth+1)...)
				continue
			case "p":
				parts = append(parts, r.renderInlineChildren(child), "\n")
				continue
			}
		}
		parts = append(parts, r.renderInline(child))
	}

	lines := prefixedWrap(normalizeInlineText(strings.Join(parts, " ")), r.width, first, rest)
	return append(lines, nested...)
}

func prefixedWrap(text string, width int, firstPrefix, restPrefix string) []string {
	if text == "" {
		return nil
	}
	firstWidth := max(1, width-visibleLen(firstPrefix))
	restWidth := max(1, width-visibleLen(restPrefix))

	out := make([]string, 0, 4)
	for i, line := range Wrap(text, firstWidth) {
		if i == 0 {
			out = append(out, firstPrefix+line)
			continue
		}
		// Continuation lines may be narrower than the first one.
		for _, sub := range Wrap(line, restWidth) {
			out = append(out, restPrefix+sub)
		}
	}
	return out
}

func bulletFor(depth int) string {
	switch depth {
	case 1:
		return "• "
	case 2:
		return "◦ "
	default:
		return "▪ "
	}
}

func styleLines(lines []string, style lipgloss.Style) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = line
			continue
		}
		out[i] = style.Render(line)
	}
	return out
}

func isBlockElement(tag string) bool {
	switch strings.ToLower(tag) {
	case "h1", "h2", "h3", "h4", "h5", "h6",
		"p", "div", "section", "article", "main", "header", "footer",
		"blockquote", "ul", "ol", "li", "table", "pre", "hr":
		return true
	default:
		return false
	}
}

// isChromeElement reports page furniture that never belongs in an answer:
// copy buttons, icons, scripts.
func isChromeElement(tag string) bool {
	switch strings.ToLower(tag) {
	case "script", "style", "noscript", "button", "svg", "template":
		return true
	default:
		return false
	}
}

func hasBlockChild(node *nethtml.Node) bool {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.ElementNode && isBlockElement(child.Data) {
			return true
		}
	}
	return false
}
