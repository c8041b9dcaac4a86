// Package answer turns the HTML of a chatbot answer into wrapped terminal
// lines. Widths are measured in terminal cells.
package answer

import (
	"html"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	nethtml "golang.org/x/net/html"
)

// Lines renders the subtree rooted at node into lines no wider than width.
func Lines(node *nethtml.Node, width int) []string {
	return blockRenderer{width: max(1, width)}.render(node)
}

// PlainLines renders the subtree rooted at node as unstyled text with its
// line structure kept: no escape sequences, no gutters, no wrapping.
func PlainLines(node *nethtml.Node) []string {
	return blockRenderer{width: 1 << 16, plain: true}.render(node)
}

func (r blockRenderer) render(node *nethtml.Node) []string {
	if node == nil {
		return nil
	}
	if node.Type == nethtml.ElementNode && isBlockElement(node.Data) {
		return compactBlankLines(r.renderBlock(node, 0))
	}
	return compactBlankLines(r.renderNodes(elementChildren(node), 0))
}

// PlainText collapses the text content of node into a single line.
func PlainText(node *nethtml.Node) string {
	return strings.Join(strings.Fields(html.UnescapeString(collectRawText(node))), " ")
}

// Wrap breaks text into lines of at most width cells, keeping explicit
// newlines. Words wider than width are split.
func Wrap(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	w := wrapper{width: width}
	for _, paragraph := range strings.Split(text, "\n") {
		w.paragraph(strings.Fields(paragraph))
	}
	return w.out
}

type wrapper struct {
	width int
	out   []string
	line  string
	used  int
}

func (w *wrapper) paragraph(words []string) {
	if len(words) == 0 {
		w.out = append(w.out, "")
		return
	}
	for _, word := range words {
		size := visibleLen(word)
		for size > w.width {
			w.flush()
			head, tail := splitCells(word, w.width)
			w.out = append(w.out, head)
			word, size = tail, visibleLen(tail)
		}
		switch {
		case w.line == "":
			w.line, w.used = word, size
		case w.used+1+size <= w.width:
			w.line += " " + word
			w.used += 1 + size
		default:
			w.flush()
			w.line, w.used = word, size
		}
	}
	w.flush()
}

func (w *wrapper) flush() {
	if w.line != "" {
		w.out = append(w.out, w.line)
	}
	w.line, w.used = "", 0
}

// StripANSI removes terminal escape sequences.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// FindElement returns the first element named tag in a depth-first walk.
func FindElement(node *nethtml.Node, tag string) *nethtml.Node {
	if node == nil {
		return nil
	}
	if node.Type == nethtml.ElementNode && strings.EqualFold(node.Data, tag) {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := FindElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// Attr returns the trimmed value of the named attribute.
func Attr(node *nethtml.Node, name string) string {
	if node == nil {
		return ""
	}
	for _, attr := range node.Attr {
		if strings.EqualFold(attr.Key, name) {
			return strings.TrimSpace(attr.Val)
		}
	}
	return ""
}

// splitCells cuts s after at most n cells, always taking at least one rune.
func splitCells(s string, n int) (string, string) {
	used := 0
	for pos, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > n && pos > 0 {
			return s[:pos], s[pos:]
		}
		used += rw
	}
	return s, ""
}

// compactBlankLines drops leading and trailing blank lines and collapses
// runs of blank lines into one.
func compactBlankLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	pendingBlank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			pendingBlank = len(out) > 0
			continue
		}
		if pendingBlank {
			out = append(out, "")
			pendingBlank = false
		}
		out = append(out, line)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func visibleLen(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

func elementChildren(node *nethtml.Node) []*nethtml.Node {
	children := make([]*nethtml.Node, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.TextNode && strings.TrimSpace(child.Data) == "" {
			continue
		}
		children = append(children, child)
	}
	return children
}

func collectRawText(node *nethtml.Node) string {
	if node == nil {
		return ""
	}
	switch {
	case node.Type == nethtml.TextNode:
		return node.Data
	case node.Type == nethtml.ElementNode && isChromeElement(node.Data):
		return ""
	}
	var b strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(collectRawText(child))
	}
	return b.String()
}
