package answer

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
)

func (r blockRenderer) renderInlineChildren(node *nethtml.Node) string {
	parts := make([]string, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		parts = append(parts, r.renderInline(child))
	}
	return strings.Join(parts, " ")
}

func (r blockRenderer) renderInline(node *nethtml.Node) string {
	switch node.Type {
	case nethtml.TextNode:
		return node.Data
	case nethtml.ElementNode:
	default:
		return ""
	}

	switch strings.ToLower(node.Data) {
	case "script", "style", "noscript", "button", "svg", "img", "template":
		return ""
	case "br":
		return "\n"
	case "a":
		text := normalizeInlineText(r.renderInlineChildren(node))
		href := Attr(node, "href")
		switch {
		case href == "" || strings.HasPrefix(href, "#"):
			return text
		case text == "" || strings.EqualFold(text, href):
			return href
		default:
			return text + " (" + href + ")"
		}
	case "code", "kbd", "samp":
		text := normalizeInlineText(r.renderInlineChildren(node))
		if text == "" {
			return ""
		}
		if r.plain {
			return text
		}
		return inlineCode.Render("`" + text + "`")
	default:
		return r.renderInlineChildren(node)
	}
}

var punctuationJoiner = strings.NewReplacer(
	" .", ".",
	" ,", ",",
	" ;", ";",
	" :", ":",
	" !", "!",
	" ?", "?",
	" )", ")",
	"( ", "(",
)

func normalizeInlineText(s string) string {
	s = html.UnescapeString(s)
	parts := strings.Split(s, "\n")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Join(strings.Fields(part), " ")
		if part != "" {
			out = append(out, part)
		}
	}
	return punctuationJoiner.Replace(strings.Join(out, "\n"))
}
