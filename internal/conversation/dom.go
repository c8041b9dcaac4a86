package conversation

import (
	"strings"

	nethtml "golang.org/x/net/html"

	"github.com/glabrego/threadnav/internal/render/answer"
)

type role int

const (
	roleNone role = iota
	roleUser
	roleAssistant
)

// walk visits element nodes depth-first in document order. Returning false
// from visit skips the node's children.
func walk(node *nethtml.Node, visit func(*nethtml.Node) bool) {
	if node == nil {
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != nethtml.ElementNode {
			continue
		}
		if visit(child) {
			walk(child, visit)
		}
	}
}

// collect returns the outermost elements below root that match.
func collect(root *nethtml.Node, match func(*nethtml.Node) bool) []*nethtml.Node {
	var out []*nethtml.Node
	walk(root, func(n *nethtml.Node) bool {
		if match(n) {
			out = append(out, n)
			return false
		}
		return true
	})
	return out
}

func contains(root *nethtml.Node, match func(*nethtml.Node) bool) bool {
	found := false
	walk(root, func(n *nethtml.Node) bool {
		if found {
			return false
		}
		if match(n) {
			found = true
			return false
		}
		return true
	})
	return found
}

// pairTurns walks root in document order and turns every assistant element
// into a Turn whose prompt is the text of the user elements seen since the
// previous answer.
func pairTurns(root *nethtml.Node, classify func(*nethtml.Node) role) []Turn {
	var turns []Turn
	var prompt []string
	walk(root, func(n *nethtml.Node) bool {
		switch classify(n) {
		case roleUser:
			if text := answer.PlainText(n); text != "" {
				prompt = append(prompt, text)
			}
			return false
		case roleAssistant:
			turns = append(turns, Turn{Prompt: strings.Join(prompt, " "), Answer: n})
			prompt = prompt[:0]
			return false
		default:
			return true
		}
	})
	return turns
}

func attrIs(name, value string) func(*nethtml.Node) bool {
	return func(n *nethtml.Node) bool {
		return answer.Attr(n, name) == value
	}
}

func hasClassContaining(n *nethtml.Node, fragment string) bool {
	return strings.Contains(answer.Attr(n, "class"), fragment)
}
