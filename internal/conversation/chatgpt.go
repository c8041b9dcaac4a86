package conversation

import (
	"net/url"
	"strings"

	nethtml "golang.org/x/net/html"

	"github.com/glabrego/threadnav/internal/render/answer"
)

// ChatGPT reads chatgpt.com conversation and share pages. The page markup
// changes often, so answers are discovered with three strategies in order,
// stopping at the first that finds anything.
type ChatGPT struct{}

func (ChatGPT) Name() string { return "ChatGPT" }

func (ChatGPT) Host() string { return "chatgpt.com" }

func (ChatGPT) IsApplicable(loc *url.URL) bool {
	if loc == nil {
		return false
	}
	switch strings.ToLower(loc.Hostname()) {
	case "chatgpt.com", "chat.openai.com":
	default:
		return false
	}
	path := loc.Path
	return path == "" || path == "/" || strings.HasPrefix(path, "/c/") || strings.HasPrefix(path, "/share/")
}

func (c ChatGPT) FindTurns(page *Page) []Turn {
	if page == nil || page.Root == nil {
		return nil
	}
	for _, strategy := range []func(*nethtml.Node) []Turn{
		c.byAuthorRole,
		c.byTurnTestID,
		c.byGroupStructure,
	} {
		if turns := strategy(page.Root); len(turns) > 0 {
			return turns
		}
	}
	return nil
}

func (ChatGPT) byAuthorRole(root *nethtml.Node) []Turn {
	return pairTurns(root, func(n *nethtml.Node) role {
		switch answer.Attr(n, "data-message-author-role") {
		case "user":
			return roleUser
		case "assistant":
			return roleAssistant
		default:
			return roleNone
		}
	})
}

func (ChatGPT) byTurnTestID(root *nethtml.Node) []Turn {
	return pairTurns(root, func(n *nethtml.Node) role {
		if !strings.HasPrefix(answer.Attr(n, "data-testid"), "conversation-turn") {
			return roleNone
		}
		if contains(n, attrIs("data-message-author-role", "assistant")) ||
			strings.Contains(answer.PlainText(n), "ChatGPT") {
			return roleAssistant
		}
		return roleUser
	})
}

// byGroupStructure is the last resort: inside <main>, message wrappers carry
// a "group" class and alternate user, assistant.
func (ChatGPT) byGroupStructure(root *nethtml.Node) []Turn {
	main := answer.FindElement(root, "main")
	if main == nil {
		return nil
	}
	groups := collect(main, func(n *nethtml.Node) bool {
		return hasClassContaining(n, "group")
	})

	var turns []Turn
	prompt := ""
	for i, node := range groups {
		if i%2 == 0 {
			prompt = answer.PlainText(node)
			continue
		}
		turns = append(turns, Turn{Prompt: prompt, Answer: node})
		prompt = ""
	}
	return turns
}
