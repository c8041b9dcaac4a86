package conversation

import (
	"net/url"
	"strings"

	nethtml "golang.org/x/net/html"

	"github.com/glabrego/threadnav/internal/render/answer"
)

// Claude reads claude.ai chat and share pages.
type Claude struct{}

func (Claude) Name() string { return "Claude" }

func (Claude) Host() string { return "claude.ai" }

func (Claude) IsApplicable(loc *url.URL) bool {
	if loc == nil || !strings.EqualFold(loc.Hostname(), "claude.ai") {
		return false
	}
	return strings.HasPrefix(loc.Path, "/chat/") || strings.HasPrefix(loc.Path, "/share/")
}

func (Claude) FindTurns(page *Page) []Turn {
	if page == nil || page.Root == nil {
		return nil
	}
	return pairTurns(page.Root, func(n *nethtml.Node) role {
		switch {
		case answer.Attr(n, "data-testid") == "user-message":
			return roleUser
		case hasClassContaining(n, "font-claude-message"), hasClassContaining(n, "font-claude-response"):
			return roleAssistant
		default:
			return roleNone
		}
	})
}
