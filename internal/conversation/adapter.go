package conversation

import (
	"net/url"
	"strings"

	nethtml "golang.org/x/net/html"

	"github.com/glabrego/threadnav/internal/render/answer"
)

// Turn is one answer and the prompt that led to it. HTML answers carry the
// answer node; Markdown transcripts carry the answer source.
type Turn struct {
	Prompt   string
	Answer   *nethtml.Node
	Markdown string
}

// Text is the answer as plain text, suitable for the clipboard. Markdown
// answers are returned as written.
func (t Turn) Text() string {
	if t.Answer == nil {
		return strings.TrimSpace(t.Markdown)
	}
	return strings.Join(answer.PlainLines(t.Answer), "\n")
}

// SiteAdapter knows how one site structures its conversation pages.
type SiteAdapter interface {
	Name() string
	// Host is the key under which the adapter is enabled in the config.
	Host() string
	IsApplicable(loc *url.URL) bool
	FindTurns(page *Page) []Turn
}

// Adapters lists every known adapter in match order.
func Adapters() []SiteAdapter {
	return []SiteAdapter{ChatGPT{}, Claude{}, Markdown{}}
}

// Active returns the first adapter that applies to loc and is enabled.
// Unsupported locations are not an error.
func Active(loc *url.URL, enabled func(host string) bool) (SiteAdapter, bool) {
	if loc == nil {
		return nil, false
	}
	for _, adapter := range Adapters() {
		if !adapter.IsApplicable(loc) {
			continue
		}
		if enabled != nil && !enabled(adapter.Host()) {
			continue
		}
		return adapter, true
	}
	return nil, false
}
