// Package conversation discovers question/answer turns in saved or shared
// chatbot pages and lays them out as one scrollable document.
package conversation

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	nethtml "golang.org/x/net/html"

	"github.com/glabrego/threadnav/internal/fetch"
	"github.com/glabrego/threadnav/internal/render/answer"
)

// Page is a loaded conversation: where it lives and what it contains.
// Root is nil for Markdown transcripts.
type Page struct {
	Location *url.URL
	Root     *nethtml.Node
	Raw      []byte
}

// IsMarkdown reports whether the page is a plain-text transcript.
func (p *Page) IsMarkdown() bool {
	return p.Root == nil
}

// NewPage parses a loaded resource. The location is taken from override when
// set, then from the page's canonical link or og:url, then from where the
// resource was read.
func NewPage(res fetch.Resource, override string) (*Page, error) {
	page := &Page{Location: res.Location, Raw: res.Body}

	if !isMarkdownResource(res) {
		root, err := nethtml.Parse(bytes.NewReader(res.Body))
		if err != nil {
			return nil, fmt.Errorf("parse page: %w", err)
		}
		page.Root = root
		if loc := declaredLocation(root); loc != nil {
			page.Location = loc
		}
	}

	if override = strings.TrimSpace(override); override != "" {
		loc, err := url.Parse(override)
		if err != nil {
			return nil, fmt.Errorf("parse location override: %w", err)
		}
		if loc.Scheme == "" || loc.Host == "" {
			return nil, fmt.Errorf("location override %q is not an absolute URL", override)
		}
		page.Location = loc
	}

	if page.Location == nil {
		return nil, fmt.Errorf("page has no location")
	}
	return page, nil
}

func isMarkdownResource(res fetch.Resource) bool {
	if strings.HasPrefix(res.ContentType, "text/markdown") || strings.HasPrefix(res.ContentType, "text/x-markdown") {
		return true
	}
	if res.Location != nil {
		path := strings.ToLower(res.Location.Path)
		return strings.HasSuffix(path, ".md") || strings.HasSuffix(path, ".markdown")
	}
	return false
}

// declaredLocation reads <link rel=canonical> or <meta property=og:url>.
// Saved pages keep these, which is how a file on disk is matched to a site.
func declaredLocation(root *nethtml.Node) *url.URL {
	head := answer.FindElement(root, "head")
	if head == nil {
		return nil
	}
	var canonical, og string
	walk(head, func(n *nethtml.Node) bool {
		switch strings.ToLower(n.Data) {
		case "link":
			if canonical == "" && strings.EqualFold(answer.Attr(n, "rel"), "canonical") {
				canonical = answer.Attr(n, "href")
			}
		case "meta":
			if og == "" && strings.EqualFold(answer.Attr(n, "property"), "og:url") {
				og = answer.Attr(n, "content")
			}
		}
		return true
	})
	for _, raw := range []string{canonical, og} {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
			return u
		}
	}
	return nil
}
