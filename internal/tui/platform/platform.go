package platform

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// ValidatePageURL accepts http(s) and file locations.
func ValidatePageURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("conversation has no URL")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid URL format")
	}
	switch parsed.Scheme {
	case "http", "https":
		if parsed.Host == "" {
			return "", fmt.Errorf("invalid URL host")
		}
	case "file":
		if parsed.Path == "" {
			return "", fmt.Errorf("invalid file path")
		}
	default:
		return "", fmt.Errorf("unsupported URL scheme: %s", parsed.Scheme)
	}
	return trimmed, nil
}

// OpenURLInBrowser hands url to the system browser. The launcher's own
// output is discarded so it cannot scribble over the terminal UI.
func OpenURLInBrowser(url string) error {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL(url)
}

func CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard available")
	}
	return clipboard.WriteAll(text)
}
