package answer

import (
	"strings"
	"testing"

	nethtml "golang.org/x/net/html"
)

func mustParse(t testing.TB, raw string) *nethtml.Node {
	t.Helper()
	doc, err := nethtml.Parse(strings.NewReader("<html><body>" + raw + "</body></html>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return FindElement(doc, "body")
}

// fragmentLines renders an HTML fragment the way an answer body is rendered.
func fragmentLines(raw string, width int) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	doc, err := nethtml.Parse(strings.NewReader("<html><body>" + raw + "</body></html>"))
	if err != nil {
		return nil
	}
	return Lines(FindElement(doc, "body"), width)
}
