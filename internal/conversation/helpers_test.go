package conversation

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glabrego/threadnav/internal/fetch"
)

func mustURL(t testing.TB, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func htmlPage(t testing.TB, location, body string) *Page {
	t.Helper()
	page, err := NewPage(fetch.Resource{
		Location:    mustURL(t, location),
		ContentType: "text/html",
		Body:        []byte(body),
	}, "")
	require.NoError(t, err)
	return page
}

func prompts(turns []Turn) []string {
	out := make([]string, len(turns))
	for i, turn := range turns {
		out[i] = turn.Prompt
	}
	return out
}

func answers(turns []Turn) []string {
	out := make([]string, len(turns))
	for i, turn := range turns {
		out[i] = turn.Text()
	}
	return out
}
