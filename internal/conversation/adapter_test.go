package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsApplicable(t *testing.T) {
	tests := []struct {
		location string
		adapter  string
	}{
		{"https://chatgpt.com/", "ChatGPT"},
		{"https://chatgpt.com/c/123", "ChatGPT"},
		{"https://chat.openai.com/share/abc", "ChatGPT"},
		{"https://chatgpt.com/gpts", ""},
		{"https://claude.ai/chat/1", "Claude"},
		{"https://claude.ai/share/2", "Claude"},
		{"https://claude.ai/settings", ""},
		{"file:///home/me/chat.md", "Markdown"},
		{"file:///home/me/chat.html", ""},
		{"https://example.com/c/123", ""},
	}

	for _, tc := range tests {
		t.Run(tc.location, func(t *testing.T) {
			adapter, ok := Active(mustURL(t, tc.location), nil)
			if tc.adapter == "" {
				assert.False(t, ok)
				assert.Nil(t, adapter)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tc.adapter, adapter.Name())
		})
	}
}

func TestActive_SkipsDisabledHosts(t *testing.T) {
	loc := mustURL(t, "https://chatgpt.com/c/1")
	disabled := func(host string) bool { return host != "chatgpt.com" }

	_, ok := Active(loc, disabled)
	assert.False(t, ok)

	adapter, ok := Active(loc, func(string) bool { return true })
	require.True(t, ok)
	assert.Equal(t, "chatgpt.com", adapter.Host())
}

func TestActive_NilLocation(t *testing.T) {
	_, ok := Active(nil, nil)
	assert.False(t, ok)
}
