package conversation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transcript = `# Exported chat

## User
How do I reverse a slice?

## Assistant
Use ` + "`slices.Reverse`" + `:

` + "```go" + `
## User
slices.Reverse(s)
` + "```" + `

### You:
Thanks. Anything older?

### ChatGPT:
Swap from both ends in a loop.
`

func TestMarkdown_FindTurns(t *testing.T) {
	page := &Page{Location: mustURL(t, "file:///tmp/chat.md"), Raw: []byte(transcript)}

	turns := Markdown{}.FindTurns(page)
	require.Len(t, turns, 2)
	assert.Equal(t, []string{"How do I reverse a slice?", "Thanks. Anything older?"}, prompts(turns))
	assert.Contains(t, turns[0].Markdown, "slices.Reverse(s)")
	assert.Contains(t, turns[0].Markdown, "## User", "headings inside code fences belong to the answer")
	assert.Equal(t, "Swap from both ends in a loop.", turns[1].Text())
}

func TestMarkdown_IgnoresTrailingPrompt(t *testing.T) {
	page := &Page{Raw: []byte("## Assistant\nHello.\n\n## User\nunanswered\n")}

	turns := Markdown{}.FindTurns(page)
	require.Len(t, turns, 1)
	assert.Empty(t, turns[0].Prompt)
	assert.Equal(t, "Hello.", turns[0].Markdown)
}

func TestMarkdown_LongLinesDoNotStopReading(t *testing.T) {
	long := strings.Repeat("x", 5<<20)
	raw := "## User\nfirst\n\n## Assistant\n" + long + "\n\n## User\nsecond\n\n## Assistant\nshort answer\n"
	page := &Page{Raw: []byte(raw)}

	turns := Markdown{}.FindTurns(page)
	require.Len(t, turns, 2)
	assert.Equal(t, []string{"first", "second"}, prompts(turns))
	assert.Len(t, turns[0].Markdown, len(long))
	assert.Equal(t, "short answer", turns[1].Markdown)
}

func TestSpeakerHeading(t *testing.T) {
	r, ok := speakerHeading("## Assistant:")
	assert.True(t, ok)
	assert.Equal(t, roleAssistant, r)

	r, ok = speakerHeading("#### human")
	assert.True(t, ok)
	assert.Equal(t, roleUser, r)

	_, ok = speakerHeading("## Summary")
	assert.False(t, ok)
	_, ok = speakerHeading("User")
	assert.False(t, ok)
}
