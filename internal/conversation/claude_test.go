package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaude_FindTurns(t *testing.T) {
	page := htmlPage(t, "https://claude.ai/chat/abc", `<div>
		<div data-testid="user-message"><p>Explain channels</p></div>
		<div class="font-claude-message relative"><p>Channels connect goroutines.</p></div>
		<div class="font-claude-message"><p>Follow-up without a new prompt.</p></div>
		<div data-testid="user-message"><p>Buffered?</p></div>
		<div class="grid font-claude-response"><ul><li>capacity</li></ul></div>
	</div>`)

	turns := Claude{}.FindTurns(page)
	require.Len(t, turns, 3)
	assert.Equal(t, []string{"Explain channels", "", "Buffered?"}, prompts(turns))
	assert.Equal(t, "Channels connect goroutines.", turns[0].Text())
	assert.Contains(t, turns[2].Text(), "capacity")
}
