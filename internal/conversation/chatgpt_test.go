package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatGPT_AuthorRoleStrategy(t *testing.T) {
	page := htmlPage(t, "https://chatgpt.com/c/1", `<main>
		<div data-message-author-role="user"><div>How do I sort a map?</div></div>
		<div data-message-author-role="assistant"><div class="markdown"><p>Collect the keys first.</p></div></div>
		<div data-message-author-role="user">And in reverse?</div>
		<div data-message-author-role="assistant"><p>Use <code>sort.Reverse</code>.</p><button>Copy</button></div>
	</main>`)

	turns := ChatGPT{}.FindTurns(page)
	require.Len(t, turns, 2)
	assert.Equal(t, []string{"How do I sort a map?", "And in reverse?"}, prompts(turns))
	assert.Equal(t, "Collect the keys first.", turns[0].Text())
	assert.Contains(t, turns[1].Text(), "sort.Reverse")
	assert.NotContains(t, turns[1].Text(), "Copy")
}

func TestChatGPT_ConversationTurnStrategy(t *testing.T) {
	page := htmlPage(t, "https://chatgpt.com/share/1", `<main>
		<article data-testid="conversation-turn-1"><h5>You said:</h5><div>First question</div></article>
		<article data-testid="conversation-turn-2"><h6>ChatGPT said:</h6><p>First answer</p></article>
		<article data-testid="conversation-turn-3"><h5>You said:</h5><div>Second question</div></article>
		<article data-testid="conversation-turn-4"><h6>ChatGPT said:</h6><p>Second answer</p></article>
	</main>`)

	turns := ChatGPT{}.FindTurns(page)
	require.Len(t, turns, 2)
	assert.Contains(t, turns[0].Prompt, "First question")
	assert.Contains(t, turns[1].Text(), "Second answer")
}

func TestChatGPT_GroupStructureStrategy(t *testing.T) {
	page := htmlPage(t, "https://chatgpt.com/", `<body><nav class="group">history</nav><main>
		<div class="group w-full">q1</div>
		<div class="group w-full">a1</div>
		<div class="group w-full">q2</div>
		<div class="group w-full">a2</div>
		<div class="group w-full">q3 pending</div>
	</main></body>`)

	turns := ChatGPT{}.FindTurns(page)
	require.Len(t, turns, 2)
	assert.Equal(t, []string{"q1", "q2"}, prompts(turns))
	assert.Equal(t, []string{"a1", "a2"}, answers(turns))
}

func TestChatGPT_NoTurns(t *testing.T) {
	page := htmlPage(t, "https://chatgpt.com/", `<body><p>Log in</p></body>`)
	assert.Empty(t, ChatGPT{}.FindTurns(page))
	assert.Empty(t, ChatGPT{}.FindTurns(nil))
}
