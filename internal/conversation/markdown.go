package conversation

import (
	"bufio"
	"bytes"
	"net/url"
	"path"
	"strings"

	"github.com/glabrego/threadnav/internal/logging"
)

// Markdown reads exported transcripts where each message starts with a
// heading naming the speaker, e.g. "## User" and "## Assistant".
type Markdown struct{}

func (Markdown) Name() string { return "Markdown" }

func (Markdown) Host() string { return "file" }

func (Markdown) IsApplicable(loc *url.URL) bool {
	if loc == nil || loc.Scheme != "file" {
		return false
	}
	switch strings.ToLower(path.Ext(loc.Path)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}

func (Markdown) FindTurns(page *Page) []Turn {
	if page == nil {
		return nil
	}

	var (
		turns   []Turn
		speaker = roleNone
		prompt  strings.Builder
		body    strings.Builder
		inFence bool
	)
	flush := func() {
		if speaker == roleAssistant {
			turns = append(turns, Turn{
				Prompt:   strings.Join(strings.Fields(prompt.String()), " "),
				Markdown: strings.TrimSpace(body.String()),
			})
			prompt.Reset()
		}
		body.Reset()
	}

	// A line can be as long as the page itself; pages are already size-capped.
	scanner := bufio.NewScanner(bytes.NewReader(page.Raw))
	scanner.Buffer(make([]byte, 0, 64*1024), max(len(page.Raw)+1, 64*1024))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
		}
		if !inFence {
			if r, ok := speakerHeading(line); ok {
				flush()
				speaker = r
				continue
			}
		}
		switch speaker {
		case roleUser:
			prompt.WriteString(line)
			prompt.WriteByte('\n')
		case roleAssistant:
			body.WriteString(line)
			body.WriteByte('\n')
		}
	}
	if err := scanner.Err(); err != nil {
		logger := logging.Component("conversation")
		logger.Warn().Err(err).
			Int("turns", len(turns)).
			Msg("transcript only partly read")
	}
	flush()
	return turns
}

func speakerHeading(line string) (role, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		return roleNone, false
	}
	name := strings.ToLower(strings.TrimSpace(strings.TrimLeft(trimmed, "#")))
	name = strings.TrimSuffix(name, ":")
	switch name {
	case "user", "you", "human", "prompt", "question":
		return roleUser, true
	case "assistant", "chatgpt", "claude", "ai", "model", "answer":
		return roleAssistant, true
	default:
		return roleNone, false
	}
}
