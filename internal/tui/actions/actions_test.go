package actions

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glabrego/threadnav/internal/app"
)

type fakeService struct {
	conv    app.Conversation
	openErr error
	marked  map[string]struct{}
	toggle  func(current bool) bool

	lastOpenDeadline time.Time
	lastTarget       string
	lastOverride     string
	lastToggleKey    string
}

func (f *fakeService) Open(ctx context.Context, target, override string) (app.Conversation, error) {
	if dl, ok := ctx.Deadline(); ok {
		f.lastOpenDeadline = dl
	}
	f.lastTarget, f.lastOverride = target, override
	if f.openErr != nil {
		return app.Conversation{}, f.openErr
	}
	return f.conv, nil
}

func (f *fakeService) LoadMarked(context.Context, string) map[string]struct{} {
	if f.marked == nil {
		return map[string]struct{}{}
	}
	return f.marked
}

func (f *fakeService) ToggleMarked(_ context.Context, _ string, key string, current bool) bool {
	f.lastToggleKey = key
	if f.toggle != nil {
		return f.toggle(current)
	}
	return !current
}

func TestLoadConversationCmd_Success(t *testing.T) {
	svc := &fakeService{
		conv:   app.Conversation{SessionID: "abc"},
		marked: map[string]struct{}{"2": {}},
	}

	msg := LoadConversationCmd(svc, "chat.md", "https://chatgpt.com/c/abc", SourceStartup)()

	loaded, ok := msg.(ConversationLoadedMsg)
	require.True(t, ok, "unexpected msg %T", msg)
	assert.Equal(t, "abc", loaded.Conversation.SessionID)
	assert.Contains(t, loaded.Marked, "2")
	assert.Equal(t, SourceStartup, loaded.Source)
	assert.Equal(t, "chat.md", svc.lastTarget)
	assert.Equal(t, "https://chatgpt.com/c/abc", svc.lastOverride)
	assert.False(t, svc.lastOpenDeadline.IsZero(), "expected a deadline on the load context")
}

func TestLoadConversationCmd_Error(t *testing.T) {
	svc := &fakeService{openErr: errors.New("boom")}

	msg := LoadConversationCmd(svc, "x", "", SourceWatch)()

	failed, ok := msg.(ConversationErrorMsg)
	require.True(t, ok, "unexpected msg %T", msg)
	assert.EqualError(t, failed.Err, "boom")
	assert.Equal(t, SourceWatch, failed.Source)
}

func TestTogglePinCmd(t *testing.T) {
	svc := &fakeService{}

	msg := TogglePinCmd(svc, "abc", 3, false)().(PinToggledMsg)
	assert.True(t, msg.Pinned)
	assert.Equal(t, 3, msg.Index)
	assert.Equal(t, "Pinned turn 4", msg.Status)
	assert.Equal(t, "3", svc.lastToggleKey)

	msg = TogglePinCmd(svc, "abc", 0, true)().(PinToggledMsg)
	assert.False(t, msg.Pinned)
	assert.Equal(t, "Unpinned turn 1", msg.Status)
}

func TestTogglePinCmd_FailureKeepsState(t *testing.T) {
	svc := &fakeService{toggle: func(current bool) bool { return current }}

	msg := TogglePinCmd(svc, "abc", 1, false)().(PinToggledMsg)
	assert.False(t, msg.Pinned)
	assert.Equal(t, "Pin not saved", msg.Status)
}

func TestOpenURLCmd(t *testing.T) {
	ok := func(string) error { return nil }
	fail := func(string) error { return errors.New("nope") }

	msg := OpenURLCmd("https://claude.ai/chat/1", ok, ok)()
	assert.Equal(t, OpenURLSuccessMsg{Status: "Opened URL in browser", Opened: true}, msg)

	msg = OpenURLCmd("https://claude.ai/chat/1", fail, ok)()
	assert.Equal(t, OpenURLSuccessMsg{Status: "Could not open browser, URL copied to clipboard"}, msg)

	msg = OpenURLCmd("https://claude.ai/chat/1", fail, fail)()
	_, isErr := msg.(OpenURLErrorMsg)
	assert.True(t, isErr)
}

func TestCopyTextCmd(t *testing.T) {
	var copied string
	msg := CopyTextCmd("answer body", "answer", func(s string) error { copied = s; return nil })()
	assert.Equal(t, CopySuccessMsg{Status: "Copied answer to clipboard"}, msg)
	assert.Equal(t, "answer body", copied)

	msg = CopyTextCmd("x", "answer", func(string) error { return errors.New("denied") })()
	failed, ok := msg.(CopyErrorMsg)
	require.True(t, ok)
	assert.ErrorContains(t, failed.Err, "denied")

	_, ok = CopyTextCmd("x", "answer", nil)().(CopyErrorMsg)
	assert.True(t, ok)
}

func TestWatchFile_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.md")
	require.NoError(t, os.WriteFile(path, []byte("## User\nhi\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- WatchFile(ctx, path, func() { changed <- struct{}{} }, zerolog.Nop())
	}()

	// Writes to a sibling file are ignored; the watched file is reported.
	deadline := time.After(5 * time.Second)
	for {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "other.md"), []byte("x"), 0o644))
		require.NoError(t, os.WriteFile(path, []byte("## User\nhi again\n"), 0o644))
		select {
		case <-changed:
			cancel()
			assert.ErrorIs(t, <-done, context.Canceled)
			return
		case <-time.After(50 * time.Millisecond):
		case <-deadline:
			t.Fatal("no change reported")
		}
	}
}
