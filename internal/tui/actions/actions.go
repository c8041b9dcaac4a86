package actions

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/threadnav/internal/app"
)

type Service interface {
	Open(ctx context.Context, target, override string) (app.Conversation, error)
	LoadMarked(ctx context.Context, sessionID string) map[string]struct{}
	ToggleMarked(ctx context.Context, sessionID, itemKey string, current bool) bool
}

const (
	SourceStartup = "startup"
	SourceManual  = "manual"
	SourceWatch   = "watch"
)

type ConversationLoadedMsg struct {
	Conversation app.Conversation
	Marked       map[string]struct{}
	Duration     time.Duration
	Source       string
}

type ConversationErrorMsg struct {
	Err      error
	Duration time.Duration
	Source   string
}

type PinToggledMsg struct {
	Index  int
	Pinned bool
	Status string
}

type OpenURLSuccessMsg struct {
	Status string
	Opened bool
}

type OpenURLErrorMsg struct {
	Err error
}

type CopySuccessMsg struct {
	Status string
}

type CopyErrorMsg struct {
	Err error
}

func LoadConversationCmd(service Service, target, override, source string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		start := time.Now()

		conv, err := service.Open(ctx, target, override)
		if err != nil {
			return ConversationErrorMsg{Err: err, Duration: time.Since(start), Source: source}
		}
		marked := service.LoadMarked(ctx, conv.SessionID)
		return ConversationLoadedMsg{Conversation: conv, Marked: marked, Duration: time.Since(start), Source: source}
	}
}

func TogglePinCmd(service Service, sessionID string, index int, current bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pinned := service.ToggleMarked(ctx, sessionID, app.ItemKey(index), current)
		status := fmt.Sprintf("Unpinned turn %d", index+1)
		switch {
		case pinned == current:
			status = "Pin not saved"
		case pinned:
			status = fmt.Sprintf("Pinned turn %d", index+1)
		}
		return PinToggledMsg{Index: index, Pinned: pinned, Status: status}
	}
}

func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Opened URL in browser", Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Could not open browser, URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not open URL or copy to clipboard")}
	}
}

// CopyTextCmd copies text and reports it under label ("answer", "URL").
func CopyTextCmd(text, label string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn == nil {
			return CopyErrorMsg{Err: fmt.Errorf("clipboard unavailable")}
		}
		if err := copyFn(text); err != nil {
			return CopyErrorMsg{Err: fmt.Errorf("copy %s: %w", label, err)}
		}
		return CopySuccessMsg{Status: fmt.Sprintf("Copied %s to clipboard", label)}
	}
}
