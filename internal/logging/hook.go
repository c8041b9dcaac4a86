package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies the conversation id from the event's context.
type ContextHook struct{}

func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}
	if id := ConversationID(ctx); id != "" {
		e.Str("conversation_id", id)
	}
}
