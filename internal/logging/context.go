package logging

import "context"

type contextKey string

const conversationIDKey contextKey = "conversation_id"

// WithConversationID adds a conversation ID to the context.
func WithConversationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, conversationIDKey, id)
}

// ConversationID retrieves the conversation ID from the context.
// Returns empty string if not present.
func ConversationID(ctx context.Context) string {
	if id, ok := ctx.Value(conversationIDKey).(string); ok {
		return id
	}
	return ""
}
