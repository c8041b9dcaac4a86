package app

//go:generate mockgen -destination=mocks/mock_app.go -package=mocks -source=app.go Loader,PinStore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/glabrego/threadnav/internal/conversation"
	"github.com/glabrego/threadnav/internal/fetch"
	"github.com/glabrego/threadnav/internal/logging"
	"github.com/glabrego/threadnav/internal/storage"
)

// ErrUnsupported is returned when no enabled adapter understands a page.
var ErrUnsupported = errors.New("no enabled adapter for page")

type Loader interface {
	Load(ctx context.Context, target string) (fetch.Resource, error)
}

type PinStore interface {
	LoadMarked(ctx context.Context, sessionID string) (map[string]struct{}, error)
	ToggleMarked(ctx context.Context, sessionID, itemKey string) (bool, error)
	RememberSession(ctx context.Context, sessionID, location string) error
	ListSessions(ctx context.Context) ([]storage.Session, error)
}

// Conversation is an opened page with its discovered turns.
type Conversation struct {
	Page      *conversation.Page
	Adapter   conversation.SiteAdapter
	SessionID string
	Turns     []conversation.Turn
}

type Service struct {
	loader  Loader
	pins    PinStore
	enabled func(host string) bool
	logger  zerolog.Logger
}

// NewService wires the loader and pin store. pins may be nil, in which case
// pins are neither loaded nor saved.
func NewService(loader Loader, pins PinStore, enabled func(host string) bool, logger zerolog.Logger) *Service {
	return &Service{loader: loader, pins: pins, enabled: enabled, logger: logger}
}

// Open loads target and discovers its turns. override replaces the page's
// own location when matching adapters.
func (s *Service) Open(ctx context.Context, target, override string) (Conversation, error) {
	res, err := s.loader.Load(ctx, target)
	if err != nil {
		return Conversation{}, fmt.Errorf("load %s: %w", target, err)
	}
	page, err := conversation.NewPage(res, override)
	if err != nil {
		return Conversation{}, fmt.Errorf("read %s: %w", target, err)
	}

	adapter, ok := conversation.Active(page.Location, s.enabled)
	if !ok {
		return Conversation{}, fmt.Errorf("%w: %s", ErrUnsupported, page.Location)
	}

	conv := Conversation{
		Page:      page,
		Adapter:   adapter,
		SessionID: conversation.SessionID(page.Location),
		Turns:     adapter.FindTurns(page),
	}

	ctx = logging.WithConversationID(ctx, conv.SessionID)
	s.logger.Debug().Ctx(ctx).
		Str("adapter", adapter.Name()).
		Int("turns", len(conv.Turns)).
		Msg("conversation opened")

	if s.pins != nil {
		if err := s.pins.RememberSession(ctx, conv.SessionID, page.Location.String()); err != nil {
			s.logger.Warn().Ctx(ctx).Err(err).Msg("failed to remember session")
		}
	}
	return conv, nil
}

// ItemKey is the persistence key of the turn at index.
func ItemKey(index int) string {
	return strconv.Itoa(index)
}

// LoadMarked returns the pinned item keys of a conversation. Failures are
// logged and read as "nothing pinned".
func (s *Service) LoadMarked(ctx context.Context, sessionID string) map[string]struct{} {
	if s.pins == nil || sessionID == "" {
		return map[string]struct{}{}
	}
	ctx = logging.WithConversationID(ctx, sessionID)
	marked, err := s.pins.LoadMarked(ctx, sessionID)
	if err != nil {
		s.logger.Warn().Ctx(ctx).Err(err).Msg("failed to load pins")
		return map[string]struct{}{}
	}
	return marked
}

// ToggleMarked flips a pin and returns the new state. On failure the
// previous state is returned unchanged.
func (s *Service) ToggleMarked(ctx context.Context, sessionID, itemKey string, current bool) bool {
	if s.pins == nil || sessionID == "" {
		return current
	}
	ctx = logging.WithConversationID(ctx, sessionID)
	pinned, err := s.pins.ToggleMarked(ctx, sessionID, itemKey)
	if err != nil {
		s.logger.Warn().Ctx(ctx).Err(err).Str("item", itemKey).Msg("failed to toggle pin")
		return current
	}
	return pinned
}

func (s *Service) Sessions(ctx context.Context) ([]storage.Session, error) {
	if s.pins == nil {
		return nil, nil
	}
	sessions, err := s.pins.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}
