package handler

import (
	"context"
	"sync"

	"authbot/internal/conversation"
	"authbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Conversation runs the dialogue for one inbound message
type Conversation interface {
	Start(ctx context.Context, s *domain.SessionContext, in conversation.Input) []conversation.Reply
	Handle(ctx context.Context, s *domain.SessionContext, in conversation.Input) []conversation.Reply
	Cancel(ctx context.Context, s *domain.SessionContext, in conversation.Input) []conversation.Reply
	Logout(ctx context.Context, s *domain.SessionContext, in conversation.Input) []conversation.Reply
}

type step func(ctx context.Context, s *domain.SessionContext, in conversation.Input) []conversation.Reply

// Handler binds telegram updates to the conversation engine
type Handler struct {
	bot    *tele.Bot
	conv   Conversation
	logger *zap.Logger

	// User sessions (in-memory, lost on restart)
	sessions   map[int64]*domain.SessionContext
	sessionMux sync.RWMutex

	// One lock per user so that updates of a user are handled in order
	locks   map[int64]*sync.Mutex
	lockMux sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, conv Conversation, logger *zap.Logger) *Handler {
	return &Handler{
		bot:      bot,
		conv:     conv,
		logger:   logger,
		sessions: make(map[int64]*domain.SessionContext),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/cancel", h.handleCancel)
	h.bot.Handle("/logout", h.handleLogout)

	// Messages
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnContact, h.handleContact)
}

// session returns the user's session, creating it on first contact
func (h *Handler) session(userID int64) *domain.SessionContext {
	h.sessionMux.RLock()
	s, exists := h.sessions[userID]
	h.sessionMux.RUnlock()
	if exists {
		return s
	}

	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	if s, exists = h.sessions[userID]; !exists {
		s = domain.NewSessionContext()
		h.sessions[userID] = s
	}
	return s
}

// lock acquires the user's lock and returns its release func
func (h *Handler) lock(userID int64) func() {
	h.lockMux.Lock()
	mu, exists := h.locks[userID]
	if !exists {
		mu = &sync.Mutex{}
		h.locks[userID] = mu
	}
	h.lockMux.Unlock()

	mu.Lock()
	return mu.Unlock
}

// dispatch runs one step for the sender and sends its replies
func (h *Handler) dispatch(c tele.Context, run step) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	unlock := h.lock(sender.ID)
	defer unlock()

	s := h.session(sender.ID)
	from := s.State
	replies := run(context.Background(), s, toInput(c))

	if from != s.State {
		h.logger.Debug("Conversation moved",
			zap.Int64("user_id", sender.ID),
			zap.String("from", string(from)),
			zap.String("to", string(s.State)),
		)
	}

	return h.send(c, replies)
}
