// Package conversation implements the dialogue state machine of the bot.
//
// Every inbound message is handled by the step bound to the session's
// current state. A step validates the input, talks to the backend and the
// profile store, queues replies and reports an Event. The transition table
// in machine.go maps (state, event) to the next state.
package conversation

import (
	"context"
	"strings"
	"time"

	"authbot/internal/backend"
	"authbot/internal/domain"
	"authbot/internal/i18n"
	"authbot/internal/metrics"

	"go.uber.org/zap"
)

// ProfileStore persists user profiles
type ProfileStore interface {
	Get(ctx context.Context, userID int64) (*domain.UserRecord, error)
	Save(ctx context.Context, user *domain.UserRecord) error
	Logout(ctx context.Context, userID int64) error
}

// Backend is the authentication API
type Backend interface {
	SendCode(ctx context.Context, phone, action string) (*backend.CodeIssued, error)
	SendRegisterCode(ctx context.Context, phone string) (*backend.CodeIssued, error)
	ForgotPassword(ctx context.Context, phone string) (*backend.CodeIssued, error)
	VerifyCode(ctx context.Context, phone, code string) (*backend.Verification, error)
	VerifyCodeAuth(ctx context.Context, phone, code string) error
	Login(ctx context.Context, phone, password string) (*backend.AuthSession, error)
	LoginWithCode(ctx context.Context, phone, code string) (*backend.AuthSession, error)
	Register(ctx context.Context, req backend.RegisterRequest) (*backend.AuthSession, error)
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

// Notifier delivers appeal reports to the operator channel
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Contact is a phone number shared through the chat client
type Contact struct {
	Phone string
}

// Input is one inbound message
type Input struct {
	UserID    int64
	Username  string
	FirstName string
	Text      string
	Contact   *Contact
}

// Reply is one outbound message
type Reply struct {
	Text     string
	Keyboard *Keyboard
	HTML     bool
}

// Engine runs conversation steps. It holds no per-user state; sessions are
// owned by the caller and must not be used concurrently.
type Engine struct {
	store    ProfileStore
	backend  Backend
	notifier Notifier
	logger   *zap.Logger
	metrics  *metrics.Metrics
	now      func() time.Time

	steps map[domain.ConversationState]step
}

// Option configures an Engine
type Option func(*Engine)

// WithMetrics records state transitions and appeal outcomes
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithClock overrides the time source used in profile cards and reports
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates a conversation engine
func NewEngine(store ProfileStore, api Backend, notifier Notifier, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		backend:  api,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.steps = e.buildSteps()
	return e
}

// turn carries the data of one message through a step
type turn struct {
	in      Input
	session *domain.SessionContext
	replies []Reply
}

func (t *turn) lang() i18n.Lang {
	return i18n.Parse(t.session.Lang())
}

func (t *turn) text() string {
	return strings.TrimSpace(t.in.Text)
}

func (t *turn) send(text string, kb *Keyboard) {
	t.replies = append(t.replies, Reply{Text: text, Keyboard: kb})
}

func (t *turn) sendHTML(text string, kb *Keyboard) {
	t.replies = append(t.replies, Reply{Text: text, Keyboard: kb, HTML: true})
}

func (t *turn) say(key i18n.Key, kb *Keyboard) {
	t.send(i18n.Text(t.lang(), key), kb)
}

// Start handles /start: a stored logged-in profile resumes at the main
// menu, everybody else starts at language selection.
func (e *Engine) Start(ctx context.Context, s *domain.SessionContext, in Input) []Reply {
	t := &turn{in: in, session: s}

	rec, err := e.store.Get(ctx, in.UserID)
	if err != nil {
		e.logger.Error("Failed to load profile on start",
			zap.Int64("user_id", in.UserID),
			zap.Error(err),
		)
		rec = nil
	}

	s.Reset()
	if rec != nil && rec.LoggedIn {
		s.Rehydrate(rec)
		lang := t.lang()
		t.send(i18n.Format(lang, i18n.KeyWelcomeBack, displayName(in))+"\n\n"+e.profileCard(lang, s.Profile), mainMenuKeyboard(lang))
		e.fire(ctx, s, EventResume)
		return t.replies
	}

	t.send(i18n.Format(i18n.Default, i18n.KeyGreeting, displayName(in))+i18n.Text(i18n.Default, i18n.KeyWelcome), languageKeyboard())
	e.fire(ctx, s, EventStart)
	return t.replies
}

// Handle processes a text or contact message
func (e *Engine) Handle(ctx context.Context, s *domain.SessionContext, in Input) []Reply {
	st, ok := e.steps[s.State]
	if !ok {
		// terminal state, only /start re-enters the machine
		return nil
	}
	if in.Contact != nil && !st.acceptsContact {
		return nil
	}

	t := &turn{in: in, session: s}
	ev := st.run(ctx, t)
	e.fire(ctx, s, ev)
	return t.replies
}

// Cancel aborts the current flow
func (e *Engine) Cancel(ctx context.Context, s *domain.SessionContext, in Input) []Reply {
	t := &turn{in: in, session: s}
	t.say(i18n.KeyCancel, removeKeyboard())
	s.ClearFlow()
	e.fire(ctx, s, EventFinish)
	return t.replies
}

// Logout clears the stored login flag and ends the session
func (e *Engine) Logout(ctx context.Context, s *domain.SessionContext, in Input) []Reply {
	t := &turn{in: in, session: s}
	e.fire(ctx, s, e.logout(ctx, t))
	return t.replies
}

func (e *Engine) logout(ctx context.Context, t *turn) Event {
	if err := e.store.Logout(ctx, t.in.UserID); err != nil {
		e.logger.Error("Failed to log out user",
			zap.Int64("user_id", t.in.UserID),
			zap.Error(err),
		)
		t.say(i18n.KeyInternalError, nil)
		return Stay
	}

	lang := t.lang()
	t.session.Reset()
	t.send(i18n.Text(lang, i18n.KeyLogoutSuccess), removeKeyboard())

	e.logger.Info("User logged out", zap.Int64("user_id", t.in.UserID))
	return EventFinish
}

func displayName(in Input) string {
	if in.FirstName != "" {
		return in.FirstName
	}
	if in.Username != "" {
		return in.Username
	}
	return "User"
}
