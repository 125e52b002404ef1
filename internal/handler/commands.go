package handler

import (
	"context"

	"authbot/internal/conversation"
	"authbot/internal/domain"
	"authbot/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	if sender := c.Sender(); sender != nil {
		h.logger.Info("User started bot",
			zap.Int64("user_id", sender.ID),
			zap.String("username", sender.Username),
		)
	}
	return h.dispatch(c, h.conv.Start)
}

// handleCancel handles /cancel command
func (h *Handler) handleCancel(c tele.Context) error {
	return h.dispatch(c, h.conv.Cancel)
}

// handleLogout handles /logout command
func (h *Handler) handleLogout(c tele.Context) error {
	return h.dispatch(c, h.conv.Logout)
}

// handleText handles plain text messages
func (h *Handler) handleText(c tele.Context) error {
	return h.dispatch(c, h.conv.Handle)
}

// handleContact handles shared contacts. Only the sender's own contact is
// accepted.
func (h *Handler) handleContact(c tele.Context) error {
	return h.dispatch(c, func(ctx context.Context, s *domain.SessionContext, in conversation.Input) []conversation.Reply {
		if in.Contact == nil {
			h.logger.Warn("Foreign contact rejected", zap.Int64("user_id", in.UserID))
			lang := i18n.Parse(s.Lang())
			return []conversation.Reply{{Text: i18n.Text(lang, i18n.KeyUseContactButton)}}
		}
		return h.conv.Handle(ctx, s, in)
	})
}

// toInput converts an update into engine input
func toInput(c tele.Context) conversation.Input {
	in := conversation.Input{Text: cleanInput(c.Text())}

	sender := c.Sender()
	if sender != nil {
		in.UserID = sender.ID
		in.Username = sender.Username
		in.FirstName = sender.FirstName
	}

	msg := c.Message()
	if msg != nil && msg.Contact != nil && sender != nil && msg.Contact.UserID == sender.ID {
		in.Contact = &conversation.Contact{Phone: cleanInput(msg.Contact.PhoneNumber)}
	}
	return in
}
