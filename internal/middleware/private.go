package middleware

import (
	"authbot/internal/metrics"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// PrivateOnly ignores updates outside private chats, so the operator group
// never starts a conversation
func PrivateOnly(logger *zap.Logger, m *metrics.Metrics) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if chat != nil && chat.Type != tele.ChatPrivate {
				logger.Debug("Ignoring update from non-private chat",
					zap.Int64("chat_id", chat.ID),
					zap.String("chat_type", string(chat.Type)),
				)
				m.ObserveDropped("not_private")
				return nil
			}
			return next(c)
		}
	}
}
