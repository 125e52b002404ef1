package middleware

import (
	"runtime/debug"

	"authbot/internal/metrics"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recover stops a panicking handler from taking the bot down. The update is
// dropped.
func Recover(logger *zap.Logger, m *metrics.Metrics) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					fields := []zap.Field{
						zap.Any("panic", r),
						zap.ByteString("stack", debug.Stack()),
					}
					if sender := c.Sender(); sender != nil {
						fields = append(fields, zap.Int64("user_id", sender.ID))
					}
					logger.Error("Recovered from panic in handler", fields...)
					m.ObserveDropped("panic")
					err = nil
				}
			}()
			return next(c)
		}
	}
}
