package middleware

import (
	"sync"

	"authbot/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v3"
)

// RateLimit drops updates of users that exceed perSecond messages with the
// given burst
func RateLimit(perSecond float64, burst int, logger *zap.Logger, m *metrics.Metrics) tele.MiddlewareFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[int64]*rate.Limiter)
	)

	limiter := func(userID int64) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		l, exists := limiters[userID]
		if !exists {
			l = rate.NewLimiter(rate.Limit(perSecond), burst)
			limiters[userID] = l
		}
		return l
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			if !limiter(sender.ID).Allow() {
				logger.Warn("Rate limit exceeded", zap.Int64("user_id", sender.ID))
				m.ObserveDropped("rate_limited")
				return nil
			}
			return next(c)
		}
	}
}
