package conversation

import (
	"context"

	"authbot/internal/i18n"
	"authbot/internal/metrics"

	"go.uber.org/zap"
)

func (e *Engine) appealTitle(_ context.Context, t *turn) Event {
	lang := t.lang()
	text := t.text()

	if isBack(text) {
		t.say(i18n.KeyMainMenu, mainMenuKeyboard(lang))
		return EventBack
	}
	if text == "" {
		t.say(i18n.KeyEnterAppealTitle, backKeyboard(lang))
		return Stay
	}

	t.session.AppealTitle = text
	t.say(i18n.KeyEnterAppealDesc, backKeyboard(lang))
	return EventAppealTitled
}

// appealDesc forwards the appeal. The flow returns to the main menu even
// when delivery failed.
func (e *Engine) appealDesc(ctx context.Context, t *turn) Event {
	s := t.session
	lang := t.lang()
	text := t.text()

	if isBack(text) {
		s.AppealTitle = ""
		t.say(i18n.KeyMainMenu, mainMenuKeyboard(lang))
		return EventBack
	}
	if text == "" {
		t.say(i18n.KeyEnterAppealDesc, backKeyboard(lang))
		return Stay
	}

	if rec, err := e.store.Get(ctx, t.in.UserID); err == nil && rec != nil {
		s.Profile = rec.Clone()
	}

	report := e.appealReport(t.in, s, orDefault(s.AppealTitle, "N/A"), text)
	s.AppealTitle = ""

	if err := e.notifier.Notify(ctx, report); err != nil {
		e.logger.Error("Failed to deliver appeal",
			zap.Int64("user_id", t.in.UserID),
			zap.Error(err),
		)
		e.metrics.ObserveAppeal(metrics.AppealFailed)
		t.send(i18n.Format(lang, i18n.KeyAppealFailed, err.Error()), mainMenuKeyboard(lang))
		return EventAppealSubmitted
	}

	e.metrics.ObserveAppeal(metrics.AppealSent)
	t.say(i18n.KeyAppealSent, mainMenuKeyboard(lang))

	e.logger.Info("Appeal delivered", zap.Int64("user_id", t.in.UserID))
	return EventAppealSubmitted
}
