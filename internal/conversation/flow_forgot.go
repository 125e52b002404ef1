package conversation

import (
	"context"

	"authbot/internal/domain"
	"authbot/internal/i18n"

	"go.uber.org/zap"
)

func (e *Engine) forgotContact(ctx context.Context, t *turn) Event {
	s := t.session
	lang := t.lang()

	if t.in.Contact == nil {
		if isBack(t.text()) {
			s.ClearSecrets()
			t.say(i18n.KeyMainMenu, mainMenuKeyboard(lang))
			return EventBack
		}
		t.say(i18n.KeyUseContactButton, contactKeyboard(lang))
		return Stay
	}

	s.Phone = domain.NormalizePhone(t.in.Contact.Phone)
	s.CodeAction = domain.CodeActionForgot

	issued, err := e.backend.ForgotPassword(ctx, s.Phone)
	if err != nil {
		e.fail(t, "forgot password", err, contactKeyboard(lang))
		return Stay
	}
	return e.codeIssued(t, issued, i18n.KeyForgotPasswordCodeSent)
}

func (e *Engine) forgotCode(ctx context.Context, t *turn) Event {
	lang := t.lang()
	text := t.text()

	if isBack(text) {
		t.session.ClearSecrets()
		t.say(i18n.KeyMainMenu, mainMenuKeyboard(lang))
		return EventBack
	}
	if text == "" {
		t.say(i18n.KeyForgotPasswordEnterCode, backKeyboard(lang))
		return Stay
	}
	return e.verifyReset(ctx, t, text)
}

func (e *Engine) forgotNewPassword(ctx context.Context, t *turn) Event {
	s := t.session
	lang := t.lang()
	text := t.text()

	if isBack(text) {
		s.ClearSecrets()
		return e.leaveReset(t)
	}
	if s.ResetToken == "" {
		t.say(i18n.KeyTokenNotReceived, nil)
		s.ClearSecrets()
		return e.leaveReset(t)
	}
	if err := domain.ValidateNewPassword(text); err != nil {
		t.say(i18n.KeyPasswordTooShort, backKeyboard(lang))
		return Stay
	}

	if err := e.backend.ResetPassword(ctx, s.ResetToken, text); err != nil {
		e.fail(t, "reset password", err, backKeyboard(lang))
		return Stay
	}

	s.ClearSecrets()
	s.Phone = ""

	e.logger.Info("Password reset", zap.Int64("user_id", t.in.UserID))

	success := i18n.Text(lang, i18n.KeyForgotPasswordSuccess) + "\n\n"
	if s.LoggedIn() {
		t.send(success+i18n.Text(lang, i18n.KeyMainMenu), mainMenuKeyboard(lang))
		return EventPasswordReset
	}
	t.send(success+i18n.Text(lang, i18n.KeyMainChoice), mainChoiceKeyboard(lang))
	return EventPasswordResetSignedOut
}

// leaveReset returns to where the reset flow was entered from
func (e *Engine) leaveReset(t *turn) Event {
	lang := t.lang()
	if t.session.LoggedIn() {
		t.say(i18n.KeyMainMenu, mainMenuKeyboard(lang))
		return EventBackToMainMenu
	}
	t.say(i18n.KeyGetCodeMenu, codeMenuKeyboard(lang))
	return EventBackToCodeMenu
}
