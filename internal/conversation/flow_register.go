package conversation

import (
	"context"

	"authbot/internal/backend"
	"authbot/internal/domain"
	"authbot/internal/i18n"

	"go.uber.org/zap"
)

func (e *Engine) registerPhone(ctx context.Context, t *turn) Event {
	s := t.session
	lang := t.lang()

	if t.in.Contact == nil {
		if isBack(t.text()) {
			s.ClearFlow()
			t.say(i18n.KeyMainChoice, mainChoiceKeyboard(lang))
			return EventBack
		}
		t.say(i18n.KeyUseContactButton, contactKeyboard(lang))
		return Stay
	}

	s.Phone = domain.NormalizePhone(t.in.Contact.Phone)
	s.CodeAction = domain.CodeActionRegister

	issued, err := e.backend.SendRegisterCode(ctx, s.Phone)
	if err != nil {
		e.fail(t, "send register code", err, contactKeyboard(lang))
		return Stay
	}
	return e.codeIssued(t, issued, i18n.KeyRegisterCodeSent)
}

// registerCodeEntry keeps the typed code; the backend checks it on register
func (e *Engine) registerCodeEntry(_ context.Context, t *turn) Event {
	lang := t.lang()
	text := t.text()

	if isBack(text) {
		t.session.VerificationCode = ""
		t.say(i18n.KeyRegisterPhone, contactKeyboard(lang))
		return EventBack
	}
	if text == "" {
		t.say(i18n.KeyRegisterEnterCode, backKeyboard(lang))
		return Stay
	}

	t.session.VerificationCode = text
	t.sendHTML(i18n.Text(lang, i18n.KeyRegisterEnterData), backKeyboard(lang))
	return EventCodeAccepted
}

func (e *Engine) registerData(ctx context.Context, t *turn) Event {
	s := t.session
	lang := t.lang()
	text := t.text()

	if isBack(text) {
		t.say(i18n.KeyRegisterEnterCode, backKeyboard(lang))
		return EventBack
	}

	reg, err := domain.ParseRegistration(text)
	if err != nil {
		t.sendHTML(i18n.Text(lang, i18n.KeyInvalidRegister), backKeyboard(lang))
		return Stay
	}

	auth, err := e.backend.Register(ctx, backend.RegisterRequest{
		FullName:    reg.FullName,
		PhoneNumber: s.Phone,
		Password:    reg.Password,
		Role:        reg.Role,
		Code:        s.VerificationCode,
	})
	if err != nil {
		e.fail(t, "register", err, backKeyboard(lang))
		return Stay
	}

	if auth.FullName == "" {
		auth.FullName = reg.FullName
	}
	if auth.Role == "" {
		auth.Role = reg.Role
	}
	if !e.completeLogin(ctx, t, auth, i18n.KeyRegisterSuccess) {
		return Stay
	}

	e.logger.Info("User registered",
		zap.Int64("user_id", t.in.UserID),
		zap.String("role", reg.Role),
	)
	return EventLoggedIn
}
