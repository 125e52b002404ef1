package conversation

import (
	"context"
	"html"
	"net/http"

	"authbot/internal/backend"
	"authbot/internal/domain"
	"authbot/internal/i18n"

	"go.uber.org/zap"
)

// step handles one message in a given state
type step struct {
	run            func(ctx context.Context, t *turn) Event
	acceptsContact bool
}

func (e *Engine) buildSteps() map[domain.ConversationState]step {
	return map[domain.ConversationState]step{
		domain.StateLanguageSelect:            {run: e.languageSelect},
		domain.StateMainChoice:                {run: e.mainChoice},
		domain.StateGetCodeMenu:               {run: e.getCodeMenu},
		domain.StateCodePhoneEntry:            {run: e.codePhoneEntry, acceptsContact: true},
		domain.StateCodeVerify:                {run: e.codeVerify},
		domain.StateLoginPassword:             {run: e.loginPassword},
		domain.StateRegisterPhone:             {run: e.registerPhone, acceptsContact: true},
		domain.StateRegisterCodeEntry:         {run: e.registerCodeEntry},
		domain.StateRegisterData:              {run: e.registerData},
		domain.StateMainMenu:                  {run: e.mainMenu},
		domain.StateChangePhone:               {run: e.changePhone},
		domain.StateAppealTitle:               {run: e.appealTitle},
		domain.StateAppealDesc:                {run: e.appealDesc},
		domain.StateForgotPasswordContact:     {run: e.forgotContact, acceptsContact: true},
		domain.StateForgotPasswordCode:        {run: e.forgotCode},
		domain.StateForgotPasswordNewPassword: {run: e.forgotNewPassword},
	}
}

func (e *Engine) languageSelect(_ context.Context, t *turn) Event {
	lang, _ := i18n.DetectLang(t.text())
	t.session.Language = string(lang)
	t.say(i18n.KeyMainChoice, mainChoiceKeyboard(lang))
	return EventLanguageChosen
}

func (e *Engine) mainChoice(_ context.Context, t *turn) Event {
	lang := t.lang()
	switch mainChoiceMenu.resolve(t.text()) {
	case ActionLogin:
		t.session.CodeAction = domain.CodeActionNone
		t.say(i18n.KeySendPhone, contactKeyboard(lang))
		return EventChooseLogin
	case ActionGetCode:
		t.say(i18n.KeyGetCodeMenu, codeMenuKeyboard(lang))
		return EventChooseGetCode
	case ActionRegister:
		t.session.CodeAction = domain.CodeActionRegister
		t.say(i18n.KeyRegisterPhone, contactKeyboard(lang))
		return EventChooseRegister
	}
	t.say(i18n.KeyMainChoice, mainChoiceKeyboard(lang))
	return Stay
}

func (e *Engine) getCodeMenu(_ context.Context, t *turn) Event {
	lang := t.lang()
	action := domain.CodeActionNone
	switch codeMenu.resolve(t.text()) {
	case ActionBack:
		t.session.CodeAction = domain.CodeActionNone
		t.say(i18n.KeyMainChoice, mainChoiceKeyboard(lang))
		return EventBack
	case ActionCodeLogin:
		action = domain.CodeActionLogin
	case ActionCodeRegister:
		action = domain.CodeActionRegister
	case ActionCodeForgot:
		action = domain.CodeActionForgot
	default:
		t.say(i18n.KeyGetCodeMenu, codeMenuKeyboard(lang))
		return Stay
	}

	t.session.CodeAction = action
	t.say(i18n.KeySendPhone, contactKeyboard(lang))
	return EventCodeActionChosen
}

func (e *Engine) codePhoneEntry(ctx context.Context, t *turn) Event {
	s := t.session
	lang := t.lang()

	if t.in.Contact == nil {
		if isBack(t.text()) {
			if s.CodeAction != domain.CodeActionNone {
				s.CodeAction = domain.CodeActionNone
				t.say(i18n.KeyGetCodeMenu, codeMenuKeyboard(lang))
				return EventBackToCodeMenu
			}
			t.say(i18n.KeyMainChoice, mainChoiceKeyboard(lang))
			return EventBackToMainChoice
		}
		t.say(i18n.KeyUseContactButton, contactKeyboard(lang))
		return Stay
	}

	s.Phone = domain.NormalizePhone(t.in.Contact.Phone)
	if s.CodeAction == domain.CodeActionNone {
		t.say(i18n.KeySendPassword, removeKeyboard())
		return EventPasswordRequested
	}

	var (
		issued *backend.CodeIssued
		err    error
		sent   = i18n.KeyLoginCodeSent
	)
	switch s.CodeAction {
	case domain.CodeActionForgot:
		issued, err = e.backend.ForgotPassword(ctx, s.Phone)
		sent = i18n.KeyForgotPasswordCodeSent
	case domain.CodeActionRegister:
		issued, err = e.backend.SendCode(ctx, s.Phone, string(s.CodeAction))
		sent = i18n.KeyRegisterCodeSent
	default:
		issued, err = e.backend.SendCode(ctx, s.Phone, string(s.CodeAction))
	}
	if err != nil {
		e.fail(t, "send code", err, contactKeyboard(lang))
		return Stay
	}

	return e.codeIssued(t, issued, sent)
}

// codeIssued shows a one-time code returned by the backend
func (e *Engine) codeIssued(t *turn, issued *backend.CodeIssued, sent i18n.Key) Event {
	lang := t.lang()
	code := issued.Code.String()
	if code == "" {
		t.say(i18n.KeyCodeNotReceived, contactKeyboard(lang))
		return Stay
	}

	t.session.VerificationCode = code
	t.sendHTML(i18n.Format(lang, sent, html.EscapeString(code)), backKeyboard(lang))

	e.logger.Info("Verification code issued",
		zap.Int64("user_id", t.in.UserID),
		zap.String("action", string(t.session.CodeAction)),
	)
	return EventCodeSent
}

func (e *Engine) loginPassword(ctx context.Context, t *turn) Event {
	s := t.session
	lang := t.lang()

	s.Password = t.text()
	if s.Password == "" {
		t.say(i18n.KeySendPassword, nil)
		return Stay
	}

	auth, err := e.backend.Login(ctx, s.Phone, s.Password)
	s.Password = ""
	if err != nil {
		e.logger.Warn("Password login failed",
			zap.Int64("user_id", t.in.UserID),
			zap.Error(err),
		)
		if backend.IsUnavailable(err) {
			t.say(i18n.KeyConnectionError, mainChoiceKeyboard(lang))
		} else {
			t.say(i18n.KeyLoginFailed, mainChoiceKeyboard(lang))
		}
		return EventLoginFailed
	}

	if !e.completeLogin(ctx, t, auth, i18n.KeyLoginSuccess) {
		t.say(i18n.KeyMainChoice, mainChoiceKeyboard(lang))
		return EventLoginFailed
	}
	return EventLoggedIn
}

func (e *Engine) codeVerify(ctx context.Context, t *turn) Event {
	s := t.session
	lang := t.lang()
	text := t.text()

	if isBack(text) {
		s.ClearSecrets()
		t.say(i18n.KeyGetCodeMenu, codeMenuKeyboard(lang))
		return EventBack
	}
	if text == "" {
		t.say(i18n.KeyForgotPasswordEnterCode, backKeyboard(lang))
		return Stay
	}

	switch s.CodeAction {
	case domain.CodeActionForgot:
		return e.verifyReset(ctx, t, text)

	case domain.CodeActionRegister:
		if _, err := e.backend.VerifyCode(ctx, s.Phone, text); err != nil {
			e.verifyFailure(t, err, backKeyboard(lang))
			return Stay
		}
		s.VerificationCode = text
		t.sendHTML(i18n.Text(lang, i18n.KeyRegisterEnterData), backKeyboard(lang))
		return EventCodeAccepted
	}

	if err := e.backend.VerifyCodeAuth(ctx, s.Phone, text); err != nil {
		e.verifyFailure(t, err, backKeyboard(lang))
		return Stay
	}

	auth, err := e.backend.LoginWithCode(ctx, s.Phone, text)
	if err != nil {
		e.logger.Warn("Code login failed",
			zap.Int64("user_id", t.in.UserID),
			zap.Error(err),
		)
		if backend.IsUnavailable(err) {
			t.say(i18n.KeyConnectionError, backKeyboard(lang))
		} else {
			t.say(i18n.KeyLoginFailed, backKeyboard(lang))
		}
		return Stay
	}

	if !e.completeLogin(ctx, t, auth, i18n.KeyLoginSuccess) {
		return Stay
	}
	return EventLoggedIn
}

// verifyReset checks a password reset code and keeps the reset token
func (e *Engine) verifyReset(ctx context.Context, t *turn, code string) Event {
	s := t.session
	lang := t.lang()

	v, err := e.backend.VerifyCode(ctx, s.Phone, code)
	if err != nil {
		e.verifyFailure(t, err, backKeyboard(lang))
		return Stay
	}
	if v.ResetToken == "" {
		t.say(i18n.KeyTokenNotReceived, backKeyboard(lang))
		return Stay
	}

	s.VerificationCode = code
	s.ResetToken = v.ResetToken
	t.say(i18n.KeyForgotPasswordCodeVerified, backKeyboard(lang))
	return EventResetAuthorized
}

// completeLogin persists an authenticated profile. The session is only
// marked logged in once the store write succeeded.
func (e *Engine) completeLogin(ctx context.Context, t *turn, auth *backend.AuthSession, successKey i18n.Key) bool {
	s := t.session

	rec := &domain.UserRecord{
		UserID:       t.in.UserID,
		Phone:        orDefault(s.Phone, auth.PhoneNumber),
		FullName:     orDefault(auth.FullName, "User"),
		Role:         orDefault(auth.Role, "user"),
		Balance:      orDefault(auth.Balans.String(), "0"),
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
		Language:     s.Lang(),
		LoggedIn:     true,
	}
	if err := e.store.Save(ctx, rec); err != nil {
		e.logger.Error("Failed to save profile",
			zap.Int64("user_id", t.in.UserID),
			zap.Error(err),
		)
		t.say(i18n.KeyInternalError, nil)
		return false
	}

	s.Profile = rec.Clone()
	s.Phone = rec.Phone
	s.ClearSecrets()

	lang := t.lang()
	t.send(i18n.Text(lang, successKey)+"\n\n"+e.profileCard(lang, s.Profile), mainMenuKeyboard(lang))

	e.logger.Info("User logged in", zap.Int64("user_id", t.in.UserID))
	return true
}

// fail reports a backend error. Rejections show the backend message,
// everything else the generic connection error.
func (e *Engine) fail(t *turn, op string, err error, kb *Keyboard) {
	e.logger.Warn("Backend call failed",
		zap.Int64("user_id", t.in.UserID),
		zap.String("op", op),
		zap.Error(err),
	)

	lang := t.lang()
	if rej, ok := backend.AsRejected(err); ok {
		reason := rej.Message
		if reason == "" {
			reason = i18n.Text(lang, i18n.KeyUnknownError)
		}
		t.send(i18n.Format(lang, i18n.KeyErrorWithReason, reason), kb)
		return
	}
	t.say(i18n.KeyConnectionError, kb)
}

// verifyFailure reports a failed code check. A well-formed success=false
// answer means the code was wrong.
func (e *Engine) verifyFailure(t *turn, err error, kb *Keyboard) {
	if rej, ok := backend.AsRejected(err); ok && rej.StatusCode == http.StatusOK {
		e.logger.Info("Invalid verification code", zap.Int64("user_id", t.in.UserID))
		t.say(i18n.KeyInvalidCode, kb)
		return
	}
	e.fail(t, "verify code", err, kb)
}
