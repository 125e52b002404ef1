package conversation

import (
	"context"

	"authbot/internal/domain"
	"authbot/internal/i18n"

	"go.uber.org/zap"
)

func (e *Engine) mainMenu(ctx context.Context, t *turn) Event {
	s := t.session

	// the store is the source of truth for language and profile data
	rec, err := e.store.Get(ctx, t.in.UserID)
	if err != nil {
		e.logger.Warn("Failed to refresh profile",
			zap.Int64("user_id", t.in.UserID),
			zap.Error(err),
		)
	} else if rec != nil {
		s.Profile = rec.Clone()
		if rec.Language != "" {
			s.Language = rec.Language
		}
	}

	lang := t.lang()
	text := t.text()

	switch mainMenu.resolve(text) {
	case ActionProfile:
		t.send(e.profileCard(lang, s.Profile), mainMenuKeyboard(lang))
		return Stay
	case ActionChangePhone:
		t.say(i18n.KeyEnterNewPhone, backKeyboard(lang))
		return EventChangePhone
	case ActionContactAdmin:
		s.AppealTitle = ""
		t.say(i18n.KeyEnterAppealTitle, backKeyboard(lang))
		return EventContactAdmin
	case ActionForgotPassword:
		s.ClearSecrets()
		s.CodeAction = domain.CodeActionForgot
		t.say(i18n.KeyForgotPasswordWelcome, contactKeyboard(lang))
		return EventForgotPassword
	case ActionSettings:
		t.say(i18n.KeyChooseLang, languageKeyboard())
		return Stay
	case ActionLogout:
		return e.logout(ctx, t)
	}

	if l, ok := i18n.DetectLang(text); ok {
		return e.changeLanguage(ctx, t, rec, l)
	}

	t.say(i18n.KeyMainMenu, mainMenuKeyboard(lang))
	return Stay
}

// changeLanguage stores a new interface language. Users the store does not
// know as logged in are sent back to language selection.
func (e *Engine) changeLanguage(ctx context.Context, t *turn, rec *domain.UserRecord, lang i18n.Lang) Event {
	s := t.session

	if rec == nil || !rec.LoggedIn {
		s.ClearFlow()
		s.Profile = nil
		s.Language = ""
		t.send(i18n.Text(i18n.Default, i18n.KeyWelcome), languageKeyboard())
		return EventStart
	}

	updated := rec.Clone()
	updated.Language = string(lang)
	if err := e.store.Save(ctx, updated); err != nil {
		e.logger.Error("Failed to save language",
			zap.Int64("user_id", t.in.UserID),
			zap.Error(err),
		)
		t.say(i18n.KeyInternalError, mainMenuKeyboard(t.lang()))
		return Stay
	}

	s.Profile = updated
	s.Language = string(lang)
	t.send(i18n.Text(lang, i18n.KeyLanguageChanged)+"\n\n"+i18n.Text(lang, i18n.KeyMainMenu), mainMenuKeyboard(lang))

	e.logger.Info("User changed language",
		zap.Int64("user_id", t.in.UserID),
		zap.String("lang", string(lang)),
	)
	return Stay
}

func (e *Engine) changePhone(ctx context.Context, t *turn) Event {
	s := t.session
	lang := t.lang()
	text := t.text()

	if isBack(text) {
		t.say(i18n.KeyMainMenu, mainMenuKeyboard(lang))
		return EventBack
	}
	if !domain.ValidatePhone(text) {
		t.say(i18n.KeyInvalidPhone, backKeyboard(lang))
		return Stay
	}
	phone := domain.NormalizePhone(text)

	rec, err := e.store.Get(ctx, t.in.UserID)
	if err != nil {
		e.logger.Error("Failed to load profile",
			zap.Int64("user_id", t.in.UserID),
			zap.Error(err),
		)
		t.say(i18n.KeyInternalError, backKeyboard(lang))
		return Stay
	}
	if rec == nil {
		rec = &domain.UserRecord{UserID: t.in.UserID, Language: s.Lang()}
	} else {
		rec = rec.Clone()
	}
	rec.Phone = phone

	if err := e.store.Save(ctx, rec); err != nil {
		e.logger.Error("Failed to save phone",
			zap.Int64("user_id", t.in.UserID),
			zap.Error(err),
		)
		t.say(i18n.KeyInternalError, backKeyboard(lang))
		return Stay
	}

	s.Phone = phone
	if s.Profile != nil {
		s.Profile = rec
	}
	t.say(i18n.KeyPhoneUpdated, mainMenuKeyboard(lang))

	e.logger.Info("User changed phone", zap.Int64("user_id", t.in.UserID))
	return EventPhoneChanged
}
