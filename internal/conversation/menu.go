package conversation

import (
	"strings"

	"authbot/internal/i18n"
)

// MenuAction is the resolved meaning of a menu button
type MenuAction int

const (
	ActionNone MenuAction = iota
	ActionBack
	ActionLogin
	ActionGetCode
	ActionRegister
	ActionCodeLogin
	ActionCodeRegister
	ActionCodeForgot
	ActionProfile
	ActionChangePhone
	ActionContactAdmin
	ActionForgotPassword
	ActionSettings
	ActionLogout
)

type menuEntry struct {
	action MenuAction
	key    i18n.Key
	emoji  string
}

type menu []menuEntry

var (
	mainChoiceMenu = menu{
		{ActionLogin, i18n.KeyLogin, "🔐"},
		{ActionGetCode, i18n.KeyGetCode, "📱"},
		{ActionRegister, i18n.KeyRegister, "📝"},
	}

	codeMenu = menu{
		{ActionBack, i18n.KeyBack, "🔙"},
		{ActionCodeLogin, i18n.KeyGetCodeLogin, "🔐"},
		{ActionCodeRegister, i18n.KeyGetCodeRegister, "📝"},
		{ActionCodeForgot, i18n.KeyGetCodeForgot, "🔑"},
	}

	mainMenu = menu{
		{ActionProfile, i18n.KeyProfile, "👤"},
		{ActionChangePhone, i18n.KeyChangePhone, "📱"},
		{ActionContactAdmin, i18n.KeyContactAdmin, "📨"},
		{ActionForgotPassword, i18n.KeyForgotPassword, "🔑"},
		// clients may drop the variation selector of ⚙️
		{ActionSettings, i18n.KeySettings, "⚙"},
		{ActionLogout, i18n.KeyLogout, "🚪"},
	}

	backMenu = menu{
		{ActionBack, i18n.KeyBack, "🔙"},
	}
)

// resolve maps free text to a menu action. A localized label contained in
// the text wins over an emoji match; a text equal to a label without its
// emoji is accepted last.
func (m menu) resolve(text string) MenuAction {
	for _, entry := range m {
		for _, l := range i18n.Languages {
			if strings.Contains(text, i18n.Text(l, entry.key)) {
				return entry.action
			}
		}
	}

	for _, entry := range m {
		if entry.emoji != "" && strings.Contains(text, entry.emoji) {
			return entry.action
		}
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ActionNone
	}
	for _, entry := range m {
		for _, l := range i18n.Languages {
			if strings.EqualFold(trimmed, i18n.Bare(i18n.Text(l, entry.key))) {
				return entry.action
			}
		}
	}
	return ActionNone
}

func isBack(text string) bool {
	return backMenu.resolve(text) == ActionBack
}
