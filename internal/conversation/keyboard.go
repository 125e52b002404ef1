package conversation

import "authbot/internal/i18n"

// Button is one reply keyboard button
type Button struct {
	Text           string
	RequestContact bool
}

// Keyboard is a transport independent reply keyboard. Remove asks the
// client to hide the current keyboard.
type Keyboard struct {
	Rows    [][]Button
	OneTime bool
	Remove  bool
}

func row(labels ...string) []Button {
	out := make([]Button, len(labels))
	for i, l := range labels {
		out[i] = Button{Text: l}
	}
	return out
}

func languageKeyboard() *Keyboard {
	kb := &Keyboard{OneTime: true}
	for _, l := range i18n.Languages {
		kb.Rows = append(kb.Rows, row(i18n.LanguageLabel(l)))
	}
	return kb
}

func mainChoiceKeyboard(lang i18n.Lang) *Keyboard {
	return &Keyboard{
		Rows: [][]Button{
			row(i18n.Text(lang, i18n.KeyLogin)),
			row(i18n.Text(lang, i18n.KeyGetCode)),
			row(i18n.Text(lang, i18n.KeyRegister)),
		},
		OneTime: true,
	}
}

func codeMenuKeyboard(lang i18n.Lang) *Keyboard {
	return &Keyboard{
		Rows: [][]Button{
			row(i18n.Text(lang, i18n.KeyGetCodeLogin)),
			row(i18n.Text(lang, i18n.KeyGetCodeRegister)),
			row(i18n.Text(lang, i18n.KeyGetCodeForgot)),
			row(i18n.Text(lang, i18n.KeyBack)),
		},
	}
}

func mainMenuKeyboard(lang i18n.Lang) *Keyboard {
	return &Keyboard{
		Rows: [][]Button{
			row(i18n.Text(lang, i18n.KeyProfile), i18n.Text(lang, i18n.KeyContactAdmin)),
			row(i18n.Text(lang, i18n.KeyChangePhone), i18n.Text(lang, i18n.KeyForgotPassword)),
			row(i18n.Text(lang, i18n.KeySettings), i18n.Text(lang, i18n.KeyLogout)),
		},
	}
}

func backKeyboard(lang i18n.Lang) *Keyboard {
	return &Keyboard{Rows: [][]Button{row(i18n.Text(lang, i18n.KeyBack))}}
}

func contactKeyboard(lang i18n.Lang) *Keyboard {
	return &Keyboard{
		Rows: [][]Button{
			{{Text: i18n.Text(lang, i18n.KeySendPhoneContact), RequestContact: true}},
			row(i18n.Text(lang, i18n.KeyBack)),
		},
		OneTime: true,
	}
}

func removeKeyboard() *Keyboard {
	return &Keyboard{Remove: true}
}
