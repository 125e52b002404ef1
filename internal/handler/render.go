package handler

import (
	"strings"
	"unicode"

	"authbot/internal/conversation"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanInput removes non-printable characters from user text. Line breaks
// are kept since appeal descriptions may span several lines.
func cleanInput(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(text))
}

// renderKeyboard converts an engine keyboard into telegram reply markup
func renderKeyboard(kb *conversation.Keyboard) *tele.ReplyMarkup {
	if kb == nil {
		return nil
	}
	if kb.Remove {
		return &tele.ReplyMarkup{RemoveKeyboard: true}
	}

	markup := &tele.ReplyMarkup{
		ResizeKeyboard:  true,
		OneTimeKeyboard: kb.OneTime,
	}
	rows := make([]tele.Row, 0, len(kb.Rows))
	for _, buttons := range kb.Rows {
		row := make(tele.Row, 0, len(buttons))
		for _, b := range buttons {
			if b.RequestContact {
				row = append(row, markup.Contact(b.Text))
			} else {
				row = append(row, markup.Text(b.Text))
			}
		}
		rows = append(rows, row)
	}
	markup.Reply(rows...)
	return markup
}

// send delivers replies in order and stops at the first failure
func (h *Handler) send(c tele.Context, replies []conversation.Reply) error {
	for _, r := range replies {
		if r.Text == "" {
			continue
		}

		var opts []interface{}
		if markup := renderKeyboard(r.Keyboard); markup != nil {
			opts = append(opts, markup)
		}
		if r.HTML {
			opts = append(opts, tele.ModeHTML)
		}

		if err := c.Send(r.Text, opts...); err != nil {
			h.logger.Error("Failed to send reply",
				zap.Error(err),
				zap.Int64("user_id", c.Sender().ID),
			)
			return err
		}
	}
	return nil
}
