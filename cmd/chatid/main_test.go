package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestDescribeChat(t *testing.T) {
	tests := []struct {
		name     string
		chat     *tele.Chat
		sender   *tele.User
		expected string
	}{
		{
			name:   "group with caller",
			chat:   &tele.Chat{ID: -100123, Type: tele.ChatSuperGroup, Title: "Operators"},
			sender: &tele.User{ID: 42, Username: "jane"},
			expected: "🆔 Chat ID: <code>-100123</code>\n📂 Type: supergroup\n🏷 Title: Operators\n" +
				"👤 User ID: <code>42</code>\n🌐 Username: @jane",
		},
		{
			name:     "private chat without username",
			chat:     &tele.Chat{ID: 42, Type: tele.ChatPrivate},
			sender:   &tele.User{ID: 42},
			expected: "🆔 Chat ID: <code>42</code>\n📂 Type: private\n👤 User ID: <code>42</code>",
		},
		{
			name:     "channel post",
			chat:     &tele.Chat{ID: -100555, Type: tele.ChatChannel, Title: "News"},
			expected: "🆔 Chat ID: <code>-100555</code>\n📂 Type: channel\n🏷 Title: News",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, describeChat(tt.chat, tt.sender))
		})
	}
}
