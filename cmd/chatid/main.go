// Command chatid answers /start and /id with the current chat id. Add the
// bot to the operator group and send /id to find ADMIN_GROUP_ID.
package main

import (
	"fmt"
	"html"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	_ = godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		logger.Fatal("BOT_TOKEN is required")
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	reply := func(c tele.Context) error {
		chat := c.Chat()
		logger.Info("Chat id requested",
			zap.Int64("chat_id", chat.ID),
			zap.String("chat_type", string(chat.Type)),
		)
		return c.Send(describeChat(chat, c.Sender()), tele.ModeHTML)
	}
	bot.Handle("/start", reply)
	bot.Handle("/id", reply)

	go func() {
		logger.Info("Chat id helper started", zap.String("username", bot.Me.Username))
		bot.Start()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	bot.Stop()
}

// describeChat renders the chat and caller details
func describeChat(chat *tele.Chat, sender *tele.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🆔 Chat ID: <code>%d</code>\n", chat.ID)
	fmt.Fprintf(&b, "📂 Type: %s\n", chat.Type)
	if chat.Title != "" {
		fmt.Fprintf(&b, "🏷 Title: %s\n", html.EscapeString(chat.Title))
	}
	if sender != nil {
		fmt.Fprintf(&b, "👤 User ID: <code>%d</code>\n", sender.ID)
		if sender.Username != "" {
			fmt.Fprintf(&b, "🌐 Username: @%s\n", sender.Username)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
