package handler

import (
	"context"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Sender delivers a message to a chat
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// OperatorNotifier posts appeal reports to the operator group
type OperatorNotifier struct {
	sender Sender
	chatID int64
	logger *zap.Logger
}

// NewOperatorNotifier creates a notifier for the given chat
func NewOperatorNotifier(sender Sender, chatID int64, logger *zap.Logger) *OperatorNotifier {
	return &OperatorNotifier{
		sender: sender,
		chatID: chatID,
		logger: logger,
	}
}

// Notify sends text to the operator chat
func (n *OperatorNotifier) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := n.sender.Send(tele.ChatID(n.chatID), text); err != nil {
		n.logger.Error("Failed to notify operators",
			zap.Error(err),
			zap.Int64("chat_id", n.chatID),
		)
		return err
	}
	return nil
}
