package handler

import (
	"context"
	"errors"
	"testing"

	"authbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type recordingSender struct {
	to   tele.Recipient
	what interface{}
	err  error
}

func (s *recordingSender) Send(to tele.Recipient, what interface{}, _ ...interface{}) (*tele.Message, error) {
	s.to = to
	s.what = what
	if s.err != nil {
		return nil, s.err
	}
	return &tele.Message{}, nil
}

func TestOperatorNotifier_Notify(t *testing.T) {
	sender := &recordingSender{}
	n := NewOperatorNotifier(sender, -100123, testutil.NewTestLogger())

	require.NoError(t, n.Notify(context.Background(), "report"))

	assert.Equal(t, "-100123", sender.to.Recipient())
	assert.Equal(t, "report", sender.what)
}

func TestOperatorNotifier_SendFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("chat not found")}
	n := NewOperatorNotifier(sender, -100123, testutil.NewTestLogger())

	err := n.Notify(context.Background(), "report")

	assert.EqualError(t, err, "chat not found")
}

func TestOperatorNotifier_CanceledContext(t *testing.T) {
	sender := &recordingSender{}
	n := NewOperatorNotifier(sender, -100123, testutil.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, n.Notify(ctx, "report"), context.Canceled)
	assert.Nil(t, sender.to)
}
