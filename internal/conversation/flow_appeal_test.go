package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"authbot/internal/domain"
	"authbot/internal/metrics"
	"authbot/internal/testutil"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assertAppeals(t *testing.T, m *metrics.Metrics, series int) {
	t.Helper()
	count, err := promtest.GatherAndCount(m.Registry(), "authbot_appeals_total")
	require.NoError(t, err)
	assert.Equal(t, series, count)
}

func TestAppealTitle(t *testing.T) {
	f := newFixture(t)
	s := loggedInSession(domain.StateAppealTitle)

	replies := f.engine.Handle(context.Background(), s, textInput("   "))
	assert.Equal(t, domain.StateAppealTitle, s.State)
	assert.Contains(t, joined(replies), "Enter appeal title")

	replies = f.engine.Handle(context.Background(), s, textInput("Balance is wrong"))
	assert.Equal(t, domain.StateAppealDesc, s.State)
	assert.Equal(t, "Balance is wrong", s.AppealTitle)
	assert.Contains(t, joined(replies), "Enter appeal text")
}

func TestAppealDesc_Delivered(t *testing.T) {
	m := metrics.New()
	f := newFixture(t, WithMetrics(m))
	f.repo.On("Get", mock.Anything, testUserID).Return(testutil.NewTestUser(testUserID, true), nil)

	var report string
	f.notifier.On("Notify", mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { report = args.String(1) }).
		Return(nil)

	s := loggedInSession(domain.StateAppealDesc)
	s.AppealTitle = "Balance is wrong"

	replies := f.engine.Handle(context.Background(), s, textInput("It shows 0 since Monday"))

	assert.Equal(t, domain.StateMainMenu, s.State)
	assert.Empty(t, s.AppealTitle)
	assert.Contains(t, joined(replies), "delivered to admin")

	assert.Contains(t, report, "YANGI MUROJAAT")
	assert.Contains(t, report, "👤 Ism: Jane")
	assert.Contains(t, report, "🆔 User ID: 42")
	assert.Contains(t, report, "📱 Telefon: +998901234567")
	assert.Contains(t, report, "🌐 Username: @jane")
	assert.Contains(t, report, "📝 Sarlavha:\nBalance is wrong")
	assert.Contains(t, report, "📄 Tavsif:\nIt shows 0 since Monday")
	assert.Contains(t, report, "📅 Sana: 14.10.2026 09:30")

	assertAppeals(t, m, 1)
}

func TestAppealDesc_DeliveryFailureStillReturnsToMenu(t *testing.T) {
	m := metrics.New()
	f := newFixture(t, WithMetrics(m))
	f.repo.On("Get", mock.Anything, testUserID).Return(nil, nil)
	f.notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("chat not found"))

	s := &domain.SessionContext{State: domain.StateAppealDesc, Language: "en", Phone: "+998901234567"}

	in := textInput("Help")
	in.Username = ""
	replies := f.engine.Handle(context.Background(), s, in)

	assert.Equal(t, domain.StateMainMenu, s.State)
	text := joined(replies)
	assert.True(t, strings.HasPrefix(text, "⚠️ Error: chat not found"))
	assert.Len(t, lastKeyboard(replies).Rows, 3)

	assertAppeals(t, m, 1)
}

func TestAppealReport_Defaults(t *testing.T) {
	e := newMachineEngine(WithClock(func() time.Time { return testNow }))
	s := &domain.SessionContext{}

	report := e.appealReport(Input{UserID: 7}, s, "N/A", "body")

	assert.Contains(t, report, "👤 Ism: User")
	assert.Contains(t, report, "📱 Telefon: N/A")
	assert.Contains(t, report, "🌐 Username: Yo'q")
	assert.Contains(t, report, "🔖 Ref: ")
}

func TestAppealDesc_Back(t *testing.T) {
	f := newFixture(t)
	s := loggedInSession(domain.StateAppealDesc)
	s.AppealTitle = "title"

	f.engine.Handle(context.Background(), s, textInput("🔙 Back"))

	assert.Equal(t, domain.StateMainMenu, s.State)
	assert.Empty(t, s.AppealTitle)
}
