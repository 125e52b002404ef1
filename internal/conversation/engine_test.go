package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"authbot/internal/backend"
	"authbot/internal/domain"
	"authbot/internal/service"
	"authbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID int64 = 42

var testNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

type fixture struct {
	repo     *testutil.MockUserRepository
	api      *testutil.MockBackend
	notifier *testutil.MockNotifier
	engine   *Engine
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		repo:     new(testutil.MockUserRepository),
		api:      new(testutil.MockBackend),
		notifier: new(testutil.MockNotifier),
	}
	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)
	f.engine = NewEngine(service.NewProfileService(f.repo), f.api, f.notifier, testutil.NewTestLogger(), opts...)
	t.Cleanup(func() {
		f.repo.AssertExpectations(t)
		f.api.AssertExpectations(t)
		f.notifier.AssertExpectations(t)
	})
	return f
}

func textInput(text string) Input {
	return Input{UserID: testUserID, Username: "jane", FirstName: "Jane", Text: text}
}

func contactInput(phone string) Input {
	return Input{UserID: testUserID, Username: "jane", FirstName: "Jane", Contact: &Contact{Phone: phone}}
}

func joined(replies []Reply) string {
	parts := make([]string, len(replies))
	for i, r := range replies {
		parts[i] = r.Text
	}
	return strings.Join(parts, "\n")
}

func lastKeyboard(replies []Reply) *Keyboard {
	if len(replies) == 0 {
		return nil
	}
	return replies[len(replies)-1].Keyboard
}

func testAuthSession() *backend.AuthSession {
	return &backend.AuthSession{
		PhoneNumber:  "+998901234567",
		FullName:     "Jane",
		Role:         "user",
		Balans:       "100",
		AccessToken:  "t1",
		RefreshToken: "t2",
	}
}

func loggedInSession(st domain.ConversationState) *domain.SessionContext {
	s := &domain.SessionContext{State: st, Language: "en"}
	s.Profile = testutil.NewTestUser(testUserID, true)
	s.Phone = s.Profile.Phone
	return s
}

func TestEngine_Start_UnknownUser(t *testing.T) {
	f := newFixture(t)
	f.repo.On("Get", mock.Anything, testUserID).Return(nil, nil)

	s := domain.NewSessionContext()
	replies := f.engine.Start(context.Background(), s, textInput("/start"))

	assert.Equal(t, domain.StateLanguageSelect, s.State)
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Assalomu aleykum, Jane!")
	assert.Contains(t, replies[0].Text, "Iltimos, tilni tanlang")
	assert.Len(t, replies[0].Keyboard.Rows, 3)
}

func TestEngine_Start_RehydratesLoggedInUser(t *testing.T) {
	f := newFixture(t)
	f.repo.On("Get", mock.Anything, testUserID).Return(testutil.NewTestUser(testUserID, true), nil)

	s := domain.NewSessionContext()
	replies := f.engine.Start(context.Background(), s, textInput("/start"))

	assert.Equal(t, domain.StateMainMenu, s.State)
	require.NotNil(t, s.Profile)
	assert.True(t, s.LoggedIn())
	assert.Equal(t, "en", s.Language)
	assert.Equal(t, "+998901234567", s.Phone)

	text := joined(replies)
	assert.Contains(t, text, "Welcome back, Jane!")
	assert.Contains(t, text, "Name: Jane")
	assert.Contains(t, text, "14.10.2026")
	assert.Contains(t, text, "User ID: 42")
}

func TestEngine_Start_LoggedOutRecordAsksForLanguage(t *testing.T) {
	f := newFixture(t)
	f.repo.On("Get", mock.Anything, testUserID).Return(testutil.NewTestUser(testUserID, false), nil)

	s := loggedInSession(domain.StateMainMenu)
	f.engine.Start(context.Background(), s, textInput("/start"))

	assert.Equal(t, domain.StateLanguageSelect, s.State)
	assert.Nil(t, s.Profile)
	assert.Empty(t, s.Phone)
}

func TestEngine_Start_StoreErrorAsksForLanguage(t *testing.T) {
	f := newFixture(t)
	f.repo.On("Get", mock.Anything, testUserID).Return(nil, errors.New("db down"))

	s := domain.NewSessionContext()
	replies := f.engine.Start(context.Background(), s, textInput("/start"))

	assert.Equal(t, domain.StateLanguageSelect, s.State)
	assert.NotEmpty(t, replies)
}

func TestEngine_Handle_EndIgnoresInput(t *testing.T) {
	f := newFixture(t)

	s := domain.NewSessionContext()
	assert.Nil(t, f.engine.Handle(context.Background(), s, textInput("hello")))
	assert.Nil(t, f.engine.Handle(context.Background(), s, contactInput("998901234567")))
	assert.Equal(t, domain.StateEnd, s.State)
}

func TestEngine_Handle_ContactOutsideContactStates(t *testing.T) {
	f := newFixture(t)

	s := &domain.SessionContext{State: domain.StateLoginPassword, Phone: "+998901234567"}
	replies := f.engine.Handle(context.Background(), s, contactInput("998901234567"))

	assert.Nil(t, replies)
	assert.Equal(t, domain.StateLoginPassword, s.State)
}

func TestEngine_Cancel(t *testing.T) {
	f := newFixture(t)

	s := &domain.SessionContext{
		State:            domain.StateCodeVerify,
		Language:         "ru",
		Phone:            "+998901234567",
		CodeAction:       domain.CodeActionForgot,
		VerificationCode: "1234",
	}
	replies := f.engine.Cancel(context.Background(), s, textInput("/cancel"))

	assert.Equal(t, domain.StateEnd, s.State)
	assert.Empty(t, s.Phone)
	assert.Empty(t, s.VerificationCode)
	assert.Equal(t, domain.CodeActionNone, s.CodeAction)
	require.Len(t, replies, 1)
	assert.Equal(t, "❌ Отмена", replies[0].Text)
	assert.True(t, replies[0].Keyboard.Remove)
}

func TestEngine_Logout(t *testing.T) {
	f := newFixture(t)
	f.repo.On("SetLoggedOut", mock.Anything, testUserID).Return(nil)

	s := loggedInSession(domain.StateMainMenu)
	replies := f.engine.Logout(context.Background(), s, textInput("/logout"))

	assert.Equal(t, domain.StateEnd, s.State)
	assert.Nil(t, s.Profile)
	assert.False(t, s.LoggedIn())
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "successfully logged out")
	assert.True(t, replies[0].Keyboard.Remove)
}

func TestEngine_Logout_StoreFailureKeepsSession(t *testing.T) {
	f := newFixture(t)
	f.repo.On("SetLoggedOut", mock.Anything, testUserID).Return(errors.New("db down"))

	s := loggedInSession(domain.StateMainMenu)
	replies := f.engine.Logout(context.Background(), s, textInput("/logout"))

	assert.Equal(t, domain.StateMainMenu, s.State)
	assert.True(t, s.LoggedIn())
	assert.Contains(t, joined(replies), "Internal error")
}

func TestEngine_LogoutThenStartShowsLanguageSelection(t *testing.T) {
	f := newFixture(t)
	f.repo.On("SetLoggedOut", mock.Anything, testUserID).Return(nil)
	f.repo.On("Get", mock.Anything, testUserID).Return(testutil.NewTestUser(testUserID, false), nil)

	s := loggedInSession(domain.StateMainMenu)
	f.engine.Logout(context.Background(), s, textInput("/logout"))
	replies := f.engine.Start(context.Background(), s, textInput("/start"))

	assert.Equal(t, domain.StateLanguageSelect, s.State)
	assert.Contains(t, joined(replies), "Iltimos, tilni tanlang")
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Jane", displayName(Input{FirstName: "Jane", Username: "jd"}))
	assert.Equal(t, "jd", displayName(Input{Username: "jd"}))
	assert.Equal(t, "User", displayName(Input{}))
}
