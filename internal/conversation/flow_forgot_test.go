package conversation

import (
	"context"
	"testing"

	"authbot/internal/backend"
	"authbot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestForgotContact(t *testing.T) {
	t.Run("contact requests a reset code", func(t *testing.T) {
		f := newFixture(t)
		f.api.On("ForgotPassword", mock.Anything, "+998901234567").Return(&backend.CodeIssued{Code: "777777"}, nil)
		s := loggedInSession(domain.StateForgotPasswordContact)

		replies := f.engine.Handle(context.Background(), s, contactInput("998901234567"))

		assert.Equal(t, domain.StateForgotPasswordCode, s.State)
		assert.Equal(t, domain.CodeActionForgot, s.CodeAction)
		assert.Contains(t, joined(replies), "<b>777777</b>")
	})

	t.Run("unavailable stays", func(t *testing.T) {
		f := newFixture(t)
		f.api.On("ForgotPassword", mock.Anything, "+998901234567").Return(nil, errDown)
		s := loggedInSession(domain.StateForgotPasswordContact)

		replies := f.engine.Handle(context.Background(), s, contactInput("998901234567"))

		assert.Equal(t, domain.StateForgotPasswordContact, s.State)
		assert.Contains(t, joined(replies), "Server connection error")
	})

	t.Run("back", func(t *testing.T) {
		f := newFixture(t)
		s := loggedInSession(domain.StateForgotPasswordContact)
		s.CodeAction = domain.CodeActionForgot

		f.engine.Handle(context.Background(), s, textInput("🔙 Back"))

		assert.Equal(t, domain.StateMainMenu, s.State)
		assert.Equal(t, domain.CodeActionNone, s.CodeAction)
	})
}

func TestForgotCode(t *testing.T) {
	f := newFixture(t)
	f.api.On("VerifyCode", mock.Anything, "+998901234567", "777777").Return(&backend.Verification{ResetToken: "rt-2"}, nil)
	s := loggedInSession(domain.StateForgotPasswordCode)
	s.CodeAction = domain.CodeActionForgot

	f.engine.Handle(context.Background(), s, textInput("777777"))

	assert.Equal(t, domain.StateForgotPasswordNewPassword, s.State)
	assert.Equal(t, "rt-2", s.ResetToken)
}

func resetSession(loggedIn bool) *domain.SessionContext {
	s := &domain.SessionContext{
		State:            domain.StateForgotPasswordNewPassword,
		Language:         "en",
		Phone:            "+998901234567",
		CodeAction:       domain.CodeActionForgot,
		VerificationCode: "777777",
		ResetToken:       "rt-2",
	}
	if loggedIn {
		s.Profile = &domain.UserRecord{UserID: testUserID, FullName: "Jane", LoggedIn: true}
	}
	return s
}

func TestForgotNewPassword_TooShort(t *testing.T) {
	for _, pwd := range []string{"12345", "ab", "парол"} {
		t.Run(pwd, func(t *testing.T) {
			f := newFixture(t)
			s := resetSession(true)

			replies := f.engine.Handle(context.Background(), s, textInput(pwd))

			assert.Equal(t, domain.StateForgotPasswordNewPassword, s.State)
			assert.Equal(t, "rt-2", s.ResetToken)
			assert.Contains(t, joined(replies), "at least 6 characters")
			f.api.AssertNotCalled(t, "ResetPassword", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestForgotNewPassword_CountsCharactersNotBytes(t *testing.T) {
	f := newFixture(t)
	f.api.On("ResetPassword", mock.Anything, "rt-2", "пароль").Return(nil)
	s := resetSession(true)

	f.engine.Handle(context.Background(), s, textInput("пароль"))

	assert.Equal(t, domain.StateMainMenu, s.State)
}

func TestForgotNewPassword_Success(t *testing.T) {
	tests := []struct {
		name          string
		loggedIn      bool
		expectedState domain.ConversationState
		expectedText  string
	}{
		{"logged in user returns to the main menu", true, domain.StateMainMenu, "Main Menu"},
		{"anonymous user returns to the main choice", false, domain.StateMainChoice, "Select a section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.api.On("ResetPassword", mock.Anything, "rt-2", "newsecret").Return(nil)
			s := resetSession(tt.loggedIn)

			replies := f.engine.Handle(context.Background(), s, textInput("newsecret"))

			assert.Equal(t, tt.expectedState, s.State)
			assert.Empty(t, s.ResetToken)
			assert.Empty(t, s.VerificationCode)
			assert.Empty(t, s.Phone)
			assert.Equal(t, domain.CodeActionNone, s.CodeAction)
			assert.Contains(t, joined(replies), "Password successfully changed")
			assert.Contains(t, joined(replies), tt.expectedText)
		})
	}
}

func TestForgotNewPassword_Rejected(t *testing.T) {
	f := newFixture(t)
	f.api.On("ResetPassword", mock.Anything, "rt-2", "newsecret").
		Return(&backend.RejectedError{StatusCode: 400, Message: "Token expired"})
	s := resetSession(false)

	replies := f.engine.Handle(context.Background(), s, textInput("newsecret"))

	assert.Equal(t, domain.StateForgotPasswordNewPassword, s.State)
	assert.Equal(t, "rt-2", s.ResetToken)
	assert.Contains(t, joined(replies), "❌ Error: Token expired")
}

func TestForgotNewPassword_MissingToken(t *testing.T) {
	f := newFixture(t)
	s := resetSession(false)
	s.ResetToken = ""

	replies := f.engine.Handle(context.Background(), s, textInput("newsecret"))

	assert.Equal(t, domain.StateGetCodeMenu, s.State)
	assert.Contains(t, joined(replies), "Reset token was not received")
	f.api.AssertNotCalled(t, "ResetPassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestForgotNewPassword_Back(t *testing.T) {
	f := newFixture(t)

	s := resetSession(true)
	f.engine.Handle(context.Background(), s, textInput("🔙 Back"))
	assert.Equal(t, domain.StateMainMenu, s.State)
	assert.Empty(t, s.ResetToken)

	s = resetSession(false)
	f.engine.Handle(context.Background(), s, textInput("🔙 Back"))
	assert.Equal(t, domain.StateGetCodeMenu, s.State)
}
