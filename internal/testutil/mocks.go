package testutil

import (
	"context"

	"authbot/internal/backend"
	"authbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Get(ctx context.Context, userID int64) (*domain.UserRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserRecord), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.UserRecord) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetLoggedOut(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockNotifier is a mock for the operator channel
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

// MockBackend is a mock for the authentication API
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) SendCode(ctx context.Context, phone, action string) (*backend.CodeIssued, error) {
	args := m.Called(ctx, phone, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.CodeIssued), args.Error(1)
}

func (m *MockBackend) SendRegisterCode(ctx context.Context, phone string) (*backend.CodeIssued, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.CodeIssued), args.Error(1)
}

func (m *MockBackend) ForgotPassword(ctx context.Context, phone string) (*backend.CodeIssued, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.CodeIssued), args.Error(1)
}

func (m *MockBackend) VerifyCode(ctx context.Context, phone, code string) (*backend.Verification, error) {
	args := m.Called(ctx, phone, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Verification), args.Error(1)
}

func (m *MockBackend) VerifyCodeAuth(ctx context.Context, phone, code string) error {
	args := m.Called(ctx, phone, code)
	return args.Error(0)
}

func (m *MockBackend) Login(ctx context.Context, phone, password string) (*backend.AuthSession, error) {
	args := m.Called(ctx, phone, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.AuthSession), args.Error(1)
}

func (m *MockBackend) LoginWithCode(ctx context.Context, phone, code string) (*backend.AuthSession, error) {
	args := m.Called(ctx, phone, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.AuthSession), args.Error(1)
}

func (m *MockBackend) Register(ctx context.Context, req backend.RegisterRequest) (*backend.AuthSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.AuthSession), args.Error(1)
}

func (m *MockBackend) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	args := m.Called(ctx, resetToken, newPassword)
	return args.Error(0)
}
