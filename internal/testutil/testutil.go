package testutil

import (
	"time"

	"authbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a stored profile
func NewTestUser(userID int64, loggedIn bool) *domain.UserRecord {
	return &domain.UserRecord{
		UserID:       userID,
		Phone:        "+998901234567",
		FullName:     "Jane",
		Role:         "user",
		Balance:      "100",
		AccessToken:  "t1",
		RefreshToken: "t2",
		Language:     "en",
		LoggedIn:     loggedIn,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}
