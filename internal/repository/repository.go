package repository

import (
	"context"

	"authbot/internal/domain"
)

// UserRepository persists user profiles
type UserRepository interface {
	// Get returns nil without error when the user is unknown
	Get(ctx context.Context, userID int64) (*domain.UserRecord, error)
	// Save inserts or replaces the record keyed by user id
	Save(ctx context.Context, user *domain.UserRecord) error
	SetLoggedOut(ctx context.Context, userID int64) error
}
