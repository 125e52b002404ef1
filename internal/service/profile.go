package service

import (
	"context"
	"errors"

	"authbot/internal/domain"
	"authbot/internal/repository"
)

// ErrMissingUserID is returned when saving a record without a user id
var ErrMissingUserID = errors.New("user id is required")

// ProfileService handles stored user profiles
type ProfileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// Get returns the stored profile or nil for unknown users
func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.UserRecord, error) {
	return s.userRepo.Get(ctx, userID)
}

// IsLoggedIn checks the stored login flag
func (s *ProfileService) IsLoggedIn(ctx context.Context, userID int64) (bool, error) {
	u, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return u != nil && u.LoggedIn, nil
}

// Save persists a profile, filling the language default
func (s *ProfileService) Save(ctx context.Context, u *domain.UserRecord) error {
	if u == nil || u.UserID == 0 {
		return ErrMissingUserID
	}
	if u.Language == "" {
		u.Language = domain.DefaultLanguage
	}
	return s.userRepo.Save(ctx, u)
}

// Logout clears the stored login flag
func (s *ProfileService) Logout(ctx context.Context, userID int64) error {
	return s.userRepo.SetLoggedOut(ctx, userID)
}
