package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"authbot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Get loads a user profile
func (r *UserRepo) Get(ctx context.Context, userID int64) (*domain.UserRecord, error) {
	query := `
		SELECT user_id, phone, full_name, role, balans, access_token, refresh_token,
		       lang, logged_in, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var u domain.UserRecord
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&u.UserID,
		&u.Phone,
		&u.FullName,
		&u.Role,
		&u.Balance,
		&u.AccessToken,
		&u.RefreshToken,
		&u.Language,
		&u.LoggedIn,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		// User doesn't exist yet
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	return &u, nil
}

// Save inserts the profile or replaces the stored one
func (r *UserRepo) Save(ctx context.Context, u *domain.UserRecord) error {
	query := `
		INSERT INTO users (user_id, phone, full_name, role, balans, access_token, refresh_token, lang, logged_in)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id)
		DO UPDATE SET
			phone = EXCLUDED.phone,
			full_name = EXCLUDED.full_name,
			role = EXCLUDED.role,
			balans = EXCLUDED.balans,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			lang = EXCLUDED.lang,
			logged_in = EXCLUDED.logged_in,
			updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query,
		u.UserID,
		u.Phone,
		u.FullName,
		u.Role,
		u.Balance,
		u.AccessToken,
		u.RefreshToken,
		u.Language,
		u.LoggedIn,
	)
	if err != nil {
		return fmt.Errorf("failed to save user %d: %w", u.UserID, err)
	}
	return nil
}

// SetLoggedOut clears the logged-in flag
func (r *UserRepo) SetLoggedOut(ctx context.Context, userID int64) error {
	query := `UPDATE users SET logged_in = FALSE, updated_at = NOW() WHERE user_id = $1`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to log out user %d: %w", userID, err)
	}
	return nil
}
