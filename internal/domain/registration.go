package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password accepted on reset
const MinPasswordLength = 6

var (
	// ErrMalformedRegistration is returned for input other than Name|Password|Role
	ErrMalformedRegistration = errors.New("registration data must be Name|Password|Role")
	// ErrPasswordTooShort is returned for passwords under MinPasswordLength
	ErrPasswordTooShort = errors.New("password is too short")
)

// Registration is the parsed payload of the registration step
type Registration struct {
	FullName string
	Password string
	Role     string
}

// ParseRegistration splits "Name|Password|Role" into its fields
func ParseRegistration(text string) (*Registration, error) {
	parts := strings.Split(text, "|")
	if len(parts) != 3 {
		return nil, ErrMalformedRegistration
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return nil, ErrMalformedRegistration
		}
	}
	return &Registration{
		FullName: parts[0],
		Password: parts[1],
		Role:     strings.ToLower(parts[2]),
	}, nil
}

// ValidateNewPassword checks the length of a new password in characters
func ValidateNewPassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
