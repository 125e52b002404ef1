package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already normalized",
			input:    "+998901234567",
			expected: "+998901234567",
		},
		{
			name:     "country code without plus",
			input:    "998901234567",
			expected: "+998901234567",
		},
		{
			name:     "leading eight",
			input:    "8901234567",
			expected: "+998901234567",
		},
		{
			name:     "local number",
			input:    "901234567",
			expected: "+998901234567",
		},
		{
			name:     "surrounding whitespace",
			input:    "  998901234567 ",
			expected: "+998901234567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhone(tt.input))
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{"+998901234567", "998901234567", "8901234567", "901234567"}

	for _, in := range inputs {
		once := NormalizePhone(in)
		assert.Equal(t, once, NormalizePhone(once), in)
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "plus prefix 13 chars", input: "+998901234567", expected: true},
		{name: "country code 12 chars", input: "998901234567", expected: true},
		{name: "leading eight 11 chars", input: "89012345678", expected: true},
		{name: "trimmed before check", input: " +998901234567 ", expected: true},
		{name: "too short", input: "12345", expected: false},
		{name: "plus prefix too long", input: "+9989012345678", expected: false},
		{name: "country code too short", input: "99890123456", expected: false},
		{name: "leading eight too long", input: "890123456789", expected: false},
		{name: "foreign number", input: "+79001234567", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidatePhone(tt.input))
		})
	}
}
