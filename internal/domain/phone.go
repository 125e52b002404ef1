package domain

import "strings"

// NormalizePhone converts a phone number to the +998 international form
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	switch {
	case strings.HasPrefix(phone, "998"):
		return "+" + phone
	case strings.HasPrefix(phone, "8"):
		return "+998" + phone[1:]
	default:
		return "+998" + phone
	}
}

// ValidatePhone checks a phone typed as free text
func ValidatePhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	switch {
	case strings.HasPrefix(phone, "+998"):
		return len(phone) == 13
	case strings.HasPrefix(phone, "998"):
		return len(phone) == 12
	case strings.HasPrefix(phone, "8"):
		return len(phone) == 11
	}
	return false
}
