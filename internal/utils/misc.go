package utils

import "strings"

func Ptr[T any](v T) *T {
	return &v
}

// NormalizeEmail trims whitespace and lowercases the domain part only,
// leaving the local part as entered ("Jane@EXAMPLE.com" -> "Jane@example.com").
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}
