package domain

import (
	"strings"
)

// CollapseSpaces trims text and compresses runs of whitespace into a single
// space. Case is preserved.
func CollapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeEmail prepares an email for storage and lookup: trimmed, with the
// domain part lowercased.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
