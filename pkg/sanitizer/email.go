package sanitizer

import (
	"regexp"
	"strings"
)

var dotRun = regexp.MustCompile(`\.+`)

// NormalizeEmail lowercases and trims an address and consolidates
// consecutive dots in the local part. Values that are not shaped like an
// email are returned trimmed and lowercased, unchanged otherwise.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRun.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// MaskEmail hides the local part except its first character, preserving the
// domain for recognition in logs.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}
	if len(local) == 1 {
		return "*@" + domain
	}
	return local[:1] + strings.Repeat("*", len(local)-1) + "@" + domain
}
