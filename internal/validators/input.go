package validators

import "strings"

// IsBlank reports whether s has no visible characters.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func InRange(n, min, max int) bool {
	return n >= min && n <= max
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
