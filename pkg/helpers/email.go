package helpers

import "strings"

// NormalizeEmail lower-cases and trims an email address. Every store read
// and write goes through this so lookups agree across case variants.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
