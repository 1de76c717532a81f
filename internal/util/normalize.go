package util

import "strings"

// NormalizeIdentity folds a username or email into the form used for storage
// and every comparison.
func NormalizeIdentity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
