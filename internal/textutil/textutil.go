package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// Hash computes a SHA-256 hex hash of a string, used for change detection.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Truncate shortens a string to maxLen, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// ExportName converts a resource name into an exported Go identifier:
// separator characters split words, each word is capitalized, and anything
// that cannot appear in an identifier is dropped.
func ExportName(name string) string {
	var sb strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case r == '.' || r == '_' || r == '-' || r == ' ':
			upperNext = true
		case unicode.IsLetter(r):
			if upperNext {
				r = unicode.ToUpper(r)
				upperNext = false
			}
			sb.WriteRune(r)
		case unicode.IsDigit(r) && sb.Len() > 0:
			sb.WriteRune(r)
			upperNext = true
		}
	}
	return sb.String()
}
