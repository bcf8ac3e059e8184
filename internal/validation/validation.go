// Package validation holds the pure input predicates used for every piece of
// human-entered data. Invalid input returns false; callers re-prompt.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidPhone reports whether s is exactly 10 decimal digits.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// ValidAddress reports whether s is non-blank and at least 5 characters.
func ValidAddress(s string) bool {
	return strings.TrimSpace(s) != "" && utf8.RuneCountInString(s) >= 5
}

// ValidEmail reports whether s has one "@" with at least one "." after it
// and no whitespace. Deliberately looser than RFC 5322.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidName reports whether s is non-empty.
func ValidName(s string) bool {
	return s != ""
}
