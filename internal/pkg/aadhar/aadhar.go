package aadhar

import (
	"regexp"
	"strings"
)

var aadharPattern = regexp.MustCompile(`^\d{12}$`)

// IsValid reports whether s is exactly 12 ASCII digits after trimming.
func IsValid(s string) bool {
	return aadharPattern.MatchString(strings.TrimSpace(s))
}

// Mask renders an Aadhar number for display as XXXX-XXXX-1234. Malformed
// input is partially masked instead, keeping its length and last 4 characters.
// Mask is presentation-only and must never be used as a validation gate.
func Mask(s string) string {
	a := strings.TrimSpace(s)
	if a == "" {
		return ""
	}
	if aadharPattern.MatchString(a) {
		return "XXXX-XXXX-" + a[len(a)-4:]
	}
	if len(a) <= 4 {
		return a
	}
	return strings.Repeat("X", len(a)-4) + a[len(a)-4:]
}
