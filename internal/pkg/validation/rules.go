package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// CNIC pattern: 13 digits with optional dashes (e.g. 35202-1234567-1)
	CnicPattern = `^\d{5}-?\d{7}-?\d$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Cnic  *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Cnic:  regexp.MustCompile(CnicPattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidCnic reports whether the value looks like a CNIC number.
func IsValidCnic(cnic string) bool {
	return CompiledPatterns.Cnic.MatchString(cnic)
}
