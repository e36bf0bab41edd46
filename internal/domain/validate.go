package domain

import "regexp"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether s is a well-formed email address.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidNote reports whether a transaction note is within the 1..200 char
// bounds.
func ValidNote(s string) bool {
	return len(s) >= 1 && len(s) <= 200
}
