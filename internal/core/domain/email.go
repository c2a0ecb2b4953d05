package domain

import (
	"regexp"
)

// local-part@domain.tld, no whitespace, no second "@". Comparison is
// case-sensitive, addresses are stored exactly as given.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	if !emailRegex.MatchString(value) {
		return Email{}, NewValidationError("email", "Invalid email format")
	}

	return Email{value: value}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
