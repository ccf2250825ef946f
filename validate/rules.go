package validate

import (
	"fmt"
	"regexp"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// A Rule checks one field value and returns a human-readable message when the
// value is rejected, or "" when it passes. Rules other than NonEmpty and
// MinLen accept the empty string so optional fields can be submitted blank.
type Rule func(value string) string

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NonEmpty rejects blank values.
func NonEmpty() Rule {
	return func(value string) string {
		if value == "" {
			return "cannot be blank"
		}
		return ""
	}
}

// MinLen rejects values shorter than n characters.
func MinLen(n int) Rule {
	return func(value string) string {
		if len([]rune(value)) < n {
			return fmt.Sprintf("must be at least %d characters", n)
		}
		return ""
	}
}

// MaxLen rejects values longer than n characters.
func MaxLen(n int) Rule {
	return func(value string) string {
		if len([]rune(value)) > n {
			return fmt.Sprintf("must be at most %d characters", n)
		}
		return ""
	}
}

// OneOf rejects values outside the given set.
func OneOf(values ...string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		for _, v := range values {
			if v == value {
				return ""
			}
		}
		return fmt.Sprintf("must be one of %v", values)
	}
}

// Email rejects values that are not a plausible email address.
func Email() Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if !emailPattern.MatchString(value) {
			return "must be a valid email address"
		}
		return ""
	}
}

// UUID rejects values that do not parse as a UUID.
func UUID() Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if _, err := uuid.Parse(value); err != nil {
			return "must be a valid id"
		}
		return ""
	}
}

// Date rejects values that are not a calendar date in YYYY-MM-DD form.
func Date() Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return "must be a date in YYYY-MM-DD format"
		}
		return ""
	}
}

// Timestamp rejects values that are not RFC 3339 timestamps.
func Timestamp() Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if _, err := time.Parse(time.RFC3339, value); err != nil {
			return "must be an RFC 3339 timestamp"
		}
		return ""
	}
}

// Password enforces the minimum password complexity: at least 8 characters
// with at least one letter and one digit.
func Password() Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if len(value) < 8 {
			return "must be at least 8 characters"
		}
		var hasLetter, hasDigit bool
		for _, r := range value {
			switch {
			case unicode.IsLetter(r):
				hasLetter = true
			case unicode.IsDigit(r):
				hasDigit = true
			}
		}
		if !hasLetter || !hasDigit {
			return "must contain at least one letter and one digit"
		}
		return ""
	}
}
