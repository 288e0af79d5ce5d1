package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	minEmailLength    = 3
	maxEmailLength    = 255
	minPasswordLength = 8
	maxPasswordLength = 128
	maxTitleLength    = 255
	maxNameLength     = 255
	maxMessageLength  = 10000
	dateLayout        = "2006-01-02"

	errEmailEmptyFmt        = "email cannot be empty"
	errEmailLengthFmt       = "email must be between %d and %d characters"
	errEmailInvalidFmt      = "invalid email format"
	errPasswordMinLengthFmt = "password must be at least %d characters"
	errPasswordMaxLengthFmt = "password must not exceed %d characters"
	errTitleEmptyFmt        = "title cannot be empty"
	errTitleMaxLengthFmt    = "title must not exceed %d characters"
	errNameEmptyFmt         = "name cannot be empty"
	errNameMaxLengthFmt     = "name must not exceed %d characters"
	errMessageEmptyFmt      = "message cannot be empty"
	errMessageMaxLengthFmt  = "message must not exceed %d characters"
	errEnumInvalidFmt       = "%s must be one of %v"
	errDateEmptyFmt         = "date cannot be empty"
	errDateInvalidFmt       = "date must be a valid calendar date in YYYY-MM-DD format"
	errNumberInvalidFmt     = "%s must be a number"
	errNumberNegativeFmt    = "%s cannot be negative"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func Email(email string) error {
	if email == "" {
		return fmt.Errorf(errEmailEmptyFmt)
	}

	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return fmt.Errorf(errEmailLengthFmt, minEmailLength, maxEmailLength)
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf(errEmailInvalidFmt)
	}

	return nil
}

func Password(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf(errPasswordMinLengthFmt, minPasswordLength)
	}

	if len(password) > maxPasswordLength {
		return fmt.Errorf(errPasswordMaxLengthFmt, maxPasswordLength)
	}

	return nil
}

func Title(title string) error {
	if title == "" {
		return fmt.Errorf(errTitleEmptyFmt)
	}

	if len(title) > maxTitleLength {
		return fmt.Errorf(errTitleMaxLengthFmt, maxTitleLength)
	}

	return nil
}

func Name(name string) error {
	if name == "" {
		return fmt.Errorf(errNameEmptyFmt)
	}

	if len(name) > maxNameLength {
		return fmt.Errorf(errNameMaxLengthFmt, maxNameLength)
	}

	return nil
}

func Message(message string) error {
	if message == "" {
		return fmt.Errorf(errMessageEmptyFmt)
	}

	if len(message) > maxMessageLength {
		return fmt.Errorf(errMessageMaxLengthFmt, maxMessageLength)
	}

	return nil
}

// Enum checks that value is one of the allowed set. An empty value is
// rejected; callers that treat the field as optional should check for
// emptiness first.
func Enum(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf(errEnumInvalidFmt, field, allowed)
}

// Date validates a YYYY-MM-DD string as a real calendar date.
// time.Parse rejects impossible dates such as 2024-02-30.
func Date(value string) error {
	if value == "" {
		return fmt.Errorf(errDateEmptyFmt)
	}

	if _, err := time.Parse(dateLayout, value); err != nil {
		return fmt.Errorf(errDateInvalidFmt)
	}

	return nil
}

// NonNegativeFloat parses a numeric form value and requires it to be >= 0.
func NonNegativeFloat(field, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf(errNumberInvalidFmt, field)
	}

	if f < 0 {
		return 0, fmt.Errorf(errNumberNegativeFmt, field)
	}

	return f, nil
}

// NonNegativeInt parses an integer form value and requires it to be >= 0.
func NonNegativeInt(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf(errNumberInvalidFmt, field)
	}

	if n < 0 {
		return 0, fmt.Errorf(errNumberNegativeFmt, field)
	}

	return n, nil
}
