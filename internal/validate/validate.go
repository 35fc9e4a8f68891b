// Package validate holds the client-side field checks run before a request
// is built. A failed check never reaches the network.
package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
)

// ErrInvalid is wrapped by every error returned from this package.
var ErrInvalid = errors.New("validation failed")

var (
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
	otpRe   = regexp.MustCompile(`^[0-9]{4,6}$`)
)

// FieldError names the offending field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error { return ErrInvalid }

func fail(field, msg string) error {
	return &FieldError{Field: field, Message: msg}
}

func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fail(field, "is required")
	}
	return nil
}

// Phone accepts exactly ten digits.
func Phone(field, value string) error {
	if !phoneRe.MatchString(strings.TrimSpace(value)) {
		return fail(field, "must be a 10 digit phone number")
	}
	return nil
}

func Email(field, value string) error {
	v := strings.TrimSpace(value)
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v || !strings.Contains(v[strings.LastIndex(v, "@")+1:], ".") {
		return fail(field, "must be a valid email address")
	}
	return nil
}

func OTP(value string) error {
	if !otpRe.MatchString(strings.TrimSpace(value)) {
		return fail("otp", "must be 4 to 6 digits")
	}
	return nil
}

// Date checks the YYYY-MM-DD layout used by leave and AMC forms.
func Date(field, value string) error {
	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(value)); err != nil {
		return fail(field, "must be a date in YYYY-MM-DD format")
	}
	return nil
}

// DateRange checks both dates and that from is not after to.
func DateRange(fromField, from, toField, to string) error {
	if err := Date(fromField, from); err != nil {
		return err
	}
	if err := Date(toField, to); err != nil {
		return err
	}
	f, _ := time.Parse(time.DateOnly, strings.TrimSpace(from))
	t, _ := time.Parse(time.DateOnly, strings.TrimSpace(to))
	if f.After(t) {
		return fail(toField, "must not be before "+fromField)
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
