// Package account validates the sign-up form and builds the stored profile.
package account

import (
	"errors"
	"html"
	"regexp"
	"strings"
	"time"

	"gpsshowcase/models"
)

var (
	ErrBusinessNameRequired = errors.New("business name is required")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidPhone         = errors.New("invalid phone number")
	ErrWeakPassword         = errors.New("password too short")
	ErrPasswordMismatch     = errors.New("passwords do not match")
)

// Message returns the text shown to the user for a validation error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrBusinessNameRequired):
		return "Business name is required"
	case errors.Is(err, ErrInvalidEmail):
		return "Please enter a valid email address"
	case errors.Is(err, ErrInvalidPhone):
		return "Please enter a valid phone number"
	case errors.Is(err, ErrWeakPassword):
		return "Password must be at least 8 characters long"
	case errors.Is(err, ErrPasswordMismatch):
		return "Passwords do not match!"
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}

const (
	MinPasswordLength = 8
	MinPhoneDigits    = 10
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-+()]+$`)
)

// Form is the raw sign-up input.
type Form struct {
	BusinessName    string `json:"businessName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func ValidEmail(email string) bool { return emailPattern.MatchString(email) }

func ValidPhone(phone string) bool {
	if !phonePattern.MatchString(phone) {
		return false
	}
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= MinPhoneDigits
}

// Validate checks the form in field order; the first failure is returned.
func (f Form) Validate() error {
	if strings.TrimSpace(f.BusinessName) == "" {
		return ErrBusinessNameRequired
	}
	if !ValidEmail(strings.TrimSpace(f.Email)) {
		return ErrInvalidEmail
	}
	if !ValidPhone(strings.TrimSpace(f.Phone)) {
		return ErrInvalidPhone
	}
	if len([]rune(f.Password)) < MinPasswordLength {
		return ErrWeakPassword
	}
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// Sanitize escapes text for safe display in HTML views.
func Sanitize(s string) string { return html.EscapeString(s) }

// Profile validates the form and returns the record to persist. The
// password is deliberately left out.
func (f Form) Profile(now time.Time) (models.Account, error) {
	if err := f.Validate(); err != nil {
		return models.Account{}, err
	}
	return models.Account{
		BusinessName: Sanitize(strings.TrimSpace(f.BusinessName)),
		Email:        Sanitize(strings.TrimSpace(f.Email)),
		Phone:        Sanitize(strings.TrimSpace(f.Phone)),
		CreatedAt:    now.UTC().Format(time.RFC3339),
	}, nil
}
