// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"unicode"
)

// Bounds enforced on recipe payloads.
const (
	CookingTimeMin = 1
	CookingTimeMax = 120
	AmountMin      = 1
	AmountMax      = 100
)

var (
	usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)
	slugRe     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}

	hasLetter := false
	hasDigit := false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain at least one letter and one digit")
	}

	return nil
}

// ValidateUsername checks if a username meets requirements
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}
	if len(username) > 50 {
		return fmt.Errorf("username must not exceed 50 characters")
	}
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("username can only contain letters, digits and .@+-_ characters")
	}
	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	return nil
}

// ValidateTagSlug checks the slug against the allowed pattern.
func ValidateTagSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug is required")
	}
	if !slugRe.MatchString(slug) {
		return fmt.Errorf("slug can only contain letters, digits, hyphens and underscores")
	}
	return nil
}

// ValidateHexColor checks a #RRGGBB color value.
func ValidateHexColor(color string) error {
	if !hexColorRe.MatchString(color) {
		return fmt.Errorf("color must be a hex value like #49B64E")
	}
	return nil
}

// ValidateCookingTime checks the cooking time range in minutes.
func ValidateCookingTime(minutes int) error {
	if minutes < CookingTimeMin || minutes > CookingTimeMax {
		return fmt.Errorf("cooking time must be between %d and %d minutes", CookingTimeMin, CookingTimeMax)
	}
	return nil
}

// ValidateAmount checks an ingredient amount range.
func ValidateAmount(amount int) error {
	if amount < AmountMin || amount > AmountMax {
		return fmt.Errorf("ingredient amount must be between %d and %d", AmountMin, AmountMax)
	}
	return nil
}
