package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "kitchen123", false},
		{"minimum length", "abcdefg1", false},
		{"too short", "abc1", true},
		{"too long", strings.Repeat("a1", 65), true},
		{"letters only", "abcdefgh", true},
		{"digits only", "12345678", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid", "cook", false},
		{"with allowed symbols", "chef.de+cuisine@home-1_", false},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 51), true},
		{"spaces", "two words", true},
		{"forbidden symbols", "cook!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "cook@example.com", false},
		{"subdomain", "cook@mail.example.co.uk", false},
		{"plus tag", "cook+tag@example.com", false},
		{"no at sign", "cookexample.com", true},
		{"no tld", "cook@example", true},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 250) + "@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTagSlug(t *testing.T) {
	assert.NoError(t, ValidateTagSlug("breakfast"))
	assert.NoError(t, ValidateTagSlug("late-night_2"))
	assert.Error(t, ValidateTagSlug(""))
	assert.Error(t, ValidateTagSlug("has space"))
	assert.Error(t, ValidateTagSlug("café"))
}

func TestValidateHexColor(t *testing.T) {
	assert.NoError(t, ValidateHexColor("#49B64E"))
	assert.NoError(t, ValidateHexColor("#e26c2d"))
	assert.Error(t, ValidateHexColor("49B64E"))
	assert.Error(t, ValidateHexColor("#49B64"))
	assert.Error(t, ValidateHexColor("#49B64EF"))
	assert.Error(t, ValidateHexColor("#GGGGGG"))
}

func TestValidateCookingTime(t *testing.T) {
	assert.NoError(t, ValidateCookingTime(CookingTimeMin))
	assert.NoError(t, ValidateCookingTime(CookingTimeMax))
	assert.Error(t, ValidateCookingTime(0))
	assert.Error(t, ValidateCookingTime(CookingTimeMax+1))
	assert.Error(t, ValidateCookingTime(-5))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(AmountMin))
	assert.NoError(t, ValidateAmount(AmountMax))
	assert.Error(t, ValidateAmount(0))
	assert.Error(t, ValidateAmount(AmountMax+1))
}
