package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// The site's own email shape: local@domain.tld with a 2-4 char TLD.
	// Deliberately stricter than the RFC: "a@b" must be rejected.
	emailRegex = regexp.MustCompile(`^[\w-.]+@([\w-]+\.)+[\w-]{2,4}$`)

	// Dutch mobile number: exactly 10 digits starting with 06,
	// checked after stripping spaces and hyphens
	mobileRegex = regexp.MustCompile(`^06\d{8}$`)

	// Dutch place name: letters (incl. diacritics), spaces, apostrophes, hyphens
	cityRegex = regexp.MustCompile(`^[a-zA-Z\x{00C0}-\x{017F}\s'-]{2,}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_email", ValidEmail)
	_ = v.RegisterValidation("valid_mobile", ValidMobile)
	_ = v.RegisterValidation("valid_city", ValidCity)
}

// ValidEmail validates the generic local@domain.tld shape
func ValidEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return emailRegex.MatchString(val)
}

// ValidMobile validates a Dutch 06 mobile number. Spaces and hyphens are
// allowed as separators ("06 12345678", "06-1234-5678") and stripped first.
func ValidMobile(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return mobileRegex.MatchString(NormalizePhone(val))
}

// ValidCity validates a place name (no digits or symbols)
func ValidCity(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return cityRegex.MatchString(val)
}

// NormalizePhone strips spaces and hyphens from a phone number
func NormalizePhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(phone)
}
