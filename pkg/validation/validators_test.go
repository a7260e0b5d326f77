package validation_test

import (
	"testing"

	"bb-schoonmaak-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestValidEmail(t *testing.T) {
	v := newValidator(t)

	cases := []struct {
		email string
		ok    bool
	}{
		{"jan@test.nl", true},
		{"jan.jansen@bedrijf.nl", true},
		{"info@sub.domein.nl", true},
		{"a-b@c-d.info", true},
		{"jan@test", false},
		{"jan@test.verylongtld", false}, // TLD capped at 4 characters
		{"@test.nl", false},
		{"jan test@test.nl", false},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			err := v.Var(tc.email, "valid_email")
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidMobile(t *testing.T) {
	v := newValidator(t)

	cases := []struct {
		phone string
		ok    bool
	}{
		{"0612345678", true},
		{"06 12345678", true},
		{"06-12-34-56-78", true},
		{"0712345678", false}, // landline prefix
		{"061234567", false},  // nine digits
		{"06123456789", false},
		{"+31612345678", false}, // international format not accepted
	}

	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			err := v.Var(tc.phone, "valid_mobile")
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidCity(t *testing.T) {
	v := newValidator(t)

	cases := []struct {
		city string
		ok   bool
	}{
		{"Leiden", true},
		{"'s-Gravenhage", true},
		{"Alphen aan den Rijn", true},
		{"Hyères", true}, // accented letters allowed
		{"X", false},     // single character too short
		{"Leiden123", false},
		{"Den Haag!", false},
	}

	for _, tc := range cases {
		t.Run(tc.city, func(t *testing.T) {
			err := v.Var(tc.city, "valid_city")
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "0612345678", validation.NormalizePhone("06 12 34 56 78"))
	assert.Equal(t, "0612345678", validation.NormalizePhone("06-1234-5678"))
	assert.Equal(t, "0612345678", validation.NormalizePhone("0612345678"))
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidator(t)

	type form struct {
		Name  string `validate:"required"`
		Email string `validate:"required,valid_email"`
		Phone string `validate:"required,valid_mobile"`
	}

	err := v.Struct(form{Email: "bad", Phone: "123"})
	require.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	assert.Contains(t, messages, "Naam is verplicht")
	assert.Contains(t, messages, "Emailadres: Ongeldig emailadres (bijv. naam@domein.nl)")
	assert.Contains(t, messages, "Telefoonnummer: Moet een geldig 06-nummer zijn (10 cijfers)")
}
