package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the Dutch labels the site shows
var FieldLabels = map[string]string{
	// Shared form fields
	"Name":     "Naam",
	"FullName": "Naam",
	"Email":    "Emailadres",
	"Phone":    "Telefoonnummer",

	// Contact form
	"Message": "Bericht",

	// Quote form
	"CompanyName": "Bedrijfsnaam",
	"ServiceType": "Type Dienst",
	"Description": "Opdrachtomschrijving",

	// Job application form
	"City":       "Woonplaats",
	"Motivation": "Motivatie",
	"Attachment": "Bijlage",
	"Content":    "Bestandsinhoud",
}

// FormatValidationErrors converts validator.ValidationErrors to the inline
// messages the forms display
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is verplicht", label)
	case "valid_email":
		return fmt.Sprintf("%s: Ongeldig emailadres (bijv. naam@domein.nl)", label)
	case "valid_mobile":
		return fmt.Sprintf("%s: Moet een geldig 06-nummer zijn (10 cijfers)", label)
	case "valid_city":
		return fmt.Sprintf("%s: Voer een geldige plaatsnaam in (geen cijfers of symbolen)", label)
	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: Validatie mislukt (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the Dutch label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
