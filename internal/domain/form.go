package domain

import (
	"context"
	"strings"
)

// MaxAttachmentBytes is the ceiling for the decoded size of an uploaded CV.
const MaxAttachmentBytes = 5 * 1024 * 1024

// Attachment is a file uploaded with a job application. Content is base64
// encoded by the frontend and passed through to the mail relay unmodified.
type Attachment struct {
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type"`
	Content string `json:"content" validate:"required"`
}

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,valid_email"`
	Phone   string `json:"phone" validate:"required,valid_mobile"`
	Message string `json:"message" validate:"required"`
	// Anti-spam honeypot. Never rejected here: the relay service decides.
	Honeypot string `json:"_honey" validate:"-"`
}

// QuoteRequest represents a custom quote (offerte) form submission
type QuoteRequest struct {
	Name        string `json:"name" validate:"required"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email" validate:"required,valid_email"`
	Phone       string `json:"phone" validate:"required,valid_mobile"`
	ServiceType string `json:"serviceType" validate:"required"`
	Description string `json:"description" validate:"required"`
	Honeypot    string `json:"_honey" validate:"-"`
}

// ApplicationRequest represents a job application (sollicitatie) submission
type ApplicationRequest struct {
	FullName   string      `json:"fullName" validate:"required"`
	City       string      `json:"city" validate:"required,valid_city"`
	Email      string      `json:"email" validate:"required,valid_email"`
	Phone      string      `json:"phone" validate:"required,valid_mobile"`
	Motivation string      `json:"motivation" validate:"required"`
	Attachment *Attachment `json:"attachment,omitempty"`
	Honeypot   string      `json:"_honey" validate:"-"`
}

// DefaultApplicationType labels applications that do not target a specific
// vacancy type. The open application flow overrides it.
const (
	DefaultApplicationType = "Schoonmaakmedewerker"
	OpenApplicationType    = "Open Sollicitatie"
)

// SubmissionEnvelope is the wire-level body sent to the mail relay. Data maps
// human-readable (Dutch) labels to values so the relayed notification email is
// directly readable by staff; raw field identifiers never appear in it.
type SubmissionEnvelope struct {
	ClientID string         `json:"clientId"`
	FormType string         `json:"formType"`
	Data     map[string]any `json:"data"`
}

// ValidationError carries the per-field messages a form shows inline. When the
// pipeline returns one, no relay call has been made.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// SubmissionUsecase defines the form submission pipeline entry points, one per
// form kind: validate, map to an envelope, dispatch, apply the fallback policy.
type SubmissionUsecase interface {
	SubmitContact(ctx context.Context, req *ContactRequest) error
	SubmitQuote(ctx context.Context, req *QuoteRequest) error
	SubmitApplication(ctx context.Context, req *ApplicationRequest, applicationType string) error
}
