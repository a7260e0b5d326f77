package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"bb-schoonmaak-backend/internal/domain"
	"bb-schoonmaak-backend/internal/relay"
	"bb-schoonmaak-backend/pkg/logger"
	"bb-schoonmaak-backend/pkg/metrics"
	"bb-schoonmaak-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Submission timestamps follow the site's nl-NL display convention
const submissionDateLayout = "2-1-2006, 15:04:05"

type submissionUsecase struct {
	transport relay.Transport
	policy    relay.FallbackPolicy
	catalog   domain.CatalogRepository
	validate  *validator.Validate
	now       func() time.Time
}

// NewSubmissionUsecase creates the form submission pipeline
func NewSubmissionUsecase(transport relay.Transport, policy relay.FallbackPolicy, catalog domain.CatalogRepository, validate *validator.Validate) domain.SubmissionUsecase {
	return &submissionUsecase{
		transport: transport,
		policy:    policy,
		catalog:   catalog,
		validate:  validate,
		now:       time.Now,
	}
}

// SubmitContact validates a contact form record and relays it
func (uc *submissionUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		return &domain.ValidationError{Messages: validation.FormatValidationErrors(err)}
	}

	data := map[string]any{
		"Naam":           strings.TrimSpace(req.Name),
		"Emailadres":     strings.TrimSpace(req.Email),
		"Telefoonnummer": strings.TrimSpace(req.Phone),
		"Bericht":        strings.TrimSpace(req.Message),
		"Datum":          uc.timestamp(),
	}
	forwardHoneypot(data, req.Honeypot)

	return uc.dispatch(ctx, "contact", "Contactformulier", data)
}

// SubmitQuote validates a quote request and relays it. The service slug is
// resolved to a readable title so the notification email subject makes sense;
// an unknown slug degrades to the raw value rather than failing.
func (uc *submissionUsecase) SubmitQuote(ctx context.Context, req *domain.QuoteRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		return &domain.ValidationError{Messages: validation.FormatValidationErrors(err)}
	}

	readableService := uc.resolveServiceTitle(req.ServiceType)

	companyName := strings.TrimSpace(req.CompanyName)
	if companyName == "" {
		companyName = "Particulier"
	}

	data := map[string]any{
		"Naam":                 strings.TrimSpace(req.Name),
		"Bedrijfsnaam":         companyName,
		"Emailadres":           strings.TrimSpace(req.Email),
		"Telefoonnummer":       strings.TrimSpace(req.Phone),
		"Type Dienst":          readableService,
		"Opdrachtomschrijving": strings.TrimSpace(req.Description),
		"Datum":                uc.timestamp(),
	}
	forwardHoneypot(data, req.Honeypot)

	return uc.dispatch(ctx, "quote", fmt.Sprintf("Offerte (%s)", readableService), data)
}

// SubmitApplication validates a job application and relays it. The attachment,
// when present, rides along as a side channel instead of being flattened into
// the label map.
func (uc *submissionUsecase) SubmitApplication(ctx context.Context, req *domain.ApplicationRequest, applicationType string) error {
	if err := uc.validate.Struct(req); err != nil {
		return &domain.ValidationError{Messages: validation.FormatValidationErrors(err)}
	}
	if err := checkAttachmentSize(req.Attachment); err != nil {
		return err
	}

	if applicationType == "" {
		applicationType = domain.DefaultApplicationType
	}

	data := map[string]any{
		"Naam":           strings.TrimSpace(req.FullName),
		"Woonplaats":     strings.TrimSpace(req.City),
		"Emailadres":     strings.TrimSpace(req.Email),
		"Telefoonnummer": strings.TrimSpace(req.Phone),
		"Motivatie":      strings.TrimSpace(req.Motivation),
		"Datum":          uc.timestamp(),
	}
	if req.Attachment != nil {
		data["attachment"] = req.Attachment
	}
	forwardHoneypot(data, req.Honeypot)

	return uc.dispatch(ctx, "application", fmt.Sprintf("Sollicitatie (%s)", applicationType), data)
}

// dispatch makes exactly one delivery attempt and hands failures to the
// fallback policy. Under the default policy the caller still sees success.
func (uc *submissionUsecase) dispatch(ctx context.Context, form, formType string, data map[string]any) error {
	if err := uc.transport.Send(ctx, formType, data); err != nil {
		logger.Log.Warn("relay submission failed, applying fallback policy",
			"formType", formType, "error", err.Error())
		metrics.RelayFailures.WithLabelValues(form).Inc()

		if resolveErr := uc.policy.Resolve(ctx, err); resolveErr != nil {
			return resolveErr
		}
		metrics.FallbackResolutions.WithLabelValues(form).Inc()
		return nil
	}

	metrics.SubmissionsDelivered.WithLabelValues(form).Inc()
	return nil
}

// resolveServiceTitle maps a service slug to its catalog title, handles the
// two sentinel options the quote form offers, and passes unknown slugs through.
func (uc *submissionUsecase) resolveServiceTitle(slug string) string {
	if svc, err := uc.catalog.GetServiceBySlug(slug); err == nil {
		return svc.Title
	}
	switch slug {
	case domain.ServiceTypeCustom:
		return "Maatwerk Advies"
	case domain.ServiceTypeOther:
		return "Overig"
	}
	return slug
}

func (uc *submissionUsecase) timestamp() string {
	return uc.now().Format(submissionDateLayout)
}

// forwardHoneypot passes a filled honeypot through as ordinary form data. The
// relay service owns spam enforcement; the pipeline never rejects on it.
func forwardHoneypot(data map[string]any, honey string) {
	if honey != "" {
		data["_honey"] = honey
	}
}

// checkAttachmentSize enforces the 5MB ceiling from the decoded size implied
// by the base64 content. Checked on its own so an oversized file blocks the
// submission regardless of the other fields.
func checkAttachmentSize(att *domain.Attachment) error {
	if att == nil {
		return nil
	}
	if base64.StdEncoding.DecodedLen(len(att.Content)) > domain.MaxAttachmentBytes {
		return &domain.ValidationError{
			Messages: []string{"Het bestand is te groot. Maximaal 5MB toegestaan."},
		}
	}
	return nil
}
