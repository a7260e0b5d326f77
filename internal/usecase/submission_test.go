package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"bb-schoonmaak-backend/internal/domain"
	"bb-schoonmaak-backend/internal/relay"
	"bb-schoonmaak-backend/internal/repository/memory"
	"bb-schoonmaak-backend/pkg/logger"
	"bb-schoonmaak-backend/pkg/metrics"
	"bb-schoonmaak-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	metrics.Init()
	m.Run()
}

// MockTransport records the envelopes the pipeline hands to the relay
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Send(ctx context.Context, formType string, data map[string]any) error {
	return m.Called(ctx, formType, data).Error(0)
}

func newTestPipeline(transport relay.Transport, policy relay.FallbackPolicy) *submissionUsecase {
	validate := validator.New()
	validation.RegisterValidators(validate)

	return &submissionUsecase{
		transport: transport,
		policy:    policy,
		catalog:   memory.NewCatalogRepository(),
		validate:  validate,
		now:       func() time.Time { return time.Date(2026, 3, 9, 14, 30, 5, 0, time.Local) },
	}
}

func validContact() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Jan",
		Email:   "jan@test.nl",
		Phone:   "0612345678",
		Message: "Hallo",
	}
}

func TestSubmitContactValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*domain.ContactRequest)
		message string
	}{
		{"missing name", func(r *domain.ContactRequest) { r.Name = "" }, "Naam is verplicht"},
		{"missing message", func(r *domain.ContactRequest) { r.Message = "" }, "Bericht is verplicht"},
		{"invalid email", func(r *domain.ContactRequest) { r.Email = "not-an-email" }, "Ongeldig emailadres"},
		{"email without tld", func(r *domain.ContactRequest) { r.Email = "a@b" }, "Ongeldig emailadres"},
		{"landline number", func(r *domain.ContactRequest) { r.Phone = "0712345678" }, "06-nummer"},
		{"nine digit number", func(r *domain.ContactRequest) { r.Phone = "061234567" }, "06-nummer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			transport := new(MockTransport)
			uc := newTestPipeline(transport, relay.PropagateTransportFailure{})

			req := validContact()
			tc.mutate(req)

			err := uc.SubmitContact(context.Background(), req)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, strings.Join(vErr.Messages, "; "), tc.message)
			// A rejected record must never reach the transport
			transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitContactAcceptedInputs(t *testing.T) {
	cases := []struct {
		name  string
		email string
		phone string
	}{
		{"plain", "a@b.nl", "0612345678"},
		{"dotted local part", "jan.jansen@bedrijf.nl", "06 12345678"},
		{"hyphenated phone", "jan@test.nl", "06-1234-5678"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			transport := new(MockTransport)
			transport.On("Send", mock.Anything, "Contactformulier", mock.Anything).Return(nil)
			uc := newTestPipeline(transport, relay.PropagateTransportFailure{})

			req := validContact()
			req.Email = tc.email
			req.Phone = tc.phone

			require.NoError(t, uc.SubmitContact(context.Background(), req))
			transport.AssertExpectations(t)
		})
	}
}

func TestSubmitContactPayloadMapping(t *testing.T) {
	transport := new(MockTransport)
	var sent map[string]any
	transport.On("Send", mock.Anything, "Contactformulier", mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(2).(map[string]any) }).
		Return(nil)

	uc := newTestPipeline(transport, relay.PropagateTransportFailure{})
	require.NoError(t, uc.SubmitContact(context.Background(), validContact()))

	// Human-readable labels only, never raw field identifiers
	assert.Equal(t, "Jan", sent["Naam"])
	assert.Equal(t, "jan@test.nl", sent["Emailadres"])
	assert.Equal(t, "0612345678", sent["Telefoonnummer"])
	assert.Equal(t, "Hallo", sent["Bericht"])
	assert.Equal(t, "9-3-2026, 14:30:05", sent["Datum"])
	assert.NotContains(t, sent, "name")
	assert.NotContains(t, sent, "_honey")
}

func TestSubmitContactForwardsHoneypot(t *testing.T) {
	transport := new(MockTransport)
	var sent map[string]any
	transport.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(2).(map[string]any) }).
		Return(nil)

	uc := newTestPipeline(transport, relay.PropagateTransportFailure{})
	req := validContact()
	req.Honeypot = "http://spam.example"

	// Filled honeypots pass through untouched; the relay decides what is spam
	require.NoError(t, uc.SubmitContact(context.Background(), req))
	assert.Equal(t, "http://spam.example", sent["_honey"])
}

func TestSubmitQuoteServiceResolution(t *testing.T) {
	cases := []struct {
		slug     string
		readable string
	}{
		{"glasbewassing", "Glasbewassing"},
		{"schoonmaakonderhoud", "Schoonmaakonderhoud"},
		{"maatwerk", "Maatwerk Advies"},
		{"anders", "Overig"},
		{"xyz", "xyz"}, // unknown slugs degrade to passthrough
	}

	for _, tc := range cases {
		t.Run(tc.slug, func(t *testing.T) {
			transport := new(MockTransport)
			var sent map[string]any
			transport.On("Send", mock.Anything, "Offerte ("+tc.readable+")", mock.Anything).
				Run(func(args mock.Arguments) { sent = args.Get(2).(map[string]any) }).
				Return(nil)

			uc := newTestPipeline(transport, relay.PropagateTransportFailure{})
			err := uc.SubmitQuote(context.Background(), &domain.QuoteRequest{
				Name:        "Jan",
				Email:       "jan@test.nl",
				Phone:       "0612345678",
				ServiceType: tc.slug,
				Description: "Graag een offerte",
			})

			require.NoError(t, err)
			assert.Equal(t, tc.readable, sent["Type Dienst"])
			transport.AssertExpectations(t)
		})
	}
}

func TestSubmitQuoteCompanyNameFallback(t *testing.T) {
	transport := new(MockTransport)
	var sent map[string]any
	transport.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(2).(map[string]any) }).
		Return(nil)

	uc := newTestPipeline(transport, relay.PropagateTransportFailure{})

	t.Run("private individual when empty", func(t *testing.T) {
		err := uc.SubmitQuote(context.Background(), &domain.QuoteRequest{
			Name: "Jan", Email: "jan@test.nl", Phone: "0612345678",
			ServiceType: "glasbewassing", Description: "Ramen wassen",
		})
		require.NoError(t, err)
		assert.Equal(t, "Particulier", sent["Bedrijfsnaam"])
	})

	t.Run("company name kept when given", func(t *testing.T) {
		err := uc.SubmitQuote(context.Background(), &domain.QuoteRequest{
			Name: "Jan", CompanyName: "Acme BV", Email: "jan@test.nl", Phone: "0612345678",
			ServiceType: "glasbewassing", Description: "Ramen wassen",
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme BV", sent["Bedrijfsnaam"])
	})
}

func validApplication() *domain.ApplicationRequest {
	return &domain.ApplicationRequest{
		FullName:   "Jan Jansen",
		City:       "Leiden",
		Email:      "jan@test.nl",
		Phone:      "0612345678",
		Motivation: "Ik zoek een leuke baan",
	}
}

func TestSubmitApplicationCityValidation(t *testing.T) {
	cases := []struct {
		city string
		ok   bool
	}{
		{"Leiden", true},
		{"'s-Gravenhage", true},
		{"Alphen aan den Rijn", true},
		{"Leiden123", false},
		{"X", false},
	}

	for _, tc := range cases {
		t.Run(tc.city, func(t *testing.T) {
			transport := new(MockTransport)
			transport.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
			uc := newTestPipeline(transport, relay.PropagateTransportFailure{})

			req := validApplication()
			req.City = tc.city
			err := uc.SubmitApplication(context.Background(), req, "")

			if tc.ok {
				assert.NoError(t, err)
			} else {
				var vErr *domain.ValidationError
				require.ErrorAs(t, err, &vErr)
				transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestSubmitApplicationTypeLabel(t *testing.T) {
	t.Run("defaults to cleaning staff", func(t *testing.T) {
		transport := new(MockTransport)
		transport.On("Send", mock.Anything, "Sollicitatie (Schoonmaakmedewerker)", mock.Anything).Return(nil)
		uc := newTestPipeline(transport, relay.PropagateTransportFailure{})

		require.NoError(t, uc.SubmitApplication(context.Background(), validApplication(), ""))
		transport.AssertExpectations(t)
	})

	t.Run("open application override", func(t *testing.T) {
		transport := new(MockTransport)
		transport.On("Send", mock.Anything, "Sollicitatie (Open Sollicitatie)", mock.Anything).Return(nil)
		uc := newTestPipeline(transport, relay.PropagateTransportFailure{})

		require.NoError(t, uc.SubmitApplication(context.Background(), validApplication(), domain.OpenApplicationType))
		transport.AssertExpectations(t)
	})
}

func TestSubmitApplicationAttachment(t *testing.T) {
	t.Run("passed through as side channel", func(t *testing.T) {
		transport := new(MockTransport)
		var sent map[string]any
		transport.On("Send", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(2).(map[string]any) }).
			Return(nil)
		uc := newTestPipeline(transport, relay.PropagateTransportFailure{})

		req := validApplication()
		req.Attachment = &domain.Attachment{Name: "cv.pdf", Type: "application/pdf", Content: "JVBERi0xLjQ="}

		require.NoError(t, uc.SubmitApplication(context.Background(), req, ""))
		att, ok := sent["attachment"].(*domain.Attachment)
		require.True(t, ok)
		assert.Equal(t, "cv.pdf", att.Name)
	})

	t.Run("oversized attachment blocked before transport", func(t *testing.T) {
		transport := new(MockTransport)
		uc := newTestPipeline(transport, relay.PropagateTransportFailure{})

		req := validApplication()
		// Base64 length implying a decoded size just over the 5MB ceiling
		req.Attachment = &domain.Attachment{
			Name:    "groot.pdf",
			Type:    "application/pdf",
			Content: strings.Repeat("A", (domain.MaxAttachmentBytes/3+2)*4),
		}

		err := uc.SubmitApplication(context.Background(), req, "")
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Messages[0], "Maximaal 5MB")
		transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDispatchFallbackPolicy(t *testing.T) {
	t.Run("transport failure masked as success", func(t *testing.T) {
		transport := new(MockTransport)
		transport.On("Send", mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("relay error (500): boom"))
		uc := newTestPipeline(transport, relay.AlwaysSucceedOnTransportFailure{Delay: 10 * time.Millisecond})

		start := time.Now()
		err := uc.SubmitContact(context.Background(), validContact())

		assert.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("strict policy propagates the failure", func(t *testing.T) {
		cause := errors.New("relay request failed: connection refused")
		transport := new(MockTransport)
		transport.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(cause)
		uc := newTestPipeline(transport, relay.PropagateTransportFailure{})

		err := uc.SubmitContact(context.Background(), validContact())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("no retry: one attempt per submission", func(t *testing.T) {
		transport := new(MockTransport)
		transport.On("Send", mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("boom"))
		uc := newTestPipeline(transport, relay.AlwaysSucceedOnTransportFailure{Delay: time.Millisecond})

		require.NoError(t, uc.SubmitContact(context.Background(), validContact()))
		transport.AssertNumberOfCalls(t, "Send", 1)
	})
}

func TestSubmissionsAreIndependent(t *testing.T) {
	transport := new(MockTransport)
	transport.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	validate := validator.New()
	validation.RegisterValidators(validate)

	tick := time.Date(2026, 3, 9, 14, 30, 5, 0, time.Local)
	uc := &submissionUsecase{
		transport: transport,
		policy:    relay.PropagateTransportFailure{},
		catalog:   memory.NewCatalogRepository(),
		validate:  validate,
		now: func() time.Time {
			tick = tick.Add(time.Second)
			return tick
		},
	}

	// Same record twice: two envelopes, two timestamps, no deduplication
	require.NoError(t, uc.SubmitContact(context.Background(), validContact()))
	require.NoError(t, uc.SubmitContact(context.Background(), validContact()))
	transport.AssertNumberOfCalls(t, "Send", 2)

	calls := transport.Calls
	first := calls[0].Arguments.Get(2).(map[string]any)["Datum"]
	second := calls[1].Arguments.Get(2).(map[string]any)["Datum"]
	assert.NotEqual(t, first, second)
}
