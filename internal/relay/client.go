package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bb-schoonmaak-backend/config"
	"bb-schoonmaak-backend/internal/domain"

	"github.com/go-resty/resty/v2"
)

// ConfigurationErrorMarker is the sentinel the frontend matches on to tell the
// deploying developer apart from an ordinary network failure.
const ConfigurationErrorMarker = "CONFIGURATION_ERROR"

// Transport delivers a shaped submission to the mail relay
type Transport interface {
	Send(ctx context.Context, formType string, data map[string]any) error
}

// Client posts SubmissionEnvelopes to the shared multi-tenant mail relay
// (Agency Nexus). One attempt per call, no retries: a failed submission is the
// fallback policy's problem, not the transport's.
type Client struct {
	http     *resty.Client
	clientID string
	baseURL  string
}

// NewClient creates a relay client from config
func NewClient(cfg *config.Config) *Client {
	httpClient := resty.New().
		SetTimeout(time.Duration(cfg.RelayTimeoutMS) * time.Millisecond).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:     httpClient,
		clientID: cfg.RelayClientID,
		baseURL:  cfg.RelayBaseURL,
	}
}

// IsConfigured reports whether a relay endpoint has been set
func (c *Client) IsConfigured() bool {
	return c.baseURL != ""
}

// Send delivers one envelope. Success requires a 2xx status and a parseable
// JSON body; everything else (non-2xx, timeout, network failure, bad JSON)
// collapses into a single failure path distinguished only by message text.
// The client timeout cancels the in-flight request, not just the wait.
func (c *Client) Send(ctx context.Context, formType string, data map[string]any) error {
	if !c.IsConfigured() {
		return fmt.Errorf("%s: relay base URL is not set, configure RELAY_BASE_URL", ConfigurationErrorMarker)
	}

	envelope := domain.SubmissionEnvelope{
		ClientID: c.clientID,
		FormType: formType,
		Data:     data,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(envelope).
		Post(c.baseURL + "/submit")
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("relay error (%d): %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	// Body content is not interpreted beyond being valid JSON
	var body map[string]any
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return fmt.Errorf("relay returned malformed response: %w", err)
	}

	return nil
}
