package domain

import (
	"context"
	"time"
)

// ConsentStatus mirrors the values the cookie banner stores
type ConsentStatus string

const (
	ConsentAccepted ConsentStatus = "accepted"
	ConsentRejected ConsentStatus = "rejected"
	ConsentUnset    ConsentStatus = ""
)

// WidgetCooldown is how long the floating WhatsApp widget stays muted after a
// visitor explicitly closes it.
const WidgetCooldown = 24 * time.Hour

// ClientStateRepository is the key-value persistence abstraction behind the
// cookie-consent flag and the widget-dismissal timestamp. Injected so handlers
// never touch ambient global storage and tests can fake it.
type ClientStateRepository interface {
	GetConsent(ctx context.Context, visitorID string) (ConsentStatus, error)
	SetConsent(ctx context.Context, visitorID string, status ConsentStatus) error
	ClearConsent(ctx context.Context, visitorID string) error
	GetWidgetDismissedAt(ctx context.Context, visitorID string) (time.Time, error)
	SetWidgetDismissedAt(ctx context.Context, visitorID string, at time.Time) error
}

type ClientStateUsecase interface {
	Consent(ctx context.Context, visitorID string) (ConsentStatus, error)
	RecordConsent(ctx context.Context, visitorID string, status ConsentStatus) error
	WithdrawConsent(ctx context.Context, visitorID string) error
	// ShouldShowWidget reports whether the floating contact widget may be shown,
	// honoring the 24h dismissal cooldown.
	ShouldShowWidget(ctx context.Context, visitorID string) (bool, error)
	DismissWidget(ctx context.Context, visitorID string) error
}
