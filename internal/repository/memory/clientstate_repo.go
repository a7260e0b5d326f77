package memory

import (
	"context"
	"sync"
	"time"

	"bb-schoonmaak-backend/internal/domain"
)

// clientStateRepository is the in-memory fallback for the client-state store,
// used when Redis is not configured and in tests. State does not survive a
// restart, which is acceptable for consent flags and widget cooldowns.
type clientStateRepository struct {
	mu        sync.RWMutex
	consent   map[string]domain.ConsentStatus
	dismissed map[string]time.Time
}

// NewClientStateRepository creates the in-memory client-state repository
func NewClientStateRepository() domain.ClientStateRepository {
	return &clientStateRepository{
		consent:   make(map[string]domain.ConsentStatus),
		dismissed: make(map[string]time.Time),
	}
}

func (r *clientStateRepository) GetConsent(_ context.Context, visitorID string) (domain.ConsentStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.consent[visitorID], nil
}

func (r *clientStateRepository) SetConsent(_ context.Context, visitorID string, status domain.ConsentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.consent[visitorID] = status
	return nil
}

func (r *clientStateRepository) ClearConsent(_ context.Context, visitorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.consent, visitorID)
	return nil
}

func (r *clientStateRepository) GetWidgetDismissedAt(_ context.Context, visitorID string) (time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dismissed[visitorID], nil
}

func (r *clientStateRepository) SetWidgetDismissedAt(_ context.Context, visitorID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dismissed[visitorID] = at
	return nil
}
