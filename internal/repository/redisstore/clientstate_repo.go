package redisstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"bb-schoonmaak-backend/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// Key layout mirrors the browser localStorage keys the SPA used, prefixed per
// visitor: cs:<visitor>:bb_cookie_consent and cs:<visitor>:bb_whatsapp_closed_ts.
const (
	consentKeyFmt   = "cs:%s:bb_cookie_consent"
	dismissedKeyFmt = "cs:%s:bb_whatsapp_closed_ts"

	// Anonymous visitor state should not pile up forever
	stateTTL = 365 * 24 * time.Hour
)

type clientStateRepository struct {
	client *goredis.Client
}

// NewClientStateRepository creates the Redis-backed client-state repository
func NewClientStateRepository(client *goredis.Client) domain.ClientStateRepository {
	return &clientStateRepository{client: client}
}

func (r *clientStateRepository) GetConsent(ctx context.Context, visitorID string) (domain.ConsentStatus, error) {
	val, err := r.client.Get(ctx, fmt.Sprintf(consentKeyFmt, visitorID)).Result()
	if err == goredis.Nil {
		return domain.ConsentUnset, nil
	}
	if err != nil {
		return domain.ConsentUnset, fmt.Errorf("redis get consent: %w", err)
	}
	return domain.ConsentStatus(val), nil
}

func (r *clientStateRepository) SetConsent(ctx context.Context, visitorID string, status domain.ConsentStatus) error {
	key := fmt.Sprintf(consentKeyFmt, visitorID)
	if err := r.client.Set(ctx, key, string(status), stateTTL).Err(); err != nil {
		return fmt.Errorf("redis set consent: %w", err)
	}
	return nil
}

func (r *clientStateRepository) ClearConsent(ctx context.Context, visitorID string) error {
	if err := r.client.Del(ctx, fmt.Sprintf(consentKeyFmt, visitorID)).Err(); err != nil {
		return fmt.Errorf("redis clear consent: %w", err)
	}
	return nil
}

func (r *clientStateRepository) GetWidgetDismissedAt(ctx context.Context, visitorID string) (time.Time, error) {
	val, err := r.client.Get(ctx, fmt.Sprintf(dismissedKeyFmt, visitorID)).Result()
	if err == goredis.Nil {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("redis get dismissal: %w", err)
	}
	millis, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("redis dismissal timestamp corrupt: %w", err)
	}
	return time.UnixMilli(millis), nil
}

func (r *clientStateRepository) SetWidgetDismissedAt(ctx context.Context, visitorID string, at time.Time) error {
	key := fmt.Sprintf(dismissedKeyFmt, visitorID)
	if err := r.client.Set(ctx, key, strconv.FormatInt(at.UnixMilli(), 10), stateTTL).Err(); err != nil {
		return fmt.Errorf("redis set dismissal: %w", err)
	}
	return nil
}
