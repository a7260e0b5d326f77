package usecase

import (
	"context"
	"testing"
	"time"

	"bb-schoonmaak-backend/internal/domain"
	"bb-schoonmaak-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientStateTest(now time.Time) (*clientStateUsecase, *time.Time) {
	clock := now
	uc := &clientStateUsecase{
		repo: memory.NewClientStateRepository(),
		now:  func() time.Time { return clock },
	}
	return uc, &clock
}

func TestConsentLifecycle(t *testing.T) {
	ctx := context.Background()
	uc, _ := newClientStateTest(time.Now())

	t.Run("unset by default", func(t *testing.T) {
		status, err := uc.Consent(ctx, "visitor-1")
		require.NoError(t, err)
		assert.Equal(t, domain.ConsentUnset, status)
	})

	t.Run("record and read back", func(t *testing.T) {
		require.NoError(t, uc.RecordConsent(ctx, "visitor-1", domain.ConsentAccepted))

		status, err := uc.Consent(ctx, "visitor-1")
		require.NoError(t, err)
		assert.Equal(t, domain.ConsentAccepted, status)
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		err := uc.RecordConsent(ctx, "visitor-1", domain.ConsentStatus("maybe"))
		assert.Error(t, err)
	})

	t.Run("withdraw resets to unset", func(t *testing.T) {
		require.NoError(t, uc.WithdrawConsent(ctx, "visitor-1"))

		status, err := uc.Consent(ctx, "visitor-1")
		require.NoError(t, err)
		assert.Equal(t, domain.ConsentUnset, status)
	})

	t.Run("visitors are isolated", func(t *testing.T) {
		require.NoError(t, uc.RecordConsent(ctx, "visitor-a", domain.ConsentRejected))

		status, err := uc.Consent(ctx, "visitor-b")
		require.NoError(t, err)
		assert.Equal(t, domain.ConsentUnset, status)
	})
}

func TestWidgetCooldown(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	uc, clock := newClientStateTest(start)

	t.Run("visible before any dismissal", func(t *testing.T) {
		show, err := uc.ShouldShowWidget(ctx, "visitor-1")
		require.NoError(t, err)
		assert.True(t, show)
	})

	t.Run("hidden right after dismissal", func(t *testing.T) {
		require.NoError(t, uc.DismissWidget(ctx, "visitor-1"))

		show, err := uc.ShouldShowWidget(ctx, "visitor-1")
		require.NoError(t, err)
		assert.False(t, show)
	})

	t.Run("still hidden just inside 24h", func(t *testing.T) {
		*clock = start.Add(domain.WidgetCooldown - time.Minute)

		show, err := uc.ShouldShowWidget(ctx, "visitor-1")
		require.NoError(t, err)
		assert.False(t, show)
	})

	t.Run("visible again once the cooldown lapses", func(t *testing.T) {
		*clock = start.Add(domain.WidgetCooldown)

		show, err := uc.ShouldShowWidget(ctx, "visitor-1")
		require.NoError(t, err)
		assert.True(t, show)
	})
}
