package usecase

import (
	"context"
	"fmt"
	"time"

	"bb-schoonmaak-backend/internal/domain"
)

type clientStateUsecase struct {
	repo domain.ClientStateRepository
	now  func() time.Time
}

// NewClientStateUsecase creates the usecase behind the cookie banner and the
// floating contact widget
func NewClientStateUsecase(repo domain.ClientStateRepository) domain.ClientStateUsecase {
	return &clientStateUsecase{repo: repo, now: time.Now}
}

func (uc *clientStateUsecase) Consent(ctx context.Context, visitorID string) (domain.ConsentStatus, error) {
	return uc.repo.GetConsent(ctx, visitorID)
}

func (uc *clientStateUsecase) RecordConsent(ctx context.Context, visitorID string, status domain.ConsentStatus) error {
	if status != domain.ConsentAccepted && status != domain.ConsentRejected {
		return fmt.Errorf("invalid consent status %q", status)
	}
	return uc.repo.SetConsent(ctx, visitorID, status)
}

func (uc *clientStateUsecase) WithdrawConsent(ctx context.Context, visitorID string) error {
	return uc.repo.ClearConsent(ctx, visitorID)
}

// ShouldShowWidget honors the 24h mute after an explicit dismissal
func (uc *clientStateUsecase) ShouldShowWidget(ctx context.Context, visitorID string) (bool, error) {
	dismissedAt, err := uc.repo.GetWidgetDismissedAt(ctx, visitorID)
	if err != nil {
		return false, err
	}
	if dismissedAt.IsZero() {
		return true, nil
	}
	return uc.now().Sub(dismissedAt) >= domain.WidgetCooldown, nil
}

func (uc *clientStateUsecase) DismissWidget(ctx context.Context, visitorID string) error {
	return uc.repo.SetWidgetDismissedAt(ctx, visitorID, uc.now())
}
