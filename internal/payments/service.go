package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumeai-backend/internal/shared/metrics"
)

// periodLength is the mock billing cycle.
const periodLength = 30 * 24 * time.Hour

type Service struct {
	Repo    Repo
	Gateway Gateway
}

func NewService(repo Repo, gateway Gateway) *Service {
	return &Service{Repo: repo, Gateway: gateway}
}

func (s *Service) CreateCheckoutSession(ctx context.Context, userID, plan string) (CheckoutSession, error) {
	userID = strings.TrimSpace(userID)
	plan = strings.ToLower(strings.TrimSpace(plan))
	if userID == "" {
		return CheckoutSession{}, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if !validPlan(plan) {
		return CheckoutSession{}, fmt.Errorf("%w: unknown plan %q", ErrInvalidInput, plan)
	}

	session, err := s.Gateway.CreateCheckoutSession(ctx, userID, plan)
	if err != nil {
		return CheckoutSession{}, err
	}
	metrics.IncCheckoutSession()
	return session, nil
}

// HandleWebhook applies a gateway event. Completed checkouts activate a
// new subscription or renew the user's existing one; other event types
// are acknowledged and dropped.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte) error {
	event, err := s.Gateway.ParseWebhookEvent(payload)
	if err != nil {
		return err
	}
	if event.Type != EventCheckoutCompleted {
		return nil
	}
	if strings.TrimSpace(event.UserID) == "" {
		return fmt.Errorf("%w: webhook userId is required", ErrInvalidInput)
	}
	plan := strings.ToLower(strings.TrimSpace(event.Plan))
	if !validPlan(plan) {
		return fmt.Errorf("%w: unknown plan %q", ErrInvalidInput, plan)
	}

	now := time.Now().UTC()
	existing, err := s.Repo.GetActiveByUser(ctx, event.UserID)
	if err == nil {
		existing.Plan = plan
		existing.CurrentPeriodEnd = now.Add(periodLength)
		existing.CancelAtPeriodEnd = false
		existing.UpdatedAt = now
		return s.Repo.Update(ctx, existing)
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	return s.Repo.Create(ctx, Subscription{
		ID:               uuid.NewString(),
		UserID:           event.UserID,
		Plan:             plan,
		Status:           StatusActive,
		CurrentPeriodEnd: now.Add(periodLength),
		CreatedAt:        now,
		UpdatedAt:        now,
	})
}

func (s *Service) GetActiveForUser(ctx context.Context, userID string) (Subscription, error) {
	if strings.TrimSpace(userID) == "" {
		return Subscription{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetActiveByUser(ctx, userID)
}

// Cancel flags the subscription to lapse at period end. The status
// stays active until then.
func (s *Service) Cancel(ctx context.Context, subID string) (Subscription, error) {
	sub, err := s.Repo.GetByID(ctx, subID)
	if err != nil {
		return Subscription{}, err
	}
	if sub.Status != StatusActive || sub.CancelAtPeriodEnd {
		return Subscription{}, fmt.Errorf("%w: subscription is not cancelable", ErrConflict)
	}
	sub.CancelAtPeriodEnd = true
	sub.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, sub); err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

// Resume clears a pending cancellation.
func (s *Service) Resume(ctx context.Context, subID string) (Subscription, error) {
	sub, err := s.Repo.GetByID(ctx, subID)
	if err != nil {
		return Subscription{}, err
	}
	if sub.Status != StatusActive || !sub.CancelAtPeriodEnd {
		return Subscription{}, fmt.Errorf("%w: subscription is not resumable", ErrConflict)
	}
	sub.CancelAtPeriodEnd = false
	sub.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, sub); err != nil {
		return Subscription{}, err
	}
	return sub, nil
}
