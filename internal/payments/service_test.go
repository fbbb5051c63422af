package payments

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestService() *Service {
	return NewService(NewMemoryRepo(), NewMockGateway("http://localhost:5173/success", "http://localhost:5173/cancel"))
}

func completeCheckout(t *testing.T, svc *Service, userID, plan string) Subscription {
	t.Helper()
	payload := `{"type":"checkout.session.completed","sessionId":"cs_mock_1","userId":"` + userID + `","plan":"` + plan + `"}`
	if err := svc.HandleWebhook(context.Background(), []byte(payload)); err != nil {
		t.Fatalf("HandleWebhook: %v", err)
	}
	sub, err := svc.GetActiveForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetActiveForUser: %v", err)
	}
	return sub
}

func TestCreateCheckoutSession(t *testing.T) {
	svc := newTestService()

	session, err := svc.CreateCheckoutSession(context.Background(), "user-1", "pro")
	if err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
	if !strings.HasPrefix(session.SessionID, "cs_mock_") {
		t.Fatalf("expected mock session id, got %q", session.SessionID)
	}
	if !strings.Contains(session.URL, session.SessionID) {
		t.Fatalf("expected url to carry session id: %q", session.URL)
	}
}

func TestCreateCheckoutSessionRejectsUnknownPlan(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateCheckoutSession(context.Background(), "user-1", "gold")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestWebhookActivatesSubscription(t *testing.T) {
	svc := newTestService()

	sub := completeCheckout(t, svc, "user-1", "pro")
	if sub.Status != StatusActive || sub.Plan != "pro" {
		t.Fatalf("unexpected subscription: %+v", sub)
	}
	remaining := time.Until(sub.CurrentPeriodEnd)
	if remaining < 29*24*time.Hour || remaining > 31*24*time.Hour {
		t.Fatalf("expected ~30 day period, got %v", remaining)
	}
}

func TestWebhookRenewsExistingSubscription(t *testing.T) {
	svc := newTestService()

	first := completeCheckout(t, svc, "user-1", "pro")
	second := completeCheckout(t, svc, "user-1", "premium")

	if second.ID != first.ID {
		t.Fatalf("renewal must reuse the subscription row, got %q vs %q", second.ID, first.ID)
	}
	if second.Plan != "premium" {
		t.Fatalf("expected plan upgrade, got %q", second.Plan)
	}
	if second.CancelAtPeriodEnd {
		t.Fatalf("renewal must clear pending cancellation")
	}
}

func TestWebhookIgnoresOtherEvents(t *testing.T) {
	svc := newTestService()

	payload := `{"type":"invoice.paid","userId":"user-1","plan":"pro"}`
	if err := svc.HandleWebhook(context.Background(), []byte(payload)); err != nil {
		t.Fatalf("HandleWebhook: %v", err)
	}
	if _, err := svc.GetActiveForUser(context.Background(), "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected no subscription, got %v", err)
	}
}

func TestCancelAndResume(t *testing.T) {
	svc := newTestService()

	sub := completeCheckout(t, svc, "user-1", "pro")

	canceled, err := svc.Cancel(context.Background(), sub.ID)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if !canceled.CancelAtPeriodEnd || canceled.Status != StatusActive {
		t.Fatalf("cancel must keep status active with flag set: %+v", canceled)
	}

	// A second cancel conflicts.
	if _, err := svc.Cancel(context.Background(), sub.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	resumed, err := svc.Resume(context.Background(), sub.ID)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if resumed.CancelAtPeriodEnd {
		t.Fatalf("resume must clear the flag: %+v", resumed)
	}

	// Resuming a subscription that is not pending cancel conflicts.
	if _, err := svc.Resume(context.Background(), sub.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCancelMissingSubscription(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Cancel(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
