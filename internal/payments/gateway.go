package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Gateway abstracts the billing provider. The mock implementation is
// the only one shipped; a real provider slots in behind the same
// interface via configuration.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, userID, plan string) (CheckoutSession, error)
	ParseWebhookEvent(payload []byte) (WebhookEvent, error)
}

// MockGateway fabricates checkout sessions and trusts webhook payloads
// as-is. Signature verification is deliberately absent: there is no
// real gateway signing the requests.
type MockGateway struct {
	SuccessURL string
	CancelURL  string
}

func NewMockGateway(successURL, cancelURL string) *MockGateway {
	return &MockGateway{SuccessURL: successURL, CancelURL: cancelURL}
}

func (g *MockGateway) CreateCheckoutSession(ctx context.Context, userID, plan string) (CheckoutSession, error) {
	if err := ctx.Err(); err != nil {
		return CheckoutSession{}, err
	}
	sessionID := "cs_mock_" + uuid.NewString()
	url := g.SuccessURL
	if url == "" {
		url = "http://localhost:5173/checkout/success"
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return CheckoutSession{
		SessionID: sessionID,
		URL:       fmt.Sprintf("%s%ssession_id=%s&plan=%s", url, sep, sessionID, plan),
	}, nil
}

func (g *MockGateway) ParseWebhookEvent(payload []byte) (WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return WebhookEvent{}, fmt.Errorf("%w: malformed webhook payload", ErrInvalidInput)
	}
	if event.Type == "" {
		return WebhookEvent{}, fmt.Errorf("%w: webhook type is required", ErrInvalidInput)
	}
	return event, nil
}
