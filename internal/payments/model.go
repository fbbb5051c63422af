package payments

import "time"

const (
	StatusActive   = "active"
	StatusCanceled = "canceled"

	PlanPro     = "pro"
	PlanPremium = "premium"
)

// Subscription tracks a user's paid plan.
type Subscription struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	Plan              string    `json:"plan"`
	Status            string    `json:"status"`
	CurrentPeriodEnd  time.Time `json:"currentPeriodEnd"`
	CancelAtPeriodEnd bool      `json:"cancelAtPeriodEnd"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// CheckoutSession is what the frontend redirects to.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// WebhookEvent is the mock gateway's notification payload.
type WebhookEvent struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	Plan      string `json:"plan"`
}

// EventCheckoutCompleted activates or renews a subscription.
const EventCheckoutCompleted = "checkout.session.completed"

func validPlan(plan string) bool {
	return plan == PlanPro || plan == PlanPremium
}
