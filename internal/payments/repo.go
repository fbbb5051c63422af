package payments

import "context"

type Repo interface {
	Create(ctx context.Context, sub Subscription) error
	Update(ctx context.Context, sub Subscription) error
	GetByID(ctx context.Context, subID string) (Subscription, error)
	// GetActiveByUser returns the most recently updated active
	// subscription for the user.
	GetActiveByUser(ctx context.Context, userID string) (Subscription, error)
}
