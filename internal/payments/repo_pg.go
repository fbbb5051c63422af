package payments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, sub Subscription) error {
	const query = `
INSERT INTO subscriptions (id, user_id, plan, status, current_period_end, cancel_at_period_end, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		sub.ID, sub.UserID, sub.Plan, sub.Status, sub.CurrentPeriodEnd, sub.CancelAtPeriodEnd, sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

func (r *PGRepo) Update(ctx context.Context, sub Subscription) error {
	const query = `
UPDATE subscriptions
SET plan = $2,
    status = $3,
    current_period_end = $4,
    cancel_at_period_end = $5,
    updated_at = $6
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		sub.ID, sub.Plan, sub.Status, sub.CurrentPeriodEnd, sub.CancelAtPeriodEnd, sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, subID string) (Subscription, error) {
	const query = `
SELECT id, user_id, plan, status, current_period_end, cancel_at_period_end, created_at, updated_at
FROM subscriptions
WHERE id = $1
LIMIT 1`
	return scanSubscription(r.DB.QueryRowContext(ctx, query, subID))
}

func (r *PGRepo) GetActiveByUser(ctx context.Context, userID string) (Subscription, error) {
	const query = `
SELECT id, user_id, plan, status, current_period_end, cancel_at_period_end, created_at, updated_at
FROM subscriptions
WHERE user_id = $1 AND status = $2
ORDER BY updated_at DESC
LIMIT 1`
	return scanSubscription(r.DB.QueryRowContext(ctx, query, userID, StatusActive))
}

func scanSubscription(row *sql.Row) (Subscription, error) {
	var sub Subscription
	err := row.Scan(
		&sub.ID, &sub.UserID, &sub.Plan, &sub.Status, &sub.CurrentPeriodEnd, &sub.CancelAtPeriodEnd, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscription{}, ErrNotFound
		}
		return Subscription{}, err
	}
	return sub, nil
}
