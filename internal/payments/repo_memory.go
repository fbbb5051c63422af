package payments

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	subs map[string]Subscription
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{subs: make(map[string]Subscription)}
}

func (r *MemoryRepo) Create(ctx context.Context, sub Subscription) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.ID] = sub
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, sub Subscription) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[sub.ID]; !ok {
		return ErrNotFound
	}
	r.subs[sub.ID] = sub
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, subID string) (Subscription, error) {
	if err := ctx.Err(); err != nil {
		return Subscription{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.subs[subID]
	if !ok {
		return Subscription{}, ErrNotFound
	}
	return sub, nil
}

func (r *MemoryRepo) GetActiveByUser(ctx context.Context, userID string) (Subscription, error) {
	if err := ctx.Err(); err != nil {
		return Subscription{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var found Subscription
	var ok bool
	for _, sub := range r.subs {
		if sub.UserID != userID || sub.Status != StatusActive {
			continue
		}
		if !ok || sub.UpdatedAt.After(found.UpdatedAt) {
			found = sub
			ok = true
		}
	}
	if !ok {
		return Subscription{}, ErrNotFound
	}
	return found, nil
}
