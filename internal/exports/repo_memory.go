package exports

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	exports map[string]Export
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{exports: make(map[string]Export)}
}

func (r *MemoryRepo) Create(ctx context.Context, export Export) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exports[export.ID] = export
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, exportID string) (Export, error) {
	if err := ctx.Err(); err != nil {
		return Export{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	export, ok := r.exports[exportID]
	if !ok {
		return Export{}, ErrNotFound
	}
	return export, nil
}

func (r *MemoryRepo) ListByResume(ctx context.Context, resumeID string) ([]Export, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Export{}
	for _, export := range r.exports {
		if export.ResumeID == resumeID {
			out = append(out, export)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
