package templates

import (
	"context"
	"sort"
	"strings"
	"sync"
)

type MemoryRepo struct {
	mu        sync.RWMutex
	templates []Template
}

// NewMemoryRepo starts with the same catalog the migration seeds, so
// the no-database mode serves the gallery too.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{templates: []Template{
		{ID: "tpl-modern", Name: "Modern", Category: "professional", Description: "Clean single-column layout with bold section headers", Featured: true, Rating: 4.8, Downloads: 12840},
		{ID: "tpl-classic", Name: "Classic", Category: "professional", Description: "Traditional serif layout favored in conservative industries", Rating: 4.5, Downloads: 9310},
		{ID: "tpl-minimal", Name: "Minimal", Category: "simple", Description: "Whitespace-heavy layout that keeps the focus on content", Featured: true, Rating: 4.7, Downloads: 15102},
		{ID: "tpl-creative", Name: "Creative", Category: "design", Description: "Two-column layout with an accent color sidebar", Rating: 4.2, Downloads: 5473},
	}}
}

func (r *MemoryRepo) List(ctx context.Context, filter Filter) ([]Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Template{}
	for _, tpl := range r.templates {
		if filter.Category != "" && tpl.Category != filter.Category {
			continue
		}
		if filter.Featured && !tpl.Featured {
			continue
		}
		out = append(out, tpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Downloads > out[j].Downloads })
	return out, nil
}

func (r *MemoryRepo) GetByName(ctx context.Context, name string) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, tpl := range r.templates {
		if strings.EqualFold(tpl.Name, name) {
			return tpl, nil
		}
	}
	return Template{}, ErrNotFound
}
