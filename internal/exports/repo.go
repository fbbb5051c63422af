package exports

import "context"

type Repo interface {
	Create(ctx context.Context, export Export) error
	GetByID(ctx context.Context, exportID string) (Export, error)
	ListByResume(ctx context.Context, resumeID string) ([]Export, error)
}
