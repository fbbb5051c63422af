package resumes

import "context"

type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, resumeID string) (Resume, error)
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	// Update rewrites the scalar columns. When replaceChildren is set the
	// experience, education and project rows are deleted and re-inserted
	// from the aggregate in the same transaction.
	Update(ctx context.Context, resume Resume, replaceChildren bool) error
	Delete(ctx context.Context, resumeID string) error
	Summaries(ctx context.Context, userID string, limit int) ([]Summary, error)
}
