package exports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, export Export) error {
	const query = `
INSERT INTO exports (id, resume_id, user_id, file_name, storage_key, size_bytes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		export.ID, export.ResumeID, export.UserID, export.FileName, export.StorageKey, export.SizeBytes, export.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert export: %w", err)
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, exportID string) (Export, error) {
	const query = `
SELECT id, resume_id, user_id, file_name, storage_key, size_bytes, created_at
FROM exports
WHERE id = $1
LIMIT 1`
	var export Export
	err := r.DB.QueryRowContext(ctx, query, exportID).Scan(
		&export.ID, &export.ResumeID, &export.UserID, &export.FileName, &export.StorageKey, &export.SizeBytes, &export.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Export{}, ErrNotFound
		}
		return Export{}, err
	}
	return export, nil
}

func (r *PGRepo) ListByResume(ctx context.Context, resumeID string) ([]Export, error) {
	const query = `
SELECT id, resume_id, user_id, file_name, storage_key, size_bytes, created_at
FROM exports
WHERE resume_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	defer rows.Close()

	out := []Export{}
	for rows.Next() {
		var export Export
		if err := rows.Scan(&export.ID, &export.ResumeID, &export.UserID, &export.FileName, &export.StorageKey, &export.SizeBytes, &export.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, export)
	}
	return out, rows.Err()
}
