package templates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) List(ctx context.Context, filter Filter) ([]Template, error) {
	query := `
SELECT id, name, category, description, featured, rating, downloads
FROM templates`
	args := []any{}
	where := ""
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = fmt.Sprintf(" WHERE category = $%d", len(args))
	}
	if filter.Featured {
		if where == "" {
			where = " WHERE featured"
		} else {
			where += " AND featured"
		}
	}
	query += where + " ORDER BY downloads DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	out := []Template{}
	for rows.Next() {
		var tpl Template
		if err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.Category, &tpl.Description, &tpl.Featured, &tpl.Rating, &tpl.Downloads); err != nil {
			return nil, err
		}
		out = append(out, tpl)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByName(ctx context.Context, name string) (Template, error) {
	const query = `
SELECT id, name, category, description, featured, rating, downloads
FROM templates
WHERE lower(name) = lower($1)
LIMIT 1`
	var tpl Template
	err := r.DB.QueryRowContext(ctx, query, name).Scan(
		&tpl.ID, &tpl.Name, &tpl.Category, &tpl.Description, &tpl.Featured, &tpl.Rating, &tpl.Downloads,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Template{}, ErrNotFound
		}
		return Template{}, err
	}
	return tpl, nil
}
