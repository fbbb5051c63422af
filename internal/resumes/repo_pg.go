package resumes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"resumeai-backend/resume/model"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const query = `
INSERT INTO resumes (id, user_id, title, full_name, email, phone, location, website, linkedin, summary, skills, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::text[], $12, $13)`
	info := resume.Data.PersonalInfo
	_, err = tx.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.Title,
		info.FullName,
		info.Email,
		info.Phone,
		info.Location,
		nullableString(info.Website),
		nullableString(info.LinkedIn),
		resume.Data.Summary,
		textArray(resume.Data.Skills),
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrUserNotFound
		}
		return fmt.Errorf("insert resume: %w", err)
	}

	if err := insertChildren(ctx, tx, resume.ID, resume.Data); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PGRepo) GetByID(ctx context.Context, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, title, full_name, email, phone, location, website, linkedin, summary, skills, created_at, updated_at
FROM resumes
WHERE id = $1
LIMIT 1`
	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, resumeID))
	if err != nil {
		return Resume{}, err
	}
	if err := r.loadChildren(ctx, &resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT id, user_id, title, full_name, email, phone, location, website, linkedin, summary, skills, created_at, updated_at
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if err := r.loadChildren(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *PGRepo) Update(ctx context.Context, resume Resume, replaceChildren bool) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const query = `
UPDATE resumes
SET title = $2,
    full_name = $3,
    email = $4,
    phone = $5,
    location = $6,
    website = $7,
    linkedin = $8,
    summary = $9,
    skills = $10::text[],
    updated_at = $11
WHERE id = $1`
	info := resume.Data.PersonalInfo
	res, err := tx.ExecContext(ctx, query,
		resume.ID,
		resume.Title,
		info.FullName,
		info.Email,
		info.Phone,
		info.Location,
		nullableString(info.Website),
		nullableString(info.LinkedIn),
		resume.Data.Summary,
		textArray(resume.Data.Skills),
		resume.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update resume: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	if replaceChildren {
		for _, table := range []string{"experiences", "educations", "projects"} {
			if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE resume_id = $1", table), resume.ID); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		if err := insertChildren(ctx, tx, resume.ID, resume.Data); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *PGRepo) Delete(ctx context.Context, resumeID string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM resumes WHERE id = $1", resumeID)
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Summaries(ctx context.Context, userID string, limit int) ([]Summary, error) {
	query := `
SELECT id, title, updated_at
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Title, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func insertChildren(ctx context.Context, tx *sql.Tx, resumeID string, data model.ResumeData) error {
	const expQuery = `
INSERT INTO experiences (id, resume_id, sort_order, company, position, start_date, end_date, current, description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for i, exp := range data.Experience {
		if _, err := tx.ExecContext(ctx, expQuery,
			exp.ID, resumeID, i, exp.Company, exp.Position, exp.StartDate, exp.EndDate, exp.Current, exp.Description,
		); err != nil {
			return fmt.Errorf("insert experience: %w", err)
		}
	}

	const eduQuery = `
INSERT INTO educations (id, resume_id, sort_order, school, degree, field_of_study, start_date, end_date, gpa)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for i, edu := range data.Education {
		if _, err := tx.ExecContext(ctx, eduQuery,
			edu.ID, resumeID, i, edu.School, edu.Degree, edu.FieldOfStudy, edu.StartDate, edu.EndDate, nullableString(edu.GPA),
		); err != nil {
			return fmt.Errorf("insert education: %w", err)
		}
	}

	const projQuery = `
INSERT INTO projects (id, resume_id, sort_order, name, description, technologies, link, start_date, end_date)
VALUES ($1, $2, $3, $4, $5, $6::text[], $7, $8, $9)`
	for i, proj := range data.Projects {
		if _, err := tx.ExecContext(ctx, projQuery,
			proj.ID, resumeID, i, proj.Name, proj.Description, textArray(proj.Technologies), nullableString(proj.Link), proj.StartDate, proj.EndDate,
		); err != nil {
			return fmt.Errorf("insert project: %w", err)
		}
	}
	return nil
}

func (r *PGRepo) loadChildren(ctx context.Context, resume *Resume) error {
	const expQuery = `
SELECT id, company, position, start_date, end_date, current, description
FROM experiences
WHERE resume_id = $1
ORDER BY sort_order`
	expRows, err := r.DB.QueryContext(ctx, expQuery, resume.ID)
	if err != nil {
		return fmt.Errorf("load experiences: %w", err)
	}
	defer expRows.Close()
	resume.Data.Experience = []model.Experience{}
	for expRows.Next() {
		var exp model.Experience
		if err := expRows.Scan(&exp.ID, &exp.Company, &exp.Position, &exp.StartDate, &exp.EndDate, &exp.Current, &exp.Description); err != nil {
			return err
		}
		resume.Data.Experience = append(resume.Data.Experience, exp)
	}
	if err := expRows.Err(); err != nil {
		return err
	}

	const eduQuery = `
SELECT id, school, degree, field_of_study, start_date, end_date, gpa
FROM educations
WHERE resume_id = $1
ORDER BY sort_order`
	eduRows, err := r.DB.QueryContext(ctx, eduQuery, resume.ID)
	if err != nil {
		return fmt.Errorf("load educations: %w", err)
	}
	defer eduRows.Close()
	resume.Data.Education = []model.Education{}
	for eduRows.Next() {
		var edu model.Education
		var gpa sql.NullString
		if err := eduRows.Scan(&edu.ID, &edu.School, &edu.Degree, &edu.FieldOfStudy, &edu.StartDate, &edu.EndDate, &gpa); err != nil {
			return err
		}
		edu.GPA = gpa.String
		resume.Data.Education = append(resume.Data.Education, edu)
	}
	if err := eduRows.Err(); err != nil {
		return err
	}

	const projQuery = `
SELECT id, name, description, technologies, link, start_date, end_date
FROM projects
WHERE resume_id = $1
ORDER BY sort_order`
	projRows, err := r.DB.QueryContext(ctx, projQuery, resume.ID)
	if err != nil {
		return fmt.Errorf("load projects: %w", err)
	}
	defer projRows.Close()
	resume.Data.Projects = []model.Project{}
	for projRows.Next() {
		var proj model.Project
		var link sql.NullString
		var tech []string
		if err := projRows.Scan(&proj.ID, &proj.Name, &proj.Description, pgtype.NewMap().SQLScanner(&tech), &link, &proj.StartDate, &proj.EndDate); err != nil {
			return err
		}
		if tech == nil {
			tech = []string{}
		}
		proj.Technologies = tech
		proj.Link = link.String
		resume.Data.Projects = append(resume.Data.Projects, proj)
	}
	return projRows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var website sql.NullString
	var linkedin sql.NullString
	var skills []string
	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Title,
		&resume.Data.PersonalInfo.FullName,
		&resume.Data.PersonalInfo.Email,
		&resume.Data.PersonalInfo.Phone,
		&resume.Data.PersonalInfo.Location,
		&website,
		&linkedin,
		&resume.Data.Summary,
		pgtype.NewMap().SQLScanner(&skills),
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	resume.Data.PersonalInfo.Website = website.String
	resume.Data.PersonalInfo.LinkedIn = linkedin.String
	if skills == nil {
		skills = []string{}
	}
	resume.Data.Skills = skills
	return resume, nil
}

// textArray renders a Postgres text[] literal. Values are quoted so
// commas, braces and spaces survive the round trip.
func textArray(values []string) string {
	if len(values) == 0 {
		return "{}"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		escaped := strings.ReplaceAll(v, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, `"`, `\"`)
		parts[i] = `"` + escaped + `"`
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
