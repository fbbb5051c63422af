package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resumeai-backend/resume/model"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoCreateInsertsChildrenInOrder(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	resume := Resume{
		ID:     "resume-1",
		UserID: "user-1",
		Title:  "Backend Engineer",
		Data: model.ResumeData{
			PersonalInfo: model.PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"},
			Summary:      "Engineer.",
			Experience: []model.Experience{
				{ID: "e1", Company: "First Corp"},
				{ID: "e2", Company: "Second Corp"},
			},
			Skills: []string{"Go", "SQL"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			resume.ID, resume.UserID, resume.Title,
			"Ada Lovelace", "ada@example.com", "", "",
			nil, nil,
			"Engineer.",
			`{"Go","SQL"}`,
			now, now,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO experiences").
		WithArgs("e1", resume.ID, 0, "First Corp", "", "", "", false, "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO experiences").
		WithArgs("e2", resume.ID, 1, "Second Corp", "", "", "", false, "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateReplacesChildren(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	resume := Resume{
		ID:    "resume-1",
		Title: "Updated",
		Data: model.ResumeData{
			Education: []model.Education{{ID: "ed1", School: "Cambridge"}},
		},
		UpdatedAt: now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE resumes").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM experiences").
		WithArgs(resume.ID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM educations").
		WithArgs(resume.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM projects").
		WithArgs(resume.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO educations").
		WithArgs("ed1", resume.ID, 0, "Cambridge", "", "", "", "", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.Update(context.Background(), resume, true); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateScalarOnlySkipsChildren(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE resumes").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Update(context.Background(), Resume{ID: "resume-1", Title: "T"}, false); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE resumes").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), Resume{ID: "missing"}, false)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM resumes").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoSummariesHonorsLimit(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "title", "updated_at"}).
		AddRow("r1", "Newest", now).
		AddRow("r2", "Older", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, title, updated_at").
		WithArgs("user-1", 5).
		WillReturnRows(rows)

	summaries, err := repo.Summaries(context.Background(), "user-1", 5)
	if err != nil {
		t.Fatalf("Summaries: %v", err)
	}
	if len(summaries) != 2 || summaries[0].ID != "r1" {
		t.Fatalf("unexpected summaries: %+v", summaries)
	}
}

func TestTextArray(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "empty", values: nil, want: "{}"},
		{name: "plain", values: []string{"Go", "SQL"}, want: `{"Go","SQL"}`},
		{name: "comma", values: []string{"CI, CD"}, want: `{"CI, CD"}`},
		{name: "quote", values: []string{`say "hi"`}, want: `{"say \"hi\""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textArray(tt.values); got != tt.want {
				t.Fatalf("textArray(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}
