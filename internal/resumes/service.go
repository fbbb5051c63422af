package resumes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumeai-backend/resume/model"
)

// UserExistsFunc reports whether the owner exists. Wired from the users
// service so the packages stay decoupled; when nil the check is left to
// the database foreign key.
type UserExistsFunc func(ctx context.Context, userID string) (bool, error)

type Service struct {
	Repo       Repo
	UserExists UserExistsFunc
}

func NewService(repo Repo, userExists UserExistsFunc) *Service {
	return &Service{Repo: repo, UserExists: userExists}
}

func (s *Service) Create(ctx context.Context, userID, title string, data model.ResumeData) (Resume, error) {
	userID = strings.TrimSpace(userID)
	title = strings.TrimSpace(title)
	if userID == "" {
		return Resume{}, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if title == "" {
		return Resume{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if s.UserExists != nil {
		ok, err := s.UserExists(ctx, userID)
		if err != nil {
			return Resume{}, err
		}
		if !ok {
			return Resume{}, ErrUserNotFound
		}
	}

	data.Normalize()
	assignChildIDs(&data)

	now := time.Now().UTC()
	resume := Resume{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

func (s *Service) Get(ctx context.Context, resumeID string) (Resume, error) {
	if strings.TrimSpace(resumeID) == "" {
		return Resume{}, fmt.Errorf("%w: resume id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, resumeID)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Update applies a partial update. A nil title or data leaves that part
// untouched; a present data replaces the child rows atomically, so a
// present-but-empty array clears the section.
func (s *Service) Update(ctx context.Context, resumeID string, title *string, data *model.ResumeData) (Resume, error) {
	existing, err := s.Get(ctx, resumeID)
	if err != nil {
		return Resume{}, err
	}

	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return Resume{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		existing.Title = trimmed
	}

	replaceChildren := data != nil
	if data != nil {
		next := *data
		next.Normalize()
		assignChildIDs(&next)
		existing.Data = next
	}

	existing.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, existing, replaceChildren); err != nil {
		return Resume{}, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, resumeID string) error {
	if strings.TrimSpace(resumeID) == "" {
		return fmt.Errorf("%w: resume id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, resumeID)
}

func (s *Service) RecentSummaries(ctx context.Context, userID string, limit int) ([]Summary, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.Summaries(ctx, userID, limit)
}

func assignChildIDs(data *model.ResumeData) {
	for i := range data.Experience {
		if data.Experience[i].ID == "" {
			data.Experience[i].ID = uuid.NewString()
		}
	}
	for i := range data.Education {
		if data.Education[i].ID == "" {
			data.Education[i].ID = uuid.NewString()
		}
	}
	for i := range data.Projects {
		if data.Projects[i].ID == "" {
			data.Projects[i].ID = uuid.NewString()
		}
	}
}
