package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ResumeLister supplies the resume summaries attached to user lookups.
// It is satisfied by an adapter over the resumes service to keep the
// packages decoupled.
type ResumeLister interface {
	SummariesForUser(ctx context.Context, userID string, limit int) ([]ResumeSummary, error)
}

type Service struct {
	Repo    Repo
	Resumes ResumeLister
}

func NewService(repo Repo, resumes ResumeLister) *Service {
	return &Service{Repo: repo, Resumes: resumes}
}

func (s *Service) Create(ctx context.Context, email, name string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || !strings.Contains(email, "@") {
		return User{}, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}

	// The unique constraint still backstops concurrent creates.
	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	now := time.Now().UTC()
	user := User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return s.Repo.GetByEmail(ctx, email)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID)
}

// SummariesFor returns resume summaries for the user, newest first.
// A nil lister yields an empty slice so user lookups still work before
// the resumes feature is wired.
func (s *Service) SummariesFor(ctx context.Context, userID string, limit int) ([]ResumeSummary, error) {
	if s.Resumes == nil {
		return []ResumeSummary{}, nil
	}
	summaries, err := s.Resumes.SummariesForUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []ResumeSummary{}
	}
	return summaries, nil
}
