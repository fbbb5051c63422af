package templates

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Template, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	return s.Repo.List(ctx, filter)
}

func (s *Service) GetByName(ctx context.Context, name string) (Template, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Template{}, ErrNotFound
	}
	return s.Repo.GetByName(ctx, name)
}

// IsNotFound reports whether err means the template does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
