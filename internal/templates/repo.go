package templates

import (
	"context"
	"errors"
)

// ErrNotFound indicates no template matches the requested name.
var ErrNotFound = errors.New("template not found")

type Repo interface {
	List(ctx context.Context, filter Filter) ([]Template, error)
	GetByName(ctx context.Context, name string) (Template, error)
}
