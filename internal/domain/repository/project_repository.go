package repository

import (
	"context"
	"errors"

	"captions/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProjectNotFound is returned when a project is not found.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository defines read access to projects.
type ProjectRepository interface {
	// FindByID retrieves a single project by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// ListByUserID lists projects owned by the user, most recently updated first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error)
}
