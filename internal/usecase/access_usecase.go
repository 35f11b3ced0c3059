// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"captions/internal/domain/entity"

	"github.com/google/uuid"
)

// AccessUsecase resolves callers to local users and gates project access by ownership.
type AccessUsecase interface {
	// ResolveCurrentUser maps the caller's subject to a local user.
	// It never creates users.
	ResolveCurrentUser(ctx context.Context, caller entity.Caller) (*entity.User, error)

	// AuthorizeProjectAccess returns the caller's user and the project when the caller owns it.
	AuthorizeProjectAccess(ctx context.Context, caller entity.Caller, projectID uuid.UUID) (*entity.User, *entity.Project, error)
}
