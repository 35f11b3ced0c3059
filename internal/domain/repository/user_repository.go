// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"captions/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their internal ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByExternalID retrieves a single user by identity-provider subject.
	FindByExternalID(ctx context.Context, externalID string) (*entity.User, error)

	// UpsertByExternalID inserts the user or overwrites email, name and image
	// of the row with the same external ID, in one atomic statement.
	UpsertByExternalID(ctx context.Context, user *entity.User) (*entity.User, error)

	// DeleteByExternalID removes the user with the given external ID.
	// It reports whether a row was removed; absence is not an error.
	DeleteByExternalID(ctx context.Context, externalID string) (bool, error)
}
