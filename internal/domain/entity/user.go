// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the local mirror of an identity-provider account.
// It is created, updated and deleted only by identity events.
type User struct {
	ID         uuid.UUID // Internal identifier assigned by storage.
	ExternalID string    // The identity provider's subject; unique across users.
	Email      string    // Primary email address reported by the provider.
	Name       string    // Display name; empty when the provider has none.
	ImageURL   string    // Avatar URL; empty when the provider has none.
	CreatedAt  time.Time // Timestamp of when this user was first provisioned.
	UpdatedAt  time.Time // Timestamp of the last identity event applied to this user.
}
