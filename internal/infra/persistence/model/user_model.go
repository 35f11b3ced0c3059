package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Rows are hard-deleted when the identity provider deletes the account.
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	ExternalID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_external_id"`
	Email      string    `gorm:"type:varchar(320);not null;default:''"`
	Name       string    `gorm:"type:varchar(255);not null;default:''"`
	ImageURL   string    `gorm:"type:text;not null;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
