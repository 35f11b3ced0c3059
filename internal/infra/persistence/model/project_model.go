package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProjectModel mirrors the 'projects' table.
// UserID carries no foreign key: deleting a user leaves its projects in place.
type ProjectModel struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID               uuid.UUID      `gorm:"type:uuid;not null;index:idx_projects_user_id"`
	Name                 string         `gorm:"type:varchar(255);not null"`
	LastUpdate           time.Time      `gorm:"not null;index:idx_projects_last_update"`
	VideoSize            int64          `gorm:"not null;default:0"`
	VideoFileID          string         `gorm:"type:text;not null"`
	GeneratedVideoFileID string         `gorm:"type:text"`
	AudioFileID          string         `gorm:"type:text"`
	Language             string         `gorm:"type:varchar(16)"`
	Captions             datatypes.JSON `gorm:"type:jsonb"`
	CaptionSettings      datatypes.JSON `gorm:"type:jsonb"`
	Status               string         `gorm:"type:varchar(20);not null;default:'pending'"`
	Script               string         `gorm:"type:text"`
	Error                string         `gorm:"type:text"`
	CreatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}
