package usecase

import (
	"context"

	"captions/internal/domain/entity"

	"github.com/google/uuid"
)

// ProjectView is a project with short-lived URLs for its media files.
type ProjectView struct {
	Project           *entity.Project
	VideoURL          string
	GeneratedVideoURL string
	AudioURL          string
}

// ProjectUsecase defines the owner-facing project operations.
type ProjectUsecase interface {
	// ListProjects lists the caller's projects, most recently updated first.
	ListProjects(ctx context.Context, caller entity.Caller) ([]*entity.Project, error)

	// GetProject returns an owned project with signed media URLs.
	GetProject(ctx context.Context, caller entity.Caller, projectID uuid.UUID) (*ProjectView, error)

	// ProjectQRCode renders a PNG QR code with the project's deep link.
	ProjectQRCode(ctx context.Context, caller entity.Caller, projectID uuid.UUID) ([]byte, error)
}
