package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for project hand-off QR codes
type QRCodeService interface {
	// GenerateProjectQR renders a PNG QR code encoding the project's deep link
	GenerateProjectQR(projectID uuid.UUID) ([]byte, error)

	// ParseProjectLink extracts the project ID from deep link content
	ParseProjectLink(link string) (uuid.UUID, error)
}
