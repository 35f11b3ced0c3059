package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"captions/config"
	"captions/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize         = 256
	defaultDeepLinkBase = "captions://app"
	projectPathSegment  = "projects"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	deepLinkBase         string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, deepLinkBase string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}
	if deepLinkBase == "" {
		deepLinkBase = defaultDeepLinkBase
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		deepLinkBase:         strings.TrimRight(deepLinkBase, "/"),
	}
}

// NewFromConfig builds the QR code service from the qrcode config section
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", defaultDeepLinkBase)
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.DeepLinkBase)
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "m", "medium":
		return qrcode.Medium
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ProjectLink returns the deep link that opens the project in the app
func (s *qrcodeService) ProjectLink(projectID uuid.UUID) string {
	return s.deepLinkBase + "/" + projectPathSegment + "/" + projectID.String()
}

// GenerateProjectQR generates a PNG QR code for the project's deep link
func (s *qrcodeService) GenerateProjectQR(projectID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProjectLink(projectID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseProjectLink parses deep link content and returns the project ID
func (s *qrcodeService) ParseProjectLink(link string) (uuid.UUID, error) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse link: %w", err)
	}

	segments := strings.Split(strings.Trim(u.Host+u.Path, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-2] != projectPathSegment {
		return uuid.Nil, fmt.Errorf("not a project link: %s", link)
	}

	projectID, err := uuid.Parse(segments[len(segments)-1])
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse project ID: %w", err)
	}

	return projectID, nil
}
