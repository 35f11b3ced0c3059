package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus is the processing state of a project.
type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "pending"
	ProjectStatusProcessing ProjectStatus = "processing"
	ProjectStatusReady      ProjectStatus = "ready"
	ProjectStatusFailed     ProjectStatus = "failed"
)

// IsValid reports whether the status is one of the known values.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPending, ProjectStatusProcessing, ProjectStatusReady, ProjectStatusFailed:
		return true
	default:
		return false
	}
}

// Project is a video-captioning project owned by exactly one user.
type Project struct {
	ID                   uuid.UUID        `json:"id"`
	UserID               uuid.UUID        `json:"user_id"` // Owner. Not a foreign key: owner deletion leaves it dangling.
	Name                 string           `json:"name"`
	LastUpdate           time.Time        `json:"last_update"`
	VideoSize            int64            `json:"video_size"` // Bytes.
	VideoFileID          string           `json:"video_file_id"`
	GeneratedVideoFileID string           `json:"generated_video_file_id,omitempty"`
	AudioFileID          string           `json:"audio_file_id,omitempty"`
	Language             string           `json:"language,omitempty"`
	Captions             []CaptionSegment `json:"captions,omitempty"`
	CaptionSettings      *CaptionSettings `json:"caption_settings,omitempty"`
	Status               ProjectStatus    `json:"status"`
	Script               string           `json:"script,omitempty"`
	Error                string           `json:"error,omitempty"`
}

// IsOwnedBy reports whether the given user owns the project.
func (p *Project) IsOwnedBy(userID uuid.UUID) bool {
	return p != nil && p.UserID == userID
}

// CaptionSegmentType classifies a caption segment.
type CaptionSegmentType string

const (
	CaptionSegmentWord       CaptionSegmentType = "word"
	CaptionSegmentSpacing    CaptionSegmentType = "spacing"
	CaptionSegmentAudioEvent CaptionSegmentType = "audio_event"
)

// CaptionSegment is one timed unit of a transcript. Times are in seconds.
type CaptionSegment struct {
	Text       string             `json:"text"`
	Start      float64            `json:"start"`
	End        float64            `json:"end"`
	Type       CaptionSegmentType `json:"type"`
	SpeakerID  string             `json:"speaker_id"`
	Characters []CaptionCharacter `json:"characters,omitempty"`
}

// CaptionCharacter is a per-character timing inside a segment.
type CaptionCharacter struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// CaptionPosition is where captions are drawn on the frame.
type CaptionPosition string

const (
	CaptionPositionTop    CaptionPosition = "top"
	CaptionPositionMiddle CaptionPosition = "middle"
	CaptionPositionBottom CaptionPosition = "bottom"
)

// CaptionSettings controls caption rendering for a project.
type CaptionSettings struct {
	FontSize float64         `json:"font_size"`
	Position CaptionPosition `json:"position"`
	Color    string          `json:"color"`
}
