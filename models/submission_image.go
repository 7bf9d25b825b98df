package models

import (
	"time"
)

// SubmissionImage stays attached to its submission even after approval; the
// approval workflow copies it into a SpotImage rather than moving it.
type SubmissionImage struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SubmissionID uint      `gorm:"not null;index" json:"submission_id"`
	ImageURL     string    `gorm:"not null" json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}
