package models

import (
	"time"
)

const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

// PendingSubmission is a user-proposed spot awaiting review. Status moves
// from pending to approved or rejected exactly once; both are terminal.
// ApprovedSpotID is set on approval and never changes afterwards.
type PendingSubmission struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	Latitude       float64   `gorm:"not null;type:decimal(10,8)" json:"latitude"`
	Longitude      float64   `gorm:"not null;type:decimal(11,8)" json:"longitude"`
	WhatToExpect   string    `gorm:"type:text" json:"what_to_expect"`
	SubmittedBy    uint      `gorm:"not null" json:"submitted_by"`
	Status         string    `gorm:"not null;default:'pending';index" json:"status"`
	ApprovedSpotID *uint     `json:"approved_spot_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Images    []SubmissionImage `json:"images" gorm:"foreignKey:SubmissionID"`
	Submitter User              `json:"submitter" gorm:"foreignKey:SubmittedBy"`
}
