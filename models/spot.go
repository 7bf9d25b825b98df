package models

import (
	"time"
)

// Spot is a published point of interest. Spots are only ever created by the
// moderation workflow (admin direct insert or submission approval) and are
// never deleted through the API.
type Spot struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Latitude     float64   `gorm:"not null;type:decimal(10,8)" json:"latitude"`
	Longitude    float64   `gorm:"not null;type:decimal(11,8)" json:"longitude"`
	WhatToExpect string    `gorm:"type:text" json:"what_to_expect"`
	CreatedBy    uint      `gorm:"not null" json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Images []SpotImage `json:"images" gorm:"foreignKey:SpotID"`
}
