package models

import (
	"time"
)

type SpotImage struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SpotID     uint      `gorm:"not null;index" json:"spot_id"`
	ImageURL   string    `gorm:"not null" json:"image_url"`
	UploadedBy uint      `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`

	Spot Spot `json:"-" gorm:"foreignKey:SpotID"`
}
