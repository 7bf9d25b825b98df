package models

import (
	"time"
)

// SpotComment is append-only; comments are never edited, deleted or
// deduplicated.
type SpotComment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SpotID      uint      `gorm:"not null;index" json:"spot_id"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	CommentText string    `gorm:"type:text;not null" json:"comment_text"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}
