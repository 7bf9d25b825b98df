package models

import (
	"time"
)

// CheckIn records a user's visit to a spot, at most once per (spot, user).
// The composite unique index is what makes recordCheckIn idempotent under
// concurrent requests; the handler relies on ON CONFLICT DO NOTHING.
type CheckIn struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SpotID    uint      `gorm:"column:spot_id;not null;uniqueIndex:idx_check_ins_spot_user" json:"spot_id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_check_ins_spot_user" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
	Spot Spot `json:"spot" gorm:"foreignKey:SpotID"`
}
