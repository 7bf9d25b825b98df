package models

import (
	"time"
)

// SpotLike holds exactly one row per (spot, user); IsLike may flip between
// like and dislike via upsert.
type SpotLike struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SpotID    uint      `gorm:"column:spot_id;not null;uniqueIndex:idx_spot_likes_spot_user" json:"spot_id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_spot_likes_spot_user" json:"user_id"`
	IsLike    bool      `gorm:"column:is_like;not null" json:"is_like"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
	Spot Spot `json:"spot" gorm:"foreignKey:SpotID"`
}
