package models

import (
	"time"
)

type SpotDifficultyRating struct {
	ID               uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SpotID           uint      `gorm:"column:spot_id;not null;uniqueIndex:idx_spot_ratings_spot_user" json:"spot_id"`
	UserID           uint      `gorm:"column:user_id;not null;uniqueIndex:idx_spot_ratings_spot_user" json:"user_id"`
	DifficultyRating int       `gorm:"column:difficulty_rating;not null;check:difficulty_rating between 1 and 5" json:"difficulty_rating"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
