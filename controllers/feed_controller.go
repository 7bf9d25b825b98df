package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urbex-atlas/api-go/models"
	"github.com/urbex-atlas/api-go/utils"
	"gorm.io/gorm"
)

const feedLimit = 50

type FeedController struct {
	DB *gorm.DB
}

func NewFeedController(db *gorm.DB) *FeedController {
	return &FeedController{DB: db}
}

type feedPost struct {
	ID          uint      `json:"id"`
	SpotID      uint      `json:"spot_id"`
	Timestamp   time.Time `json:"timestamp"`
	SpotName    string    `json:"spot_name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Likes       int64     `json:"likes"`
	CheckIns    int64     `json:"check_ins"`
	UserID      uint      `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserAvatar  string    `json:"user_avatar"`
}

// Check-in events joined with the spot, its derived counters and the
// checking-in user's public identity. Secondary order on id keeps
// pagination stable when timestamps collide.
func (fc *FeedController) feedQuery() *gorm.DB {
	return fc.DB.Model(&models.CheckIn{}).
		Select(`check_ins.id,
			check_ins.spot_id,
			check_ins.created_at AS timestamp,
			spots.name AS spot_name,
			spots.description,
			(SELECT image_url FROM spot_images WHERE spot_images.spot_id = spots.id ORDER BY spot_images.id LIMIT 1) AS image_url,
			(SELECT COUNT(*) FROM spot_likes WHERE spot_likes.spot_id = spots.id AND spot_likes.is_like = TRUE) AS likes,
			(SELECT COUNT(*) FROM check_ins ci WHERE ci.spot_id = spots.id) AS check_ins,
			users.id AS user_id,
			users.name AS user_name,
			users.avatar AS user_avatar`).
		Joins("LEFT JOIN spots ON spots.id = check_ins.spot_id").
		Joins("LEFT JOIN users ON users.id = check_ins.user_id").
		Order("check_ins.created_at DESC, check_ins.id ASC").
		Limit(feedLimit)
}

// GetNearbyFeed godoc
// @Summary Get the global activity feed
// @Description Returns the most recent check-ins across all spots
// @Tags feed
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /feed/nearby [get]
func (fc *FeedController) GetNearbyFeed(c *gin.Context) {
	posts := []feedPost{}
	if err := fc.feedQuery().Scan(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetFollowingFeed godoc
// @Summary Get the following feed
// @Description Returns recent check-ins from followed users; empty for anonymous callers
// @Tags feed
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /feed/following [get]
func (fc *FeedController) GetFollowingFeed(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		// An anonymous caller gets a defined empty feed, not an error.
		c.JSON(http.StatusOK, gin.H{"posts": []feedPost{}})
		return
	}

	posts := []feedPost{}
	if err := fc.feedQuery().
		Where("check_ins.user_id IN (SELECT following_id FROM follows WHERE follower_id = ?)", user.UserID).
		Scan(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
