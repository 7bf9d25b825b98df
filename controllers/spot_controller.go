package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urbex-atlas/api-go/models"
	"github.com/urbex-atlas/api-go/utils"
	"gorm.io/gorm"
)

type SpotController struct {
	DB *gorm.DB
}

func NewSpotController(db *gorm.DB) *SpotController {
	return &SpotController{DB: db}
}

// Correlated subqueries keep the counters derived from the interaction
// tables at read time, so they can never drift from the stored rows.
const spotCountersSelect = `spots.*,
	(SELECT image_url FROM spot_images WHERE spot_images.spot_id = spots.id ORDER BY spot_images.id LIMIT 1) AS main_image,
	(SELECT COUNT(*) FROM spot_likes WHERE spot_likes.spot_id = spots.id AND spot_likes.is_like = TRUE) AS likes,
	(SELECT COUNT(*) FROM check_ins WHERE check_ins.spot_id = spots.id) AS check_ins`

type spotWithCounters struct {
	models.Spot
	MainImage string `json:"main_image"`
	Likes     int64  `json:"likes"`
	CheckIns  int64  `json:"check_ins"`
}

type spotCommentView struct {
	ID          uint      `json:"id"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
	UserName    string    `json:"user_name"`
	Username    string    `json:"username"`
}

// GetSpot godoc
// @Summary Get spot details
// @Description Returns the spot with derived counters, the caller's interaction state and comments
// @Tags spots
// @Accept json
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} map[string]interface{}
// @Router /spots/{id} [get]
func (sc *SpotController) GetSpot(c *gin.Context) {
	user := utils.GetUser(c)

	var spot spotWithCounters
	if err := sc.DB.Model(&models.Spot{}).
		Select(spotCountersSelect).
		Where("spots.id = ?", c.Param("id")).
		First(&spot).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Spot not found"})
		return
	}

	userHasLiked := false
	userHasCheckedIn := false
	userDifficultyRating := 0

	if user != nil {
		var like models.SpotLike
		if err := sc.DB.Where("spot_id = ? AND user_id = ?", spot.ID, user.UserID).First(&like).Error; err == nil {
			userHasLiked = like.IsLike
		}

		var checkInCount int64
		sc.DB.Model(&models.CheckIn{}).Where("spot_id = ? AND user_id = ?", spot.ID, user.UserID).Count(&checkInCount)
		userHasCheckedIn = checkInCount > 0

		var rating models.SpotDifficultyRating
		if err := sc.DB.Where("spot_id = ? AND user_id = ?", spot.ID, user.UserID).First(&rating).Error; err == nil {
			userDifficultyRating = rating.DifficultyRating
		}
	}

	comments := []spotCommentView{}
	if err := sc.DB.Model(&models.SpotComment{}).
		Select("spot_comments.id, spot_comments.comment_text, spot_comments.created_at, users.name AS user_name, users.username").
		Joins("LEFT JOIN users ON users.id = spot_comments.user_id").
		Where("spot_comments.spot_id = ?", spot.ID).
		Order("spot_comments.created_at DESC, spot_comments.id DESC").
		Scan(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"spot": gin.H{
			"id":                     spot.ID,
			"name":                   spot.Name,
			"description":            spot.Description,
			"latitude":               spot.Latitude,
			"longitude":              spot.Longitude,
			"what_to_expect":         spot.WhatToExpect,
			"created_by":             spot.CreatedBy,
			"created_at":             spot.CreatedAt,
			"main_image":             spot.MainImage,
			"likes":                  spot.Likes,
			"check_ins":              spot.CheckIns,
			"user_has_liked":         userHasLiked,
			"user_has_checked_in":    userHasCheckedIn,
			"user_difficulty_rating": userDifficultyRating,
			"comments":               comments,
		},
	})
}

// ListSpots godoc
// @Summary List spots
// @Description Returns spots ordered by creation time descending
// @Tags spots
// @Accept json
// @Produce json
// @Param limit query integer false "Maximum spots to return (default: 100)"
// @Success 200 {object} map[string]interface{}
// @Router /spots [get]
func (sc *SpotController) ListSpots(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 100)

	var spots []spotWithCounters
	if err := sc.DB.Model(&models.Spot{}).
		Select(spotCountersSelect).
		Order("spots.created_at DESC").
		Limit(limit).
		Find(&spots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching spots"})
		return
	}

	if spots == nil {
		spots = []spotWithCounters{}
	}

	c.JSON(http.StatusOK, gin.H{"spots": spots})
}

// SearchSpots godoc
// @Summary Search spots
// @Description Case-insensitive substring match against name and description, newest first
// @Tags spots
// @Accept json
// @Produce json
// @Param query query string false "Search term"
// @Success 200 {object} map[string]interface{}
// @Router /spots/search [get]
func (sc *SpotController) SearchSpots(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))

	db := sc.DB.Model(&models.Spot{}).
		Select(spotCountersSelect).
		Order("spots.created_at DESC")

	if query == "" {
		db = db.Limit(parseLimit(c.Query("limit"), 100))
	} else {
		searchTerm := "%" + query + "%"
		db = db.Where("LOWER(spots.name) LIKE LOWER(?) OR LOWER(spots.description) LIKE LOWER(?)", searchTerm, searchTerm).
			Limit(parseLimit(c.Query("limit"), 50))
	}

	var spots []spotWithCounters
	if err := db.Find(&spots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching spots"})
		return
	}

	if spots == nil {
		spots = []spotWithCounters{}
	}

	c.JSON(http.StatusOK, gin.H{"spots": spots})
}

type BulkSpotInput struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	WhatToExpect string   `json:"whatToExpect"`
	ImageURLs    []string `json:"imageUrls"`
}

// BulkAddSpots godoc
// @Summary Bulk add spots
// @Description Inserts a batch of spots with their images, reporting per-item results
// @Tags spots
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /spots/bulk-add [post]
func (sc *SpotController) BulkAddSpots(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Spots []BulkSpotInput `json:"spots" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "spots array is required"})
		return
	}

	var results []gin.H
	success, skipped, errored := 0, 0, 0

	for _, item := range input.Spots {
		if item.Name == "" || item.Latitude == nil || item.Longitude == nil {
			name := item.Name
			if name == "" {
				name = "Unknown"
			}
			results = append(results, gin.H{
				"name":   name,
				"status": "skipped",
				"reason": "Missing required fields (name, latitude, longitude)",
			})
			skipped++
			continue
		}

		spot := models.Spot{
			Name:         item.Name,
			Description:  item.Description,
			Latitude:     *item.Latitude,
			Longitude:    *item.Longitude,
			WhatToExpect: item.WhatToExpect,
			CreatedBy:    user.UserID,
		}
		err := sc.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&spot).Error; err != nil {
				return err
			}
			for _, imageURL := range item.ImageURLs {
				image := models.SpotImage{
					SpotID:     spot.ID,
					ImageURL:   imageURL,
					UploadedBy: user.UserID,
				}
				if err := tx.Create(&image).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			results = append(results, gin.H{
				"name":   item.Name,
				"status": "error",
				"reason": "Failed to insert spot",
			})
			errored++
			continue
		}

		results = append(results, gin.H{
			"name":   item.Name,
			"status": "success",
			"spotId": spot.ID,
		})
		success++
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Bulk add complete",
		"results": results,
		"summary": gin.H{
			"total":   len(input.Spots),
			"success": success,
			"skipped": skipped,
			"errors":  errored,
		},
	})
}

// Helper to parse and clamp a limit query parameter
func parseLimit(s string, def int) int {
	if s == "" {
		return def
	}
	val, err := strconv.Atoi(s)
	if err != nil || val < 1 || val > def {
		return def
	}
	return val
}
