package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/urbex-atlas/api-go/models"
	"github.com/urbex-atlas/api-go/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InteractionController struct {
	DB *gorm.DB
}

func NewInteractionController(db *gorm.DB) *InteractionController {
	return &InteractionController{DB: db}
}

// CheckIn godoc
// @Summary Check in to a spot
// @Description Records a visit; a repeat check-in is a successful no-op
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} map[string]interface{}
// @Router /spots/{id}/checkin [post]
func (ic *InteractionController) CheckIn(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var spot models.Spot
	if err := ic.DB.First(&spot, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Spot not found"})
		return
	}

	// The unique index on (spot_id, user_id) makes this safe under
	// concurrent requests; the loser of the race hits the conflict and
	// affects zero rows.
	checkIn := models.CheckIn{
		SpotID: spot.ID,
		UserID: user.UserID,
	}
	result := ic.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "spot_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&checkIn)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check in"})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Already checked in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LikeSpot godoc
// @Summary Like or dislike a spot
// @Description Upserts the caller's like row; repeated calls with the same value are idempotent
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} map[string]interface{}
// @Router /spots/{id}/like [post]
func (ic *InteractionController) LikeSpot(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		IsLike *bool `json:"isLike" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var spot models.Spot
	if err := ic.DB.First(&spot, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Spot not found"})
		return
	}

	like := models.SpotLike{
		SpotID: spot.ID,
		UserID: user.UserID,
		IsLike: *input.IsLike,
	}
	if err := ic.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "spot_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_like", "updated_at"}),
	}).Create(&like).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "isLike": *input.IsLike})
}

// RateSpot godoc
// @Summary Rate a spot's difficulty
// @Description Upserts the caller's 1-5 difficulty rating
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} map[string]interface{}
// @Router /spots/{id}/rate [post]
func (ic *InteractionController) RateSpot(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		DifficultyRating int `json:"difficultyRating" binding:"required,min=1,max=5"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating"})
		return
	}

	var spot models.Spot
	if err := ic.DB.First(&spot, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Spot not found"})
		return
	}

	rating := models.SpotDifficultyRating{
		SpotID:           spot.ID,
		UserID:           user.UserID,
		DifficultyRating: input.DifficultyRating,
	}
	if err := ic.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "spot_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"difficulty_rating", "updated_at"}),
	}).Create(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CommentSpot godoc
// @Summary Comment on a spot
// @Description Appends a comment; comments are never deduplicated
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} map[string]interface{}
// @Router /spots/{id}/comment [post]
func (ic *InteractionController) CommentSpot(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		CommentText string `json:"commentText"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(input.CommentText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text required"})
		return
	}

	var spot models.Spot
	if err := ic.DB.First(&spot, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Spot not found"})
		return
	}

	comment := models.SpotComment{
		SpotID:      spot.ID,
		UserID:      user.UserID,
		CommentText: input.CommentText,
	}
	if err := ic.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"comment": gin.H{
			"id":           comment.ID,
			"comment_text": comment.CommentText,
			"created_at":   comment.CreatedAt,
		},
	})
}
