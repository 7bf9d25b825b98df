package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urbex-atlas/api-go/models"
	"github.com/urbex-atlas/api-go/utils"
	"gorm.io/gorm"
)

type SubmissionController struct {
	DB *gorm.DB
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{DB: db}
}

// SubmitSpot godoc
// @Summary Submit a new spot
// @Description Admins get an immediate spot; everyone else gets a pending submission
// @Tags submissions
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /spots/submit [post]
func (sc *SubmissionController) SubmitSpot(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Name         string   `json:"name" binding:"required"`
		Description  string   `json:"description"`
		Latitude     *float64 `json:"latitude" binding:"required"`
		Longitude    *float64 `json:"longitude" binding:"required"`
		WhatToExpect string   `json:"whatToExpect"`
		ImageURLs    []string `json:"imageUrls" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if user.IsAdmin {
		// Auto-approve for admins - create the spot directly
		spot := models.Spot{
			Name:         input.Name,
			Description:  input.Description,
			Latitude:     *input.Latitude,
			Longitude:    *input.Longitude,
			WhatToExpect: input.WhatToExpect,
			CreatedBy:    user.UserID,
		}
		err := sc.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&spot).Error; err != nil {
				return err
			}
			for _, imageURL := range input.ImageURLs {
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create spot"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"spotId":       spot.ID,
			"autoApproved": true,
			"message":      "Spot created successfully (auto-approved)",
		})
		return
	}

	// Create pending submission for regular users
	submission := models.PendingSubmission{
		Name:         input.Name,
		Description:  input.Description,
		Latitude:     *input.Latitude,
		Longitude:    *input.Longitude,
		WhatToExpect: input.WhatToExpect,
		SubmittedBy:  user.UserID,
		Status:       models.SubmissionStatusPending,
	}
	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}
		for _, imageURL := range input.ImageURLs {
			image := models.SubmissionImage{
				SubmissionID: submission.ID,
				ImageURL:     imageURL,
			}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"submissionId": submission.ID,
		"message":      "Submission received for approval",
	})
}

// GetPendingSubmissions godoc
// @Summary List pending submissions
// @Description Returns every pending submission with images and submitter identity, newest first
// @Tags submissions
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/submissions [get]
func (sc *SubmissionController) GetPendingSubmissions(c *gin.Context) {
	var submissions []models.PendingSubmission
	if err := sc.DB.Preload("Images").Preload("Submitter").
		Where("status = ?", models.SubmissionStatusPending).
		Order("created_at DESC").
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	results := []gin.H{}
	for _, sub := range submissions {
		images := []gin.H{}
		for _, img := range sub.Images {
			images = append(images, gin.H{"id": img.ID, "image_url": img.ImageURL})
		}
		results = append(results, gin.H{
			"id":                    sub.ID,
			"name":                  sub.Name,
			"description":           sub.Description,
			"latitude":              sub.Latitude,
			"longitude":             sub.Longitude,
			"what_to_expect":        sub.WhatToExpect,
			"status":                sub.Status,
			"created_at":            sub.CreatedAt,
			"submitted_by":          sub.SubmittedBy,
			"submitted_by_username": sub.Submitter.Username,
			"submitted_by_name":     sub.Submitter.Name,
			"images":                images,
		})
	}

	c.JSON(http.StatusOK, gin.H{"submissions": results})
}

// ApproveSubmission godoc
// @Summary Approve a pending submission
// @Description Creates the spot, copies the images and marks the submission approved, atomically
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/submissions/{id}/approve [post]
func (sc *SubmissionController) ApproveSubmission(c *gin.Context) {
	var spotID uint

	// Spot creation, image copy and the status flip commit or roll back
	// together; a failed approval leaves the submission pending and safe
	// to retry.
	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		var sub models.PendingSubmission
		if err := tx.Where("status = ?", models.SubmissionStatusPending).
			First(&sub, c.Param("id")).Error; err != nil {
			return err
		}

		spot := models.Spot{
			Name:         sub.Name,
			Description:  sub.Description,
			Latitude:     sub.Latitude,
			Longitude:    sub.Longitude,
			WhatToExpect: sub.WhatToExpect,
			CreatedBy:    sub.SubmittedBy,
		}
		if err := tx.Create(&spot).Error; err != nil {
			return err
		}

		// Copy, don't move: submission images stay behind as an audit trail.
		var images []models.SubmissionImage
		if err := tx.Where("submission_id = ?", sub.ID).Find(&images).Error; err != nil {
			return err
		}
		for _, img := range images {
			spotImage := models.SpotImage{
				SpotID:     spot.ID,
				ImageURL:   img.ImageURL,
				UploadedBy: sub.SubmittedBy,
			}
			if err := tx.Create(&spotImage).Error; err != nil {
				return err
			}
		}

		// The status guard catches a concurrent approval that won the race
		// after our initial read.
		result := tx.Model(&models.PendingSubmission{}).
			Where("id = ? AND status = ?", sub.ID, models.SubmissionStatusPending).
			Updates(map[string]interface{}{
				"status":           models.SubmissionStatusApproved,
				"approved_spot_id": spot.ID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		spotID = spot.ID
		return nil
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Submission approved",
		"spotId":  spotID,
	})
}

// RejectSubmission godoc
// @Summary Reject a pending submission
// @Description Marks the submission rejected; terminal, no spot is created
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/submissions/{id}/reject [post]
func (sc *SubmissionController) RejectSubmission(c *gin.Context) {
	result := sc.DB.Model(&models.PendingSubmission{}).
		Where("id = ? AND status = ?", c.Param("id"), models.SubmissionStatusPending).
		Update("status", models.SubmissionStatusRejected)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject submission"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission rejected"})
}
