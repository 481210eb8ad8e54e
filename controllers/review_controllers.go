package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pepperjack/tableorder/models"
	"github.com/pepperjack/tableorder/utils"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// CreateReview -> POST /reviews
func (rc *ReviewController) CreateReview(c *gin.Context) {
	type reqBody struct {
		CustomerName string `json:"customer_name"`
		ServerName   string `json:"server_name"`
		Rating       int    `json:"rating"`
		Comment      string `json:"comment"`
		TableID      *uint  `json:"table_id"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.CustomerName == "" || body.ServerName == "" || body.Rating == 0 {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("customer name, server name, and rating are required"))
		return
	}
	if body.Rating < 1 || body.Rating > 5 {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("rating must be between 1 and 5"))
		return
	}
	if !models.IsKnownServer(body.ServerName) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("unknown server %q", body.ServerName))
		return
	}

	review := models.Review{
		CustomerName: body.CustomerName,
		ServerName:   body.ServerName,
		Rating:       body.Rating,
		Comment:      body.Comment,
		TableID:      body.TableID,
		CreatedAt:    time.Now(),
	}
	if err := rc.DB.Create(&review).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Review created", review)
}

// GetReviews -> GET /reviews?limit=
func (rc *ReviewController) GetReviews(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	var reviews []models.Review
	if err := rc.DB.Order("created_at DESC").Limit(limit).Find(&reviews).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reviews", reviews)
}
