package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/wildwest-grill/models"
	"github.com/yeremiapane/wildwest-grill/utils"
	"gorm.io/gorm"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// CreateReview -> POST /api/reviews
func (rc *ReviewController) CreateReview(c *gin.Context) {
	var req struct {
		CustomerID uint   `json:"customerId"`
		Rating     int    `json:"rating"`
		Comment    string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, invalidBody(err))
		return
	}

	if req.CustomerID == 0 || req.Rating == 0 || req.Comment == "" {
		utils.RespondError(c, utils.ValidationError("Missing required fields"))
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		utils.RespondError(c, utils.ValidationError("Rating must be between 1 and 5"))
		return
	}

	db := rc.DB.WithContext(c.Request.Context())

	var customer models.Customer
	if err := db.First(&customer, req.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NotFoundError("Customer not found"))
			return
		}
		utils.RespondError(c, err)
		return
	}

	review := models.Review{
		CustomerID: &customer.ID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := db.Create(&review).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message":  "Review added successfully",
		"reviewId": review.ID,
	})
}

// GetAllReviews -> review beserta nama customer, terbaru dulu
func (rc *ReviewController) GetAllReviews(c *gin.Context) {
	rows := []models.ReviewRow{}
	err := rc.DB.WithContext(c.Request.Context()).
		Table("reviews r").
		Select("r.review_id, r.customer_id, r.rating, r.comment, r.created_at, c.name AS customer_name").
		Joins("JOIN customers c ON r.customer_id = c.customer_id").
		Order("r.created_at DESC, r.review_id DESC").
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, rows)
}
