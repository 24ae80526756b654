package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/wildwest-grill/models"
	"github.com/yeremiapane/wildwest-grill/utils"
	"gorm.io/gorm"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

type reservationRequest struct {
	CustomerName    string `json:"customerName"`
	ContactNumber   string `json:"contactNumber"`
	TableNumber     int    `json:"tableNumber"`
	NumGuests       int    `json:"numGuests"`
	ReservationTime string `json:"reservationTime"`
	SpecialRequests string `json:"specialRequests"`
}

// Format dari input datetime-local browser dan bentuk umum lainnya.
var reservationTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

func parseReservationTime(s string) (time.Time, error) {
	for _, layout := range reservationTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid reservation time %q", s)
}

// CreateReservation -> POST /api/reservations. Tidak ada validasi field di sini;
// constraint database (num_guests > 0) yang menolak data tidak valid.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, invalidBody(err))
		return
	}

	reservationTime, err := parseReservationTime(req.ReservationTime)
	if err != nil {
		utils.RespondError(c, utils.InternalError(err))
		return
	}

	reservation := models.Reservation{
		CustomerName:    req.CustomerName,
		ContactNumber:   req.ContactNumber,
		TableNumber:     req.TableNumber,
		NumGuests:       req.NumGuests,
		ReservationTime: reservationTime,
		SpecialRequests: req.SpecialRequests,
	}
	if err := rc.DB.WithContext(c.Request.Context()).Create(&reservation).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message":       "Reservation created successfully",
		"reservationId": reservation.ID,
	})
}

// GetAllReservations -> urut berdasarkan waktu reservasi
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations := []models.Reservation{}
	if err := rc.DB.WithContext(c.Request.Context()).
		Order("reservation_time ASC, reservation_id ASC").
		Find(&reservations).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservations)
}
