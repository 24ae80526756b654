package models

import "time"

type Reservation struct {
	ID              uint      `gorm:"primaryKey;column:reservation_id" json:"reservation_id"`
	CustomerName    string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	ContactNumber   string    `gorm:"type:varchar(20)" json:"contact_number"`
	TableNumber     int       `gorm:"not null" json:"table_number"`
	NumGuests       int       `gorm:"not null;check:chk_reservations_num_guests,num_guests > 0" json:"num_guests"`
	ReservationTime time.Time `gorm:"not null;index" json:"reservation_time"`
	SpecialRequests string    `gorm:"type:text" json:"special_requests"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Reservation) TableName() string {
	return "reservations"
}
