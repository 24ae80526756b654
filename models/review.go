package models

import "time"

type Review struct {
	ID         uint      `gorm:"primaryKey;column:review_id" json:"review_id"`
	CustomerID *uint     `gorm:"index" json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Rating     int       `gorm:"not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewRow adalah review beserta nama customer.
type ReviewRow struct {
	ReviewID     uint      `json:"review_id"`
	CustomerID   *uint     `json:"customer_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	CustomerName string    `json:"customer_name"`
}
