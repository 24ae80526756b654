package models

import (
	"time"
)

// Customer diidentifikasi oleh pasangan (name, table_number).
type Customer struct {
	ID          uint      `gorm:"primaryKey;column:customer_id" json:"customer_id"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_customers_name_table" json:"name"`
	TableNumber int       `gorm:"not null;uniqueIndex:idx_customers_name_table" json:"table_number"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (Customer) TableName() string {
	return "customers"
}

// CustomerRow adalah customer yang sudah pernah order, dengan waktu order terakhir.
type CustomerRow struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	TableNumber int       `json:"table_number"`
	LastOrder   Timestamp `json:"last_order"`
}
