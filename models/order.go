package models

import (
	"time"
)

// Order adalah header pesanan: siapa yang memesan dan kapan.
type Order struct {
	ID         uint        `gorm:"primaryKey;column:order_id" json:"order_id"`
	CustomerID uint        `gorm:"not null;index" json:"customer_id"`
	Customer   Customer    `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	OrderTime  time.Time   `gorm:"autoCreateTime" json:"order_time"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"order_items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderRow adalah satu baris dashboard: order + customer + item.
type OrderRow struct {
	OrderID      uint      `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	TableNumber  int       `json:"table_number"`
	ItemName     string    `json:"item_name"`
	Quantity     int       `json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
}

type OrderSummary struct {
	TotalOrders     int64  `json:"total_orders"`
	MostPopularItem string `json:"most_popular_item"`
}
