package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InventoryItem struct {
	ID           uint            `gorm:"primaryKey;column:item_id" json:"item_id"`
	ItemName     string          `gorm:"type:varchar(255);not null;index" json:"item_name"`
	Category     string          `gorm:"type:varchar(100);not null" json:"category"`
	Quantity     int             `gorm:"not null;default:0;check:chk_inventory_quantity,quantity >= 0" json:"quantity"`
	Unit         string          `gorm:"type:varchar(50);not null" json:"unit"`
	ReorderLevel int             `gorm:"not null;default:0;check:chk_inventory_reorder_level,reorder_level >= 0" json:"reorder_level"`
	CostPerUnit  decimal.Decimal `gorm:"type:decimal(10,2);not null;check:chk_inventory_cost_per_unit,cost_per_unit > 0" json:"cost_per_unit"`
	Supplier     string          `gorm:"type:varchar(255);not null" json:"supplier"`
	LastUpdated  time.Time       `gorm:"autoUpdateTime" json:"last_updated"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}

