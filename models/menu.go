package models

import "github.com/shopspring/decimal"

type MenuItem struct {
	ID          uint            `gorm:"primaryKey;column:item_id" json:"item_id"`
	Name        string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
