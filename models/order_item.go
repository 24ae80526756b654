package models

// OrderItem adalah baris pesanan: satu menu item dan jumlahnya.
type OrderItem struct {
	ID       uint     `gorm:"primaryKey;column:order_item_id" json:"order_item_id"`
	OrderID  uint     `gorm:"not null;index" json:"order_id"`
	ItemID   uint     `gorm:"column:item_id;not null;index" json:"item_id"`
	MenuItem MenuItem `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Quantity int      `gorm:"not null" json:"quantity"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
