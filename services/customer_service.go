package services

import (
	"context"
	"fmt"

	"github.com/yeremiapane/wildwest-grill/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// Resolve mengembalikan id customer untuk pasangan (name, tableNumber),
// membuat record baru jika belum ada.
func (s *CustomerService) Resolve(ctx context.Context, name string, tableNumber int) (uint, bool, error) {
	return ResolveCustomer(ctx, s.DB, name, tableNumber)
}

// ResolveCustomer adalah get-or-create atomik di atas unique index
// (name, table_number). Insert dijalankan lebih dulu dengan ON CONFLICT DO
// NOTHING supaya insert yang bersaing menunggu commit lawannya, lalu baris
// dibaca ulang. db boleh berupa transaksi.
func ResolveCustomer(ctx context.Context, db *gorm.DB, name string, tableNumber int) (uint, bool, error) {
	db = db.WithContext(ctx)

	candidate := models.Customer{Name: name, TableNumber: tableNumber}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&candidate)
	if res.Error != nil {
		return 0, false, fmt.Errorf("create customer: %w", res.Error)
	}
	if res.RowsAffected == 1 && candidate.ID != 0 {
		return candidate.ID, true, nil
	}

	var existing models.Customer
	if err := db.Where("name = ? AND table_number = ?", name, tableNumber).
		First(&existing).Error; err != nil {
		return 0, false, fmt.Errorf("find customer: %w", err)
	}
	return existing.ID, false, nil
}
