package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/wildwest-grill/models"
	"github.com/yeremiapane/wildwest-grill/utils"
	"gorm.io/gorm"
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// PlaceOrderInput adalah body POST /api/orders.
type PlaceOrderInput struct {
	CustomerName string `json:"customerName"`
	TableNumber  int    `json:"tableNumber"`
	MenuItem     string `json:"menuItem"`
	Quantity     int    `json:"quantity"`
}

// Validate: keempat field wajib dan tidak boleh kosong/nol.
// Quantity negatif tetap diterima apa adanya.
func (in PlaceOrderInput) Validate() error {
	if in.CustomerName == "" || in.TableNumber == 0 || in.MenuItem == "" || in.Quantity == 0 {
		return utils.ValidationError("Missing required fields")
	}
	return nil
}

type PlacedOrder struct {
	OrderID         uint
	OrderItemID     uint
	CustomerID      uint
	CustomerCreated bool
}

var ErrMenuItemNotFound = utils.NotFoundError("Menu item not found")

// PlaceOrder menjalankan customer lookup-or-create, insert order, lookup menu
// item dan insert order item dalam satu transaksi. Jika salah satu langkah
// gagal tidak ada baris yang di-commit.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlacedOrder, error) {
	if err := in.Validate(); err != nil {
		return PlacedOrder{}, err
	}

	var placed PlacedOrder
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customerID, created, err := ResolveCustomer(ctx, tx, in.CustomerName, in.TableNumber)
		if err != nil {
			return err
		}

		order := models.Order{CustomerID: customerID}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var item models.MenuItem
		if err := tx.Where("name = ?", in.MenuItem).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuItemNotFound
			}
			return err
		}

		line := models.OrderItem{
			OrderID:  order.ID,
			ItemID:   item.ID,
			Quantity: in.Quantity,
		}
		if err := tx.Create(&line).Error; err != nil {
			return err
		}

		placed = PlacedOrder{
			OrderID:         order.ID,
			OrderItemID:     line.ID,
			CustomerID:      customerID,
			CustomerCreated: created,
		}
		return nil
	})
	if err != nil {
		if utils.IsKind(err, utils.KindNotFound) {
			return PlacedOrder{}, err
		}
		return PlacedOrder{}, utils.InternalError(err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id":         placed.OrderID,
		"customer_id":      placed.CustomerID,
		"customer_created": placed.CustomerCreated,
		"menu_item":        in.MenuItem,
		"quantity":         in.Quantity,
	}).Info("Order placed")

	return placed, nil
}
