package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/wildwest-grill/models"
	"github.com/yeremiapane/wildwest-grill/services"
	"github.com/yeremiapane/wildwest-grill/utils"
)

const orderListLimit = 100

type OrderController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, Orders: services.NewOrderService(db)}
}

// CreateOrder -> POST /api/orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body services.PlaceOrderInput
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, invalidBody(err))
		return
	}

	if _, err := oc.Orders.PlaceOrder(c.Request.Context(), body); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Order placed successfully")
}

// GetAllOrders -> satu baris per order item, terbaru dulu, maksimal 100
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	rows := []models.OrderRow{}
	err := oc.DB.WithContext(c.Request.Context()).
		Table("orders o").
		Select("o.order_id, c.name AS customer_name, c.table_number, mi.name AS item_name, oi.quantity, o.order_time AS created_at").
		Joins("JOIN customers c ON o.customer_id = c.customer_id").
		Joins("JOIN order_items oi ON o.order_id = oi.order_id").
		Joins("JOIN menu_items mi ON oi.item_id = mi.item_id").
		Order("o.order_time DESC, o.order_id DESC").
		Limit(orderListLimit).
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, rows)
}

// GetOrderSummary -> total order dan item dengan quantity terbanyak
func (oc *OrderController) GetOrderSummary(c *gin.Context) {
	db := oc.DB.WithContext(c.Request.Context())

	summary := models.OrderSummary{MostPopularItem: "N/A"}
	if err := db.Model(&models.Order{}).Count(&summary.TotalOrders).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	var popular []struct {
		Name          string
		TotalQuantity int64
	}
	err := db.Table("order_items oi").
		Select("mi.name AS name, SUM(oi.quantity) AS total_quantity").
		Joins("JOIN menu_items mi ON oi.item_id = mi.item_id").
		Group("mi.item_id, mi.name").
		Order("total_quantity DESC").
		Limit(1).
		Scan(&popular).Error
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if len(popular) > 0 {
		summary.MostPopularItem = popular[0].Name
	}

	utils.RespondJSON(c, http.StatusOK, summary)
}

// DeleteOrder -> hapus order item lalu order-nya dalam satu transaksi
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid order id"))
		return
	}

	err = oc.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d deleted", id)
	utils.RespondMessage(c, http.StatusOK, "Order deleted successfully")
}
