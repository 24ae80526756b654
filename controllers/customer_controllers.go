package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/wildwest-grill/models"
	"github.com/yeremiapane/wildwest-grill/services"
	"github.com/yeremiapane/wildwest-grill/utils"
	"gorm.io/gorm"
)

const customerListLimit = 100

type CustomerController struct {
	DB        *gorm.DB
	Customers *services.CustomerService
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db, Customers: services.NewCustomerService(db)}
}

// GetAllCustomers -> hanya customer yang sudah pernah order, order terakhir dulu
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	rows := []models.CustomerRow{}
	err := cc.DB.WithContext(c.Request.Context()).
		Table("customers c").
		Select("c.customer_id AS id, c.name, c.table_number, MAX(o.order_time) AS last_order").
		Joins("JOIN orders o ON c.customer_id = o.customer_id").
		Group("c.customer_id, c.name, c.table_number").
		Order("last_order DESC").
		Limit(customerListLimit).
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if len(rows) == 0 {
		utils.RespondStatusError(c, http.StatusNotFound, "No customers found. Place an order first.")
		return
	}

	utils.RespondJSON(c, http.StatusOK, rows)
}

// CreateCustomer -> kembalikan id customer yang sudah ada atau yang baru dibuat
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		TableNumber int    `json:"tableNumber"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, invalidBody(err))
		return
	}

	if req.Name == "" || req.TableNumber == 0 {
		utils.RespondError(c, utils.ValidationError("Name and table number are required"))
		return
	}

	id, created, err := cc.Customers.Resolve(c.Request.Context(), req.Name, req.TableNumber)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if created {
		utils.InfoLogger.Printf("New customer created (ID=%d) at table %d", id, req.TableNumber)
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"customerId": id})
}
