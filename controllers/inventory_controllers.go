package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/wildwest-grill/models"
	"github.com/yeremiapane/wildwest-grill/utils"
	"gorm.io/gorm"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{DB: db}
}

var inventoryRequiredFields = []string{
	"itemName",
	"category",
	"quantity",
	"unit",
	"reorderLevel",
	"costPerUnit",
	"supplier",
}

type inventoryRequest struct {
	ItemName     string           `json:"itemName"`
	Category     string           `json:"category"`
	Quantity     *int             `json:"quantity"`
	Unit         string           `json:"unit"`
	ReorderLevel *int             `json:"reorderLevel"`
	CostPerUnit  *decimal.Decimal `json:"costPerUnit"`
	Supplier     string           `json:"supplier"`
}

func (r inventoryRequest) validate() error {
	if r.ItemName == "" || r.Category == "" || r.Quantity == nil || r.Unit == "" ||
		r.ReorderLevel == nil || r.CostPerUnit == nil || r.Supplier == "" {
		err := utils.ValidationError("Missing required fields")
		err.Required = inventoryRequiredFields
		return err
	}
	if *r.Quantity < 0 {
		return utils.ValidationError("Quantity cannot be negative")
	}
	if *r.ReorderLevel < 0 {
		return utils.ValidationError("Reorder level cannot be negative")
	}
	if !r.CostPerUnit.IsPositive() {
		return utils.ValidationError("Cost per unit must be greater than 0")
	}
	return nil
}

// UpsertInventoryItem -> POST /api/inventory. Item dengan nama yang sama
// ditambah quantity-nya, field lain ditimpa dengan nilai terbaru.
func (ic *InventoryController) UpsertInventoryItem(c *gin.Context) {
	var req inventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, invalidBody(err))
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, err)
		return
	}

	var (
		itemID  uint
		updated bool
	)
	err := ic.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var existing models.InventoryItem
		err := tx.Where("item_name = ?", req.ItemName).First(&existing).Error
		if err == nil {
			updated = true
			itemID = existing.ID
			return tx.Model(&models.InventoryItem{}).
				Where("item_name = ?", req.ItemName).
				Updates(map[string]interface{}{
					"category":      req.Category,
					"quantity":      gorm.Expr("quantity + ?", *req.Quantity),
					"unit":          req.Unit,
					"reorder_level": *req.ReorderLevel,
					"cost_per_unit": *req.CostPerUnit,
					"supplier":      req.Supplier,
					"last_updated":  time.Now(),
				}).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		item := models.InventoryItem{
			ItemName:     req.ItemName,
			Category:     req.Category,
			Quantity:     *req.Quantity,
			Unit:         req.Unit,
			ReorderLevel: *req.ReorderLevel,
			CostPerUnit:  *req.CostPerUnit,
			Supplier:     req.Supplier,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		itemID = item.ID
		return nil
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	message := "Inventory item added successfully"
	if updated {
		message = "Inventory item updated successfully"
	}
	utils.InfoLogger.Printf("%s: %s (id=%d)", message, req.ItemName, itemID)
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message": message,
		"itemId":  itemID,
	})
}

// GetAllInventory -> urut berdasarkan nama item
func (ic *InventoryController) GetAllInventory(c *gin.Context) {
	items := []models.InventoryItem{}
	if err := ic.DB.WithContext(c.Request.Context()).
		Order("item_name ASC").
		Find(&items).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}
