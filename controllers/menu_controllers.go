package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/wildwest-grill/models"
	"github.com/yeremiapane/wildwest-grill/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenus -> GET /api/menu
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	menus := []models.MenuItem{}
	if err := mc.DB.WithContext(c.Request.Context()).Order("item_id").Find(&menus).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, menus)
}
