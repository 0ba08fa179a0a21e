package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakapradana/boba-order-app/models"
	"github.com/rakapradana/boba-order-app/utils"
)

type ReceiptController struct {
	DB *gorm.DB
}

func NewReceiptController(db *gorm.DB) *ReceiptController {
	return &ReceiptController{DB: db}
}

// GetReceipt -> detail 1 struk beserta line items
func (rc *ReceiptController) GetReceipt(c *gin.Context) {
	id := c.Param("receipt_id")

	var receipt models.Receipt
	if err := rc.DB.Preload("LineItems").First(&receipt, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Receipt detail", receipt)
}

// GetAllReceipts -> list struk untuk kasir
func (rc *ReceiptController) GetAllReceipts(c *gin.Context) {
	var receipts []models.Receipt
	if err := rc.DB.Preload("LineItems").Order("created_at desc").Find(&receipts).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of receipts", receipts)
}
