package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakapradana/boba-order-app/cart"
	"github.com/rakapradana/boba-order-app/models"
	"github.com/rakapradana/boba-order-app/services"
	"github.com/rakapradana/boba-order-app/utils"
)

// CheckoutController is the synchronous cashier path: the order is resolved
// and fulfilled immediately (cash over the counter), no payment link.
type CheckoutController struct {
	DB          *gorm.DB
	Fulfillment *services.FulfillmentService
}

func NewCheckoutController(db *gorm.DB, fulfillment *services.FulfillmentService) *CheckoutController {
	return &CheckoutController{DB: db, Fulfillment: fulfillment}
}

type checkoutItem struct {
	DrinkID   *uint    `json:"drink_id"`
	DrinkName string   `json:"drink_name"`
	Quantity  *int     `json:"quantity"`
	Sweetness *string  `json:"sweetness"`
	IceLevel  *string  `json:"ice_level"`
	Toppings  []string `json:"toppings"`
}

// Checkout resolves the submitted cart and runs the fulfillment transaction.
func (cc *CheckoutController) Checkout(c *gin.Context) {
	userIDInterface, _ := c.Get("userID")
	employeeID, _ := userIDInterface.(uint)

	var body struct {
		Items []checkoutItem `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	drafts := make([]models.CartDraft, 0, len(body.Items))
	for _, it := range body.Items {
		drafts = append(drafts, models.CartDraft{
			DrinkName: it.DrinkName,
			DrinkID:   it.DrinkID,
			Quantity:  it.Quantity,
			Sweetness: it.Sweetness,
			IceLevel:  it.IceLevel,
			Toppings:  it.Toppings,
		})
	}

	var drinks []models.Drink
	if err := cc.DB.Where("available = ?", true).Find(&drinks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	items, err := cart.ResolveForPayment(drafts, drinks)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	receiptID, err := cc.Fulfillment.Fulfill(items, employeeID, cart.Total(items), "cash")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order fulfilled", gin.H{
		"receipt_id": receiptID,
		"total":      cart.Total(items),
	})
}
