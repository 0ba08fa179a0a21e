package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakapradana/boba-order-app/models"
	"github.com/rakapradana/boba-order-app/services"
	"github.com/rakapradana/boba-order-app/utils"
)

// PaymentController handles Midtrans payment notifications and status polls.
type PaymentController struct {
	DB          *gorm.DB
	Payments    *services.PaymentService
	Fulfillment *services.FulfillmentService
	Midtrans    *services.MidtransService
}

func NewPaymentController(db *gorm.DB, payments *services.PaymentService, fulfillment *services.FulfillmentService, midtrans *services.MidtransService) *PaymentController {
	return &PaymentController{DB: db, Payments: payments, Fulfillment: fulfillment, Midtrans: midtrans}
}

type midtransNotification struct {
	OrderID           string `json:"order_id" binding:"required"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	TransactionStatus string `json:"transaction_status"`
	SignatureKey      string `json:"signature_key"`
}

// HandleCallback processes a payment notification. A successful payment runs
// the fulfillment transaction and marks the pending order paid.
func (pc *PaymentController) HandleCallback(c *gin.Context) {
	var notif midtransNotification
	if err := c.ShouldBindJSON(&notif); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !pc.Midtrans.ValidateSignature(notif.OrderID, notif.StatusCode, notif.GrossAmount, notif.SignatureKey) {
		utils.ErrorLogger.Printf("invalid signature on payment callback for %s", notif.OrderID)
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid signature"))
		return
	}

	pending, err := pc.Payments.GetByReference(notif.OrderID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("unknown order %s", notif.OrderID))
		return
	}

	status := services.MapTransactionStatus(notif.TransactionStatus)
	if status != services.PaymentStatusSuccess {
		utils.InfoLogger.Printf("payment %s is %s, nothing to fulfill", notif.OrderID, status)
		utils.RespondJSON(c, http.StatusOK, "Notification received", gin.H{"status": status})
		return
	}

	if pending.Status == models.PendingOrderStatusPaid {
		// Notifikasi duplikat: sudah pernah di-fulfill
		utils.RespondJSON(c, http.StatusOK, "Already fulfilled", gin.H{"reference": pending.Reference})
		return
	}

	// Fulfillment dan flip status paid satu transaksi, supaya retry
	// notifikasi tidak pernah fulfill dua kali
	receiptID, err := pc.Fulfillment.FulfillPendingOrder(pending, "qris")
	if err != nil {
		utils.ErrorLogger.Printf("fulfillment failed for %s: %v", pending.Reference, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Payment fulfilled", gin.H{
		"reference":  pending.Reference,
		"receipt_id": receiptID,
	})
}

// CheckStatus polls Midtrans for the current transaction status.
func (pc *PaymentController) CheckStatus(c *gin.Context) {
	reference := c.Param("reference")

	if _, err := pc.Payments.GetByReference(reference); err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("unknown order %s", reference))
		return
	}

	status, err := pc.Midtrans.CheckTransactionStatus(reference)
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Payment status", gin.H{
		"reference": reference,
		"status":    status,
	})
}
