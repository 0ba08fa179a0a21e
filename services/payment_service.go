package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakapradana/boba-order-app/models"
	"github.com/rakapradana/boba-order-app/utils"
)

// PaymentService menangani inisiasi pembayaran via hosted payment page.
type PaymentService struct {
	db       *gorm.DB
	midtrans *MidtransService
}

func NewPaymentService(db *gorm.DB, midtrans *MidtransService) *PaymentService {
	return &PaymentService{db: db, midtrans: midtrans}
}

// StartCardPayment inserts a PendingOrder with a placeholder link id, asks
// Midtrans for a hosted payment page, and fills in the returned link id —
// all in one transaction. A failed provider call rolls back the insert.
//
// The converse risk (provider succeeds, the follow-up link-id write fails)
// leaves a payment page with no local reference; there is no compensating
// action for that here.
func (s *PaymentService) StartCardPayment(employeeID uint, customerPhone string, items []models.ResolvedCartItem, totalAmount float64) (*models.PendingOrder, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no items to pay for")
	}
	if totalAmount <= 0 {
		return nil, fmt.Errorf("total amount must be positive")
	}

	pending := &models.PendingOrder{
		Reference:     uuid.New().String(),
		EmployeeID:    employeeID,
		CustomerPhone: customerPhone,
		TotalAmount:   totalAmount,
		PaymentLinkID: "pending",
		Status:        models.PendingOrderStatusPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pending).Error; err != nil {
			return fmt.Errorf("failed to create pending order: %w", err)
		}
		for _, it := range items {
			row := models.PendingOrderItem{
				PendingOrderID: pending.ID,
				DrinkID:        it.DrinkID,
				DrinkName:      it.DrinkName,
				Quantity:       it.Quantity,
				UnitPrice:      it.UnitPrice,
				TotalPrice:     it.TotalPrice,
				Sweetness:      it.Sweetness,
				IceLevel:       it.IceLevel,
				Toppings:       models.EncodeToppings(it.Toppings),
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create pending order item: %w", err)
			}
		}

		link, err := s.midtrans.CreatePaymentLink(pending.Reference, totalAmount, items, customerPhone)
		if err != nil {
			return fmt.Errorf("failed to create payment link: %w", err)
		}

		pending.PaymentLinkID = link.LinkID
		pending.PaymentURL = link.URL
		if err := tx.Save(pending).Error; err != nil {
			return fmt.Errorf("failed to store payment link: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Pending order %s created for %s (total %.2f)", pending.Reference, customerPhone, totalAmount)
	return pending, nil
}

// GetByReference loads a pending order with its items.
func (s *PaymentService) GetByReference(reference string) (*models.PendingOrder, error) {
	var pending models.PendingOrder
	if err := s.db.Preload("Items").Where("reference = ?", reference).First(&pending).Error; err != nil {
		return nil, err
	}
	return &pending, nil
}

// ResolvedItems converts the persisted item snapshot back into resolved cart
// items for the fulfillment transaction.
func ResolvedItems(pending *models.PendingOrder) []models.ResolvedCartItem {
	items := make([]models.ResolvedCartItem, 0, len(pending.Items))
	for _, row := range pending.Items {
		items = append(items, models.ResolvedCartItem{
			DrinkID:    row.DrinkID,
			DrinkName:  row.DrinkName,
			Quantity:   row.Quantity,
			UnitPrice:  row.UnitPrice,
			TotalPrice: row.TotalPrice,
			Sweetness:  row.Sweetness,
			IceLevel:   row.IceLevel,
			Toppings:   models.DecodeToppings(row.Toppings),
		})
	}
	return items
}
