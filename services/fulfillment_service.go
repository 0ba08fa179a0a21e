package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rakapradana/boba-order-app/models"
	"github.com/rakapradana/boba-order-app/utils"
)

// FulfillmentService commits a finished order: receipt, line items, inventory
// decrements and low-stock recompute, all inside one transaction.
type FulfillmentService struct {
	db *gorm.DB
}

func NewFulfillmentService(db *gorm.DB) *FulfillmentService {
	return &FulfillmentService{db: db}
}

// Fulfill writes the receipt and its line items, decrements ingredient
// inventory via each drink's recipe (scaled by quantity) plus one unit per
// ordered topping, and recomputes the low-stock flag for every touched row.
// Any error rolls the whole thing back; the caller must assume no partial
// effects on failure.
//
// A topping name with no inventory match is logged and skipped. Ingredients
// have no such escape: a missing ingredient row fails the transaction.
func (s *FulfillmentService) Fulfill(items []models.ResolvedCartItem, employeeID uint, totalAmount float64, paymentMethod string) (uint, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("nothing to fulfill")
	}

	var receiptID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		receiptID, err = s.fulfill(tx, items, employeeID, totalAmount, paymentMethod)
		return err
	})
	if err != nil {
		return 0, err
	}

	utils.InfoLogger.Printf("Receipt %d fulfilled (total %.2f, method %s)", receiptID, totalAmount, paymentMethod)
	return receiptID, nil
}

// FulfillPendingOrder runs the fulfillment writes and flips the pending order
// to paid in the same transaction. Committing them separately would let a
// failed status write leave a fulfilled order still "pending" — the gateway's
// retry of the notification would then fulfill it a second time.
func (s *FulfillmentService) FulfillPendingOrder(pending *models.PendingOrder, paymentMethod string) (uint, error) {
	items := ResolvedItems(pending)
	if len(items) == 0 {
		return 0, fmt.Errorf("nothing to fulfill")
	}

	var receiptID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		receiptID, err = s.fulfill(tx, items, pending.EmployeeID, pending.TotalAmount, paymentMethod)
		if err != nil {
			return err
		}
		return tx.Model(pending).Update("status", models.PendingOrderStatusPaid).Error
	})
	if err != nil {
		return 0, err
	}

	utils.InfoLogger.Printf("Pending order %s fulfilled as receipt %d (total %.2f)", pending.Reference, receiptID, pending.TotalAmount)
	return receiptID, nil
}

func (s *FulfillmentService) fulfill(tx *gorm.DB, items []models.ResolvedCartItem, employeeID uint, totalAmount float64, paymentMethod string) (uint, error) {
	receipt := models.Receipt{
		ReceiptNumber: fmt.Sprintf("RCP-%d", time.Now().UnixNano()),
		EmployeeID:    employeeID,
		Total:         totalAmount,
		PaymentMethod: paymentMethod,
	}
	if err := tx.Create(&receipt).Error; err != nil {
		return 0, fmt.Errorf("failed to create receipt: %w", err)
	}

	touched := make(map[uint]bool)
	for _, it := range items {
		line := models.OrderLineItem{
			ReceiptID: receipt.ID,
			DrinkID:   it.DrinkID,
			DrinkName: it.DrinkName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.TotalPrice,
			Sweetness: it.Sweetness,
			IceLevel:  it.IceLevel,
			Toppings:  models.EncodeToppings(it.Toppings),
		}
		if err := tx.Create(&line).Error; err != nil {
			return 0, fmt.Errorf("failed to create line item: %w", err)
		}

		// Decrement ingredients per resep, dikali jumlah gelas
		var recipe []models.DrinkIngredient
		if err := tx.Where("drink_id = ?", it.DrinkID).Find(&recipe).Error; err != nil {
			return 0, fmt.Errorf("failed to load recipe for drink %d: %w", it.DrinkID, err)
		}
		for _, ing := range recipe {
			res := tx.Model(&models.InventoryItem{}).
				Where("id = ?", ing.IngredientID).
				UpdateColumn("current_amount", gorm.Expr("current_amount - ?", ing.QuantityPerUnit*float64(it.Quantity)))
			if res.Error != nil {
				return 0, fmt.Errorf("failed to decrement ingredient %d: %w", ing.IngredientID, res.Error)
			}
			if res.RowsAffected == 0 {
				return 0, fmt.Errorf("ingredient %d not found in inventory", ing.IngredientID)
			}
			touched[ing.IngredientID] = true
		}

		// Toppings dicari per nama, case-insensitive
		for _, name := range it.Toppings {
			var topping models.InventoryItem
			err := tx.Where("LOWER(name) = ?", strings.ToLower(name)).First(&topping).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					utils.InfoLogger.Printf("topping %q not in inventory, skipped", name)
					continue
				}
				return 0, fmt.Errorf("failed to look up topping %q: %w", name, err)
			}
			res := tx.Model(&models.InventoryItem{}).
				Where("id = ?", topping.ID).
				UpdateColumn("current_amount", gorm.Expr("current_amount - ?", float64(it.Quantity)))
			if res.Error != nil {
				return 0, fmt.Errorf("failed to decrement topping %q: %w", name, res.Error)
			}
			touched[topping.ID] = true
		}
	}

	// Recompute low-stock untuk semua row yang tersentuh
	for id := range touched {
		var item models.InventoryItem
		if err := tx.First(&item, id).Error; err != nil {
			return 0, fmt.Errorf("failed to reload inventory item %d: %w", id, err)
		}
		low := item.CurrentAmount < models.LowStockThreshold
		if err := tx.Model(&item).UpdateColumn("low_stock", low).Error; err != nil {
			return 0, fmt.Errorf("failed to update low-stock flag for %d: %w", id, err)
		}
	}

	return receipt.ID, nil
}
