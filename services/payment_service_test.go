package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rakapradana/boba-order-app/models"
)

func setupPaymentDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.PendingOrder{}, &models.PendingOrderItem{}))
	return db
}

func snapServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/snap/v1/transactions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func sampleItems() []models.ResolvedCartItem {
	return []models.ResolvedCartItem{
		{
			DrinkID:    1,
			DrinkName:  "Taro Milk Tea",
			Quantity:   2,
			UnitPrice:  4.50,
			TotalPrice: 9.00,
			Sweetness:  "50%",
			IceLevel:   "No ice",
			Toppings:   []string{"boba"},
		},
	}
}

func TestStartCardPaymentPersistsOrderWithLink(t *testing.T) {
	db := setupPaymentDB(t)
	srv := snapServer(t, http.StatusCreated, `{"token":"snap-abc123","redirect_url":"https://app.sandbox.midtrans.com/snap/v2/vtweb/abc123"}`)

	midtrans := NewMidtransService(&MidtransConfig{ServerKey: "SB-server", ClientKey: "SB-client", BaseURL: srv.URL})
	svc := NewPaymentService(db, midtrans)

	pending, err := svc.StartCardPayment(0, "628111222333", sampleItems(), 9.00)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.NotEmpty(t, pending.Reference)
	assert.Equal(t, "snap-abc123", pending.PaymentLinkID)
	assert.Equal(t, "https://app.sandbox.midtrans.com/snap/v2/vtweb/abc123", pending.PaymentURL)
	assert.Equal(t, models.PendingOrderStatusPending, pending.Status)

	loaded, err := svc.GetByReference(pending.Reference)
	require.NoError(t, err)
	assert.Equal(t, 9.00, loaded.TotalAmount)
	assert.Equal(t, "628111222333", loaded.CustomerPhone)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "Taro Milk Tea", loaded.Items[0].DrinkName)

	resolved := ResolvedItems(loaded)
	require.Len(t, resolved, 1)
	assert.Equal(t, []string{"boba"}, resolved[0].Toppings)
	assert.Equal(t, "50%", resolved[0].Sweetness)
}

func TestStartCardPaymentRollsBackOnProviderError(t *testing.T) {
	db := setupPaymentDB(t)
	srv := snapServer(t, http.StatusInternalServerError, `{"error_messages":["internal server error"]}`)

	midtrans := NewMidtransService(&MidtransConfig{ServerKey: "SB-server", ClientKey: "SB-client", BaseURL: srv.URL})
	svc := NewPaymentService(db, midtrans)

	_, err := svc.StartCardPayment(0, "628111222333", sampleItems(), 9.00)
	require.Error(t, err)

	// Insert pending order ikut di-rollback
	var orders, items int64
	db.Model(&models.PendingOrder{}).Count(&orders)
	db.Model(&models.PendingOrderItem{}).Count(&items)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestStartCardPaymentRejectsIncompleteLink(t *testing.T) {
	db := setupPaymentDB(t)
	srv := snapServer(t, http.StatusCreated, `{"token":"","redirect_url":""}`)

	midtrans := NewMidtransService(&MidtransConfig{ServerKey: "SB-server", ClientKey: "SB-client", BaseURL: srv.URL})
	svc := NewPaymentService(db, midtrans)

	_, err := svc.StartCardPayment(0, "628111222333", sampleItems(), 9.00)
	require.Error(t, err)

	var orders int64
	db.Model(&models.PendingOrder{}).Count(&orders)
	assert.Zero(t, orders)
}

func TestStartCardPaymentGuards(t *testing.T) {
	db := setupPaymentDB(t)
	midtrans := NewMidtransService(&MidtransConfig{ServerKey: "SB-server", ClientKey: "SB-client"})
	svc := NewPaymentService(db, midtrans)

	if _, err := svc.StartCardPayment(0, "628111222333", nil, 9.00); err == nil {
		t.Error("expected error for empty items")
	}
	if _, err := svc.StartCardPayment(0, "628111222333", sampleItems(), 0); err == nil {
		t.Error("expected error for zero total")
	}
}
