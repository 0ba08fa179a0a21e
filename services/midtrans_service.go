package services

import (
	"bytes"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rakapradana/boba-order-app/models"
)

// Status pembayaran
const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// MidtransConfig holds Midtrans configuration
type MidtransConfig struct {
	ServerKey    string
	ClientKey    string
	IsProduction bool
	BaseURL      string // overrides the environment base URL when set (tests)
}

// MidtransService requests hosted payment pages (Snap) and validates
// payment notifications.
type MidtransService struct {
	config     *MidtransConfig
	httpClient *http.Client
}

func NewMidtransService(config *MidtransConfig) *MidtransService {
	return &MidtransService{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ValidateConfig validates Midtrans configuration
func (ms *MidtransService) ValidateConfig() error {
	if ms.config.ServerKey == "" {
		return fmt.Errorf("MIDTRANS_SERVER_KEY is not set")
	}
	if ms.config.ClientKey == "" {
		return fmt.Errorf("MIDTRANS_CLIENT_KEY is not set")
	}
	return nil
}

// PaymentLink is the hosted payment resource returned by Snap.
type PaymentLink struct {
	LinkID string
	URL    string
}

type snapResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// CreatePaymentLink requests a hosted payment page for the given amount.
// The reference is our order id on the Midtrans side.
func (ms *MidtransService) CreatePaymentLink(reference string, amount float64, items []models.ResolvedCartItem, customerPhone string) (*PaymentLink, error) {
	url := fmt.Sprintf("%s/snap/v1/transactions", ms.getBaseURL())

	itemDetails := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		itemDetails = append(itemDetails, map[string]interface{}{
			"id":       fmt.Sprintf("%d", it.DrinkID),
			"price":    it.UnitPrice,
			"quantity": it.Quantity,
			"name":     it.DrinkName,
		})
	}

	payload := map[string]interface{}{
		"transaction_details": map[string]interface{}{
			"order_id":     reference,
			"gross_amount": amount,
		},
		"item_details": itemDetails,
		"customer_details": map[string]interface{}{
			"phone": customerPhone,
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %v", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", ms.authHeader())

	resp, err := ms.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("Midtrans API error: %s", string(body))
	}

	var snapResp snapResponse
	if err := json.Unmarshal(body, &snapResp); err != nil {
		return nil, fmt.Errorf("error unmarshaling response: %v", err)
	}
	if snapResp.Token == "" || snapResp.RedirectURL == "" {
		return nil, fmt.Errorf("Midtrans returned an incomplete payment link: %s", string(body))
	}

	return &PaymentLink{LinkID: snapResp.Token, URL: snapResp.RedirectURL}, nil
}

// CheckTransactionStatus checks transaction status from Midtrans
func (ms *MidtransService) CheckTransactionStatus(reference string) (string, error) {
	url := fmt.Sprintf("%s/v2/%s/status", ms.getBaseURL(), reference)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", ms.authHeader())

	resp, err := ms.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Midtrans API error: %s", string(body))
	}

	var statusResp struct {
		TransactionStatus string `json:"transaction_status"`
	}
	if err := json.Unmarshal(body, &statusResp); err != nil {
		return "", fmt.Errorf("error unmarshaling response: %v", err)
	}

	return MapTransactionStatus(statusResp.TransactionStatus), nil
}

// ValidateSignature validates the SHA512 signature on a Midtrans notification.
func (ms *MidtransService) ValidateSignature(orderID, statusCode, grossAmount, signature string) bool {
	signatureString := fmt.Sprintf("%s%s%s%s", orderID, statusCode, grossAmount, ms.config.ServerKey)
	hash := sha512.New()
	hash.Write([]byte(signatureString))
	calculatedSignature := hex.EncodeToString(hash.Sum(nil))
	return calculatedSignature == signature
}

// MapTransactionStatus maps Midtrans transaction status to internal status
func MapTransactionStatus(status string) string {
	switch status {
	case "capture", "settlement":
		return PaymentStatusSuccess
	case "pending", "authorize":
		return PaymentStatusPending
	case "deny", "cancel", "expire", "failure":
		return PaymentStatusFailed
	default:
		return "unknown"
	}
}

func (ms *MidtransService) authHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(ms.config.ServerKey+":"))
}

func (ms *MidtransService) getBaseURL() string {
	if ms.config.BaseURL != "" {
		return ms.config.BaseURL
	}
	if ms.config.IsProduction {
		return "https://app.midtrans.com"
	}
	return "https://app.sandbox.midtrans.com"
}
