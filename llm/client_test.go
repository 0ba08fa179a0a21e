package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rakapradana/boba-order-app/dialog"
	"github.com/rakapradana/boba-order-app/models"
)

func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func testClient(url string) *Client {
	return NewClient(&Config{BaseURL: url, APIKey: "test-key", Model: "test-model"})
}

func testSession() *models.OrderSession {
	return &models.OrderSession{Phone: "15551234567", Step: models.StepPickDrink, Cart: "[]"}
}

func TestInterpretParsesValidOutput(t *testing.T) {
	content := `{"reply":"Two taro milk teas, got it.","action":"collect_details","updated_cart":[{"drink_name":"Taro Milk Tea","quantity":2,"sweetness":"50%","ice_level":"no ice","toppings":["boba"]}]}`
	server := completionServer(t, content)
	defer server.Close()

	result, err := testClient(server.URL).Interpret("2 taro milk teas", testSession(), "Taro Milk Tea - $4.50\n")
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}

	if result.Action != dialog.ActionCollectDetails {
		t.Errorf("action = %q, want collect_details", result.Action)
	}
	if len(result.UpdatedCart) != 1 {
		t.Fatalf("updated cart has %d items, want 1", len(result.UpdatedCart))
	}
	item := result.UpdatedCart[0]
	if item.DrinkName != "Taro Milk Tea" || *item.Quantity != 2 {
		t.Errorf("unexpected draft: %+v", item)
	}
	// Ice level dinormalisasi ke set opsi tetap
	if *item.IceLevel != "No ice" {
		t.Errorf("ice level = %q, want normalized %q", *item.IceLevel, "No ice")
	}
}

func TestInterpretRejectsMalformedJSON(t *testing.T) {
	server := completionServer(t, "sure, I'll add two taro milk teas!")
	defer server.Close()

	if _, err := testClient(server.URL).Interpret("2 taro milk teas", testSession(), ""); err == nil {
		t.Fatal("expected error for non-JSON content")
	}
}

func TestInterpretRejectsUnknownAction(t *testing.T) {
	server := completionServer(t, `{"reply":"ok","action":"drop_tables","updated_cart":[]}`)
	defer server.Close()

	if _, err := testClient(server.URL).Interpret("hi", testSession(), ""); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestInterpretEmptyActionDefaultsToIdle(t *testing.T) {
	server := completionServer(t, `{"reply":"How can I help?"}`)
	defer server.Close()

	result, err := testClient(server.URL).Interpret("hello", testSession(), "")
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if result.Action != dialog.ActionIdle {
		t.Errorf("action = %q, want idle", result.Action)
	}
}

func TestInterpretSanitizesGarbageFields(t *testing.T) {
	content := `{"reply":"ok","action":"collect_details","updated_cart":[{"drink_name":"Taro Milk Tea","quantity":-5,"ice_level":"boiling"}]}`
	server := completionServer(t, content)
	defer server.Close()

	result, err := testClient(server.URL).Interpret("taro", testSession(), "")
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	item := result.UpdatedCart[0]
	if item.Quantity != nil {
		t.Errorf("non-positive quantity should be dropped, got %d", *item.Quantity)
	}
	if item.IceLevel != nil {
		t.Errorf("unmapped ice level should be dropped, got %q", *item.IceLevel)
	}
}

func TestInterpretAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"overloaded"}`))
	}))
	defer server.Close()

	if _, err := testClient(server.URL).Interpret("hi", testSession(), ""); err == nil {
		t.Fatal("expected error for API failure")
	}
}
