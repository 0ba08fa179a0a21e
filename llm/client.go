// Package llm calls an OpenAI-compatible chat-completions endpoint to
// interpret order messages the deterministic parser could not resolve.
package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rakapradana/boba-order-app/dialog"
	"github.com/rakapradana/boba-order-app/models"
)

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

// Client implements dialog.Fallback over an OpenAI-style HTTP API.
type Client struct {
	config     *Config
	httpClient *http.Client
}

func NewClient(config *Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

const systemPromptFmt = `You are the order assistant of a bubble tea shop.
The menu is:
%s
The current order session state is:
%s
Interpret the customer's message. Respond with ONLY a JSON object:
{"reply": "<text for the customer>",
 "action": "idle" | "collect_details" | "confirm_cart" | "finalize_order" | "reorder_last",
 "updated_cart": [{"drink_name": "...", "quantity": 1, "sweetness": "50%%", "ice_level": "No ice", "toppings": ["boba"]}]}
Only fill cart fields the customer actually stated. Use "finalize_order" only
when the customer clearly asks to check out.`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// interpreterOutput mirrors the JSON contract in the system prompt.
type interpreterOutput struct {
	Reply       string             `json:"reply"`
	Action      string             `json:"action"`
	UpdatedCart []models.CartDraft `json:"updated_cart"`
}

// Interpret sends one completion request and schema-validates the result.
// The model's output is untrusted: a malformed or unparseable response is an
// error, never a partial merge.
func (c *Client) Interpret(message string, session *models.OrderSession, menuSummary string) (*dialog.FallbackResult, error) {
	state, _ := json.Marshal(map[string]interface{}{
		"step": session.Step,
		"cart": json.RawMessage(orEmptyArray(session.Cart)),
	})

	reqBody := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf(systemPromptFmt, menuSummary, string(state))},
			{Role: "user", Content: message},
		},
		Temperature:    0,
		ResponseFormat: &respFormat{Type: "json_object"},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %v", err)
	}

	url := fmt.Sprintf("%s/v1/chat/completions", c.config.BaseURL)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completion API error: %s", string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("error unmarshaling response: %v", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("completion API returned no choices")
	}

	return parseOutput(chatResp.Choices[0].Message.Content)
}

// parseOutput validates the model's JSON against the contract. Unknown
// actions and non-JSON content are rejected outright.
func parseOutput(content string) (*dialog.FallbackResult, error) {
	var out interpreterOutput
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("interpreter returned malformed JSON: %v", err)
	}

	switch out.Action {
	case dialog.ActionIdle, dialog.ActionCollectDetails, dialog.ActionConfirmCart,
		dialog.ActionFinalizeOrder, dialog.ActionReorderLast:
	case "":
		out.Action = dialog.ActionIdle
	default:
		return nil, fmt.Errorf("interpreter returned unknown action %q", out.Action)
	}

	for i := range out.UpdatedCart {
		sanitizeDraft(&out.UpdatedCart[i])
	}

	return &dialog.FallbackResult{
		Reply:       out.Reply,
		Action:      out.Action,
		UpdatedCart: out.UpdatedCart,
	}, nil
}

// sanitizeDraft drops suggested field values that are outside the fixed
// option sets, so garbage never overwrites a slot the customer already chose.
func sanitizeDraft(d *models.CartDraft) {
	if d.Quantity != nil && *d.Quantity <= 0 {
		d.Quantity = nil
	}
	if d.Sweetness != nil {
		s := dialog.NormalizeSweetness(*d.Sweetness)
		d.Sweetness = &s
	}
	if d.IceLevel != nil {
		if ice, ok := dialog.ParseIceLevel(*d.IceLevel); ok {
			d.IceLevel = &ice
		} else {
			d.IceLevel = nil
		}
	}
}

func orEmptyArray(cart string) string {
	if cart == "" {
		return "[]"
	}
	return cart
}
