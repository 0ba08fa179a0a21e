// Package dialog drives the slot-filling order conversation. Each inbound
// message advances a per-phone session through drink, quantity, sweetness,
// ice, toppings and confirmation.
package dialog

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/rakapradana/boba-order-app/cart"
	"github.com/rakapradana/boba-order-app/catalog"
	"github.com/rakapradana/boba-order-app/models"
	"github.com/rakapradana/boba-order-app/utils"
)

// Actions the fallback interpreter may request.
const (
	ActionIdle           = "idle"
	ActionCollectDetails = "collect_details"
	ActionConfirmCart    = "confirm_cart"
	ActionFinalizeOrder  = "finalize_order"
	ActionReorderLast    = "reorder_last"
)

// FallbackResult is the schema-validated output of the generative
// interpreter. UpdatedCart uses the same optional-field shape as CartDraft.
type FallbackResult struct {
	Reply       string
	Action      string
	UpdatedCart []models.CartDraft
}

// Fallback interprets free text the deterministic parser could not resolve.
// It is only consulted from the pick_drink step.
type Fallback interface {
	Interpret(message string, session *models.OrderSession, menuSummary string) (*FallbackResult, error)
}

// PaymentStarter issues a hosted payment page for a resolved cart.
type PaymentStarter interface {
	StartCardPayment(employeeID uint, customerPhone string, items []models.ResolvedCartItem, totalAmount float64) (*models.PendingOrder, error)
}

// Canned replies. Rejected slot input re-issues the prompt for the current
// step verbatim; there is no retry counter or escalation.
const (
	replyCancelled   = "Your order has been cancelled. What would you like to drink?"
	replyRetryLater  = "Sorry, something went wrong on our side. Please try again in a moment."
	promptDrink      = "What would you like to drink?"
	promptQuantity   = "How many would you like?"
	promptSweetness  = "How sweet would you like it? (0%, 25%, 50%, 75%, 100%, 120%)"
	promptIce        = "How much ice? (no ice / less ice / regular ice / extra ice)"
	promptToppings   = "Any toppings? List them, or say no."
	promptConfirmFmt = "Your order: %s. Total %s. Reply yes to get your payment link, or no to cancel."
)

type Engine struct {
	db       *gorm.DB
	fallback Fallback
	payments PaymentStarter
}

func NewEngine(db *gorm.DB, fallback Fallback, payments PaymentStarter) *Engine {
	return &Engine{db: db, fallback: fallback, payments: payments}
}

// Advance runs one dialog turn: it mutates the session (step + cart) and
// returns the reply text for the customer.
func (e *Engine) Advance(session *models.OrderSession, rawMessage string) string {
	msg := strings.TrimSpace(rawMessage)
	drafts := DecodeCart(session.Cart)

	// Cancel / start over berlaku di semua step kecuali pick_drink
	if session.Step != models.StepPickDrink && IsCancel(msg) {
		resetSession(session)
		return replyCancelled
	}

	// A step past pick_drink always has an in-progress draft; a session that
	// lost its cart is restarted rather than crashed.
	if session.Step != models.StepPickDrink && len(drafts) == 0 {
		resetSession(session)
		return promptDrink
	}

	var reply string
	switch session.Step {
	case models.StepPickDrink:
		reply = e.handlePickDrink(session, &drafts, msg)
	case models.StepPickQuantity:
		if qty, ok := ParseQuantity(msg); ok {
			drafts[0].Quantity = &qty
			session.Step = RecomputeStep(drafts)
			reply = e.promptFor(session.Step, drafts)
		} else {
			reply = promptQuantity
		}
	case models.StepPickSweetness:
		sweetness := NormalizeSweetness(msg)
		drafts[0].Sweetness = &sweetness
		session.Step = RecomputeStep(drafts)
		reply = e.promptFor(session.Step, drafts)
	case models.StepPickIce:
		if ice, ok := ParseIceLevel(msg); ok {
			drafts[0].IceLevel = &ice
			session.Step = RecomputeStep(drafts)
			reply = e.promptFor(session.Step, drafts)
		} else {
			reply = promptIce
		}
	case models.StepPickToppings:
		drafts[0].Toppings = ParseToppings(msg)
		session.Step = RecomputeStep(drafts)
		reply = e.promptFor(session.Step, drafts)
	case models.StepConfirm:
		reply = e.handleConfirm(session, &drafts, msg)
	default:
		resetSession(session)
		return promptDrink
	}

	session.Cart = EncodeCart(drafts)
	return reply
}

// fillerWords is conversational padding that carries no order content.
var fillerWords = map[string]bool{
	"i": true, "id": true, "we": true, "me": true, "my": true,
	"a": true, "an": true, "the": true, "of": true, "to": true, "for": true,
	"like": true, "want": true, "would": true, "love": true, "get": true,
	"have": true, "can": true, "could": true, "give": true, "order": true,
	"please": true, "hi": true, "hello": true, "hey": true,
}

// mentionsOnlyDrink reports whether the message carries nothing beyond the
// matched drink name and filler. A message with anything else (quantities,
// slot values, an intent) needs the interpreter; the resolver alone would
// discard that content.
func mentionsOnlyDrink(msg, drinkName string) bool {
	nameTokens := make(map[string]bool)
	for _, tok := range strings.Fields(drinkName) {
		nameTokens[catalog.Normalize(tok)] = true
	}
	for _, tok := range strings.Fields(msg) {
		n := catalog.Normalize(tok)
		if n == "" || nameTokens[n] || fillerWords[n] {
			continue
		}
		return false
	}
	return true
}

// handlePickDrink tries the deterministic catalog resolver first and only
// then consults the fallback interpreter. A catalog hit inside a message
// that says more than the drink name goes to the interpreter too, so the
// extra content isn't thrown away.
func (e *Engine) handlePickDrink(session *models.OrderSession, drafts *[]models.CartDraft, msg string) string {
	drinks, err := e.loadCatalog()
	if err != nil {
		utils.ErrorLogger.Printf("failed to load catalog: %v", err)
		return replyRetryLater
	}

	drink := catalog.FindDrink(msg, drinks)
	if drink != nil && (e.fallback == nil || mentionsOnlyDrink(msg, drink.Name)) {
		// Merge into the draft rather than replace it: earlier turns may
		// already have filled slots before the drink was known.
		id := drink.ID
		if len(*drafts) == 0 {
			*drafts = append(*drafts, models.CartDraft{})
		}
		(*drafts)[0].DrinkName = drink.Name
		(*drafts)[0].DrinkID = &id
		session.Step = RecomputeStep(*drafts)
		return e.promptFor(session.Step, *drafts)
	}

	if e.fallback == nil {
		return "Sorry, I don't recognize that drink. " + promptDrink
	}

	result, err := e.fallback.Interpret(msg, session, catalog.Summary(drinks))
	if err != nil {
		utils.ErrorLogger.Printf("fallback interpreter error for %s: %v", session.Phone, err)
		return replyRetryLater
	}

	*drafts = MergeCart(*drafts, result.UpdatedCart)
	session.Step = RecomputeStep(*drafts)

	// finalize_order skips straight to payment, filling unchosen slots with
	// defaults. This is the generative shortcut; the deterministic path still
	// requires every slot.
	if result.Action == ActionFinalizeOrder && len(*drafts) > 0 && (*drafts)[0].DrinkName != "" {
		return e.startPayment(session, drafts)
	}

	// Pricing comes from the catalog, never from the interpreter, so the
	// confirmation summary is always ours.
	if session.Step == models.StepConfirm {
		return e.promptFor(session.Step, *drafts)
	}
	if result.Reply != "" {
		return result.Reply
	}
	return e.promptFor(session.Step, *drafts)
}

func (e *Engine) handleConfirm(session *models.OrderSession, drafts *[]models.CartDraft, msg string) string {
	switch {
	case IsAffirmative(msg):
		return e.startPayment(session, drafts)
	case IsNegative(msg):
		resetSession(session)
		*drafts = nil
		return replyCancelled
	default:
		return e.promptFor(models.StepConfirm, *drafts)
	}
}

// startPayment resolves the cart against the catalog and requests a hosted
// payment page. Inventory is untouched here; it is only decremented inside
// the fulfillment transaction after the payment succeeds.
func (e *Engine) startPayment(session *models.OrderSession, drafts *[]models.CartDraft) string {
	drinks, err := e.loadCatalog()
	if err != nil {
		utils.ErrorLogger.Printf("failed to load catalog: %v", err)
		return replyRetryLater
	}

	items, err := cart.ResolveForPayment(*drafts, drinks)
	if err != nil {
		// Resolution error: surface it, leave the session as it is.
		return fmt.Sprintf("Sorry, we can't price your order: %v", err)
	}

	pending, err := e.payments.StartCardPayment(0, session.Phone, items, cart.Total(items))
	if err != nil {
		utils.ErrorLogger.Printf("payment initiation failed for %s: %v", session.Phone, err)
		return replyRetryLater
	}

	resetSession(session)
	*drafts = nil
	return fmt.Sprintf("Thank you! Pay %s here: %s", utils.FormatMoney(pending.TotalAmount), pending.PaymentURL)
}

// promptFor returns the canned prompt for a step. The confirm prompt carries
// the priced order summary.
func (e *Engine) promptFor(step string, drafts []models.CartDraft) string {
	switch step {
	case models.StepPickQuantity:
		return promptQuantity
	case models.StepPickSweetness:
		return promptSweetness
	case models.StepPickIce:
		return promptIce
	case models.StepPickToppings:
		return promptToppings
	case models.StepConfirm:
		return e.confirmPrompt(drafts)
	default:
		return promptDrink
	}
}

func (e *Engine) confirmPrompt(drafts []models.CartDraft) string {
	drinks, err := e.loadCatalog()
	if err != nil {
		utils.ErrorLogger.Printf("failed to load catalog: %v", err)
		return replyRetryLater
	}
	items, err := cart.ResolveForPayment(drafts, drinks)
	if err != nil {
		return fmt.Sprintf("Sorry, we can't price your order: %v", err)
	}

	lines := make([]string, 0, len(items))
	for _, it := range items {
		toppings := "no toppings"
		if len(it.Toppings) > 0 {
			toppings = strings.Join(it.Toppings, ", ")
		}
		lines = append(lines, fmt.Sprintf("%dx %s (%s sugar, %s, %s)",
			it.Quantity, it.DrinkName, it.Sweetness, it.IceLevel, toppings))
	}
	return fmt.Sprintf(promptConfirmFmt, strings.Join(lines, "; "), utils.FormatMoney(cart.Total(items)))
}

func (e *Engine) loadCatalog() ([]models.Drink, error) {
	var drinks []models.Drink
	if err := e.db.Where("available = ?", true).Find(&drinks).Error; err != nil {
		return nil, err
	}
	return drinks, nil
}

func resetSession(session *models.OrderSession) {
	session.Step = models.StepPickDrink
	session.Cart = "[]"
}

// DecodeCart parses the session's JSON cart blob. A corrupt blob is treated
// as an empty cart rather than a hard failure.
func DecodeCart(blob string) []models.CartDraft {
	if blob == "" {
		return nil
	}
	var drafts []models.CartDraft
	if err := json.Unmarshal([]byte(blob), &drafts); err != nil {
		utils.ErrorLogger.Printf("corrupt session cart %q: %v", blob, err)
		return nil
	}
	return drafts
}

func EncodeCart(drafts []models.CartDraft) string {
	if drafts == nil {
		return "[]"
	}
	data, err := json.Marshal(drafts)
	if err != nil {
		return "[]"
	}
	return string(data)
}
