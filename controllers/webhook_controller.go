package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakapradana/boba-order-app/dialog"
	"github.com/rakapradana/boba-order-app/services"
	"github.com/rakapradana/boba-order-app/utils"
)

// WebhookController receives inbound text messages from the messaging
// gateway. Failures are never surfaced as transport errors: every inbound
// message gets HTTP 200 with a reply text in the gateway envelope.
type WebhookController struct {
	DB       *gorm.DB
	Sessions *services.SessionStore
	Engine   *dialog.Engine
}

func NewWebhookController(db *gorm.DB, sessions *services.SessionStore, engine *dialog.Engine) *WebhookController {
	return &WebhookController{DB: db, Sessions: sessions, Engine: engine}
}

type inboundMessage struct {
	From string `json:"from"`
	Body string `json:"body"`
}

type outboundReply struct {
	Reply string `json:"reply"`
}

// HandleInbound runs one dialog turn for the sender.
func (wc *WebhookController) HandleInbound(c *gin.Context) {
	var msg inboundMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusOK, outboundReply{Reply: "Sorry, we couldn't read your message."})
		return
	}

	phone, err := utils.NormalizePhone(msg.From)
	if err != nil {
		c.JSON(http.StatusOK, outboundReply{Reply: "Sorry, we couldn't recognize your phone number."})
		return
	}

	// Serialize turns per phone so a rapid second message can't interleave
	// with the first turn's session write.
	unlock := wc.Sessions.Lock(phone)
	defer unlock()

	session, err := wc.Sessions.GetOrCreate(phone)
	if err != nil {
		utils.ErrorLogger.Printf("session load failed for %s: %v", phone, err)
		c.JSON(http.StatusOK, outboundReply{Reply: "Sorry, something went wrong. Please try again."})
		return
	}

	reply := wc.Engine.Advance(session, msg.Body)

	if err := wc.Sessions.Save(session); err != nil {
		utils.ErrorLogger.Printf("session save failed for %s: %v", phone, err)
		c.JSON(http.StatusOK, outboundReply{Reply: "Sorry, something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, outboundReply{Reply: reply})
}
