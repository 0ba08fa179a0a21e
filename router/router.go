package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakapradana/boba-order-app/controllers"
	"github.com/rakapradana/boba-order-app/dialog"
	"github.com/rakapradana/boba-order-app/middlewares"
	"github.com/rakapradana/boba-order-app/services"
)

// Deps carries the wired services the routes need.
type Deps struct {
	DB          *gorm.DB
	Sessions    *services.SessionStore
	Engine      *dialog.Engine
	Payments    *services.PaymentService
	Fulfillment *services.FulfillmentService
	Midtrans    *services.MidtransService
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(deps.DB)
	webhookCtrl := controllers.NewWebhookController(deps.DB, deps.Sessions, deps.Engine)
	paymentCtrl := controllers.NewPaymentController(deps.DB, deps.Payments, deps.Fulfillment, deps.Midtrans)
	checkoutCtrl := controllers.NewCheckoutController(deps.DB, deps.Fulfillment)
	receiptCtrl := controllers.NewReceiptController(deps.DB)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Messaging gateway webhook (satu reply per pesan masuk)
	webhook := r.Group("/webhook")
	webhook.Use(middlewares.NewRateLimiter(30, 1).RateLimit())
	{
		webhook.POST("/message", webhookCtrl.HandleInbound)
	}

	// Midtrans payment notification + status poll
	r.POST("/payments/callback", paymentCtrl.HandleCallback)
	r.GET("/payments/:reference/status", paymentCtrl.CheckStatus)

	// ----------------------------------------------------------------
	//                      PROTECTED ROUTES (kasir)
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/checkout", middlewares.RequireRole("cashier"), checkoutCtrl.Checkout)
		auth.GET("/receipts", middlewares.RequireRole("cashier"), receiptCtrl.GetAllReceipts)
		auth.GET("/receipts/:receipt_id", middlewares.RequireRole("cashier"), receiptCtrl.GetReceipt)
	}

	return r
}
