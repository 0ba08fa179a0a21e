package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/rakapradana/boba-order-app/config"
	"github.com/rakapradana/boba-order-app/dialog"
	"github.com/rakapradana/boba-order-app/llm"
	"github.com/rakapradana/boba-order-app/models"
	"github.com/rakapradana/boba-order-app/router"
	"github.com/rakapradana/boba-order-app/services"
	"github.com/rakapradana/boba-order-app/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InfoLogger = logrus.New()
	utils.ErrorLogger = logrus.New()

	utils.InfoLogger.SetOutput(os.Stdout)
	utils.ErrorLogger.SetOutput(os.Stderr)

	utils.InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})
	utils.ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	midtrans := services.NewMidtransService(&services.MidtransConfig{
		ServerKey:    cfg.MidtransServerKey,
		ClientKey:    cfg.MidtransClientKey,
		IsProduction: cfg.MidtransEnv == "production",
	})
	if err := midtrans.ValidateConfig(); err != nil {
		utils.ErrorLogger.Printf("Warning: %v", err)
	}

	payments := services.NewPaymentService(db, midtrans)
	fulfillment := services.NewFulfillmentService(db)
	sessions := services.NewSessionStore(db)

	fallback := llm.NewClient(&llm.Config{
		BaseURL: cfg.LLMBaseURL,
		APIKey:  cfg.LLMAPIKey,
		Model:   cfg.LLMModel,
	})

	engine := dialog.NewEngine(db, fallback, payments)

	r := router.SetupRouter(router.Deps{
		DB:          db,
		Sessions:    sessions,
		Engine:      engine,
		Payments:    payments,
		Fulfillment: fulfillment,
		Midtrans:    midtrans,
	})

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Drink{},
		&models.DrinkIngredient{},
		&models.InventoryItem{},
		&models.OrderSession{},
		&models.PendingOrder{},
		&models.PendingOrderItem{},
		&models.Receipt{},
		&models.OrderLineItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
