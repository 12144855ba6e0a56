package main

import (
	"log"

	"storefront-service/config"
	"storefront-service/controllers"
	"storefront-service/middleware"
	"storefront-service/routes"
	"storefront-service/services"
	"storefront-service/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("[Storefront] Failed to load config:", err)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("[Storefront] Failed to initialize logger:", err)
	}
	defer logger.Sync()

	recordStore := store.NewAirtableStore(cfg.AirtableAPIKey, cfg.AirtableBaseID, cfg.VerticalTable, cfg.ConfigTable)
	resolver := services.NewConfigResolver(recordStore, logger)
	stripeSvc := services.NewStripeService(cfg.StripeSecretKey, cfg.StripeWebhookKey)
	orderNotifier := services.NewWebhookNotifier(cfg.OrderNotificationURL)
	confirmationRelay := services.NewWebhookNotifier(cfg.ConfirmationWebhookURL)
	checkoutSvc := services.NewCheckoutService(stripeSvc, orderNotifier, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	pages := &controllers.PageController{Config: resolver, Logger: logger}
	orders := &controllers.OrderController{
		Config:   resolver,
		Checkout: checkoutSvc,
		Gateway:  stripeSvc,
		Logger:   logger,
	}
	webhooks := &controllers.WebhookController{
		Gateway: stripeSvc,
		Relay:   confirmationRelay,
		Logger:  logger,
	}
	routes.RegisterRoutes(r, pages, orders, webhooks)

	logger.Info("Storefront service running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("[Storefront] Server failed:", err)
	}
}
