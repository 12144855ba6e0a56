package routes

import (
	"storefront-service/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the storefront HTTP surface onto the engine.
func RegisterRoutes(r *gin.Engine, pages *controllers.PageController, orders *controllers.OrderController, webhooks *controllers.WebhookController) {
	r.GET("/", pages.Home)
	r.GET("/verify", pages.VerifyPage)
	r.POST("/verify", orders.VerifySubmit)
	r.GET("/current-status", pages.CurrentStatus)
	r.GET("/order", pages.OrderPage)
	r.POST("/order", orders.SubmitOrder)
	r.GET("/success", pages.Success)
	r.GET("/cancel", pages.Cancel)
	r.GET("/verify-payment", orders.VerifyPayment)

	// Stripe webhook: raw body, signature-verified in the handler.
	r.POST("/webhook", webhooks.HandleWebhook)
}
