package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"storefront-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

// relayTimeout bounds the downstream relay so a dead endpoint cannot
// hold resources indefinitely.
const relayTimeout = 15 * time.Second

// WebhookController receives and dispatches payment-gateway webhook
// events. Each invocation is independent; the gateway may redeliver,
// and a duplicate relay downstream is acceptable.
type WebhookController struct {
	Gateway services.Gateway
	Relay   services.TransactionRelay
	Logger  *zap.Logger
}

// HandleWebhook verifies the event signature against the raw body,
// relays succeeded payments downstream, and acknowledges. Once the
// signature checks out the gateway always gets a 200: the relay runs
// detached from the request so its outcome, fast or slow, cannot change
// or delay the response owed to the gateway.
func (wc *WebhookController) HandleWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		respondError(c, wc.Logger, http.StatusBadRequest, "Unable to read request body", err)
		return
	}

	event, err := wc.Gateway.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		wc.Logger.Warn("Webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Webhook Error: " + err.Error()})
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		wc.handlePaymentSucceeded(event)
	default:
		wc.Logger.Info("Unhandled webhook event type",
			zap.String("event_type", string(event.Type)),
			zap.String("event_id", event.ID),
		)
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

// handlePaymentSucceeded normalizes the payment intent and forwards it
// to the confirmation endpoint in the background.
func (wc *WebhookController) handlePaymentSucceeded(event stripe.Event) {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		wc.Logger.Error("Failed to unmarshal payment intent",
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
		return
	}

	tx := services.NormalizeTransaction(&pi)
	wc.Logger.Info("Payment confirmed",
		zap.String("payment_intent_id", tx.ID),
		zap.String("amount", tx.Amount),
		zap.String("currency", tx.Currency),
	)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), relayTimeout)
		defer cancel()
		if err := wc.Relay.PostTransaction(ctx, tx); err != nil {
			wc.Logger.Error("Confirmation relay failed",
				zap.String("payment_intent_id", tx.ID),
				zap.Error(err),
			)
			return
		}
		wc.Logger.Info("Transaction relayed to confirmation endpoint",
			zap.String("payment_intent_id", tx.ID),
		)
	}()
}
