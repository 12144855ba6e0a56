package services

import (
	"context"
	"errors"
	"net/http"

	"storefront-service/models"

	"go.uber.org/zap"
)

// CheckoutService turns a verified product selection into a hosted
// payment session. It owns amount derivation and the order-placed
// notification; all transactional state stays with the gateway.
type CheckoutService struct {
	gateway  Gateway
	notifier OrderNotifier
	logger   *zap.Logger
}

// NewCheckoutService creates a CheckoutService.
func NewCheckoutService(gateway Gateway, notifier OrderNotifier, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{gateway: gateway, notifier: notifier, logger: logger}
}

// PlaceOrder opens a checkout session for the selected product and
// sends the order-placed notification. Session creation is
// critical-path: any gateway failure aborts the order, and since nothing
// is written locally there is nothing to roll back. The notification is
// best-effort: its failure is logged and the confirmation still returns.
func (s *CheckoutService) PlaceOrder(ctx context.Context, cfg *models.VerticalConfig, productID string, customer models.Customer, origin string) (*models.OrderConfirmation, *ServiceError) {
	product, ok := cfg.Products.Lookup(productID)
	if !ok {
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Product details are missing or incomplete."}
	}

	unitAmount, err := AmountToMinorUnits(product.TotalAmount)
	if err != nil {
		s.logger.Error("Stored product amount is not parseable",
			zap.String("product_id", productID),
			zap.String("total_amount", product.TotalAmount),
			zap.Error(err),
		)
		if errors.Is(err, ErrInvalidAmount) {
			return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Invalid amount configured for product."}
		}
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}

	sess, err := s.gateway.CreateCheckoutSession(ctx, models.LineItem{
		Name:       product.ProductName,
		UnitAmount: unitAmount,
		Quantity:   1,
	}, origin+"/success", origin+"/cancel")
	if err != nil {
		s.logger.Error("Checkout session creation failed",
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error processing order: " + err.Error()}
	}

	message := RenderMessage(cfg.ActionText.PaymentLinkMessage, map[string]string{
		"paymentLink": sess.URL,
	})
	if err := s.notifier.PostText(ctx, message); err != nil {
		s.logger.Warn("Order notification delivery failed",
			zap.String("product_id", productID),
			zap.Error(err),
		)
	}

	s.logger.Info("Order placed",
		zap.String("product_id", productID),
		zap.String("session_id", sess.ID),
		zap.Int64("unit_amount", unitAmount),
	)

	return &models.OrderConfirmation{
		ProductName: product.ProductName,
		OrderID:     productID,
		TotalPrice:  product.TotalAmount,
		PaymentLink: sess.URL,
	}, nil
}
