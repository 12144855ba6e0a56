package controllers

import (
	"errors"
	"net/http"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderController handles the verification and order submissions plus
// the verify-payment lookup.
type OrderController struct {
	Config   services.ConfigSource
	Checkout *services.CheckoutService
	Gateway  services.Gateway
	Logger   *zap.Logger
}

// VerifySubmit matches a submitted product/serial pair against the
// catalog and, on success, returns the current-status view model for
// that product.
func (oc *OrderController) VerifySubmit(c *gin.Context) {
	var req struct {
		ProductID    string `form:"productId" json:"productId" binding:"required"`
		SerialNumber string `form:"serialNumber" json:"serialNumber" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, oc.Logger, http.StatusBadRequest, "Product ID and Serial Number are required.", err)
		return
	}

	cfg, svcErr := oc.Config.Resolve(c.Request.Context())
	if svcErr != nil {
		respondError(c, oc.Logger, svcErr.StatusCode, svcErr.Message, nil)
		return
	}

	product, ok := services.Verify(cfg, req.ProductID, req.SerialNumber)
	if !ok {
		respondError(c, oc.Logger, http.StatusNotFound, "Product ID or Serial Number not found.", nil)
		return
	}

	c.JSON(http.StatusOK, mergeFields(navFields(cfg), gin.H{
		"productInfo":  product,
		"headerText":   cfg.ActionText.HeaderText,
		"footerText":   cfg.ActionText.FooterText,
		"statusHeader": cfg.ActionText.StatusHeader,
		"detailsTitle": cfg.ActionText.DetailsTitle,
		"productLabel": cfg.ActionText.ProductLabel,
		"serialLabel":  cfg.ActionText.SerialLabel,
		"statusLabel":  cfg.ActionText.StatusLabel,
		"amountLabel":  cfg.ActionText.AmountLabel,
		"verticalName": cfg.Vertical,
	}))
}

// SubmitOrder runs the checkout flow and returns the confirmation view
// model with the hosted payment link.
func (oc *OrderController) SubmitOrder(c *gin.Context) {
	var req struct {
		FirstName string `form:"firstName" json:"firstName" binding:"required"`
		LastName  string `form:"lastName" json:"lastName" binding:"required"`
		Product   string `form:"product" json:"product" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, oc.Logger, http.StatusBadRequest, "First name, last name and product are required.", err)
		return
	}

	cfg, svcErr := oc.Config.Resolve(c.Request.Context())
	if svcErr != nil {
		respondError(c, oc.Logger, svcErr.StatusCode, svcErr.Message, nil)
		return
	}

	customer := models.Customer{FirstName: req.FirstName, LastName: req.LastName}
	confirmation, svcErr := oc.Checkout.PlaceOrder(c.Request.Context(), cfg, req.Product, customer, requestOrigin(c))
	if svcErr != nil {
		respondError(c, oc.Logger, svcErr.StatusCode, svcErr.Message, nil)
		return
	}

	c.JSON(http.StatusOK, mergeFields(navFields(cfg), gin.H{
		"firstName":                  req.FirstName,
		"lastName":                   req.LastName,
		"orderDetails":               confirmation,
		"paymentLink":                confirmation.PaymentLink,
		"headerText":                 cfg.ActionText.HeaderText,
		"footerText":                 cfg.ActionText.FooterText,
		"confirmThankYouText":        cfg.ActionText.ConfirmThankYouText,
		"confirmOrderProcessedText":  cfg.ActionText.ConfirmOrderProcessedText,
		"confirmOrderIDText":         cfg.ActionText.ConfirmOrderIDText,
		"confirmTotalPriceText":      cfg.ActionText.ConfirmTotalPriceText,
		"confirmCompletePaymentText": cfg.ActionText.ConfirmCompletePaymentText,
	}))
}

// VerifyPayment shows the most recent transaction known to the gateway.
// The lookup is a singleton "latest" query, not scoped to any order.
func (oc *OrderController) VerifyPayment(c *gin.Context) {
	cfg, svcErr := oc.Config.Resolve(c.Request.Context())
	if svcErr != nil {
		respondError(c, oc.Logger, svcErr.StatusCode, svcErr.Message, nil)
		return
	}

	tx, err := oc.Gateway.LatestTransaction(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoTransactions):
			respondError(c, oc.Logger, http.StatusNotFound, "No transactions found.", nil)
		case errors.Is(err, services.ErrNoCharges):
			respondError(c, oc.Logger, http.StatusNotFound, "No charges found for the latest transaction.", nil)
		default:
			respondError(c, oc.Logger, http.StatusInternalServerError, "Error fetching transactions: "+err.Error(), err)
		}
		return
	}

	c.JSON(http.StatusOK, mergeFields(navFields(cfg), gin.H{
		"headerText":   cfg.ActionText.HeaderText,
		"footerText":   cfg.ActionText.FooterText,
		"transactions": []*models.Transaction{tx},
	}))
}
