package controllers

import (
	"net/http"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageController serves the read-only page view models. Rendering to
// HTML is an external concern; each handler returns the resolved copy
// and data a renderer needs.
type PageController struct {
	Config services.ConfigSource
	Logger *zap.Logger
}

// Home serves the landing-page view model.
func (pc *PageController) Home(c *gin.Context) {
	cfg, svcErr := pc.Config.Resolve(c.Request.Context())
	if svcErr != nil {
		respondError(c, pc.Logger, svcErr.StatusCode, svcErr.Message, nil)
		return
	}

	c.JSON(http.StatusOK, mergeFields(navFields(cfg), gin.H{
		"headerText":      cfg.ActionText.HeaderText,
		"footerText":      cfg.ActionText.FooterText,
		"welcomeText":     cfg.ActionText.WelcomeText,
		"instructionText": cfg.ActionText.InstructionText,
	}))
}

// VerifyPage serves the verification-form view model.
func (pc *PageController) VerifyPage(c *gin.Context) {
	cfg, svcErr := pc.Config.Resolve(c.Request.Context())
	if svcErr != nil {
		respondError(c, pc.Logger, svcErr.StatusCode, svcErr.Message, nil)
		return
	}

	c.JSON(http.StatusOK, mergeFields(navFields(cfg), gin.H{
		"headerText":      cfg.ActionText.HeaderText,
		"footerText":      cfg.ActionText.FooterText,
		"instructionText": cfg.ActionText.InstructionText,
		"productLabel":    cfg.ActionText.ProductLabel,
	}))
}

// CurrentStatus serves the status page shell. It renders no product:
// there is no lookup on this path yet, so the view model carries an
// explicit placeholder marker instead of pretending to have data.
// TODO: needs a product-owner decision on what this page should look up.
func (pc *PageController) CurrentStatus(c *gin.Context) {
	cfg, svcErr := pc.Config.Resolve(c.Request.Context())
	if svcErr != nil {
		respondError(c, pc.Logger, svcErr.StatusCode, svcErr.Message, nil)
		return
	}

	c.JSON(http.StatusOK, mergeFields(navFields(cfg), gin.H{
		"title":        cfg.CurrentStatus.Title,
		"headerText":   cfg.ActionText.HeaderText,
		"footerText":   cfg.ActionText.FooterText,
		"productInfo":  models.ProductRecord{},
		"placeholder":  true,
		"productLabel": cfg.ActionText.ProductLabel,
		"serialLabel":  cfg.ActionText.SerialLabel,
		"statusLabel":  cfg.ActionText.StatusLabel,
		"amountLabel":  cfg.ActionText.AmountLabel,
	}))
}

// OrderPage serves the order-form view model, including the product
// dropdown in authored order.
func (pc *PageController) OrderPage(c *gin.Context) {
	cfg, svcErr := pc.Config.Resolve(c.Request.Context())
	if svcErr != nil {
		respondError(c, pc.Logger, svcErr.StatusCode, svcErr.Message, nil)
		return
	}

	c.JSON(http.StatusOK, mergeFields(navFields(cfg), gin.H{
		"pageTitle":        cfg.OrderPage.PageTitle,
		"headerText":       cfg.OrderPage.HeaderText,
		"footerText":       cfg.ActionText.FooterText,
		"instructionText":  cfg.OrderPage.InstructionText,
		"firstNameLabel":   cfg.OrderPage.FirstNameLabel,
		"lastNameLabel":    cfg.OrderPage.LastNameLabel,
		"productLabel":     cfg.OrderPage.ProductLabel,
		"submitButtonText": cfg.OrderPage.SubmitButtonText,
		"products":         cfg.Products.List(),
	}))
}

// Success acknowledges the gateway's success redirect.
func (pc *PageController) Success(c *gin.Context) {
	c.String(http.StatusOK, "Payment successful!")
}

// Cancel acknowledges the gateway's cancel redirect.
func (pc *PageController) Cancel(c *gin.Context) {
	c.String(http.StatusOK, "Payment canceled.")
}
