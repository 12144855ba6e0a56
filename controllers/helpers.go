package controllers

import (
	"storefront-service/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError logs a warning and writes a JSON error response.
func respondError(c *gin.Context, logger *zap.Logger, status int, msg string, err error) {
	if err != nil {
		logger.Warn(msg, zap.Error(err))
	}
	c.JSON(status, gin.H{"error": msg})
}

// requestOrigin returns the base URL the gateway should redirect back
// to, taken from the Origin header like the hosted checkout flow
// expects, with the request host as fallback.
func requestOrigin(c *gin.Context) string {
	if origin := c.GetHeader("Origin"); origin != "" {
		return origin
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

// navFields returns the navigation copy shared by every page view model.
func navFields(cfg *models.VerticalConfig) gin.H {
	return gin.H{
		"homeText":          cfg.ActionText.HomeText,
		"initiateOrderText": cfg.ActionText.InitiateOrderText,
		"verifyText":        cfg.ActionText.VerifyText,
		"verifyPaymentText": cfg.ActionText.VerifyPaymentText,
	}
}

// mergeFields overlays extra view-model fields onto the shared set.
func mergeFields(base gin.H, extra gin.H) gin.H {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
