package services

import (
	"context"
	"encoding/json"
	"net/http"

	"storefront-service/models"
	"storefront-service/store"

	"go.uber.org/zap"
)

// ConfigSource resolves the active vertical's configuration. It is an
// interface so controllers can be tested without a live record store.
type ConfigSource interface {
	Resolve(ctx context.Context) (*models.VerticalConfig, *ServiceError)
}

// ConfigResolver loads the active vertical's configuration from the
// record store. It holds no cache: every Resolve call performs both
// store reads, so the active vertical can change between requests
// without this process going stale.
type ConfigResolver struct {
	store  store.RecordStore
	logger *zap.Logger
}

// NewConfigResolver creates a ConfigResolver.
func NewConfigResolver(s store.RecordStore, logger *zap.Logger) *ConfigResolver {
	return &ConfigResolver{store: s, logger: logger}
}

// Resolve determines the active vertical and loads its configuration.
// A vertical with more than one configuration row is an error rather
// than a silent first-match: duplicate rows mean the authored content
// is ambiguous and someone needs to fix the store.
func (r *ConfigResolver) Resolve(ctx context.Context) (*models.VerticalConfig, *ServiceError) {
	vertical, err := r.store.ActiveVertical(ctx)
	if err != nil {
		r.logger.Error("Failed to fetch active vertical", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Server Error"}
	}
	if vertical == "" {
		return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "No active verticals found."}
	}

	records, err := r.store.ConfigsForVertical(ctx, vertical)
	if err != nil {
		r.logger.Error("Failed to fetch configuration",
			zap.String("vertical", vertical),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Server Error"}
	}
	if len(records) == 0 {
		return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Configuration not found for the selected vertical."}
	}
	if len(records) > 1 {
		r.logger.Error("Multiple configuration records for vertical",
			zap.String("vertical", vertical),
			zap.Int("count", len(records)),
		)
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Ambiguous configuration for the selected vertical."}
	}

	return buildVerticalConfig(vertical, records[0]), nil
}

// buildVerticalConfig parses the raw record blobs into the explicit
// schema, applying defaults once here. Malformed optional blobs degrade
// to their defaults; they never fail the request.
func buildVerticalConfig(vertical string, rec store.ConfigRecord) *models.VerticalConfig {
	cfg := &models.VerticalConfig{Vertical: vertical}

	if rec.ActionText != "" {
		_ = json.Unmarshal([]byte(rec.ActionText), &cfg.ActionText)
	}
	cfg.ActionText.ApplyDefaults()

	if rec.OrderPageElements != "" {
		_ = json.Unmarshal([]byte(rec.OrderPageElements), &cfg.OrderPage)
	}
	cfg.OrderPage.ApplyDefaults()

	if rec.CurrentStatusElements != "" {
		_ = json.Unmarshal([]byte(rec.CurrentStatusElements), &cfg.CurrentStatus)
	}
	cfg.CurrentStatus.ApplyDefaults()

	cfg.Products = ParseProducts(rec.ProductVerified)
	return cfg
}
