package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"storefront-service/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeStore struct {
	vertical    string
	verticalErr error
	configs     []store.ConfigRecord
	configErr   error
}

func (s *fakeStore) ActiveVertical(ctx context.Context) (string, error) {
	return s.vertical, s.verticalErr
}

func (s *fakeStore) ConfigsForVertical(ctx context.Context, vertical string) ([]store.ConfigRecord, error) {
	return s.configs, s.configErr
}

func retailRecord() store.ConfigRecord {
	return store.ConfigRecord{
		Vertical:        "Retail",
		ActionText:      `{"headerText": "Retail Portal", "welcomeText": "Hello"}`,
		ProductVerified: `{"P1": {"productName": "Widget", "serialNumber": "SN1", "totalAmount": "$10.00"}}`,
	}
}

func TestResolveSuccess(t *testing.T) {
	resolver := NewConfigResolver(&fakeStore{vertical: "Retail", configs: []store.ConfigRecord{retailRecord()}}, zap.NewNop())

	cfg, svcErr := resolver.Resolve(context.Background())
	assert.Nil(t, svcErr)
	assert.Equal(t, "Retail", cfg.Vertical)
	assert.Equal(t, "Retail Portal", cfg.ActionText.HeaderText)
	assert.Equal(t, "Hello", cfg.ActionText.WelcomeText)
	// Unset fields got their defaults at load time.
	assert.Equal(t, "Default Footer Text", cfg.ActionText.FooterText)
	assert.Equal(t, "Order Your Product", cfg.OrderPage.PageTitle)
	assert.Equal(t, "Current Status", cfg.CurrentStatus.Title)
	assert.Equal(t, 1, cfg.Products.Len())
}

func TestResolveNoActiveVertical(t *testing.T) {
	resolver := NewConfigResolver(&fakeStore{vertical: ""}, zap.NewNop())

	_, svcErr := resolver.Resolve(context.Background())
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestResolveNoConfiguration(t *testing.T) {
	resolver := NewConfigResolver(&fakeStore{vertical: "Retail"}, zap.NewNop())

	_, svcErr := resolver.Resolve(context.Background())
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestResolveDuplicateConfigurationFailsLoudly(t *testing.T) {
	resolver := NewConfigResolver(&fakeStore{
		vertical: "Retail",
		configs:  []store.ConfigRecord{retailRecord(), retailRecord()},
	}, zap.NewNop())

	_, svcErr := resolver.Resolve(context.Background())
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
	assert.Contains(t, svcErr.Message, "Ambiguous")
}

func TestResolveStoreErrors(t *testing.T) {
	resolver := NewConfigResolver(&fakeStore{verticalErr: errors.New("store down")}, zap.NewNop())
	_, svcErr := resolver.Resolve(context.Background())
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)

	resolver = NewConfigResolver(&fakeStore{vertical: "Retail", configErr: errors.New("store down")}, zap.NewNop())
	_, svcErr = resolver.Resolve(context.Background())
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
}

func TestResolveIsIdempotent(t *testing.T) {
	resolver := NewConfigResolver(&fakeStore{vertical: "Retail", configs: []store.ConfigRecord{retailRecord()}}, zap.NewNop())

	first, svcErr := resolver.Resolve(context.Background())
	assert.Nil(t, svcErr)
	second, svcErr := resolver.Resolve(context.Background())
	assert.Nil(t, svcErr)

	assert.Equal(t, first.Vertical, second.Vertical)
	assert.Equal(t, first.ActionText, second.ActionText)
	assert.Equal(t, first.OrderPage, second.OrderPage)
	assert.Equal(t, first.Products.List(), second.Products.List())
}

func TestResolveMalformedBlobsDegradeToDefaults(t *testing.T) {
	rec := store.ConfigRecord{
		Vertical:              "Retail",
		ActionText:            "{broken",
		ProductVerified:       "also broken",
		OrderPageElements:     "[]",
		CurrentStatusElements: "",
	}
	resolver := NewConfigResolver(&fakeStore{vertical: "Retail", configs: []store.ConfigRecord{rec}}, zap.NewNop())

	cfg, svcErr := resolver.Resolve(context.Background())
	assert.Nil(t, svcErr)
	assert.Equal(t, "Default Header", cfg.ActionText.HeaderText)
	assert.Equal(t, "Order Your Product", cfg.OrderPage.PageTitle)
	assert.Equal(t, 0, cfg.Products.Len())
}
