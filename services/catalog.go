package services

import (
	"encoding/json"
	"strings"

	"storefront-service/models"
)

// ParseProducts builds a product catalog from the raw productVerified
// blob. Authored key order is preserved so the order form lists
// products the way they were written. Malformed content degrades to an
// empty catalog; a bad blob must never fail the request.
func ParseProducts(raw string) *models.ProductCatalog {
	catalog := models.NewProductCatalog()
	if raw == "" {
		return catalog
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return models.NewProductCatalog()
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return models.NewProductCatalog()
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return models.NewProductCatalog()
		}
		key, ok := keyTok.(string)
		if !ok {
			return models.NewProductCatalog()
		}
		var rec models.ProductRecord
		if err := dec.Decode(&rec); err != nil {
			return models.NewProductCatalog()
		}
		catalog.Add(key, rec)
	}
	return catalog
}

// Verify matches a submitted (productID, serialNumber) pair against the
// catalog. The serial comparison is exact: case-sensitive, untrimmed.
// Pure; no side effects.
func Verify(cfg *models.VerticalConfig, productID, serialNumber string) (models.ProductRecord, bool) {
	rec, ok := cfg.Products.Lookup(productID)
	if !ok {
		return models.ProductRecord{}, false
	}
	if rec.SerialNumber != serialNumber {
		return models.ProductRecord{}, false
	}
	return rec, true
}
