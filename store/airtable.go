package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mehanizm/airtable"
)

// AirtableStore implements RecordStore against an Airtable base.
type AirtableStore struct {
	client        *airtable.Client
	baseID        string
	verticalTable string
	configTable   string
}

// NewAirtableStore creates a RecordStore backed by the given base and tables.
func NewAirtableStore(apiKey, baseID, verticalTable, configTable string) *AirtableStore {
	client := airtable.NewClient(apiKey)
	client.SetCustomClient(&http.Client{
		Timeout: 15 * time.Second,
	})
	return &AirtableStore{
		client:        client,
		baseID:        baseID,
		verticalTable: verticalTable,
		configTable:   configTable,
	}
}

// ActiveVertical reads the first row of the active-vertical table.
func (s *AirtableStore) ActiveVertical(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("maxRecords", "1")

	table := s.client.GetTable(s.baseID, s.verticalTable)
	res, err := table.GetRecordsWithParamsContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("airtable: fetch active vertical: %w", err)
	}
	if len(res.Records) == 0 {
		return "", nil
	}
	return stringField(res.Records[0].Fields, "Vertical"), nil
}

// ConfigsForVertical fetches all configuration rows matching the vertical name.
func (s *AirtableStore) ConfigsForVertical(ctx context.Context, vertical string) ([]ConfigRecord, error) {
	params := url.Values{}
	params.Set("filterByFormula", fmt.Sprintf("{Vertical} = '%s'", escapeFormulaString(vertical)))

	table := s.client.GetTable(s.baseID, s.configTable)
	res, err := table.GetRecordsWithParamsContext(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("airtable: fetch configuration for %q: %w", vertical, err)
	}

	records := make([]ConfigRecord, 0, len(res.Records))
	for _, rec := range res.Records {
		records = append(records, ConfigRecord{
			Vertical:              stringField(rec.Fields, "Vertical"),
			ActionText:            stringField(rec.Fields, "actionText"),
			ProductVerified:       stringField(rec.Fields, "productVerified"),
			OrderPageElements:     stringField(rec.Fields, "orderPageElements"),
			CurrentStatusElements: stringField(rec.Fields, "currentStatusElements"),
		})
	}
	return records, nil
}

func stringField(fields map[string]interface{}, name string) string {
	if v, ok := fields[name].(string); ok {
		return v
	}
	return ""
}

// escapeFormulaString escapes single quotes so a vertical name cannot
// break out of the filter formula literal.
func escapeFormulaString(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
