package store

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubTransport answers every request with a canned Airtable payload,
// recording requests and honoring request-context cancellation the way
// a real transport would.
type stubTransport struct {
	payload  string
	requests []*http.Request
}

func (t *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	t.requests = append(t.requests, req)
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(t.payload)),
		Request:    req,
	}, nil
}

func newStubbedStore(payload string) (*AirtableStore, *stubTransport) {
	transport := &stubTransport{payload: payload}
	s := NewAirtableStore("key_test", "app_test", "Current Vertical", "Configuration Table")
	s.client.SetCustomClient(&http.Client{Transport: transport})
	return s, transport
}

func TestActiveVerticalReadsSingletonRow(t *testing.T) {
	s, transport := newStubbedStore(`{"records": [{"id": "rec1", "fields": {"Vertical": "Retail"}}]}`)

	vertical, err := s.ActiveVertical(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Retail", vertical)

	assert.Len(t, transport.requests, 1)
	assert.Equal(t, "1", transport.requests[0].URL.Query().Get("maxRecords"))
}

func TestActiveVerticalEmptyTable(t *testing.T) {
	s, _ := newStubbedStore(`{"records": []}`)

	vertical, err := s.ActiveVertical(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "", vertical)
}

func TestConfigsForVerticalFiltersAndMapsFields(t *testing.T) {
	s, transport := newStubbedStore(`{"records": [{"id": "rec1", "fields": {
		"Vertical": "Retail",
		"actionText": "{\"headerText\": \"Retail Portal\"}",
		"productVerified": "{\"P1\": {\"productName\": \"Widget\"}}"
	}}]}`)

	records, err := s.ConfigsForVertical(context.Background(), "Retail")
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "Retail", records[0].Vertical)
	assert.Contains(t, records[0].ActionText, "Retail Portal")
	assert.Contains(t, records[0].ProductVerified, "Widget")

	assert.Len(t, transport.requests, 1)
	formula := transport.requests[0].URL.Query().Get("filterByFormula")
	assert.Equal(t, "{Vertical} = 'Retail'", formula)
}

func TestConfigsForVerticalEscapesFormula(t *testing.T) {
	s, transport := newStubbedStore(`{"records": []}`)

	_, err := s.ConfigsForVertical(context.Background(), "Bob's Bikes")
	assert.NoError(t, err)
	formula := transport.requests[0].URL.Query().Get("filterByFormula")
	assert.Equal(t, `{Vertical} = 'Bob\'s Bikes'`, formula)
}

func TestStoreReadsHonorContextCancellation(t *testing.T) {
	s, transport := newStubbedStore(`{"records": []}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ActiveVertical(ctx)
	assert.Error(t, err)

	_, err = s.ConfigsForVertical(ctx, "Retail")
	assert.Error(t, err)

	assert.Empty(t, transport.requests, "a cancelled context must stop the store read")
}
