package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront-service/models"
)

// OrderNotifier delivers the order-placed message carrying the payment link.
type OrderNotifier interface {
	PostText(ctx context.Context, text string) error
}

// TransactionRelay forwards a normalized transaction downstream after
// a payment completes.
type TransactionRelay interface {
	PostTransaction(ctx context.Context, tx *models.Transaction) error
}

// WebhookNotifier posts JSON payloads to a fixed endpoint. Both
// outbound notification paths are best-effort: callers log failures and
// move on, they never fail the request over one.
type WebhookNotifier struct {
	endpoint   string
	httpClient *http.Client
}

// NewWebhookNotifier creates a notifier for the given endpoint URL.
func NewWebhookNotifier(endpoint string) *WebhookNotifier {
	return &WebhookNotifier{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// PostText sends {"text": ...} to the endpoint.
func (n *WebhookNotifier) PostText(ctx context.Context, text string) error {
	return n.post(ctx, map[string]string{"text": text})
}

// PostTransaction sends {"transaction": ...} to the endpoint.
func (n *WebhookNotifier) PostTransaction(ctx context.Context, tx *models.Transaction) error {
	return n.post(ctx, map[string]*models.Transaction{"transaction": tx})
}

func (n *WebhookNotifier) post(ctx context.Context, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notifier: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notifier: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notifier: post to %s: %w", n.endpoint, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("notifier: endpoint %s returned status %d", n.endpoint, resp.StatusCode)
	}
	return nil
}

// RenderMessage substitutes {{name}} placeholders in a configured
// message template. Substitution lives here so every templated message
// follows the same rules.
func RenderMessage(tmpl string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
