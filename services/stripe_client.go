package services

import (
	"context"
	"fmt"

	"storefront-service/models"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/charge"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/paymentintent"
	"github.com/stripe/stripe-go/v80/webhook"
)

// Gateway is the payment-gateway surface this service depends on.
type Gateway interface {
	// CreateCheckoutSession opens a hosted payment page for a single
	// line item and returns its reference.
	CreateCheckoutSession(ctx context.Context, item models.LineItem, successURL, cancelURL string) (*models.CheckoutSession, error)

	// LatestTransaction returns the most recent payment known to the
	// gateway, normalized for display. ErrNoTransactions when none.
	LatestTransaction(ctx context.Context) (*models.Transaction, error)

	// VerifyWebhook authenticates a raw webhook payload against its
	// signature header and returns the parsed event.
	VerifyWebhook(payload []byte, sigHeader string) (stripe.Event, error)
}

// StripeService implements Gateway using the Stripe API.
type StripeService struct {
	SecretKey  string
	WebhookKey string
}

func NewStripeService(secretKey, webhookKey string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{SecretKey: secretKey, WebhookKey: webhookKey}
}

// CreateCheckoutSession opens a card-payment checkout session with a
// single line item. Amounts arrive here already converted to cents.
func (s *StripeService) CreateCheckoutSession(ctx context.Context, item models.LineItem, successURL, cancelURL string) (*models.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(item.Name),
					},
					UnitAmount: stripe.Int64(item.UnitAmount),
				},
				Quantity: stripe.Int64(item.Quantity),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create checkout session: %w", err)
	}
	return &models.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// LatestTransaction fetches the most recent payment intent and its
// charge, for the verify-payment page. This is a singleton "latest"
// query against the gateway, not scoped to any particular order.
func (s *StripeService) LatestTransaction(ctx context.Context) (*models.Transaction, error) {
	piParams := &stripe.PaymentIntentListParams{}
	piParams.Limit = stripe.Int64(1)
	piParams.Context = ctx

	piIter := paymentintent.List(piParams)
	if !piIter.Next() {
		if err := piIter.Err(); err != nil {
			return nil, fmt.Errorf("stripe: list payment intents: %w", err)
		}
		return nil, ErrNoTransactions
	}
	pi := piIter.PaymentIntent()

	chParams := &stripe.ChargeListParams{PaymentIntent: stripe.String(pi.ID)}
	chParams.Limit = stripe.Int64(1)
	chParams.Context = ctx

	chIter := charge.List(chParams)
	if !chIter.Next() {
		if err := chIter.Err(); err != nil {
			return nil, fmt.Errorf("stripe: list charges: %w", err)
		}
		return nil, ErrNoCharges
	}
	ch := chIter.Charge()

	customer := "Anonymous Customer"
	if ch.BillingDetails != nil && ch.BillingDetails.Name != "" {
		customer = ch.BillingDetails.Name
	}

	return &models.Transaction{
		ID:          pi.ID,
		Customer:    customer,
		Status:      string(pi.Status),
		Amount:      MinorUnitsToAmount(pi.AmountReceived),
		Currency:    string(pi.Currency),
		PaymentDate: FormatPaymentDate(pi.Created),
	}, nil
}

// VerifyWebhook checks the Stripe-Signature header against the raw body
// using the shared webhook secret. Nothing past this call may be
// treated as genuine gateway data unless it succeeds.
func (s *StripeService) VerifyWebhook(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, s.WebhookKey)
}
