package services

import (
	"time"

	"storefront-service/models"

	"github.com/stripe/stripe-go/v80"
)

// displayTimeLayout approximates an en-US locale timestamp.
const displayTimeLayout = "1/2/2006, 3:04:05 PM"

// AnonymousCustomer labels payments with no customer attached.
const AnonymousCustomer = "Anonymous Customer"

// FormatPaymentDate converts gateway epoch seconds to a display string
// in US Eastern time. Falls back to UTC if tzdata is unavailable.
func FormatPaymentDate(epochSeconds int64) string {
	t := time.Unix(epochSeconds, 0)
	if loc, err := time.LoadLocation("America/New_York"); err == nil {
		t = t.In(loc)
	} else {
		t = t.UTC()
	}
	return t.Format(displayTimeLayout)
}

// NormalizeTransaction builds the relay payload from a succeeded
// payment intent: amount back in decimal currency, timestamp localized,
// customer defaulted when absent.
func NormalizeTransaction(pi *stripe.PaymentIntent) *models.Transaction {
	customer := AnonymousCustomer
	if pi.Customer != nil && pi.Customer.ID != "" {
		customer = pi.Customer.ID
	}

	paymentMethod := ""
	if pi.PaymentMethod != nil {
		paymentMethod = pi.PaymentMethod.ID
	}

	return &models.Transaction{
		ID:            pi.ID,
		Customer:      customer,
		Status:        string(pi.Status),
		Amount:        MinorUnitsToAmount(pi.AmountReceived),
		Currency:      string(pi.Currency),
		PaymentMethod: paymentMethod,
		PaymentDate:   FormatPaymentDate(pi.Created),
	}
}
