package models

// Transaction is the normalized view of a completed gateway payment,
// used both for the confirmation relay and the verify-payment page.
// Amount is decimal currency (e.g. "$10.00"); PaymentDate is a
// localized display string. Neither is persisted anywhere.
type Transaction struct {
	ID            string `json:"id"`
	Customer      string `json:"customer"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	PaymentDate   string `json:"paymentDate"`
}
