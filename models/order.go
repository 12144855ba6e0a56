package models

// Customer identifies the person placing an order. No account exists;
// the name is echoed back on the confirmation page only.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LineItem is the single charge line sent to the payment gateway.
// UnitAmount is in minor currency units (cents).
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

// CheckoutSession is this service's reference to a gateway-hosted
// payment page. The gateway owns all further state.
type CheckoutSession struct {
	ID  string
	URL string
}

// OrderConfirmation is returned to the customer after a successful
// order submission. OrderID reuses the product ID as a human-readable
// reference; no order record is persisted on this side.
type OrderConfirmation struct {
	ProductName string `json:"productName"`
	OrderID     string `json:"orderId"`
	TotalPrice  string `json:"totalPrice"`
	PaymentLink string `json:"paymentLink"`
}
