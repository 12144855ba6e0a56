package models

// ProductRecord is one verified product instance as authored in the
// configuration store. TotalAmount is a currency-formatted string
// (e.g. "$19.99"); conversion to minor units happens only at the
// payment-gateway boundary.
type ProductRecord struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	SerialNumber string `json:"serialNumber"`
	Status       string `json:"status,omitempty"`
	TotalAmount  string `json:"totalAmount"`
}

// ProductOption is the (id, name) pair rendered into the order form's
// product dropdown.
type ProductOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductCatalog is the parsed view over a vertical's productVerified
// blob. It preserves the authored key order for listing.
type ProductCatalog struct {
	order []string
	byID  map[string]ProductRecord
}

// NewProductCatalog builds a catalog from records in the given order.
func NewProductCatalog() *ProductCatalog {
	return &ProductCatalog{byID: make(map[string]ProductRecord)}
}

// Add appends a record under its product ID, keeping insertion order.
func (c *ProductCatalog) Add(id string, rec ProductRecord) {
	if _, exists := c.byID[id]; !exists {
		c.order = append(c.order, id)
	}
	rec.ProductID = id
	c.byID[id] = rec
}

// List returns the sellable products in authored order.
func (c *ProductCatalog) List() []ProductOption {
	opts := make([]ProductOption, 0, len(c.order))
	for _, id := range c.order {
		opts = append(opts, ProductOption{ID: id, Name: c.byID[id].ProductName})
	}
	return opts
}

// Lookup returns the record for a product ID, if present.
func (c *ProductCatalog) Lookup(id string) (ProductRecord, bool) {
	rec, ok := c.byID[id]
	return rec, ok
}

// Len reports how many products the catalog holds.
func (c *ProductCatalog) Len() int { return len(c.order) }
