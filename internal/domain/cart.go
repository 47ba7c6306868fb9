package domain

import "github.com/shopspring/decimal"

// CartLine is one ledger entry: a product copy taken at add time plus the
// requested quantity. Quantity is always >= 1 while the line exists.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is unit price times requested quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
