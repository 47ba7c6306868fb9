package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the authoritative catalog entry. Quantity is the on-hand stock
// owned by the stock store; cart lines only ever hold copies of it.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CreatedAt   time.Time       `json:"createdAt"`
}
