package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is created only by a successful checkout and is immutable afterwards.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Payment   decimal.Decimal `json:"payment"`
	CreatedAt time.Time       `json:"createdAt"`
	Items     []Sold          `json:"items"`
}

// Sold records what quantity of a product was part of an order, at the unit
// price the stock store held when the order was placed.
type Sold struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"orderId"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}
