// Package checkout provides the transactional boundary a checkout runs in:
// one unit of work spanning the stock store and the order store, with
// all-or-nothing commit semantics.
package checkout

import (
	"context"

	"shopcart/internal/domain"
)

// StockStore is the transactional view of the product stock.
type StockStore interface {
	// GetForUpdate re-reads the authoritative product and holds it against
	// concurrent checkouts until the unit of work ends.
	GetForUpdate(ctx context.Context, id string) (*domain.Product, error)
	// SaveAll persists the decremented quantities for every touched product.
	SaveAll(ctx context.Context, products []domain.Product) error
}

// OrderStore is the transactional view of the order store.
type OrderStore interface {
	Save(ctx context.Context, order *domain.Order) error
}

// Stores bundles the per-transaction store handles passed to the closure.
type Stores struct {
	Stock  StockStore
	Orders OrderStore
}

// UnitOfWork runs fn inside one transaction. If fn returns an error the
// transaction rolls back and nothing fn wrote is visible; otherwise the
// commit makes the order and the stock decrements visible together.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(Stores) error) error
}
