package order

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shopcart/internal/domain"
)

// TxStore persists orders inside an open transaction, so the order row and
// its sold lines land atomically with the stock decrements.
type TxStore struct {
	tx pgx.Tx
}

func NewTxStore(tx pgx.Tx) *TxStore {
	return &TxStore{tx: tx}
}

// Save inserts the order and all of its sold line items.
func (s *TxStore) Save(ctx context.Context, o *domain.Order) error {
	const orderQ = `
INSERT INTO orders (id, user_id, payment, created_at)
VALUES ($1, $2, $3, $4)
`
	if _, err := s.tx.Exec(ctx, orderQ, o.ID, o.UserID, o.Payment, o.CreatedAt); err != nil {
		return fmt.Errorf("insert order %s: %w", o.ID, err)
	}

	const soldQ = `
INSERT INTO sold_items (id, order_id, product_id, quantity, unit_price)
VALUES ($1, $2, $3, $4, $5)
`
	batch := &pgx.Batch{}
	for _, item := range o.Items {
		batch.Queue(soldQ, item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice)
	}
	results := s.tx.SendBatch(ctx, batch)
	defer results.Close()

	for range o.Items {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert sold items for order %s: %w", o.ID, err)
		}
	}
	return results.Close()
}
