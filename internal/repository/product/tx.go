package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shopcart/internal/domain"
)

// TxStore exposes the stock operations a checkout needs inside an open
// transaction: pessimistic reads and batched quantity writes.
type TxStore struct {
	tx pgx.Tx
}

func NewTxStore(tx pgx.Tx) *TxStore {
	return &TxStore{tx: tx}
}

// GetForUpdate reads the authoritative product row and locks it until the
// surrounding transaction commits or rolls back, so two checkouts racing on
// the same product serialize here.
func (s *TxStore) GetForUpdate(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id::text, name, COALESCE(description, ''), price, quantity, created_at
FROM products
WHERE id = $1
FOR UPDATE
`
	var p domain.Product
	err := s.tx.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("lock product %s: %w", id, err)
	}
	return &p, nil
}

// SaveAll persists the new on-hand quantity for every touched product.
func (s *TxStore) SaveAll(ctx context.Context, products []domain.Product) error {
	const q = `
UPDATE products
SET quantity = $2
WHERE id = $1
`
	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(q, p.ID, p.Quantity)
	}
	results := s.tx.SendBatch(ctx, batch)
	defer results.Close()

	for _, p := range products {
		cmd, err := results.Exec()
		if err != nil {
			return fmt.Errorf("save product %s: %w", p.ID, err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
	}
	return results.Close()
}
