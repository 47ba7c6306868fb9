package checkout

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcart/internal/db"
	"shopcart/internal/domain"
	"shopcart/internal/migrate"
)

// Runs against a real database only when TEST_DB_DSN is set.
func TestPgxUnitOfWork_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, migrate.Apply(ctx, pool))

	_, err = pool.Exec(ctx, `TRUNCATE sold_items, orders, users, products RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	var productID, userID string
	require.NoError(t, pool.QueryRow(ctx, `
INSERT INTO products (name, price, quantity) VALUES ('Tea', 10.00, 5) RETURNING id::text
`).Scan(&productID))
	require.NoError(t, pool.QueryRow(ctx, `
INSERT INTO users (email, username, password_hash) VALUES ('a@b.com', 'alice77', 'x') RETURNING id::text
`).Scan(&userID))

	uow := NewPgx(pool, nil)

	t.Run("commit makes order and decrement visible together", func(t *testing.T) {
		err := uow.Do(ctx, func(st Stores) error {
			p, err := st.Stock.GetForUpdate(ctx, productID)
			if err != nil {
				return err
			}
			p.Quantity -= 2
			order := &domain.Order{
				ID:        uuid.NewString(),
				UserID:    userID,
				Payment:   decimal.RequireFromString("20.00"),
				CreatedAt: time.Now().UTC(),
			}
			order.Items = []domain.Sold{{
				ID:        uuid.NewString(),
				OrderID:   order.ID,
				ProductID: productID,
				Quantity:  2,
				UnitPrice: p.Price,
			}}
			if err := st.Orders.Save(ctx, order); err != nil {
				return err
			}
			return st.Stock.SaveAll(ctx, []domain.Product{*p})
		})
		require.NoError(t, err)

		var quantity, orderCount int
		require.NoError(t, pool.QueryRow(ctx, `SELECT quantity FROM products WHERE id = $1`, productID).Scan(&quantity))
		require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&orderCount))
		assert.Equal(t, 3, quantity)
		assert.Equal(t, 1, orderCount)
	})

	t.Run("error rolls everything back", func(t *testing.T) {
		boom := errors.New("validation failed")
		err := uow.Do(ctx, func(st Stores) error {
			p, err := st.Stock.GetForUpdate(ctx, productID)
			if err != nil {
				return err
			}
			p.Quantity = 0
			if err := st.Stock.SaveAll(ctx, []domain.Product{*p}); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		var quantity int
		require.NoError(t, pool.QueryRow(ctx, `SELECT quantity FROM products WHERE id = $1`, productID).Scan(&quantity))
		assert.Equal(t, 3, quantity, "rolled-back write must not be visible")
	})

	t.Run("missing product surfaces not found", func(t *testing.T) {
		err := uow.Do(ctx, func(st Stores) error {
			_, err := st.Stock.GetForUpdate(ctx, uuid.NewString())
			return err
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
