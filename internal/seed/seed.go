package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name        string
	Description string
	Price       string
	Quantity    int
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:        "Green Tea",
			Description: "Loose-leaf sencha, 100g tin",
			Price:       "4.50",
			Quantity:    25,
		},
		{
			Name:        "Stoneware Mug",
			Description: "350ml glazed stoneware mug",
			Price:       "12.99",
			Quantity:    10,
		},
		{
			Name:        "Ceramic Vase",
			Description: "Hand-thrown bud vase",
			Price:       "30.00",
			Quantity:    1,
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	if err := ensureUser(ctx, pool, "demo@example.com", "demouser", "Demo", "User", "demopass"); err != nil {
		return fmt.Errorf("ensure demo user: %w", err)
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, description, price, quantity)
VALUES ($1, $2, $3::numeric, $4)
ON CONFLICT (name) DO UPDATE SET
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    quantity = EXCLUDED.quantity
`
	_, err := pool.Exec(ctx, q, p.Name, p.Description, p.Price, p.Quantity)
	return err
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, email, username, name, lastName, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (email, username, name, last_name, password_hash, active)
VALUES ($1, $2, $3, $4, $5, TRUE)
ON CONFLICT (username) DO NOTHING
`
	_, err = pool.Exec(ctx, q, email, username, name, lastName, string(hashed))
	return err
}
