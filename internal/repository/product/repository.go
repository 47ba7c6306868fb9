package product

import (
	"context"

	"shopcart/internal/domain"
)

// Repository is the authoritative stock store for products.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]domain.Product, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}
