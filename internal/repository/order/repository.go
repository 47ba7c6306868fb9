package order

import (
	"context"

	"shopcart/internal/domain"
)

// Repository is the append-only order store.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
