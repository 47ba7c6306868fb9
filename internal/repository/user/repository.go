package user

import (
	"context"

	"shopcart/internal/domain"
)

type CreateUserInput struct {
	Email        string
	Username     string
	Name         string
	LastName     string
	PasswordHash string
}

type Repository interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
