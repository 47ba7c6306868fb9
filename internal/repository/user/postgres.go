package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopcart/internal/domain"
)

const uniqueViolation = "23505"

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	const q = `
INSERT INTO users (email, username, name, last_name, password_hash, active)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, TRUE)
RETURNING id::text, created_at
`
	u := domain.User{
		Email:        in.Email,
		Username:     in.Username,
		Name:         in.Name,
		LastName:     in.LastName,
		PasswordHash: in.PasswordHash,
		Active:       true,
	}
	err := r.pool.QueryRow(ctx, q, in.Email, in.Username, in.Name, in.LastName, in.PasswordHash).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			// a concurrent registration won the race on email or username
			return nil, fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
		}
		r.logger.Printf("user repo: create username=%s error=%v", in.Username, err)
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
SELECT id::text, email, username, COALESCE(name, ''), COALESCE(last_name, ''), password_hash, active, created_at
FROM users
WHERE email = $1
`
	return r.getOne(ctx, q, email)
}

func (r *postgresRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `
SELECT id::text, email, username, COALESCE(name, ''), COALESCE(last_name, ''), password_hash, active, created_at
FROM users
WHERE username = $1
`
	return r.getOne(ctx, q, username)
}

func (r *postgresRepo) getOne(ctx context.Context, q string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, q, arg).
		Scan(&u.ID, &u.Email, &u.Username, &u.Name, &u.LastName, &u.PasswordHash, &u.Active, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("user repo: get error=%v", err)
		return nil, err
	}
	return &u, nil
}
