package checkout

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
	orderrepo "shopcart/internal/repository/order"
	productrepo "shopcart/internal/repository/product"
)

type pgxUnitOfWork struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPgx(pool *pgxpool.Pool, logger *log.Logger) UnitOfWork {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &pgxUnitOfWork{pool: pool, logger: logger}
}

func (u *pgxUnitOfWork) Do(ctx context.Context, fn func(Stores) error) error {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin checkout tx: %w", err)
	}
	defer tx.Rollback(ctx)

	stores := Stores{
		Stock:  productrepo.NewTxStore(tx),
		Orders: orderrepo.NewTxStore(tx),
	}
	if err := fn(stores); err != nil {
		return mapConflict(err)
	}
	if err := tx.Commit(ctx); err != nil {
		u.logger.Printf("checkout uow: commit error=%v", err)
		return mapConflict(fmt.Errorf("commit checkout tx: %w", err))
	}
	return nil
}

// serialization_failure and deadlock_detected: the database rejected this
// transaction because of a competing one. Retryable from validation.
var conflictCodes = map[string]bool{
	"40001": true,
	"40P01": true,
}

func mapConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && conflictCodes[pgErr.Code] {
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	return err
}
