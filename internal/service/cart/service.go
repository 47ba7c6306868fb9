// Package cart implements the caller-facing cart API and the checkout
// orchestrator that turns a session ledger into a persisted order.
package cart

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartledger "shopcart/internal/cart"
	"shopcart/internal/domain"
	checkoutrepo "shopcart/internal/repository/checkout"
)

// ErrEmptyCart rejects a checkout of a session with no cart lines.
var ErrEmptyCart = errors.New("cart is empty")

type stockReader interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type unitOfWork interface {
	Do(ctx context.Context, fn func(checkoutrepo.Stores) error) error
}

type Service struct {
	ledgers *cartledger.Store
	stock   stockReader
	uow     unitOfWork
	now     func() time.Time
}

func New(ledgers *cartledger.Store, stock stockReader, uow checkoutrepo.UnitOfWork) *Service {
	return &Service{
		ledgers: ledgers,
		stock:   stock,
		uow:     uow,
		now:     time.Now,
	}
}

// AddProduct puts one unit of the product into the session's ledger. The
// product is read from the stock store so the cart shows current name and
// price, but its stock level is deliberately not checked here; checkout
// validates against fresh stock.
func (s *Service) AddProduct(ctx context.Context, sessionID, productID string) (*domain.Product, error) {
	p, err := s.stock.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	s.ledgers.Get(sessionID).AddProduct(*p)
	return p, nil
}

// RemoveProduct takes one unit of the product out of the session's ledger.
// Removing a product that is not in the cart is a no-op.
func (s *Service) RemoveProduct(sessionID, productID string) {
	s.ledgers.Get(sessionID).RemoveProduct(productID)
}

// ProductsInCart returns a read-only snapshot of the session's cart lines.
func (s *Service) ProductsInCart(sessionID string) []domain.CartLine {
	return s.ledgers.Get(sessionID).Lines()
}

// Total is the exact decimal sum over the session's cart lines.
func (s *Service) Total(sessionID string) decimal.Decimal {
	return s.ledgers.Get(sessionID).Total()
}

// Checkout converts the session's ledger into a persisted order.
//
// Every line is re-read from the authoritative stock store under a row lock,
// so validation always sees current stock rather than the possibly stale
// copies taken at add time. If any line fails validation the transaction
// rolls back and the ledger is left untouched; on success the order, its
// sold lines, and the stock decrements commit together and the ledger is
// cleared afterwards.
func (s *Service) Checkout(ctx context.Context, sessionID string, user domain.User) (*domain.Order, error) {
	ledger := s.ledgers.Get(sessionID)
	lines := ledger.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	// Lock rows in a stable order so two checkouts over the same products
	// cannot deadlock each other.
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Product.ID < lines[j].Product.ID
	})

	order := &domain.Order{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: s.now(),
	}

	err := s.uow.Do(ctx, func(st checkoutrepo.Stores) error {
		payment := decimal.Zero
		updated := make([]domain.Product, 0, len(lines))
		order.Items = order.Items[:0]

		for _, line := range lines {
			p, err := st.Stock.GetForUpdate(ctx, line.Product.ID)
			if err != nil {
				return err
			}
			if p.Quantity < line.Quantity {
				return &domain.InsufficientStockError{
					ProductID: p.ID,
					Name:      p.Name,
					Requested: line.Quantity,
					Available: p.Quantity,
				}
			}
			p.Quantity -= line.Quantity
			updated = append(updated, *p)
			payment = payment.Add(p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			order.Items = append(order.Items, domain.Sold{
				ID:        uuid.NewString(),
				OrderID:   order.ID,
				ProductID: p.ID,
				Quantity:  line.Quantity,
				UnitPrice: p.Price,
			})
		}
		order.Payment = payment

		if err := st.Orders.Save(ctx, order); err != nil {
			return err
		}
		return st.Stock.SaveAll(ctx, updated)
	})
	if err != nil {
		return nil, err
	}

	ledger.Clear()
	return order, nil
}
