// Package cart holds the per-session shopping cart ledger and the
// session-keyed store that owns ledger lifecycles.
package cart

import (
	"sort"

	"github.com/shopspring/decimal"

	"shopcart/internal/domain"
)

type line struct {
	product  domain.Product
	quantity int
}

// Ledger maps product identity to requested quantity for one session.
// It performs no I/O and no stock checks; stock is reconciled at checkout.
// A ledger is single-owner: it is only ever touched by the request handling
// its session, so it carries no locking of its own.
type Ledger struct {
	lines map[string]line
}

func NewLedger() *Ledger {
	return &Ledger{lines: make(map[string]line)}
}

// AddProduct increments the requested quantity for the product by one,
// inserting the line at quantity 1 if absent. The stored product copy is
// refreshed so the cart displays current name and price.
func (l *Ledger) AddProduct(p domain.Product) {
	if p.ID == "" {
		panic("cart: product without id")
	}
	ln := l.lines[p.ID]
	ln.product = p
	ln.quantity++
	l.lines[p.ID] = ln
}

// RemoveProduct decrements the requested quantity by one and drops the line
// entirely when it reaches zero. Removing an absent product is a no-op.
func (l *Ledger) RemoveProduct(productID string) {
	ln, ok := l.lines[productID]
	if !ok {
		return
	}
	if ln.quantity > 1 {
		ln.quantity--
		l.lines[productID] = ln
		return
	}
	delete(l.lines, productID)
}

// Lines returns a snapshot of the current ledger ordered by product name.
// Mutating the returned slice does not affect the ledger.
func (l *Ledger) Lines() []domain.CartLine {
	out := make([]domain.CartLine, 0, len(l.lines))
	for _, ln := range l.lines {
		out = append(out, domain.CartLine{Product: ln.product, Quantity: ln.quantity})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Product.Name != out[j].Product.Name {
			return out[i].Product.Name < out[j].Product.Name
		}
		return out[i].Product.ID < out[j].Product.ID
	})
	return out
}

// Quantity reports the requested quantity for a product, zero if absent.
func (l *Ledger) Quantity(productID string) int {
	return l.lines[productID].quantity
}

// Total is the exact sum of unit price times quantity over all lines.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, ln := range l.lines {
		total = total.Add(ln.product.Price.Mul(decimal.NewFromInt(int64(ln.quantity))))
	}
	return total
}

// Len is the number of distinct products in the ledger.
func (l *Ledger) Len() int {
	return len(l.lines)
}

// Clear empties the ledger. Called after a successful checkout.
func (l *Ledger) Clear() {
	l.lines = make(map[string]line)
}
