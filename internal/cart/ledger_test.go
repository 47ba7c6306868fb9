package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcart/internal/domain"
)

func product(id, name, price string, quantity int) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Quantity: quantity,
	}
}

func TestLedgerAddAccumulates(t *testing.T) {
	l := NewLedger()
	a := product("p1", "Tea", "4.50", 10)

	l.AddProduct(a)
	l.AddProduct(a)
	l.AddProduct(a)

	assert.Equal(t, 3, l.Quantity("p1"))
	assert.Equal(t, 1, l.Len())
}

func TestLedgerRemoveDecrementsAndDropsAtZero(t *testing.T) {
	l := NewLedger()
	a := product("p1", "Tea", "4.50", 10)
	l.AddProduct(a)
	l.AddProduct(a)

	l.RemoveProduct("p1")
	assert.Equal(t, 1, l.Quantity("p1"))

	l.RemoveProduct("p1")
	assert.Equal(t, 0, l.Quantity("p1"))
	assert.Equal(t, 0, l.Len(), "line at quantity zero must be absent, not stored")
}

func TestLedgerRemoveAbsentIsNoop(t *testing.T) {
	l := NewLedger()
	l.RemoveProduct("missing")
	assert.Equal(t, 0, l.Len())

	// add then remove on a fresh ledger leaves it empty
	l.AddProduct(product("p1", "Tea", "4.50", 10))
	l.RemoveProduct("p1")
	assert.Equal(t, 0, l.Len())
}

func TestLedgerQuantityIsAddsMinusRemoves(t *testing.T) {
	l := NewLedger()
	p := product("p1", "Tea", "1.00", 99)

	for i := 0; i < 5; i++ {
		l.AddProduct(p)
	}
	for i := 0; i < 3; i++ {
		l.RemoveProduct("p1")
	}
	assert.Equal(t, 2, l.Quantity("p1"))

	// removes past zero clip at zero
	for i := 0; i < 10; i++ {
		l.RemoveProduct("p1")
	}
	assert.Equal(t, 0, l.Quantity("p1"))
	assert.Equal(t, 0, l.Len())
}

func TestLedgerTotal(t *testing.T) {
	l := NewLedger()
	assert.True(t, l.Total().Equal(decimal.Zero), "empty ledger total must be exactly zero")

	tea := product("p1", "Tea", "4.50", 10)
	mug := product("p2", "Mug", "12.99", 3)
	l.AddProduct(tea)
	l.AddProduct(tea)
	l.AddProduct(mug)

	// 2*4.50 + 1*12.99, exact decimal arithmetic
	assert.True(t, l.Total().Equal(decimal.RequireFromString("21.99")), "got %s", l.Total())
}

func TestLedgerTotalExactDecimal(t *testing.T) {
	// 0.10 added ten times is exactly 1.00, the classic float trap
	l := NewLedger()
	p := product("p1", "Sticker", "0.10", 100)
	for i := 0; i < 10; i++ {
		l.AddProduct(p)
	}
	assert.True(t, l.Total().Equal(decimal.RequireFromString("1.00")))
}

func TestLedgerLinesSnapshotIsDetached(t *testing.T) {
	l := NewLedger()
	l.AddProduct(product("p1", "Tea", "4.50", 10))

	lines := l.Lines()
	require.Len(t, lines, 1)
	lines[0].Quantity = 42

	assert.Equal(t, 1, l.Quantity("p1"), "mutating the snapshot must not touch the ledger")
}

func TestLedgerLinesSortedByName(t *testing.T) {
	l := NewLedger()
	l.AddProduct(product("p2", "Mug", "12.99", 3))
	l.AddProduct(product("p1", "Tea", "4.50", 10))

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Mug", lines[0].Product.Name)
	assert.Equal(t, "Tea", lines[1].Product.Name)
}

func TestLedgerAddRefreshesProductCopy(t *testing.T) {
	l := NewLedger()
	l.AddProduct(product("p1", "Tea", "4.50", 10))
	l.AddProduct(product("p1", "Tea", "5.00", 10))

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines[0].Product.Price.Equal(decimal.RequireFromString("5.00")))
}

func TestLedgerClear(t *testing.T) {
	l := NewLedger()
	l.AddProduct(product("p1", "Tea", "4.50", 10))
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Total().Equal(decimal.Zero))
}

func TestLedgerAddWithoutIDPanics(t *testing.T) {
	l := NewLedger()
	assert.Panics(t, func() {
		l.AddProduct(domain.Product{Name: "no id"})
	})
}
