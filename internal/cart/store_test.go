package cart

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"shopcart/internal/domain"
)

func TestStoreIsolatesSessions(t *testing.T) {
	s := NewStore(time.Hour)

	s.Get("alice").AddProduct(domain.Product{ID: "p1", Name: "Tea", Price: decimal.New(450, -2)})

	assert.Equal(t, 1, s.Get("alice").Len())
	assert.Equal(t, 0, s.Get("bob").Len())
}

func TestStoreReturnsSameLedgerForSession(t *testing.T) {
	s := NewStore(time.Hour)
	assert.Same(t, s.Get("alice"), s.Get("alice"))
}

func TestStoreExpiresIdleSessions(t *testing.T) {
	s := NewStore(time.Minute)
	current := time.Unix(1000, 0)
	s.now = func() time.Time { return current }

	s.Get("alice").AddProduct(domain.Product{ID: "p1", Name: "Tea", Price: decimal.New(450, -2)})

	current = current.Add(30 * time.Second)
	assert.Equal(t, 1, s.Get("alice").Len(), "activity refreshes expiry")

	current = current.Add(2 * time.Minute)
	assert.Equal(t, 0, s.Get("alice").Len(), "expired session starts with an empty ledger")
}

func TestStoreDrop(t *testing.T) {
	s := NewStore(time.Hour)
	s.Get("alice").AddProduct(domain.Product{ID: "p1", Name: "Tea", Price: decimal.New(450, -2)})
	s.Drop("alice")
	assert.Equal(t, 0, s.Get("alice").Len())
}
