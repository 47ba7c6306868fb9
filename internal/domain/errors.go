package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a concurrent transaction invalidated this one.
	// Callers may retry the whole operation against fresh state.
	ErrConflict = errors.New("concurrent modification conflict")
)

// InsufficientStockError aborts a checkout whose requested quantity exceeds
// the authoritative on-hand stock for a product.
type InsufficientStockError struct {
	ProductID string
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s (%s): requested %d, available %d",
		e.ProductID, e.Name, e.Requested, e.Available)
}
