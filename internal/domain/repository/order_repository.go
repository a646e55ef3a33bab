// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"rotulos/internal/domain/entity"
	"rotulos/internal/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderUpdate carries the editable fields of a partial order update.
// Nil pointers leave the stored value untouched.
type OrderUpdate struct {
	Name       *string
	NationalID *string
	Phone      *string
	Address    *string
	CityRegion *string
	Product    *string
	Quantity   *int
	Notes      *string
	Price      *int64
	Selected   *bool
}

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// UpsertOrders persists a batch of parsed orders keyed by their derived ID.
	// Re-ingesting the same export is a no-op for already stored orders.
	UpsertOrders(ctx context.Context, orders []*entity.Order) error

	// FindOrderByID retrieves a single order by its derived key.
	FindOrderByID(ctx context.Context, id string) (*entity.Order, error)

	// FindOrdersByDate retrieves all orders for a calendar date, insertion order preserved.
	FindOrdersByDate(ctx context.Context, date string) ([]*entity.Order, error)

	// FindOrdersByIDs retrieves orders for the given keys, in the order the keys were given.
	FindOrdersByIDs(ctx context.Context, ids []string) ([]*entity.Order, error)

	// UpdateOrder applies a partial update to a stored order.
	UpdateOrder(ctx context.Context, id string, update *OrderUpdate) (*entity.Order, error)

	// DeleteOrder removes an order (soft delete).
	DeleteOrder(ctx context.Context, id string) error
}
