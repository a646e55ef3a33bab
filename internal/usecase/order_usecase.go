package usecase

import (
	"context"

	"rotulos/internal/domain/entity"
	"rotulos/internal/domain/repository"
	"rotulos/internal/domain/service"
)

// OrderUsecase defines the interface for order management use cases.
type OrderUsecase interface {
	// ListOrdersByDate retrieves the stored orders for a calendar date.
	ListOrdersByDate(ctx context.Context, date string) ([]*entity.Order, error)

	// GetOrder retrieves a single stored order.
	GetOrder(ctx context.Context, id string) (*entity.Order, error)

	// UpdateOrder applies a partial edit to a stored order.
	UpdateOrder(ctx context.Context, id string, update *repository.OrderUpdate) (*entity.Order, error)

	// SetSelected marks or unmarks an order for label printing.
	SetSelected(ctx context.Context, id string, selected bool) (*entity.Order, error)

	// DeleteOrder removes an order.
	DeleteOrder(ctx context.Context, id string) error

	// PriceSuggestions returns catalog entries matching a product text.
	PriceSuggestions(product string) []service.PriceSuggestion
}
