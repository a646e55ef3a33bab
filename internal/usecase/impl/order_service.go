package impl

import (
	"context"

	"rotulos/internal/domain/entity"
	"rotulos/internal/domain/repository"
	"rotulos/internal/domain/service"
	"rotulos/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo repository.OrderRepository
	catalog   service.PriceCatalog
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Catalog   service.PriceCatalog
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		catalog:   params.Catalog,
	}
}

// ListOrdersByDate retrieves the stored orders for a calendar date.
func (s *orderService) ListOrdersByDate(ctx context.Context, date string) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindOrdersByDate(ctx, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by date")
	}

	return orders, nil
}

// GetOrder retrieves a single stored order.
func (s *orderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateOrder applies a partial edit to a stored order.
func (s *orderService) UpdateOrder(ctx context.Context, id string, update *repository.OrderUpdate) (*entity.Order, error) {
	order, err := s.orderRepo.UpdateOrder(ctx, id, update)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// SetSelected marks or unmarks an order for label printing.
func (s *orderService) SetSelected(ctx context.Context, id string, selected bool) (*entity.Order, error) {
	return s.orderRepo.UpdateOrder(ctx, id, &repository.OrderUpdate{Selected: &selected})
}

// DeleteOrder removes an order.
func (s *orderService) DeleteOrder(ctx context.Context, id string) error {
	return s.orderRepo.DeleteOrder(ctx, id)
}

// PriceSuggestions returns catalog entries matching a product text.
func (s *orderService) PriceSuggestions(product string) []service.PriceSuggestion {
	return s.catalog.Suggestions(product)
}
