package impl

import (
	"context"

	domainerrors "rotulos/internal/domain/errors"
	"rotulos/internal/domain/repository"
	"rotulos/internal/domain/service"
	"rotulos/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type labelService struct {
	orderRepo repository.OrderRepository
	renderer  service.LabelRenderer
}

// LabelServiceParams holds dependencies for LabelService, injected by Fx.
type LabelServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Renderer  service.LabelRenderer
}

// NewLabelService creates a new label service instance
func NewLabelService(params LabelServiceParams) usecase.LabelUsecase {
	return &labelService{
		orderRepo: params.OrderRepo,
		renderer:  params.Renderer,
	}
}

// BuildSheet renders the label sheet PDF for the given order IDs.
func (s *labelService) BuildSheet(ctx context.Context, orderIDs []string) ([]byte, error) {
	if len(orderIDs) == 0 {
		return nil, domainerrors.ErrNoOrdersSelected
	}

	orders, err := s.orderRepo.FindOrdersByIDs(ctx, orderIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders for labels")
	}
	if len(orders) == 0 {
		return nil, domainerrors.ErrNoOrdersSelected
	}

	sheet, err := s.renderer.RenderLabels(orders)
	if err != nil {
		return nil, domainerrors.ErrLabelRenderFailed.WrapMessage(err.Error())
	}

	return sheet, nil
}

// BuildSheetForDate renders the label sheet PDF for the selected orders of a date.
func (s *labelService) BuildSheetForDate(ctx context.Context, date string) ([]byte, error) {
	orders, err := s.orderRepo.FindOrdersByDate(ctx, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders for labels")
	}

	selected := orders[:0:0]
	for _, order := range orders {
		if order.Selected {
			selected = append(selected, order)
		}
	}
	if len(selected) == 0 {
		return nil, domainerrors.ErrNoOrdersSelected
	}

	sheet, err := s.renderer.RenderLabels(selected)
	if err != nil {
		return nil, domainerrors.ErrLabelRenderFailed.WrapMessage(err.Error())
	}

	return sheet, nil
}
