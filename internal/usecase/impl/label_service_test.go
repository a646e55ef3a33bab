package impl

import (
	"context"
	"testing"

	"rotulos/internal/domain/entity"
	domainerrors "rotulos/internal/domain/errors"
	mockrepo "rotulos/internal/mocks/repository"
	mocksvc "rotulos/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLabelService_BuildSheet(t *testing.T) {
	orderRepo := new(mockrepo.MockOrderRepository)
	orders := []*entity.Order{{ID: "a"}, {ID: "b"}}
	orderRepo.On("FindOrdersByIDs", mock.Anything, []string{"a", "b"}).Return(orders, nil)

	renderer := new(mocksvc.MockLabelRenderer)
	renderer.On("RenderLabels", orders).Return([]byte("%PDF-1.3"), nil)

	svc := &labelService{orderRepo: orderRepo, renderer: renderer}

	sheet, err := svc.BuildSheet(context.Background(), []string{"a", "b"})

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), sheet)
}

func TestLabelService_BuildSheet_NoIDs(t *testing.T) {
	svc := &labelService{}

	sheet, err := svc.BuildSheet(context.Background(), nil)

	assert.Nil(t, sheet)
	assert.ErrorIs(t, err, domainerrors.ErrNoOrdersSelected)
}

func TestLabelService_BuildSheet_NoneFound(t *testing.T) {
	orderRepo := new(mockrepo.MockOrderRepository)
	orderRepo.On("FindOrdersByIDs", mock.Anything, mock.Anything).Return([]*entity.Order{}, nil)

	svc := &labelService{orderRepo: orderRepo}

	_, err := svc.BuildSheet(context.Background(), []string{"ghost"})

	assert.ErrorIs(t, err, domainerrors.ErrNoOrdersSelected)
}

func TestLabelService_BuildSheet_RenderFailure(t *testing.T) {
	orderRepo := new(mockrepo.MockOrderRepository)
	orderRepo.On("FindOrdersByIDs", mock.Anything, mock.Anything).Return([]*entity.Order{{ID: "a"}}, nil)

	renderer := new(mocksvc.MockLabelRenderer)
	renderer.On("RenderLabels", mock.Anything).Return(nil, assert.AnError)

	svc := &labelService{orderRepo: orderRepo, renderer: renderer}

	_, err := svc.BuildSheet(context.Background(), []string{"a"})

	assert.ErrorIs(t, err, domainerrors.ErrLabelRenderFailed)
}

func TestLabelService_BuildSheetForDate_FiltersSelection(t *testing.T) {
	orderRepo := new(mockrepo.MockOrderRepository)
	orders := []*entity.Order{
		{ID: "a", Selected: true},
		{ID: "b", Selected: false},
		{ID: "c", Selected: true},
	}
	orderRepo.On("FindOrdersByDate", mock.Anything, "2025-10-21").Return(orders, nil)

	renderer := new(mocksvc.MockLabelRenderer)
	renderer.On("RenderLabels", mock.MatchedBy(func(got []*entity.Order) bool {
		return len(got) == 2 && got[0].ID == "a" && got[1].ID == "c"
	})).Return([]byte("%PDF-1.3"), nil)

	svc := &labelService{orderRepo: orderRepo, renderer: renderer}

	sheet, err := svc.BuildSheetForDate(context.Background(), "2025-10-21")

	require.NoError(t, err)
	assert.NotEmpty(t, sheet)
}

func TestLabelService_BuildSheetForDate_NothingSelected(t *testing.T) {
	orderRepo := new(mockrepo.MockOrderRepository)
	orderRepo.On("FindOrdersByDate", mock.Anything, mock.Anything).Return([]*entity.Order{
		{ID: "a", Selected: false},
	}, nil)

	svc := &labelService{orderRepo: orderRepo}

	_, err := svc.BuildSheetForDate(context.Background(), "2025-10-21")

	assert.ErrorIs(t, err, domainerrors.ErrNoOrdersSelected)
}
