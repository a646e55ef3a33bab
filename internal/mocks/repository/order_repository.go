// Package repository provides hand-rolled testify mocks for the repository interfaces.
package repository

import (
	"context"

	"rotulos/internal/domain/entity"
	"rotulos/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) UpsertOrders(ctx context.Context, orders []*entity.Order) error {
	args := m.Called(ctx, orders)

	return args.Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrdersByDate(ctx context.Context, date string) ([]*entity.Order, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrdersByIDs(ctx context.Context, ids []string) ([]*entity.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrder(ctx context.Context, id string, update *repository.OrderUpdate) (*entity.Order, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) DeleteOrder(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
