package repository

import (
	"context"

	"rotulos/internal/domain/repository"
)

// FakeTransactionManager runs the transactional function directly against
// the supplied factory, or short-circuits with Err when set.
type FakeTransactionManager struct {
	Factory repository.RepositoryFactory
	Err     error
}

func (f *FakeTransactionManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if f.Err != nil {
		return f.Err
	}

	return fn(f.Factory)
}

// FakeRepositoryFactory hands out fixed repository instances.
type FakeRepositoryFactory struct {
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
}

func (f *FakeRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return f.OrderRepo
}

func (f *FakeRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.UserRepo
}
