// Package service provides hand-rolled testify mocks for the domain service interfaces.
package service

import (
	"context"
	"time"

	"rotulos/internal/domain/entity"
	"rotulos/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPriceCatalog is a mock implementation of service.PriceCatalog.
type MockPriceCatalog struct {
	mock.Mock
}

func (m *MockPriceCatalog) Enrich(orders []*entity.Order) []*entity.Order {
	args := m.Called(orders)
	if rf, ok := args.Get(0).(func([]*entity.Order) []*entity.Order); ok {
		return rf(orders)
	}
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).([]*entity.Order)
}

func (m *MockPriceCatalog) Suggestions(product string) []service.PriceSuggestion {
	args := m.Called(product)
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).([]service.PriceSuggestion)
}

// MockLabelRenderer is a mock implementation of service.LabelRenderer.
type MockLabelRenderer struct {
	mock.Mock
}

func (m *MockLabelRenderer) RenderLabels(orders []*entity.Order) ([]byte, error) {
	args := m.Called(orders)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// MockExportArchive is a mock implementation of service.ExportArchive.
type MockExportArchive struct {
	mock.Mock
}

func (m *MockExportArchive) Store(ctx context.Context, name string, content []byte) (string, error) {
	args := m.Called(ctx, name, content)

	return args.String(0), args.Error(1)
}

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID) (string, string, error) {
	args := m.Called(userID)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	args := m.Called(tokenString, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// MockQRCodeService is a mock implementation of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

func (m *MockQRCodeService) GenerateOrderQR(orderID string) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
