package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"rotulos/internal/domain/entity"
	"rotulos/internal/errors"
	mockrepo "rotulos/internal/mocks/repository"
	mocksvc "rotulos/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const miniExport = `[21/10/25, 8:41:55 a.m.] Jane Doe:
Jane Doe

3001234567

Calle 10 #5-20

Bogotá, Cundinamarca

2 PRODUCT-X
`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passthroughCatalog() *mocksvc.MockPriceCatalog {
	catalog := new(mocksvc.MockPriceCatalog)
	catalog.On("Enrich", mock.Anything).Return(func(orders []*entity.Order) []*entity.Order {
		return orders
	})

	return catalog
}

func newIngestService(
	orderRepo *mockrepo.MockOrderRepository,
	catalog *mocksvc.MockPriceCatalog,
	archive *mocksvc.MockExportArchive,
) *ingestService {
	txManager := &mockrepo.FakeTransactionManager{
		Factory: &mockrepo.FakeRepositoryFactory{OrderRepo: orderRepo},
	}

	return &ingestService{
		txManager: txManager,
		catalog:   catalog,
		archive:   archive,
		logger:    discardLogger(),
	}
}

func TestIngestService_PreviewExport(t *testing.T) {
	catalog := passthroughCatalog()
	svc := newIngestService(new(mockrepo.MockOrderRepository), catalog, new(mocksvc.MockExportArchive))

	orders, err := svc.PreviewExport(context.Background(), []byte(miniExport))

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Jane Doe", orders[0].Name)
	catalog.AssertCalled(t, "Enrich", mock.Anything)
}

func TestIngestService_IngestExport(t *testing.T) {
	orderRepo := new(mockrepo.MockOrderRepository)
	orderRepo.On("UpsertOrders", mock.Anything, mock.Anything).Return(nil)

	archive := new(mocksvc.MockExportArchive)
	archive.On("Store", mock.Anything, "chat.txt", mock.Anything).Return("2025-10-21/abc-chat.txt", nil)

	svc := newIngestService(orderRepo, passthroughCatalog(), archive)

	orders, err := svc.IngestExport(context.Background(), "chat.txt", []byte(miniExport))

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].Selected)
	orderRepo.AssertCalled(t, "UpsertOrders", mock.Anything, mock.Anything)
	archive.AssertCalled(t, "Store", mock.Anything, "chat.txt", mock.Anything)
}

func TestIngestService_IngestExport_EmptyExport(t *testing.T) {
	orderRepo := new(mockrepo.MockOrderRepository)

	archive := new(mocksvc.MockExportArchive)
	archive.On("Store", mock.Anything, mock.Anything, mock.Anything).Return("", nil)

	svc := newIngestService(orderRepo, passthroughCatalog(), archive)

	orders, err := svc.IngestExport(context.Background(), "empty.txt", []byte("no orders here"))

	require.NoError(t, err)
	assert.Empty(t, orders)
	orderRepo.AssertNotCalled(t, "UpsertOrders", mock.Anything, mock.Anything)
}

func TestIngestService_IngestExport_PersistFailure(t *testing.T) {
	orderRepo := new(mockrepo.MockOrderRepository)
	orderRepo.On("UpsertOrders", mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := newIngestService(orderRepo, passthroughCatalog(), new(mocksvc.MockExportArchive))

	orders, err := svc.IngestExport(context.Background(), "chat.txt", []byte(miniExport))

	require.Error(t, err)
	assert.Nil(t, orders)
}

func TestIngestService_IngestExport_ArchiveFailureIsNotFatal(t *testing.T) {
	orderRepo := new(mockrepo.MockOrderRepository)
	orderRepo.On("UpsertOrders", mock.Anything, mock.Anything).Return(nil)

	archive := new(mocksvc.MockExportArchive)
	archive.On("Store", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket unreachable"))

	svc := newIngestService(orderRepo, passthroughCatalog(), archive)

	orders, err := svc.IngestExport(context.Background(), "chat.txt", []byte(miniExport))

	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
