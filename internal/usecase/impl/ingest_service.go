// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"

	"rotulos/internal/domain/entity"
	"rotulos/internal/domain/repository"
	"rotulos/internal/domain/service"
	"rotulos/internal/parser"
	"rotulos/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ingestService struct {
	txManager repository.TransactionManager
	catalog   service.PriceCatalog
	archive   service.ExportArchive
	logger    *slog.Logger
}

// IngestServiceParams holds dependencies for IngestService, injected by Fx.
type IngestServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Catalog   service.PriceCatalog
	Archive   service.ExportArchive
	Logger    *slog.Logger
}

// NewIngestService creates a new ingest service instance
func NewIngestService(params IngestServiceParams) usecase.IngestUsecase {
	return &ingestService{
		txManager: params.TxManager,
		catalog:   params.Catalog,
		archive:   params.Archive,
		logger:    params.Logger,
	}
}

// PreviewExport parses and enriches an export without touching storage.
func (s *ingestService) PreviewExport(_ context.Context, content []byte) ([]*entity.Order, error) {
	orders := parser.Parse(string(content))

	return s.catalog.Enrich(orders), nil
}

// IngestExport parses the export, enriches prices, and upserts the resulting
// orders in one transaction. The raw file is archived best-effort afterwards.
func (s *ingestService) IngestExport(ctx context.Context, filename string, content []byte) ([]*entity.Order, error) {
	orders := parser.Parse(string(content))
	orders = s.catalog.Enrich(orders)

	// New orders start selected: the common flow prints every parsed label.
	for _, order := range orders {
		order.Selected = true
	}

	if len(orders) > 0 {
		err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.NewOrderRepository().UpsertOrders(ctx, orders)
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to persist ingested orders")
		}
	}

	if key, err := s.archive.Store(ctx, filename, content); err != nil {
		// Parsing already succeeded; a lost audit copy is not worth failing the upload.
		s.logger.Warn("export archival failed",
			slog.String("filename", filename),
			slog.Any("error", err),
		)
	} else if key != "" {
		s.logger.Info("export archived",
			slog.String("key", key),
			slog.Int("orders", len(orders)),
		)
	}

	return orders, nil
}
