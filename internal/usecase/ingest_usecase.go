// Package usecase defines the application service interfaces consumed by the delivery layer.
package usecase

import (
	"context"

	"rotulos/internal/domain/entity"
)

// IngestUsecase defines the interface for chat-export ingestion use cases.
type IngestUsecase interface {
	// PreviewExport parses an export and enriches prices without persisting,
	// for the review screen.
	PreviewExport(ctx context.Context, content []byte) ([]*entity.Order, error)

	// IngestExport parses an export, enriches prices, upserts the orders in
	// one transaction, and archives the raw file. Returns the parsed orders.
	IngestExport(ctx context.Context, filename string, content []byte) ([]*entity.Order, error)
}
