package service

import "rotulos/internal/domain/entity"

// LabelRenderer defines the interface for rendering a printable label sheet.
type LabelRenderer interface {
	// RenderLabels lays the given orders out on a grid-paged PDF,
	// one order per cell, preserving input order. Returns the PDF bytes.
	RenderLabels(orders []*entity.Order) ([]byte, error)
}
