package service

import "rotulos/internal/domain/entity"

// PriceSuggestion is one catalog entry matching a product text.
type PriceSuggestion struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// PriceCatalog defines the interface for the injected product price table.
// It is an enrichment collaborator: extraction correctness never depends on it.
type PriceCatalog interface {
	// Enrich fills the Price of orders whose product matches a catalog entry.
	// Orders with a price already set are left untouched.
	Enrich(orders []*entity.Order) []*entity.Order

	// Suggestions returns catalog entries whose name tokens all occur in the product text.
	Suggestions(product string) []PriceSuggestion
}
