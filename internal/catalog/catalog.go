// Package catalog implements the injected product price table used to
// auto-fill the optional price of parsed orders.
package catalog

import (
	"strings"
	"unicode"

	"rotulos/config"
	"rotulos/internal/domain/entity"
	"rotulos/internal/domain/service"
)

type entry struct {
	label      string
	normalized string
	price      int64
}

type priceCatalog struct {
	entries []entry
}

// New builds a PriceCatalog from configuration. An empty or missing catalog
// is valid: enrichment just leaves every price unset.
func New(cfg *config.Config) service.PriceCatalog {
	c := &priceCatalog{}
	if cfg.Catalog == nil {
		return c
	}

	c.entries = make([]entry, 0, len(cfg.Catalog.Prices))
	for label, price := range cfg.Catalog.Prices {
		c.entries = append(c.entries, entry{
			label:      label,
			normalized: NormalizeProductName(label),
			price:      price,
		})
	}

	return c
}

// Enrich fills the price of orders whose product line contains a catalog
// entry's normalized name. Prices already set are respected.
func (c *priceCatalog) Enrich(orders []*entity.Order) []*entity.Order {
	for _, order := range orders {
		if order.Price != nil {
			continue
		}

		name := NormalizeProductName(order.Product)
		for _, e := range c.entries {
			if e.normalized != "" && strings.Contains(name, e.normalized) {
				price := e.price
				order.Price = &price

				break
			}
		}
	}

	return orders
}

// Suggestions returns catalog entries whose name tokens all occur in the
// product text, for the edit screen's price picker.
func (c *priceCatalog) Suggestions(product string) []service.PriceSuggestion {
	name := NormalizeProductName(product)

	var suggestions []service.PriceSuggestion
	for _, e := range c.entries {
		if e.normalized == "" {
			continue
		}

		matches := true
		for _, token := range strings.Fields(e.normalized) {
			if !strings.Contains(name, token) {
				matches = false

				break
			}
		}
		if matches {
			suggestions = append(suggestions, service.PriceSuggestion{
				Label: e.label,
				Value: e.price,
			})
		}
	}

	return suggestions
}

// NormalizeProductName lowercases, folds diacritics, and collapses
// punctuation and runs of whitespace, so "Crema Facial Nx" and
// "CREMA-FACIAL  nx" compare equal.
func NormalizeProductName(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastSpace := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(foldDiacritic(r))
			lastSpace = false
		default:
			if !lastSpace && b.Len() > 0 {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}

	return strings.TrimSpace(b.String())
}

func foldDiacritic(r rune) rune {
	switch r {
	case 'á', 'à', 'ä', 'â':
		return 'a'
	case 'é', 'è', 'ë', 'ê':
		return 'e'
	case 'í', 'ì', 'ï', 'î':
		return 'i'
	case 'ó', 'ò', 'ö', 'ô':
		return 'o'
	case 'ú', 'ù', 'ü', 'û':
		return 'u'
	case 'ñ':
		return 'n'
	}

	return r
}
