package catalog

import (
	"testing"

	"rotulos/config"
	"rotulos/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(prices map[string]int64) *priceCatalog {
	cfg := &config.Config{}
	cfg.Catalog = &config.CatalogConfig{Prices: prices}

	return New(cfg).(*priceCatalog)
}

func TestNormalizeProductName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Crema Facial Nx", "crema facial nx"},
		{"CREMA-FACIAL  nx", "crema facial nx"},
		{"Jabón Exfoliación", "jabon exfoliacion"},
		{"  2 × SERUM!!", "2 serum"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeProductName(tt.input))
	}
}

func TestEnrich_MatchesPartialName(t *testing.T) {
	c := newTestCatalog(map[string]int64{"Crema Facial": 45000})

	orders := []*entity.Order{
		{Product: "2 CREMA FACIAL Nx"},
		{Product: "SIN PRODUCTO"},
	}

	enriched := c.Enrich(orders)
	require.NotNil(t, enriched[0].Price)
	assert.Equal(t, int64(45000), *enriched[0].Price)
	assert.Nil(t, enriched[1].Price)
}

func TestEnrich_RespectsExistingPrice(t *testing.T) {
	c := newTestCatalog(map[string]int64{"Crema": 45000})

	manual := int64(39000)
	orders := []*entity.Order{{Product: "CREMA", Price: &manual}}

	enriched := c.Enrich(orders)
	assert.Equal(t, int64(39000), *enriched[0].Price)
}

func TestEnrich_EmptyCatalog(t *testing.T) {
	c := New(&config.Config{})

	orders := c.Enrich([]*entity.Order{{Product: "CREMA"}})
	assert.Nil(t, orders[0].Price)
}

func TestSuggestions(t *testing.T) {
	c := newTestCatalog(map[string]int64{
		"Crema Facial": 45000,
		"Crema Manos":  30000,
		"Serum":        60000,
	})

	suggestions := c.Suggestions("2 crema facial nx")
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Crema Facial", suggestions[0].Label)
	assert.Equal(t, int64(45000), suggestions[0].Value)

	assert.Empty(t, c.Suggestions("producto desconocido"))
}
