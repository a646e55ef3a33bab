package parser

import (
	"strings"
	"testing"

	"rotulos/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func body(paragraphs ...string) string {
	return strings.Join(paragraphs, "\n\n")
}

func TestExtract_FullRecord(t *testing.T) {
	order, ok := Extract(body(
		"Jane Doe",
		"3001234567",
		"Calle 10 #5-20",
		"Bogota, Cundinamarca",
		"2 PRODUCT-X",
		"Deliver after 5pm",
	), "2025-10-21")

	require.True(t, ok)
	assert.Equal(t, "Jane Doe", order.Name)
	assert.Equal(t, "3001234567", order.Phone)
	assert.Empty(t, order.NationalID)
	assert.Equal(t, "Calle 10 #5-20", order.Address)
	assert.Equal(t, "Bogota, Cundinamarca", order.CityRegion)
	assert.Equal(t, "2 PRODUCT-X", order.Product)
	assert.Equal(t, 2, order.Quantity)
	assert.Equal(t, "Deliver after 5pm", order.Notes)
	assert.Equal(t, "2025-10-21|Jane Doe|3001234567|2 PRODUCT-X", order.ID)
}

func TestExtract_TooFewParagraphs(t *testing.T) {
	_, ok := Extract(body("Jane Doe", "3001234567", "Calle 10 #5-20"), "2025-10-21")
	assert.False(t, ok)
}

func TestExtract_EmptyBody(t *testing.T) {
	_, ok := Extract("", "2025-10-21")
	assert.False(t, ok)
}

func TestExtract_NationalIDThenPhone(t *testing.T) {
	order, ok := Extract(body(
		"Pedro Perez",
		"c.c. 1.020.304.050",
		"+57 311 519 2748",
		"Carrera 7 #45-10",
		"Medellin, Antioquia",
		"CREMA Nx",
	), "2025-10-20")

	require.True(t, ok)
	assert.Equal(t, "1020304050", order.NationalID)
	assert.Equal(t, "3115192748", order.Phone)
	assert.Equal(t, "Carrera 7 #45-10", order.Address)
	assert.Equal(t, "Medellin, Antioquia", order.CityRegion)
	assert.Equal(t, "CREMA Nx", order.Product)
	assert.Zero(t, order.Quantity)
}

func TestExtract_NationalIDAndUnvalidatedPhoneKeepsDigits(t *testing.T) {
	// Both identity slots fail mobile validation: the second slot's digits
	// are kept as the phone, and field indexing continues at the next slot.
	order, ok := Extract(body(
		"Pedro Perez",
		"1.020.304.050",
		"601 555 1234",
		"Carrera 7 #45-10",
		"Medellin, Antioquia",
	), "2025-10-20")

	require.True(t, ok)
	assert.Equal(t, "1020304050", order.NationalID)
	assert.Equal(t, "6015551234", order.Phone)
	assert.Equal(t, "Carrera 7 #45-10", order.Address)
	assert.Equal(t, "Medellin, Antioquia", order.CityRegion)
	assert.Equal(t, entity.PlaceholderProduct, order.Product)
}

func TestExtract_Placeholders(t *testing.T) {
	// Name, phone, address, city only: the product degrades to its placeholder.
	order, ok := Extract(body(
		"Jane Doe",
		"3001234567",
		"Calle 10 #5-20",
		"Bogota, Cundinamarca",
	), "2025-10-21")

	require.True(t, ok)
	assert.Equal(t, entity.PlaceholderProduct, order.Product)
	assert.Zero(t, order.Quantity)
	assert.Empty(t, order.Notes)
}

func TestExtract_MissingPhoneGetsPlaceholder(t *testing.T) {
	order, ok := Extract(body(
		"Jane Doe",
		"c.c. sin número",
		"tampoco teléfono",
		"Calle 10 #5-20",
		"Bogota, Cundinamarca",
	), "2025-10-21")

	require.True(t, ok)
	assert.Equal(t, entity.PlaceholderPhone, order.Phone)
	assert.Equal(t, "Calle 10 #5-20", order.Address)
}

func TestExtract_NotesJoinRemainingParagraphs(t *testing.T) {
	order, ok := Extract(body(
		"Jane Doe",
		"3001234567",
		"Calle 10 #5-20",
		"Bogota, Cundinamarca",
		"1 CREMA",
		"entregar en portería",
		"llamar antes",
	), "2025-10-21")

	require.True(t, ok)
	assert.Equal(t, "entregar en portería llamar antes", order.Notes)
}

const sampleExport = `[21/10/25, 8:41:55 a.m.] Jane Doe:
Jane Doe

3001234567

Calle 10 #5-20

Bogota, Cundinamarca

2 PRODUCT-X

Deliver after 5pm
`

func TestParse_EndToEnd(t *testing.T) {
	orders := Parse(sampleExport)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, "2025-10-21", order.Date)
	assert.Equal(t, "Jane Doe", order.Name)
	assert.Equal(t, "3001234567", order.Phone)
	assert.Equal(t, "Calle 10 #5-20", order.Address)
	assert.Equal(t, "Bogota, Cundinamarca", order.CityRegion)
	assert.Equal(t, "2 PRODUCT-X", order.Product)
	assert.Equal(t, 2, order.Quantity)
	assert.Equal(t, "Deliver after 5pm", order.Notes)
}

func TestParse_IdempotentUnderConcatenation(t *testing.T) {
	once := Parse(sampleExport)
	twice := Parse(sampleExport + sampleExport)

	require.Len(t, once, 1)
	assert.Equal(t, once, twice)
}

func TestParse_NeverExceedsHeaderCount(t *testing.T) {
	raw := sampleExport + "[22/10/25, 9:00:00 a.m.] Luis: cuerpo sin campos\n"
	headers := strings.Count(raw, "a.m.]")

	assert.LessOrEqual(t, len(Parse(raw)), headers)
}

func TestParse_SkipsUnparseableBlocksSilently(t *testing.T) {
	raw := "basura inicial\n" + sampleExport +
		"[22/10/25, 9:00:00 a.m.] Luis: solo saludo\n"

	orders := Parse(raw)
	require.Len(t, orders, 1)
	assert.Equal(t, "Jane Doe", orders[0].Name)
}
