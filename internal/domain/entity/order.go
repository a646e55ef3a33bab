// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Fallback values substituted for fields the parser could not recover.
// Records stay printable downstream instead of being rejected.
const (
	PlaceholderPhone      = "0000000000"
	PlaceholderAddress    = "SIN DIRECCIÓN"
	PlaceholderCityRegion = "SIN CIUDAD"
	PlaceholderProduct    = "SIN PRODUCTO"
)

// Order is one shippable order recovered from a chat message.
// It is constructed only by the parser and treated as an immutable value;
// corrections happen through partial updates in the persistence layer.
type Order struct {
	ID         string    `json:"id"`                    // Derived key: date|name|phone|product. Stable across re-ingestion.
	Date       string    `json:"date"`                  // Calendar date YYYY-MM-DD from the message header, export-local time.
	Name       string    `json:"name"`                  // Recipient name, required.
	NationalID string    `json:"national_id,omitempty"` // Digits-only cédula, present only when the identity line was not a phone.
	Phone      string    `json:"phone"`                 // Digits-only phone, placeholder when absent.
	Address    string    `json:"address"`               // Delivery address line.
	CityRegion string    `json:"city_region"`           // "Ciudad, Departamento" line.
	Product    string    `json:"product"`               // Full product line, quantity token included.
	Quantity   int       `json:"quantity,omitempty"`    // Digits found in the product line, 0 when none.
	Notes      string    `json:"notes,omitempty"`       // Remaining paragraphs joined with a space.
	Price      *int64    `json:"price,omitempty"`       // Unit price in COP, assigned by catalog enrichment.
	Selected   bool      `json:"selected"`              // Marked for label printing.
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Key derives the stable deduplication key for an order.
func Key(date, name, phone, product string) string {
	return strings.Join([]string{date, name, phone, product}, "|")
}
