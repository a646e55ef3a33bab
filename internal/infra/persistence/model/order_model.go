// Package model holds the GORM-specific structs mapping entities to tables.
package model

import (
	"time"

	"gorm.io/gorm"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// The primary key is the parser's derived deduplication key, so bulk
// re-ingestion upserts instead of duplicating rows.
type OrderModel struct {
	ID         string `gorm:"primaryKey;size:512"`
	Date       string `gorm:"size:10;not null;index"`
	Name       string `gorm:"not null"`
	NationalID string `gorm:"column:national_id"`
	Phone      string `gorm:"not null"`
	Address    string `gorm:"not null"`
	CityRegion string `gorm:"not null"`
	Product    string `gorm:"not null"`
	Quantity   int
	Notes      string
	Price      *int64
	Selected   bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
