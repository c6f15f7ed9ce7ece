package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product price is a DECIMAL column, never a float, so minor-unit
// arithmetic stays exact.
type Product struct {
	ID        string          `json:"id" gorm:"primaryKey;size:36"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Unit      string          `json:"unit" gorm:"size:32;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}
