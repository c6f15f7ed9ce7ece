package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusDraft     OrderStatus = "DRAFT"
	StatusPending   OrderStatus = "PENDING"
	StatusReady     OrderStatus = "READY"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status freezes the order: no edits,
// no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Order struct {
	ID          string          `json:"id" gorm:"primaryKey;size:36"`
	CustomerID  *string         `json:"customerId" gorm:"size:36;index"`
	Status      OrderStatus     `json:"status" gorm:"size:16;not null;index"`
	TotalPrice  decimal.Decimal `json:"totalPrice" gorm:"type:decimal(12,2);not null"`
	DeliveryFee decimal.Decimal `json:"deliveryFee" gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`

	Items    []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Customer *Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

// UnitPrice is the catalog price captured when the item was written;
// later catalog changes must not alter it.
type OrderItem struct {
	ID        string          `json:"id" gorm:"primaryKey;size:36"`
	OrderID   string          `json:"orderId" gorm:"size:36;index;not null"`
	ProductID string          `json:"productId" gorm:"size:36;not null"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unitPrice" gorm:"type:decimal(12,2);not null"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// ItemsTotal sums quantity x unitPrice over the items. The delivery fee
// is additive on top and never part of this total.
func ItemsTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
