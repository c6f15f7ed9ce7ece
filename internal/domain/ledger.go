package domain

import (
	"time"

	"github.com/google/uuid"
)

type LedgerType string

const (
	LedgerStockIn    LedgerType = "STOCK_IN"
	LedgerAdjustment LedgerType = "STOCK_ADJUSTMENT"
	LedgerReserve    LedgerType = "RESERVE"
	LedgerRelease    LedgerType = "RELEASE"
	LedgerSale       LedgerType = "SALE"
)

// LedgerEntry is one immutable stock movement. Entries are only ever
// appended; the current stock of a product is the signed sum of its
// entries, which may go below zero.
type LedgerEntry struct {
	ID        string     `json:"id" gorm:"primaryKey;size:36"`
	ProductID string     `json:"productId" gorm:"size:36;index;not null"`
	OrderID   *string    `json:"orderId" gorm:"size:36;index"`
	Quantity  int        `json:"quantity" gorm:"not null"`
	Type      LedgerType `json:"type" gorm:"size:20;not null"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
}

// StockIn records goods arriving. The quantity is stored as given.
func StockIn(productID string, quantity int) LedgerEntry {
	return newEntry(productID, nil, quantity, LedgerStockIn)
}

// Adjustment records a free-form correction; the quantity may carry
// either sign.
func Adjustment(productID string, quantity int) LedgerEntry {
	return newEntry(productID, nil, quantity, LedgerAdjustment)
}

// Reserve claims stock for an order. Always stored negative.
func Reserve(productID string, quantity int, orderID string) LedgerEntry {
	return newEntry(productID, &orderID, -quantity, LedgerReserve)
}

// Release undoes a reservation. Always stored positive.
func Release(productID string, quantity int, orderID string) LedgerEntry {
	return newEntry(productID, &orderID, quantity, LedgerRelease)
}

// SaleOf converts a reservation into a permanent deduction at order
// completion. Always stored negative.
func SaleOf(productID string, quantity int, orderID string) LedgerEntry {
	return newEntry(productID, &orderID, -quantity, LedgerSale)
}

func newEntry(productID string, orderID *string, quantity int, t LedgerType) LedgerEntry {
	return LedgerEntry{
		ID:        uuid.NewString(),
		ProductID: productID,
		OrderID:   orderID,
		Quantity:  quantity,
		Type:      t,
	}
}

// SumQuantities folds entries into a stock level; an empty history is 0.
func SumQuantities(entries []LedgerEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Quantity
	}
	return total
}

// StockSnapshot is the per-product view derived from the ledger.
type StockSnapshot struct {
	ProductID    string   `json:"productId"`
	ProductName  string   `json:"productName"`
	CurrentStock int      `json:"currentStock"`
	Warnings     []string `json:"warnings,omitempty"`
}
