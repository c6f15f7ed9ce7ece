package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"store-service/internal/domain"
)

type OrderFilter struct {
	Status *domain.OrderStatus
	// Day restricts results to orders created within that calendar day.
	Day *time.Time
}

// OrderRepository persists orders together with the ledger entries their
// transitions produce. Every method that takes entries must write the
// order rows and the entries in one transaction; a half-applied
// transition would desynchronize stock from the order book.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order, entries []domain.LedgerEntry) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindAll(ctx context.Context, f OrderFilter) ([]domain.Order, error)
	ReplaceItems(ctx context.Context, orderID string, items []domain.OrderItem, total decimal.Decimal, entries []domain.LedgerEntry) error
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	UpdateDeliveryFee(ctx context.Context, orderID string, fee decimal.Decimal) error
	Complete(ctx context.Context, orderID string, entries []domain.LedgerEntry, sale *domain.Sale) error
	Cancel(ctx context.Context, orderID string, entries []domain.LedgerEntry) error
}
