package repository

import (
	"context"

	"store-service/internal/domain"
)

// LedgerRepository is append-only by contract: there is no update or
// delete. Stock is always derived by summation.
type LedgerRepository interface {
	Append(ctx context.Context, entries ...domain.LedgerEntry) error
	SumByProduct(ctx context.Context, productID string) (int, error)
	FindByProduct(ctx context.Context, productID string) ([]domain.LedgerEntry, error)
}
