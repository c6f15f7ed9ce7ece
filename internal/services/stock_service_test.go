package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"store-service/internal/domain"
)

func newStockFixture(t *testing.T) (*StockService, *memState) {
	t.Helper()
	state := newMemState()
	_, products, ledger := state.repos()
	return NewStockService(products, ledger), state
}

func TestStockIn(t *testing.T) {
	svc, state := newStockFixture(t)
	ctx := context.Background()

	state.products["p1"] = testProduct("p1", "Coffee Beans", "10.00")

	assert.NoError(t, svc.StockIn(ctx, "p1", 10))
	assert.NoError(t, svc.StockIn(ctx, "p1", 5))

	current, err := svc.CurrentStock(ctx, "p1")
	assert.NoError(t, err)
	assert.Equal(t, 15, current)

	last := state.entries[len(state.entries)-1]
	assert.Equal(t, domain.LedgerStockIn, last.Type)
	assert.Equal(t, 5, last.Quantity)
	assert.Nil(t, last.OrderID)
}

func TestStockIn_UnknownProduct(t *testing.T) {
	svc, _ := newStockFixture(t)

	err := svc.StockIn(context.Background(), "missing", 10)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAdjust_EitherSign(t *testing.T) {
	svc, state := newStockFixture(t)
	ctx := context.Background()

	state.products["p1"] = testProduct("p1", "Coffee Beans", "10.00")

	assert.NoError(t, svc.StockIn(ctx, "p1", 10))
	assert.NoError(t, svc.Adjust(ctx, "p1", -3))
	assert.NoError(t, svc.Adjust(ctx, "p1", 1))

	current, err := svc.CurrentStock(ctx, "p1")
	assert.NoError(t, err)
	assert.Equal(t, 8, current)

	last := state.entries[len(state.entries)-1]
	assert.Equal(t, domain.LedgerAdjustment, last.Type)
}

func TestCurrentStock_NoHistoryIsZero(t *testing.T) {
	svc, state := newStockFixture(t)
	state.products["p1"] = testProduct("p1", "Coffee Beans", "10.00")

	current, err := svc.CurrentStock(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, 0, current)
}

func TestSnapshot(t *testing.T) {
	svc, state := newStockFixture(t)
	ctx := context.Background()

	state.products["p1"] = testProduct("p1", "Coffee Beans", "10.00")
	state.products["p2"] = testProduct("p2", "Filters", "2.00")

	assert.NoError(t, svc.StockIn(ctx, "p1", 7))
	assert.NoError(t, svc.Adjust(ctx, "p2", -3))

	snap, err := svc.Snapshot(ctx)
	assert.NoError(t, err)
	assert.Len(t, snap, 2)

	byID := make(map[string]domain.StockSnapshot, len(snap))
	for _, row := range snap {
		byID[row.ProductID] = row
	}

	assert.Equal(t, 7, byID["p1"].CurrentStock)
	assert.Empty(t, byID["p1"].Warnings)

	assert.Equal(t, -3, byID["p2"].CurrentStock)
	if assert.Len(t, byID["p2"].Warnings, 1) {
		assert.Contains(t, byID["p2"].Warnings[0], "-3")
	}
}

func TestEntriesByProduct(t *testing.T) {
	svc, state := newStockFixture(t)
	ctx := context.Background()

	state.products["p1"] = testProduct("p1", "Coffee Beans", "10.00")
	state.products["p2"] = testProduct("p2", "Filters", "2.00")

	assert.NoError(t, svc.StockIn(ctx, "p1", 7))
	assert.NoError(t, svc.StockIn(ctx, "p2", 2))
	assert.NoError(t, svc.Adjust(ctx, "p1", -1))

	entries, err := svc.EntriesByProduct(ctx, "p1")
	assert.NoError(t, err)
	if assert.Len(t, entries, 2) {
		assert.Equal(t, domain.LedgerStockIn, entries[0].Type)
		assert.Equal(t, domain.LedgerAdjustment, entries[1].Type)
	}
}
