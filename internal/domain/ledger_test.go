package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLedgerSignConventions(t *testing.T) {
	in := StockIn("p1", 10)
	assert.Equal(t, 10, in.Quantity)
	assert.Equal(t, LedgerStockIn, in.Type)
	assert.Nil(t, in.OrderID)

	adj := Adjustment("p1", -4)
	assert.Equal(t, -4, adj.Quantity)
	assert.Equal(t, LedgerAdjustment, adj.Type)

	res := Reserve("p1", 3, "o1")
	assert.Equal(t, -3, res.Quantity)
	assert.Equal(t, LedgerReserve, res.Type)
	if assert.NotNil(t, res.OrderID) {
		assert.Equal(t, "o1", *res.OrderID)
	}

	rel := Release("p1", 3, "o1")
	assert.Equal(t, 3, rel.Quantity)
	assert.Equal(t, LedgerRelease, rel.Type)

	sale := SaleOf("p1", 3, "o1")
	assert.Equal(t, -3, sale.Quantity)
	assert.Equal(t, LedgerSale, sale.Type)
}

func TestSumQuantities_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0, SumQuantities(nil))
	assert.Equal(t, 0, SumQuantities([]LedgerEntry{}))
}

func TestSumQuantities_ReserveThenReleaseIsNeutral(t *testing.T) {
	entries := []LedgerEntry{
		StockIn("p1", 10),
		Reserve("p1", 4, "o1"),
		Release("p1", 4, "o1"),
	}
	assert.Equal(t, 10, SumQuantities(entries))
}

func TestSumQuantities_CompletionNetsToSale(t *testing.T) {
	// Create then complete: reserve, release, sale. Net effect is one
	// sale's worth of stock gone.
	entries := []LedgerEntry{
		StockIn("p1", 10),
		Reserve("p1", 4, "o1"),
		Release("p1", 4, "o1"),
		SaleOf("p1", 4, "o1"),
	}
	assert.Equal(t, 6, SumQuantities(entries))
}

func TestSumQuantities_MayGoNegative(t *testing.T) {
	entries := []LedgerEntry{
		StockIn("p1", 2),
		Reserve("p1", 5, "o1"),
	}
	assert.Equal(t, -3, SumQuantities(entries))
}

func TestOrderStatus(t *testing.T) {
	assert.True(t, StatusDraft.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, OrderStatus("SHIPPED").Valid())

	assert.False(t, StatusDraft.Terminal())
	assert.False(t, StatusReady.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestItemsTotal(t *testing.T) {
	items := []OrderItem{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("10.50")},
		{Quantity: 3, UnitPrice: decimal.RequireFromString("4.00")},
	}
	assert.True(t, ItemsTotal(items).Equal(decimal.RequireFromString("33.00")))
	assert.True(t, ItemsTotal(nil).Equal(decimal.Zero))
}
