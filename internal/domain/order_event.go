package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderEvent struct {
	OrderID    string          `json:"orderId"`
	Status     OrderStatus     `json:"status"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	OccurredAt time.Time       `json:"occurredAt"`
}
