package http

import (
	"github.com/shopspring/decimal"

	"store-service/internal/domain"
)

type OrderItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerID  *string            `json:"customerId"`
	DeliveryFee *decimal.Decimal   `json:"deliveryFee"`
	Items       []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderRequest struct {
	Items       []OrderItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	DeliveryFee *decimal.Decimal   `json:"deliveryFee"`
	Status      *string            `json:"status" binding:"omitempty,oneof=DRAFT PENDING READY COMPLETED CANCELLED"`
}

type CreateProductRequest struct {
	Name  string          `json:"name" binding:"required"`
	Unit  string          `json:"unit" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

type UpdateProductRequest struct {
	Name  *string          `json:"name"`
	Unit  *string          `json:"unit"`
	Price *decimal.Decimal `json:"price"`
}

type StockInRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type StockAdjustmentRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Contact *string `json:"contact"`
}

type VerifyPinRequest struct {
	Pin string `json:"pin" binding:"required"`
}

// orderResponse carries per-request stock warnings next to the order
// itself. Warnings are advisory and never fail the request.
type orderResponse struct {
	*domain.Order
	Warnings []string `json:"warnings,omitempty"`
}
