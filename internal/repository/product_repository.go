package repository

import (
	"context"

	"store-service/internal/domain"
)

// FindByID returns (nil, nil) when the product does not exist; the
// service layer turns that into its not-found error.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) (bool, error)
}
