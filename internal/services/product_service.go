package services

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"store-service/internal/domain"
	"store-service/internal/repository"
)

type ProductService struct {
	repo        repository.ProductRepository
	redisClient *redis.Client
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

type CreateProductInput struct {
	Name  string
	Unit  string
	Price decimal.Decimal
}

type UpdateProductInput struct {
	Name  *string
	Unit  *string
	Price *decimal.Decimal
}

func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	p := &domain.Product{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Unit:  in.Unit,
		Price: in.Price,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (s *ProductService) FindAll(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) FindOne(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error) {
	p, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Unit != nil {
		p.Unit = *in.Unit
	}
	if in.Price != nil {
		p.Price = *in.Price
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.invalidate(ctx, id)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id string) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, productCacheKey(id), snapshotCacheKey)
	}
}
