package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"store-service/internal/domain"
	"store-service/internal/repository"
)

type CustomerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

type CreateCustomerInput struct {
	Name    string
	Contact *string
}

func (s *CustomerService) Create(ctx context.Context, in CreateCustomerInput) (*domain.Customer, error) {
	c := &domain.Customer{
		ID:      uuid.NewString(),
		Name:    in.Name,
		Contact: in.Contact,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

func (s *CustomerService) FindAll(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.FindAll(ctx)
}

func (s *CustomerService) FindOne(ctx context.Context, id string) (*domain.Customer, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, id)
	}
	return c, nil
}
