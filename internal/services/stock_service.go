package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"store-service/internal/domain"
	"store-service/internal/repository"
)

const (
	snapshotCacheKey = "stock:snapshot"
	snapshotCacheTTL = 30 * time.Second
)

// StockService exposes the ledger directly: goods in, corrections and
// derived stock views. It never rejects a movement for lack of stock.
type StockService struct {
	products    repository.ProductRepository
	ledger      repository.LedgerRepository
	redisClient *redis.Client
}

func NewStockService(products repository.ProductRepository, ledger repository.LedgerRepository) *StockService {
	return &StockService{products: products, ledger: ledger}
}

func (s *StockService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *StockService) StockIn(ctx context.Context, productID string, quantity int) error {
	if err := s.requireProduct(ctx, productID); err != nil {
		return err
	}
	if err := s.ledger.Append(ctx, domain.StockIn(productID, quantity)); err != nil {
		return fmt.Errorf("record stock in: %w", err)
	}
	s.invalidateSnapshot(ctx)
	return nil
}

func (s *StockService) Adjust(ctx context.Context, productID string, quantity int) error {
	if err := s.requireProduct(ctx, productID); err != nil {
		return err
	}
	if err := s.ledger.Append(ctx, domain.Adjustment(productID, quantity)); err != nil {
		return fmt.Errorf("record adjustment: %w", err)
	}
	s.invalidateSnapshot(ctx)
	return nil
}

func (s *StockService) requireProduct(ctx context.Context, productID string) error {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	return nil
}

func (s *StockService) CurrentStock(ctx context.Context, productID string) (int, error) {
	return s.ledger.SumByProduct(ctx, productID)
}

func (s *StockService) EntriesByProduct(ctx context.Context, productID string) ([]domain.LedgerEntry, error) {
	return s.ledger.FindByProduct(ctx, productID)
}

// Snapshot derives one row per catalog product. Negative stock is
// reported as a warning on the row, not an error.
func (s *StockService) Snapshot(ctx context.Context) ([]domain.StockSnapshot, error) {
	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, snapshotCacheKey).Result(); err == nil {
			var snap []domain.StockSnapshot
			if err := json.Unmarshal([]byte(cached), &snap); err == nil {
				return snap, nil
			}
		}
	}

	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	snap := make([]domain.StockSnapshot, 0, len(products))
	for _, p := range products {
		stock, err := s.ledger.SumByProduct(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("current stock of %s: %w", p.ID, err)
		}
		row := domain.StockSnapshot{
			ProductID:    p.ID,
			ProductName:  p.Name,
			CurrentStock: stock,
		}
		if stock < 0 {
			row.Warnings = append(row.Warnings, fmt.Sprintf("stock is negative: %d", stock))
		}
		snap = append(snap, row)
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(snap); err == nil {
			s.redisClient.Set(ctx, snapshotCacheKey, data, snapshotCacheTTL)
		}
	}

	return snap, nil
}

func (s *StockService) invalidateSnapshot(ctx context.Context) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, snapshotCacheKey)
	}
}
