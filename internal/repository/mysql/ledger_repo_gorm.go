package mysql

import (
	"context"

	"gorm.io/gorm"

	"store-service/internal/domain"
	"store-service/internal/repository"
)

type ledgerRepo struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepo{db: db}
}

func (r *ledgerRepo) Append(ctx context.Context, entries ...domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

func (r *ledgerRepo) SumByProduct(ctx context.Context, productID string) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.LedgerEntry{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

func (r *ledgerRepo) FindByProduct(ctx context.Context, productID string) ([]domain.LedgerEntry, error) {
	var out []domain.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
