package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"store-service/internal/domain"
	"store-service/internal/repository"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *domain.Order, entries []domain.LedgerEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Customer").
		First(&o, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindAll(ctx context.Context, f repository.OrderFilter) ([]domain.Order, error) {
	q := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Customer")

	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Day != nil {
		start := time.Date(f.Day.Year(), f.Day.Month(), f.Day.Day(), 0, 0, 0, 0, f.Day.Location())
		end := start.Add(24 * time.Hour)
		q = q.Where("created_at >= ? AND created_at < ?", start, end)
	}

	var out []domain.Order
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) ReplaceItems(ctx context.Context, orderID string, items []domain.OrderItem, total decimal.Decimal, entries []domain.LedgerEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&domain.Order{}).Where("id = ?", orderID).
			Update("total_price", total).Error; err != nil {
			return err
		}
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Callers load the order before updating it, so existence is already
// settled here. RowsAffected is not checked: MySQL reports changed rows,
// and a same-value write would look like a missing row.
func (r *orderRepo) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

func (r *orderRepo) UpdateDeliveryFee(ctx context.Context, orderID string, fee decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", orderID).
		Update("delivery_fee", fee).Error
}

func (r *orderRepo) Complete(ctx context.Context, orderID string, entries []domain.LedgerEntry, sale *domain.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Order{}).Where("id = ?", orderID).
			Update("status", domain.StatusCompleted).Error
	})
}

func (r *orderRepo) Cancel(ctx context.Context, orderID string, entries []domain.LedgerEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}
		return tx.Model(&domain.Order{}).Where("id = ?", orderID).
			Update("status", domain.StatusCancelled).Error
	})
}
