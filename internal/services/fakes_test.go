package services

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"store-service/internal/domain"
	"store-service/internal/repository"
)

// memState backs in-memory repository fakes so lifecycle scenarios can
// run end to end without a database. Not safe for concurrent use.
type memState struct {
	products map[string]*domain.Product
	orders   map[string]*domain.Order
	sales    []domain.Sale
	entries  []domain.LedgerEntry
}

func newMemState() *memState {
	return &memState{
		products: make(map[string]*domain.Product),
		orders:   make(map[string]*domain.Order),
	}
}

func (s *memState) repos() (*memOrderRepo, *memProductRepo, *memLedgerRepo) {
	return &memOrderRepo{s}, &memProductRepo{s}, &memLedgerRepo{s}
}

type memProductRepo struct{ s *memState }

func (r *memProductRepo) Create(_ context.Context, p *domain.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Update(_ context.Context, p *domain.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.s.products[id]; !ok {
		return false, nil
	}
	delete(r.s.products, id)
	return true, nil
}

type memLedgerRepo struct{ s *memState }

func (r *memLedgerRepo) Append(_ context.Context, entries ...domain.LedgerEntry) error {
	r.s.entries = append(r.s.entries, entries...)
	return nil
}

func (r *memLedgerRepo) SumByProduct(_ context.Context, productID string) (int, error) {
	total := 0
	for _, e := range r.s.entries {
		if e.ProductID == productID {
			total += e.Quantity
		}
	}
	return total, nil
}

func (r *memLedgerRepo) FindByProduct(_ context.Context, productID string) ([]domain.LedgerEntry, error) {
	var out []domain.LedgerEntry
	for _, e := range r.s.entries {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, nil
}

type memOrderRepo struct{ s *memState }

func (r *memOrderRepo) Create(_ context.Context, order *domain.Order, entries []domain.LedgerEntry) error {
	cp := *order
	cp.CreatedAt = time.Now()
	r.s.orders[order.ID] = &cp
	r.s.entries = append(r.s.entries, entries...)
	return nil
}

func (r *memOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	cp.Items = append([]domain.OrderItem(nil), o.Items...)
	return &cp, nil
}

func (r *memOrderRepo) FindAll(_ context.Context, f repository.OrderFilter) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.s.orders {
		if f.Status != nil && o.Status != *f.Status {
			continue
		}
		if f.Day != nil {
			start := time.Date(f.Day.Year(), f.Day.Month(), f.Day.Day(), 0, 0, 0, 0, f.Day.Location())
			if o.CreatedAt.Before(start) || !o.CreatedAt.Before(start.Add(24*time.Hour)) {
				continue
			}
		}
		out = append(out, *o)
	}
	return out, nil
}

func (r *memOrderRepo) ReplaceItems(_ context.Context, orderID string, items []domain.OrderItem, total decimal.Decimal, entries []domain.LedgerEntry) error {
	o := r.s.orders[orderID]
	o.Items = items
	o.TotalPrice = total
	r.s.entries = append(r.s.entries, entries...)
	return nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, orderID string, status domain.OrderStatus) error {
	r.s.orders[orderID].Status = status
	return nil
}

func (r *memOrderRepo) UpdateDeliveryFee(_ context.Context, orderID string, fee decimal.Decimal) error {
	r.s.orders[orderID].DeliveryFee = fee
	return nil
}

func (r *memOrderRepo) Complete(_ context.Context, orderID string, entries []domain.LedgerEntry, sale *domain.Sale) error {
	r.s.orders[orderID].Status = domain.StatusCompleted
	r.s.entries = append(r.s.entries, entries...)
	r.s.sales = append(r.s.sales, *sale)
	return nil
}

func (r *memOrderRepo) Cancel(_ context.Context, orderID string, entries []domain.LedgerEntry) error {
	r.s.orders[orderID].Status = domain.StatusCancelled
	r.s.entries = append(r.s.entries, entries...)
	return nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testProduct(id, name string, unitPrice string) *domain.Product {
	return &domain.Product{
		ID:    id,
		Name:  name,
		Unit:  "pcs",
		Price: price(unitPrice),
	}
}
