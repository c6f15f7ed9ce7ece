package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"store-service/internal/domain"
	rabbit "store-service/internal/infra/rabbitmq"
	"store-service/internal/repository"
)

const productCacheTTL = time.Minute

func productCacheKey(id string) string {
	return "product:" + id
}

// OrderService owns the order lifecycle and drives the stock ledger as a
// side effect of each transition. Stock shortfalls never block an
// operation; they come back as warning strings next to the result.
type OrderService struct {
	orders      repository.OrderRepository
	products    repository.ProductRepository
	ledger      repository.LedgerRepository
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, ledger repository.LedgerRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		ledger:    ledger,
		publisher: pub,
	}
}

func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

type OrderItemInput struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	CustomerID  *string
	DeliveryFee *decimal.Decimal
	Items       []OrderItemInput
}

type UpdateOrderInput struct {
	// Items == nil leaves the item set untouched; a non-nil slice fully
	// replaces it.
	Items       []OrderItemInput
	DeliveryFee *decimal.Decimal
	Status      *domain.OrderStatus
}

func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, []string, error) {
	orderID := uuid.NewString()

	items, entries, warnings, err := s.buildItems(ctx, orderID, in.Items)
	if err != nil {
		return nil, nil, err
	}

	fee := decimal.Zero
	if in.DeliveryFee != nil {
		fee = *in.DeliveryFee
	}

	order := &domain.Order{
		ID:          orderID,
		CustomerID:  in.CustomerID,
		Status:      domain.StatusDraft,
		TotalPrice:  domain.ItemsTotal(items),
		DeliveryFee: fee,
		Items:       items,
	}

	if err := s.orders.Create(ctx, order, entries); err != nil {
		return nil, nil, fmt.Errorf("create order: %w", err)
	}

	s.invalidateSnapshot(ctx)
	s.publishEvent(ctx, "order.created", order)
	return order, warnings, nil
}

func (s *OrderService) Update(ctx context.Context, id string, in UpdateOrderInput) (*domain.Order, []string, error) {
	order, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if order.Status.Terminal() {
		return nil, nil, invalidStatef("cannot edit a %s order", order.Status)
	}

	// Validate the requested status before touching anything: a rejected
	// update must leave no item or ledger writes behind.
	if in.Status != nil {
		// Terminal states carry ledger side effects, so they are only
		// reachable through Complete and Cancel.
		if in.Status.Terminal() {
			return nil, nil, invalidStatef("status %s must be set via complete or cancel", *in.Status)
		}
		if !in.Status.Valid() {
			return nil, nil, invalidStatef("unknown status %q", *in.Status)
		}
	}

	var warnings []string

	if in.Items != nil {
		// Full replacement: release every previous reservation, then
		// reserve the new item set. Auditing depends on seeing both
		// entry sets, so no diffing.
		released := make([]domain.LedgerEntry, 0, len(order.Items))
		for _, it := range order.Items {
			released = append(released, domain.Release(it.ProductID, it.Quantity, order.ID))
		}

		items, reserved, w, err := s.buildItems(ctx, order.ID, in.Items)
		if err != nil {
			return nil, nil, err
		}
		warnings = w

		entries := append(released, reserved...)
		total := domain.ItemsTotal(items)
		if err := s.orders.ReplaceItems(ctx, order.ID, items, total, entries); err != nil {
			return nil, nil, fmt.Errorf("replace order items: %w", err)
		}
		s.invalidateSnapshot(ctx)
	}

	if in.DeliveryFee != nil {
		if err := s.orders.UpdateDeliveryFee(ctx, order.ID, *in.DeliveryFee); err != nil {
			return nil, nil, fmt.Errorf("update delivery fee: %w", err)
		}
	}

	if in.Status != nil {
		if err := s.orders.UpdateStatus(ctx, order.ID, *in.Status); err != nil {
			return nil, nil, fmt.Errorf("update status: %w", err)
		}
	}

	updated, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return updated, warnings, nil
}

func (s *OrderService) Complete(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	switch order.Status {
	case domain.StatusCompleted:
		return nil, invalidStatef("order is already completed")
	case domain.StatusCancelled:
		return nil, invalidStatef("a cancelled order cannot be completed")
	}

	// Release then sale per item: the open reservation is closed and the
	// permanent deduction recorded as two entries, keeping the full
	// history of each unit visible in the ledger.
	entries := make([]domain.LedgerEntry, 0, 2*len(order.Items))
	for _, it := range order.Items {
		entries = append(entries,
			domain.Release(it.ProductID, it.Quantity, order.ID),
			domain.SaleOf(it.ProductID, it.Quantity, order.ID),
		)
	}
	sale := &domain.Sale{ID: uuid.NewString(), OrderID: order.ID}

	if err := s.orders.Complete(ctx, order.ID, entries, sale); err != nil {
		return nil, fmt.Errorf("complete order: %w", err)
	}

	completed, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(ctx)
	s.publishEvent(ctx, "order.completed", completed)
	return completed, nil
}

func (s *OrderService) Cancel(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	switch order.Status {
	case domain.StatusCompleted:
		return nil, invalidStatef("a completed order cannot be cancelled")
	case domain.StatusCancelled:
		return nil, invalidStatef("order is already cancelled")
	}

	entries := make([]domain.LedgerEntry, 0, len(order.Items))
	for _, it := range order.Items {
		entries = append(entries, domain.Release(it.ProductID, it.Quantity, order.ID))
	}

	if err := s.orders.Cancel(ctx, order.ID, entries); err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}

	cancelled, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(ctx)
	s.publishEvent(ctx, "order.cancelled", cancelled)
	return cancelled, nil
}

func (s *OrderService) FindAll(ctx context.Context, status *domain.OrderStatus, day *time.Time) ([]domain.Order, error) {
	return s.orders.FindAll(ctx, repository.OrderFilter{Status: status, Day: day})
}

func (s *OrderService) FindOne(ctx context.Context, id string) (*domain.Order, error) {
	return s.mustGet(ctx, id)
}

func (s *OrderService) mustGet(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	return order, nil
}

// buildItems validates each requested item, snapshots the current
// catalog price into it and pairs it with a RESERVE entry. A shortfall
// produces a warning, never an error.
func (s *OrderService) buildItems(ctx context.Context, orderID string, inputs []OrderItemInput) ([]domain.OrderItem, []domain.LedgerEntry, []string, error) {
	items := make([]domain.OrderItem, 0, len(inputs))
	entries := make([]domain.LedgerEntry, 0, len(inputs))
	var warnings []string

	for _, in := range inputs {
		product, err := s.getProduct(ctx, in.ProductID)
		if err != nil {
			return nil, nil, nil, err
		}
		if product == nil {
			return nil, nil, nil, fmt.Errorf("%w: %s", ErrProductNotFound, in.ProductID)
		}

		stock, err := s.ledger.SumByProduct(ctx, in.ProductID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("current stock of %s: %w", in.ProductID, err)
		}
		if future := stock - in.Quantity; future < 0 {
			warnings = append(warnings, fmt.Sprintf("product %q stock will go negative: %d", product.Name, future))
		}

		items = append(items, domain.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   orderID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitPrice: product.Price,
		})
		entries = append(entries, domain.Reserve(in.ProductID, in.Quantity, orderID))
	}

	return items, entries, warnings, nil
}

func (s *OrderService) getProduct(ctx context.Context, id string) (*domain.Product, error) {
	key := productCacheKey(id)

	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, key).Result(); err == nil {
			var p domain.Product
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		}
	}

	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil && p != nil {
		if data, err := json.Marshal(p); err == nil {
			s.redisClient.Set(ctx, key, data, productCacheTTL)
		}
	}

	return p, nil
}

func (s *OrderService) invalidateSnapshot(ctx context.Context) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, snapshotCacheKey)
	}
}

func (s *OrderService) publishEvent(ctx context.Context, routingKey string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	evt := domain.OrderEvent{
		OrderID:    order.ID,
		Status:     order.Status,
		TotalPrice: order.TotalPrice,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, routingKey, evt); err != nil {
		log.Printf("[orders] publish %s for %s: %v", routingKey, order.ID, err)
	}
}
