package jsonfile

import (
	"context"
	"sync"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/models"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/utils/mapping"
)

const (
	ordersCollection = "orders"
	orderCodePrefix  = "ORD"
)

// OrderRepository stores sales orders. Orders are never deleted; a cancelled
// order keeps its record with status CANCELLED.
type OrderRepository struct {
	store Backend
	mu    sync.RWMutex
}

// NewOrderRepository creates a new repository for order data.
func NewOrderRepository(store Backend) *OrderRepository {
	return &OrderRepository{store: store}
}

// Ensure OrderRepository implements the facade.
var _ portsrepo.OrderRepositoryFacade = (*OrderRepository)(nil)

func (r *OrderRepository) load() ([]models.Order, error) {
	var records []models.Order
	if err := r.store.Load(ordersCollection, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindOrderByCode retrieves an order by code.
func (r *OrderRepository) FindOrderByCode(ctx context.Context, code string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, m := range records {
		if m.Code == code {
			order := mapping.ToDomainOrder(m)
			return &order, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListOrders retrieves all orders in insertion order.
func (r *OrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainOrders(records), nil
}

// ListOrdersByClient retrieves the orders placed by one client in insertion order.
func (r *OrderRepository) ListOrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	matching := make([]models.Order, 0, len(records))
	for _, m := range records {
		if m.ClientID == clientID {
			matching = append(matching, m)
		}
	}
	return mapping.ToDomainOrders(matching), nil
}

// CreateOrder assigns the next sequential code and appends the order.
func (r *OrderRepository) CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(records))
	for i, m := range records {
		codes[i] = m.Code
	}
	order.Code = nextSequentialID(orderCodePrefix, codes)

	records = append(records, mapping.ToModelOrder(order))
	if err := r.store.Save(ordersCollection, records); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrder replaces the stored order matching order.Code.
func (r *OrderRepository) UpdateOrder(ctx context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	for i, m := range records {
		if m.Code == order.Code {
			records[i] = mapping.ToModelOrder(order)
			return r.store.Save(ordersCollection, records)
		}
	}
	return apperrors.ErrNotFound
}
