package repositories

import (
	"context"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
)

// OrderReader defines read operations for order data.
type OrderReader interface {
	// FindOrderByCode retrieves an order by code.
	// Returns apperrors.ErrNotFound if no order matches.
	FindOrderByCode(ctx context.Context, code string) (*domain.Order, error)
	// ListOrders retrieves all orders in insertion order.
	ListOrders(ctx context.Context) ([]domain.Order, error)
	// ListOrdersByClient retrieves the orders placed by one client in insertion order.
	ListOrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error)
}

// OrderWriter defines write operations for order data.
type OrderWriter interface {
	// CreateOrder assigns the next sequential order code and appends the
	// order. Returns the stored order.
	CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	// UpdateOrder replaces the stored order matching order.Code.
	// Returns apperrors.ErrNotFound if no order matches.
	UpdateOrder(ctx context.Context, order domain.Order) error
}

// OrderRepositoryFacade combines all order repository capabilities.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
