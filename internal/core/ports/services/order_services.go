package services

import (
	"context"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
)

// OrderReaderSvc defines read operations for order data
type OrderReaderSvc interface {
	// GetOrderByCode retrieves a specific order by its code.
	GetOrderByCode(ctx context.Context, code string) (*domain.Order, error)

	// ListOrders retrieves orders, optionally narrowed by status or client.
	ListOrders(ctx context.Context, filters dto.OrderFilters) ([]domain.Order, error)
}

// OrderWriterSvc defines write operations for order data
type OrderWriterSvc interface {
	// CreateOrder registers a new order, pricing its items from the catalog.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorUserID string) (*domain.Order, error)

	// UpdateOrderStatus moves an order to a new status.
	UpdateOrderStatus(ctx context.Context, code string, req dto.UpdateOrderStatusRequest, updaterUserID string) (*domain.Order, error)
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}
