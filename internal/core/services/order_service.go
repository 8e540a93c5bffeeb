package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
)

// orderService provides operations for managing sales orders.
type orderService struct {
	BaseService
	orderRepo    portsrepo.OrderRepositoryFacade
	clientSvc    portssvc.ClientReaderSvc
	inventorySvc portssvc.ProductReaderSvc
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, clientSvc portssvc.ClientReaderSvc, inventorySvc portssvc.ProductReaderSvc) portssvc.OrderSvcFacade {
	return &orderService{
		orderRepo:    orderRepo,
		clientSvc:    clientSvc,
		inventorySvc: inventorySvc,
	}
}

// Ensure orderService implements the portssvc.OrderSvcFacade interface
var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// GetOrderByCode retrieves a specific order by its code.
// Implements portssvc.OrderSvcFacade
func (s *orderService) GetOrderByCode(ctx context.Context, code string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find order %s: %w", code, err)
	}
	return order, nil
}

// ListOrders retrieves orders, optionally narrowed by status, client or a
// search over code and client name.
// Implements portssvc.OrderSvcFacade
func (s *orderService) ListOrders(ctx context.Context, filters dto.OrderFilters) ([]domain.Order, error) {
	var orders []domain.Order
	var err error
	if filters.ClientID != "" {
		orders, err = s.orderRepo.ListOrdersByClient(ctx, filters.ClientID)
	} else {
		orders, err = s.orderRepo.ListOrders(ctx)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	out := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if filters.Status != "" && order.Status != domain.OrderStatus(filters.Status) {
			continue
		}
		if filters.Search != "" &&
			!containsFold(order.Code, filters.Search) &&
			!containsFold(order.ClientName, filters.Search) {
			continue
		}
		out = append(out, order)
	}
	return out, nil
}

// CreateOrder registers a new order for an active client. Every line is
// priced from the catalog at order time, so later price changes never
// rewrite an existing order.
// Implements portssvc.OrderSvcFacade
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorUserID string) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: an order needs at least one item", apperrors.ErrValidation)
	}

	client, err := s.clientSvc.GetClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve order client: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	subtotal := decimal.Zero
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", apperrors.ErrValidation)
		}
		product, err := s.inventorySvc.GetProductByCode(ctx, line.ProductCode)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve order item %s: %w", line.ProductCode, err)
		}
		item := domain.OrderItem{
			ProductCode: product.Code,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.UnitPrice,
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.LineTotal())
	}

	now := time.Now().UTC()
	order := domain.Order{
		ClientID:   client.ClientID,
		ClientName: client.Name,
		Items:      items,
		Subtotal:   subtotal,
		Total:      subtotal,
		Notes:      strings.TrimSpace(req.Notes),
		Status:     domain.OrderPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		s.LogError(ctx, err, "Failed to create order", slog.String("client_id", client.ClientID))
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.LogInfo(ctx, "Order created",
		slog.String("code", created.Code),
		slog.String("client_id", created.ClientID),
		slog.String("total", created.Total.String()))
	return created, nil
}

// UpdateOrderStatus moves an order to a new status.
// Implements portssvc.OrderSvcFacade
func (s *orderService) UpdateOrderStatus(ctx context.Context, code string, req dto.UpdateOrderStatusRequest, updaterUserID string) (*domain.Order, error) {
	status := domain.OrderStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown order status %s", apperrors.ErrValidation, req.Status)
	}

	order, err := s.orderRepo.FindOrderByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find order %s: %w", code, err)
	}

	if order.Status == status {
		s.LogDebug(ctx, "Order already in requested status", slog.String("code", code), slog.String("status", string(status)))
		return order, nil
	}

	now := time.Now().UTC()
	order.Status = status
	order.LastUpdatedAt = now
	order.LastUpdatedBy = updaterUserID

	if err := s.orderRepo.UpdateOrder(ctx, *order); err != nil {
		s.LogError(ctx, err, "Failed to save order status", slog.String("code", code))
		return nil, fmt.Errorf("failed to save order status: %w", err)
	}

	s.LogInfo(ctx, "Order status updated",
		slog.String("code", code),
		slog.String("status", string(status)))
	return order, nil
}
