package dto

import (
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderItemRequest defines one line of a new order.
type OrderItemRequest struct {
	ProductCode string `json:"productCode" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest defines the data needed to register an order.
type CreateOrderRequest struct {
	ClientID string             `json:"clientID" binding:"required"`
	Items    []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes    string             `json:"notes"` // Optional
}

// UpdateOrderStatusRequest defines the payload for moving an order to a new status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING APPROVED CANCELLED COMPLETED"`
}

// OrderFilters defines query parameters for listing orders.
type OrderFilters struct {
	Status   string `form:"status" binding:"omitempty,oneof=PENDING APPROVED CANCELLED COMPLETED"`
	ClientID string `form:"clientID"`
	Search   string `form:"search"` // Case-insensitive substring over code and client name
}

// OrderItemResponse defines the data returned for one order line.
type OrderItemResponse struct {
	ProductCode string          `json:"productCode"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	Code          string              `json:"code"`
	ClientID      string              `json:"clientID"`
	ClientName    string              `json:"clientName"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Total         decimal.Decimal     `json:"total"`
	Notes         string              `json:"notes,omitempty"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy string              `json:"lastUpdatedBy"`
}

// ListOrdersResponse wraps the list of orders with its running total.
type ListOrdersResponse struct {
	Orders      []OrderResponse `json:"orders"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal(),
		}
	}
	return OrderResponse{
		Code:          o.Code,
		ClientID:      o.ClientID,
		ClientName:    o.ClientName,
		Items:         items,
		Subtotal:      o.Subtotal,
		Total:         o.Total,
		Notes:         o.Notes,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		CreatedBy:     o.CreatedBy,
		LastUpdatedAt: o.LastUpdatedAt,
		LastUpdatedBy: o.LastUpdatedBy,
	}
}

// ToListOrdersResponse converts a slice of domain.Order to the list response,
// totalling the amounts of the returned orders.
func ToListOrdersResponse(orders []domain.Order) ListOrdersResponse {
	total := decimal.Zero
	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = ToOrderResponse(&o)
		total = total.Add(o.Total)
	}
	return ListOrdersResponse{
		Orders:      responses,
		Count:       len(responses),
		TotalAmount: total,
	}
}
