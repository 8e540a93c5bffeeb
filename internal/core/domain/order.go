package domain

import (
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a sales order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderApproved  OrderStatus = "APPROVED"
	OrderCancelled OrderStatus = "CANCELLED"
	OrderCompleted OrderStatus = "COMPLETED"
)

// IsValid reports whether the status is one of the known order statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderApproved, OrderCancelled, OrderCompleted:
		return true
	}
	return false
}

// OrderItem is a single line of an order. Name and price are snapshots of
// the product at order time.
type OrderItem struct {
	ProductCode string          `json:"productCode"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// LineTotal returns quantity times unit price for the item.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a sales order placed by a client.
type Order struct {
	Code       string          `json:"code"` // Sequential, e.g. ORD001
	ClientID   string          `json:"clientID"`
	ClientName string          `json:"clientName"` // Snapshot at creation time
	Items      []OrderItem     `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Total      decimal.Decimal `json:"total"`
	Notes      string          `json:"notes,omitempty"`
	Status     OrderStatus     `json:"status"`
	AuditFields
}
