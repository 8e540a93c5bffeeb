package models

import (
	"github.com/shopspring/decimal"
)

// OrderItem is one persisted line of a sales order.
type OrderItem struct {
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Order is the persisted form of a sales order.
type Order struct {
	Code       string          `json:"code"`
	ClientID   string          `json:"client_id"`
	ClientName string          `json:"client_name"`
	Items      []OrderItem     `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Total      decimal.Decimal `json:"total"`
	Notes      string          `json:"notes,omitempty"`
	Status     string          `json:"status"`
	AuditFields
}
