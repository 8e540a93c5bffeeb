package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the persisted form of an inventory item.
type Product struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	MinStock  int             `json:"min_stock"`
	Active    bool            `json:"active"`
	AuditFields
}

// StockMovement is the persisted form of a stock movement.
type StockMovement struct {
	ID            int       `json:"id"`
	ProductCode   string    `json:"product_code"`
	ProductName   string    `json:"product_name"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	PreviousStock int       `json:"previous_stock"`
	CurrentStock  int       `json:"current_stock"`
	Note          string    `json:"note,omitempty"`
	RecordedBy    string    `json:"recorded_by"`
	RecordedAt    time.Time `json:"recorded_at"`
}
