package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMinStock is used when a product is created without a minimum
// stock level for the low-stock alert.
const DefaultMinStock = 5

// Product is an inventory item. Quantity only changes through stock
// movements, never by direct edits.
type Product struct {
	Code      string          `json:"code"` // Sequential, e.g. PRD001
	Name      string          `json:"name"` // Unique, case-insensitive
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	MinStock  int             `json:"minStock"`
	IsActive  bool            `json:"isActive"`
	AuditFields
}

// IsLowStock reports whether the product is at or below its minimum stock.
func (p Product) IsLowStock() bool {
	return p.Quantity <= p.MinStock
}

// MovementType is the direction of a stock movement.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// IsValid reports whether the movement type is known.
func (t MovementType) IsValid() bool {
	return t == MovementIn || t == MovementOut
}

// StockMovement is an append-only record of a quantity change, with stock
// level snapshots taken at the time of the movement.
type StockMovement struct {
	MovementID    int          `json:"movementID"` // Sequential
	ProductCode   string       `json:"productCode"`
	ProductName   string       `json:"productName"` // Snapshot at movement time
	Type          MovementType `json:"type"`
	Quantity      int          `json:"quantity"`
	PreviousStock int          `json:"previousStock"`
	CurrentStock  int          `json:"currentStock"`
	Note          string       `json:"note,omitempty"`
	RecordedBy    string       `json:"recordedBy"`
	RecordedAt    time.Time    `json:"recordedAt"`
}
