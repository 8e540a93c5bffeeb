package models

import (
	"github.com/shopspring/decimal"
)

// LedgerEntry is the persisted form of a payable or receivable. The kind
// is implied by the collection file the entry lives in, so it is not a
// stored field.
type LedgerEntry struct {
	ID               string          `json:"id"`
	Counterpart      string          `json:"counterpart"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Amount           decimal.Decimal `json:"amount"`
	DueDate          Date            `json:"due_date"`
	SettlementStatus string          `json:"settlement_status"`
	Notes            string          `json:"notes,omitempty"`
	SettledAt        *Date           `json:"settled_at,omitempty"`
	SettledBy        string          `json:"settled_by,omitempty"`
	Active           bool            `json:"active"`
	AuditFields
}
