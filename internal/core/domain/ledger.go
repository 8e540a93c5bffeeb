package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerKind distinguishes the two symmetric sides of the ledger.
type LedgerKind string

const (
	KindPayable    LedgerKind = "PAYABLE"
	KindReceivable LedgerKind = "RECEIVABLE"
)

// IDPrefix returns the prefix used when assigning sequential entry IDs.
func (k LedgerKind) IDPrefix() string {
	if k == KindReceivable {
		return "REC"
	}
	return "PAY"
}

// IsValid reports whether the kind is one of the known ledger kinds.
func (k LedgerKind) IsValid() bool {
	return k == KindPayable || k == KindReceivable
}

// SettlementStatus is the two-state settlement lifecycle of a ledger entry.
// The transition is one-way: PENDING -> SETTLED.
type SettlementStatus string

const (
	SettlementPending SettlementStatus = "PENDING"
	SettlementSettled SettlementStatus = "SETTLED"
)

// UrgencyStatus classifies how close a pending entry is to its due date.
// It is always derived from the due date relative to "today", never stored.
type UrgencyStatus string

const (
	UrgencyOnTrack  UrgencyStatus = "ON_TRACK"
	UrgencyDueSoon  UrgencyStatus = "DUE_SOON"
	UrgencyDueToday UrgencyStatus = "DUE_TODAY"
	UrgencyOverdue  UrgencyStatus = "OVERDUE"

	// UrgencyNone is reported for settled entries, which have no urgency.
	UrgencyNone UrgencyStatus = ""
)

// DueSoonWindowDays is the inclusive window, in days, within which an
// upcoming due date is classified as DUE_SOON.
const DueSoonWindowDays = 7

// LedgerEntry is a single payable or receivable.
// Payables and receivables share this shape; Kind tells them apart and is
// implied by the collection the entry lives in rather than persisted.
type LedgerEntry struct {
	EntryID     string           `json:"entryID"` // Sequential per kind, e.g. PAY001
	Kind        LedgerKind       `json:"kind"`
	Counterpart string           `json:"counterpart"` // Payee (payable) or payer (receivable)
	Description string           `json:"description"`
	Category    string           `json:"category"` // Must resolve in the category registry
	Amount      decimal.Decimal  `json:"amount"`
	DueDate     time.Time        `json:"dueDate"` // Calendar date, midnight UTC
	Status      SettlementStatus `json:"status"`
	Urgency     UrgencyStatus    `json:"urgency,omitempty"` // Derived on read
	Notes       string           `json:"notes,omitempty"`
	SettledAt   *time.Time       `json:"settledAt,omitempty"` // Set exactly once, on settlement
	SettledBy   string           `json:"settledBy,omitempty"`
	IsActive    bool             `json:"isActive"` // Soft delete flag
	AuditFields
}

// IsSettled reports whether the entry has been settled.
func (e LedgerEntry) IsSettled() bool {
	return e.Status == SettlementSettled
}

// ClassifyUrgency derives the urgency status of an entry from its due date,
// its settlement status and the current date. Settled entries have no
// urgency. The comparison is at day granularity; a due date exactly
// DueSoonWindowDays ahead is still DUE_SOON.
func ClassifyUrgency(dueDate time.Time, status SettlementStatus, today time.Time) UrgencyStatus {
	if status == SettlementSettled {
		return UrgencyNone
	}
	due := truncateToDay(dueDate)
	now := truncateToDay(today)
	switch {
	case due.Before(now):
		return UrgencyOverdue
	case due.Equal(now):
		return UrgencyDueToday
	case !due.After(now.AddDate(0, 0, DueSoonWindowDays)):
		return UrgencyDueSoon
	default:
		return UrgencyOnTrack
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
