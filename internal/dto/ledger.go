package dto

import (
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest defines the data needed to register a ledger entry.
type CreateLedgerEntryRequest struct {
	Counterpart string          `json:"counterpart" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	DueDate     string          `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Notes       string          `json:"notes"` // Optional
}

// UpdateLedgerEntryRequest defines the data allowed for updating a pending entry.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateLedgerEntryRequest struct {
	Counterpart *string          `json:"counterpart"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     *string          `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Notes       *string          `json:"notes"`
}

// SettleLedgerEntryRequest defines the data accepted when settling an entry.
// SettledAt defaults to today when omitted.
type SettleLedgerEntryRequest struct {
	SettledAt *string `json:"settledAt" binding:"omitempty,datetime=2006-01-02"`
}

// LedgerEntryFilters defines query parameters for listing ledger entries.
type LedgerEntryFilters struct {
	Status      string `form:"status" binding:"omitempty,oneof=PENDING SETTLED"`
	Category    string `form:"category"`
	Urgency     string `form:"urgency" binding:"omitempty,oneof=OVERDUE DUE_TODAY DUE_SOON ON_TRACK"`
	Counterpart string `form:"counterpart"` // Case-insensitive substring match
	Search      string `form:"search"`      // Case-insensitive substring over ID, counterpart and description
	DueFrom     string `form:"dueFrom" binding:"omitempty,datetime=2006-01-02"`
	DueTo       string `form:"dueTo" binding:"omitempty,datetime=2006-01-02"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID       string          `json:"entryID"`
	Kind          string          `json:"kind"`
	Counterpart   string          `json:"counterpart"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"dueDate"`
	Status        string          `json:"status"`
	Urgency       string          `json:"urgency,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	SettledAt     *string         `json:"settledAt,omitempty"`
	SettledBy     string          `json:"settledBy,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListLedgerEntriesResponse wraps the list of entries with its running total.
type ListLedgerEntriesResponse struct {
	Entries     []LedgerEntryResponse `json:"entries"`
	Count       int                   `json:"count"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
}

// DueAlertsResponse groups pending entries of one side by urgency.
type DueAlertsResponse struct {
	AsOf     string                `json:"asOf"`
	Overdue  []LedgerEntryResponse `json:"overdue"`
	DueToday []LedgerEntryResponse `json:"dueToday"`
	DueSoon  []LedgerEntryResponse `json:"dueSoon"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse DTO.
func ToLedgerEntryResponse(entry *domain.LedgerEntry) LedgerEntryResponse {
	resp := LedgerEntryResponse{
		EntryID:       entry.EntryID,
		Kind:          string(entry.Kind),
		Counterpart:   entry.Counterpart,
		Description:   entry.Description,
		Category:      entry.Category,
		Amount:        entry.Amount,
		DueDate:       entry.DueDate.Format("2006-01-02"),
		Status:        string(entry.Status),
		Urgency:       string(entry.Urgency),
		Notes:         entry.Notes,
		SettledBy:     entry.SettledBy,
		CreatedAt:     entry.CreatedAt,
		CreatedBy:     entry.CreatedBy,
		LastUpdatedAt: entry.LastUpdatedAt,
		LastUpdatedBy: entry.LastUpdatedBy,
	}
	if entry.SettledAt != nil {
		settled := entry.SettledAt.Format("2006-01-02")
		resp.SettledAt = &settled
	}
	return resp
}

// ToLedgerEntryResponses converts a slice of domain.LedgerEntry to []LedgerEntryResponse.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToLedgerEntryResponse(&entry)
	}
	return responses
}

// ToListLedgerEntriesResponse converts a slice of domain.LedgerEntry to the
// list response, totalling the amounts of the returned entries.
func ToListLedgerEntriesResponse(entries []domain.LedgerEntry) ListLedgerEntriesResponse {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Amount)
	}
	return ListLedgerEntriesResponse{
		Entries:     ToLedgerEntryResponses(entries),
		Count:       len(entries),
		TotalAmount: total,
	}
}

// ToDueAlertsResponse converts a domain.DueAlerts to DueAlertsResponse DTO.
func ToDueAlertsResponse(alerts *domain.DueAlerts) DueAlertsResponse {
	return DueAlertsResponse{
		AsOf:     alerts.AsOf.Format("2006-01-02"),
		Overdue:  ToLedgerEntryResponses(alerts.Overdue),
		DueToday: ToLedgerEntryResponses(alerts.DueToday),
		DueSoon:  ToLedgerEntryResponses(alerts.DueSoon),
	}
}
