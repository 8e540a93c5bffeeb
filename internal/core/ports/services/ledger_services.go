package services

import (
	"context"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
)

// LedgerReaderSvc defines read operations for ledger entries
type LedgerReaderSvc interface {
	// GetEntryByID retrieves a specific entry by its identifier, with urgency derived.
	GetEntryByID(ctx context.Context, kind domain.LedgerKind, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves active entries for one side, narrowed by the given
	// filters, with urgency derived on every returned entry.
	ListEntries(ctx context.Context, kind domain.LedgerKind, filters dto.LedgerEntryFilters) ([]domain.LedgerEntry, error)

	// GetDueAlerts groups the pending entries of one side by urgency.
	GetDueAlerts(ctx context.Context, kind domain.LedgerKind) (*domain.DueAlerts, error)
}

// LedgerWriterSvc defines write operations for ledger entries
type LedgerWriterSvc interface {
	// CreateEntry registers a new entry on one side of the ledger.
	CreateEntry(ctx context.Context, kind domain.LedgerKind, req dto.CreateLedgerEntryRequest, creatorUserID string) (*domain.LedgerEntry, error)

	// UpdateEntry applies partial changes to a pending entry.
	UpdateEntry(ctx context.Context, kind domain.LedgerKind, entryID string, req dto.UpdateLedgerEntryRequest, updaterUserID string) (*domain.LedgerEntry, error)

	// SettleEntry marks a pending entry as settled. Settlement is one way.
	SettleEntry(ctx context.Context, kind domain.LedgerKind, entryID string, req dto.SettleLedgerEntryRequest, settlerUserID string) (*domain.LedgerEntry, error)
}

// LedgerLifecycleSvc defines operations for retiring ledger entries
type LedgerLifecycleSvc interface {
	// DeactivateEntry soft-deletes an entry so it no longer appears in
	// listings or report totals.
	DeactivateEntry(ctx context.Context, kind domain.LedgerKind, entryID string, requestingUserID string) error
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	LedgerLifecycleSvc
}
