package repositories

import (
	"context"
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
)

// LedgerReader defines read operations over one side of the ledger.
type LedgerReader interface {
	// FindEntryByID retrieves an active entry by its identifier.
	// Returns apperrors.ErrNotFound if no active entry matches.
	FindEntryByID(ctx context.Context, kind domain.LedgerKind, entryID string) (*domain.LedgerEntry, error)
	// ListEntries retrieves all active entries for the given side in insertion order.
	ListEntries(ctx context.Context, kind domain.LedgerKind) ([]domain.LedgerEntry, error)
}

// LedgerWriter defines write operations over one side of the ledger.
type LedgerWriter interface {
	// CreateEntry assigns the next sequential identifier for the given side
	// and appends the entry. Identifiers of inactive entries are never
	// reissued. Returns the stored entry.
	CreateEntry(ctx context.Context, kind domain.LedgerKind, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
	// UpdateEntry replaces the stored entry matching entry.EntryID.
	// Returns apperrors.ErrNotFound if no active entry matches.
	UpdateEntry(ctx context.Context, kind domain.LedgerKind, entry domain.LedgerEntry) error
}

// LedgerLifecycleManager defines operations for retiring ledger entries.
type LedgerLifecycleManager interface {
	// MarkEntryInactive soft-deletes an entry. The record stays on disk so its
	// identifier is never reused. Returns apperrors.ErrNotFound if no active
	// entry matches.
	MarkEntryInactive(ctx context.Context, kind domain.LedgerKind, entryID string, deactivatedAt time.Time, deactivatedBy string) error
}

// LedgerRepositoryFacade combines all ledger repository capabilities.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
	LedgerLifecycleManager
}
