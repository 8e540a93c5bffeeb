package jsonfile

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/models"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/utils/mapping"
)

// LedgerRepository stores payables and receivables in one collection file
// per side.
type LedgerRepository struct {
	store Backend
	mu    sync.RWMutex
}

// NewLedgerRepository creates a new repository for ledger data.
func NewLedgerRepository(store Backend) *LedgerRepository {
	return &LedgerRepository{store: store}
}

// Ensure LedgerRepository implements the facade.
var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

func ledgerCollection(kind domain.LedgerKind) string {
	if kind == domain.KindPayable {
		return "payables"
	}
	return "receivables"
}

func (r *LedgerRepository) load(kind domain.LedgerKind) ([]models.LedgerEntry, error) {
	var records []models.LedgerEntry
	if err := r.store.Load(ledgerCollection(kind), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindEntryByID retrieves an active entry by its identifier.
func (r *LedgerRepository) FindEntryByID(ctx context.Context, kind domain.LedgerKind, entryID string) (*domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load(kind)
	if err != nil {
		return nil, err
	}
	for _, m := range records {
		if m.ID == entryID && m.Active {
			entry := mapping.ToDomainLedgerEntry(m, kind)
			return &entry, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListEntries retrieves all active entries for the given side in insertion order.
func (r *LedgerRepository) ListEntries(ctx context.Context, kind domain.LedgerKind) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load(kind)
	if err != nil {
		return nil, err
	}
	active := make([]models.LedgerEntry, 0, len(records))
	for _, m := range records {
		if m.Active {
			active = append(active, m)
		}
	}
	return mapping.ToDomainLedgerEntries(active, kind), nil
}

// CreateEntry assigns the next sequential identifier and appends the entry.
// The scan covers inactive records too, so retired identifiers stay retired.
func (r *LedgerRepository) CreateEntry(ctx context.Context, kind domain.LedgerKind, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(kind)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(records))
	for i, m := range records {
		ids[i] = m.ID
	}
	entry.EntryID = nextSequentialID(kind.IDPrefix(), ids)
	entry.Kind = kind

	records = append(records, mapping.ToModelLedgerEntry(entry))
	if err := r.store.Save(ledgerCollection(kind), records); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry replaces the stored entry matching entry.EntryID.
func (r *LedgerRepository) UpdateEntry(ctx context.Context, kind domain.LedgerKind, entry domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(kind)
	if err != nil {
		return err
	}
	for i, m := range records {
		if m.ID == entry.EntryID && m.Active {
			records[i] = mapping.ToModelLedgerEntry(entry)
			return r.store.Save(ledgerCollection(kind), records)
		}
	}
	return apperrors.ErrNotFound
}

// MarkEntryInactive soft-deletes an entry, leaving the record on disk.
func (r *LedgerRepository) MarkEntryInactive(ctx context.Context, kind domain.LedgerKind, entryID string, deactivatedAt time.Time, deactivatedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(kind)
	if err != nil {
		return err
	}
	for i, m := range records {
		if m.ID == entryID && m.Active {
			records[i].Active = false
			records[i].LastUpdatedAt = deactivatedAt
			records[i].LastUpdatedBy = deactivatedBy
			return r.store.Save(ledgerCollection(kind), records)
		}
	}
	return apperrors.ErrNotFound
}

// nextSequentialID issues prefix + zero-padded number one past the highest
// numeric suffix seen across the existing identifiers with that prefix.
func nextSequentialID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}
