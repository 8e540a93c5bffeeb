package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
)

func seedEntry(counterpart string, amount int64) domain.LedgerEntry {
	due := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return domain.LedgerEntry{
		Counterpart: counterpart,
		Description: "monthly invoice",
		Category:    "other",
		Amount:      decimal.NewFromInt(amount),
		DueDate:     due,
		Status:      domain.SettlementPending,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "user-1",
			LastUpdatedAt: now,
			LastUpdatedBy: "user-1",
		},
	}
}

func newLedgerRepo(t *testing.T) (*LedgerRepository, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	return NewLedgerRepository(store), dir
}

func TestLedgerRepositoryAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo, _ := newLedgerRepo(t)

	first, err := repo.CreateEntry(ctx, domain.KindPayable, seedEntry("Supplier A", 100))
	require.NoError(t, err)
	second, err := repo.CreateEntry(ctx, domain.KindPayable, seedEntry("Supplier B", 200))
	require.NoError(t, err)

	assert.Equal(t, "PAY001", first.EntryID)
	assert.Equal(t, "PAY002", second.EntryID)
	assert.Equal(t, domain.KindPayable, first.Kind)

	// Each side numbers independently.
	rec, err := repo.CreateEntry(ctx, domain.KindReceivable, seedEntry("Customer A", 300))
	require.NoError(t, err)
	assert.Equal(t, "REC001", rec.EntryID)
}

func TestLedgerRepositoryRetiredIDsStayRetired(t *testing.T) {
	ctx := context.Background()
	repo, _ := newLedgerRepo(t)

	first, err := repo.CreateEntry(ctx, domain.KindPayable, seedEntry("Supplier A", 100))
	require.NoError(t, err)
	require.NoError(t, repo.MarkEntryInactive(ctx, domain.KindPayable, first.EntryID, time.Now(), "admin-1"))

	// A new entry must not recycle the deactivated identifier.
	second, err := repo.CreateEntry(ctx, domain.KindPayable, seedEntry("Supplier B", 200))
	require.NoError(t, err)
	assert.Equal(t, "PAY002", second.EntryID)
}

func TestLedgerRepositoryFindSkipsInactive(t *testing.T) {
	ctx := context.Background()
	repo, _ := newLedgerRepo(t)

	entry, err := repo.CreateEntry(ctx, domain.KindPayable, seedEntry("Supplier A", 100))
	require.NoError(t, err)
	keeper, err := repo.CreateEntry(ctx, domain.KindPayable, seedEntry("Supplier B", 200))
	require.NoError(t, err)

	require.NoError(t, repo.MarkEntryInactive(ctx, domain.KindPayable, entry.EntryID, time.Now(), "admin-1"))

	_, err = repo.FindEntryByID(ctx, domain.KindPayable, entry.EntryID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	listed, err := repo.ListEntries(ctx, domain.KindPayable)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, keeper.EntryID, listed[0].EntryID)
}

func TestLedgerRepositoryUpdateSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	repo, dir := newLedgerRepo(t)

	entry, err := repo.CreateEntry(ctx, domain.KindReceivable, seedEntry("Customer A", 100))
	require.NoError(t, err)

	entry.Amount = decimal.NewFromInt(450)
	entry.Status = domain.SettlementSettled
	require.NoError(t, repo.UpdateEntry(ctx, domain.KindReceivable, *entry))

	// A fresh repository over the same directory must see the change.
	store, err := NewStore(dir)
	require.NoError(t, err)
	reopened := NewLedgerRepository(store)

	got, err := reopened.FindEntryByID(ctx, domain.KindReceivable, entry.EntryID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(450)))
	assert.Equal(t, domain.SettlementSettled, got.Status)
	assert.Equal(t, "Customer A", got.Counterpart)
}

func TestLedgerRepositoryUpdateUnknownEntry(t *testing.T) {
	ctx := context.Background()
	repo, _ := newLedgerRepo(t)

	ghost := seedEntry("Nobody", 10)
	ghost.EntryID = "PAY999"
	err := repo.UpdateEntry(ctx, domain.KindPayable, ghost)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLedgerRepositorySoftDeleteKeepsRecordOnDisk(t *testing.T) {
	ctx := context.Background()
	repo, dir := newLedgerRepo(t)

	entry, err := repo.CreateEntry(ctx, domain.KindPayable, seedEntry("Supplier A", 100))
	require.NoError(t, err)
	require.NoError(t, repo.MarkEntryInactive(ctx, domain.KindPayable, entry.EntryID, time.Now(), "admin-1"))

	listed, err := repo.ListEntries(ctx, domain.KindPayable)
	require.NoError(t, err)
	assert.Empty(t, listed)

	// The record stays in the collection file, only flagged inactive.
	raw, err := os.ReadFile(filepath.Join(dir, "payables.json"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `"PAY001"`))
	assert.True(t, strings.Contains(string(raw), `"active": false`))
}
