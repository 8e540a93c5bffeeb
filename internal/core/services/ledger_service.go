package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
)

// dateLayout is the calendar date format used on the wire and in storage.
const dateLayout = "2006-01-02"

// ledgerService provides the core payable and receivable operations.
// Both ledger sides share every rule; the kind parameter selects the side.
type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	categorySvc portssvc.CategoryReaderSvc
	userSvc     portssvc.UserReaderSvc
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, categorySvc portssvc.CategoryReaderSvc, userSvc portssvc.UserReaderSvc) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		categorySvc: categorySvc,
		userSvc:     userSvc,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateEntry registers a new entry on one side of the ledger after
// validation. Storage is untouched when any validation fails.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) CreateEntry(ctx context.Context, kind domain.LedgerKind, req dto.CreateLedgerEntryRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown ledger kind %q", apperrors.ErrValidation, kind)
	}

	// --- Basic Validation ---
	counterpart := strings.TrimSpace(req.Counterpart)
	if counterpart == "" {
		return nil, fmt.Errorf("%w: counterpart is required", apperrors.ErrValidation)
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: dueDate must be a valid calendar date in %s format", apperrors.ErrValidation, dateLayout)
	}

	// The category must resolve in the registry of this side.
	if _, err := s.categorySvc.ResolveCategory(ctx, kind, req.Category); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := domain.LedgerEntry{
		Kind:        kind,
		Counterpart: counterpart,
		Description: description,
		Category:    req.Category,
		Amount:      req.Amount,
		DueDate:     dueDate,
		Status:      domain.SettlementPending,
		Notes:       req.Notes,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// The repository assigns the next sequential id for this side.
	created, err := s.ledgerRepo.CreateEntry(ctx, kind, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to create ledger entry", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to create ledger entry: %w", err)
	}

	created.Urgency = domain.ClassifyUrgency(created.DueDate, created.Status, now)
	s.LogInfo(ctx, "Ledger entry created",
		slog.String("entry_id", created.EntryID),
		slog.String("kind", string(kind)),
		slog.String("amount", created.Amount.String()))
	return created, nil
}

// GetEntryByID retrieves a specific entry with its urgency derived.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) GetEntryByID(ctx context.Context, kind domain.LedgerKind, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, kind, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	entry.Urgency = domain.ClassifyUrgency(entry.DueDate, entry.Status, time.Now().UTC())
	return entry, nil
}

// ListEntries retrieves the active entries of one side, urgency derived,
// narrowed by the given filters. Urgency filters are applied after
// derivation, so overdue listings shift over time without any write.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) ListEntries(ctx context.Context, kind domain.LedgerKind, filters dto.LedgerEntryFilters) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListEntries(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	dueFrom, dueTo, err := parseDueWindow(filters.DueFrom, filters.DueTo)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	out := make([]domain.LedgerEntry, 0, len(entries))
	for _, entry := range entries {
		entry.Urgency = domain.ClassifyUrgency(entry.DueDate, entry.Status, now)
		if !matchesEntryFilters(entry, filters, dueFrom, dueTo) {
			continue
		}
		out = append(out, entry)
	}

	s.LogDebug(ctx, "Ledger entries listed", slog.String("kind", string(kind)), slog.Int("count", len(out)))
	return out, nil
}

// GetDueAlerts groups the pending entries of one side by urgency for the
// alert panel. On-track entries are left out.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) GetDueAlerts(ctx context.Context, kind domain.LedgerKind) (*domain.DueAlerts, error) {
	entries, err := s.ledgerRepo.ListEntries(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries for due alerts", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	now := time.Now().UTC()
	alerts := &domain.DueAlerts{
		AsOf:     now,
		Overdue:  []domain.LedgerEntry{},
		DueToday: []domain.LedgerEntry{},
		DueSoon:  []domain.LedgerEntry{},
	}
	for _, entry := range entries {
		entry.Urgency = domain.ClassifyUrgency(entry.DueDate, entry.Status, now)
		switch entry.Urgency {
		case domain.UrgencyOverdue:
			alerts.Overdue = append(alerts.Overdue, entry)
		case domain.UrgencyDueToday:
			alerts.DueToday = append(alerts.DueToday, entry)
		case domain.UrgencyDueSoon:
			alerts.DueSoon = append(alerts.DueSoon, entry)
		}
	}
	return alerts, nil
}

// UpdateEntry applies partial changes to a pending entry. Settled entries
// are frozen.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) UpdateEntry(ctx context.Context, kind domain.LedgerKind, entryID string, req dto.UpdateLedgerEntryRequest, updaterUserID string) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, kind, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	if entry.IsSettled() {
		return nil, fmt.Errorf("%w: settled entries cannot be modified", apperrors.ErrAlreadySettled)
	}

	now := time.Now().UTC()

	// Apply updates from request DTO
	updated := false
	if req.Counterpart != nil {
		counterpart := strings.TrimSpace(*req.Counterpart)
		if counterpart == "" {
			return nil, fmt.Errorf("%w: counterpart cannot be blank", apperrors.ErrValidation)
		}
		entry.Counterpart = counterpart
		updated = true
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, fmt.Errorf("%w: description cannot be blank", apperrors.ErrValidation)
		}
		entry.Description = description
		updated = true
	}
	if req.Category != nil {
		if _, err := s.categorySvc.ResolveCategory(ctx, kind, *req.Category); err != nil {
			return nil, err
		}
		entry.Category = *req.Category
		updated = true
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		entry.Amount = *req.Amount
		updated = true
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse(dateLayout, *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: dueDate must be a valid calendar date in %s format", apperrors.ErrValidation, dateLayout)
		}
		entry.DueDate = dueDate
		updated = true
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
		updated = true
	}

	if !updated {
		s.LogDebug(ctx, "No fields provided for ledger entry update", slog.String("entry_id", entryID))
		entry.Urgency = domain.ClassifyUrgency(entry.DueDate, entry.Status, now)
		return entry, nil
	}

	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = updaterUserID

	if err := s.ledgerRepo.UpdateEntry(ctx, kind, *entry); err != nil {
		s.LogError(ctx, err, "Failed to save ledger entry update", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save ledger entry update: %w", err)
	}

	entry.Urgency = domain.ClassifyUrgency(entry.DueDate, entry.Status, now)
	s.LogInfo(ctx, "Ledger entry updated", slog.String("entry_id", entryID), slog.String("kind", string(kind)))
	return entry, nil
}

// SettleEntry marks a pending entry as settled, recording when and by whom.
// Settlement is one way; a second attempt fails and changes nothing.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) SettleEntry(ctx context.Context, kind domain.LedgerKind, entryID string, req dto.SettleLedgerEntryRequest, settlerUserID string) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, kind, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	if entry.IsSettled() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrAlreadySettled, entryID)
	}

	now := time.Now().UTC()

	// Settlement date defaults to today. Backdating and future-dating are
	// both accepted.
	settledAt := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.SettledAt != nil {
		settledAt, err = time.Parse(dateLayout, *req.SettledAt)
		if err != nil {
			return nil, fmt.Errorf("%w: settledAt must be a valid calendar date in %s format", apperrors.ErrValidation, dateLayout)
		}
	}

	entry.Status = domain.SettlementSettled
	entry.SettledAt = &settledAt
	entry.SettledBy = settlerUserID
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = settlerUserID

	if err := s.ledgerRepo.UpdateEntry(ctx, kind, *entry); err != nil {
		s.LogError(ctx, err, "Failed to save ledger entry settlement", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save ledger entry settlement: %w", err)
	}

	entry.Urgency = domain.UrgencyNone
	s.LogInfo(ctx, "Ledger entry settled",
		slog.String("entry_id", entryID),
		slog.String("kind", string(kind)),
		slog.String("settled_at", settledAt.Format(dateLayout)))
	return entry, nil
}

// DeactivateEntry soft-deletes an entry. Only administrators may do this;
// the record stays on disk and its id is never reissued.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) DeactivateEntry(ctx context.Context, kind domain.LedgerKind, entryID string, requestingUserID string) error {
	if err := requireAdmin(ctx, s.userSvc, requestingUserID); err != nil {
		s.LogWarn(ctx, "Deactivation denied",
			slog.String("entry_id", entryID),
			slog.String("user_id", requestingUserID))
		return err
	}

	now := time.Now().UTC()
	if err := s.ledgerRepo.MarkEntryInactive(ctx, kind, entryID, now, requestingUserID); err != nil {
		return fmt.Errorf("failed to deactivate ledger entry %s: %w", entryID, err)
	}

	s.LogInfo(ctx, "Ledger entry deactivated", slog.String("entry_id", entryID), slog.String("kind", string(kind)))
	return nil
}

// parseDueWindow parses the optional due date range bounds of a listing.
func parseDueWindow(fromStr, toStr string) (from, to *time.Time, err error) {
	if fromStr != "" {
		parsed, parseErr := time.Parse(dateLayout, fromStr)
		if parseErr != nil {
			return nil, nil, fmt.Errorf("%w: dueFrom must be a valid calendar date in %s format", apperrors.ErrValidation, dateLayout)
		}
		from = &parsed
	}
	if toStr != "" {
		parsed, parseErr := time.Parse(dateLayout, toStr)
		if parseErr != nil {
			return nil, nil, fmt.Errorf("%w: dueTo must be a valid calendar date in %s format", apperrors.ErrValidation, dateLayout)
		}
		to = &parsed
	}
	return from, to, nil
}

// matchesEntryFilters reports whether an entry, with urgency already
// derived, passes every requested filter.
func matchesEntryFilters(entry domain.LedgerEntry, filters dto.LedgerEntryFilters, dueFrom, dueTo *time.Time) bool {
	if filters.Status != "" && string(entry.Status) != filters.Status {
		return false
	}
	if filters.Category != "" && entry.Category != filters.Category {
		return false
	}
	if filters.Urgency != "" && string(entry.Urgency) != filters.Urgency {
		return false
	}
	if filters.Counterpart != "" && !containsFold(entry.Counterpart, filters.Counterpart) {
		return false
	}
	if filters.Search != "" {
		if !containsFold(entry.EntryID, filters.Search) &&
			!containsFold(entry.Counterpart, filters.Search) &&
			!containsFold(entry.Description, filters.Search) {
			return false
		}
	}
	if dueFrom != nil && entry.DueDate.Before(*dueFrom) {
		return false
	}
	if dueTo != nil && entry.DueDate.After(*dueTo) {
		return false
	}
	return true
}

// containsFold reports whether substr occurs in s, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// requireAdmin resolves the acting user and checks for the administrator
// role. Unknown actors are rejected the same way as insufficient roles.
func requireAdmin(ctx context.Context, users portssvc.UserReaderSvc, userID string) error {
	user, err := users.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: requesting user could not be resolved", apperrors.ErrForbidden)
	}
	if !user.Role.AtLeast(domain.RoleAdmin) {
		return fmt.Errorf("%w: administrator role required", apperrors.ErrForbidden)
	}
	return nil
}
