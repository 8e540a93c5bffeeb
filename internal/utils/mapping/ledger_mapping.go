package mapping

import (
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to its persisted form.
// Kind and derived urgency are not persisted.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	m := models.LedgerEntry{
		ID:               d.EntryID,
		Counterpart:      d.Counterpart,
		Description:      d.Description,
		Category:         d.Category,
		Amount:           d.Amount,
		DueDate:          models.NewDate(d.DueDate),
		SettlementStatus: string(d.Status),
		Notes:            d.Notes,
		SettledBy:        d.SettledBy,
		Active:           d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
	if d.SettledAt != nil {
		settled := models.NewDate(*d.SettledAt)
		m.SettledAt = &settled
	}
	return m
}

// ToDomainLedgerEntry converts a persisted LedgerEntry back to the domain
// form, reattaching the kind implied by its collection. Urgency is left
// unset; it is derived by callers relative to their current date.
func ToDomainLedgerEntry(m models.LedgerEntry, kind domain.LedgerKind) domain.LedgerEntry {
	d := domain.LedgerEntry{
		EntryID:     m.ID,
		Kind:        kind,
		Counterpart: m.Counterpart,
		Description: m.Description,
		Category:    m.Category,
		Amount:      m.Amount,
		DueDate:     m.DueDate.Time,
		Status:      domain.SettlementStatus(m.SettlementStatus),
		Notes:       m.Notes,
		SettledBy:   m.SettledBy,
		IsActive:    m.Active,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.SettledAt != nil {
		settled := m.SettledAt.Time
		d.SettledAt = &settled
	}
	return d
}

// ToDomainLedgerEntries converts a persisted collection in order.
func ToDomainLedgerEntries(ms []models.LedgerEntry, kind domain.LedgerKind) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, ToDomainLedgerEntry(m, kind))
	}
	return ds
}
