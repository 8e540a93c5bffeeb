// Package accounting holds the pure aggregation arithmetic shared by the
// reporting service and the document exports.
package accounting

import (
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/shopspring/decimal"
)

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SumAmounts totals the amounts of the given entries.
func SumAmounts(entries []domain.LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Amount)
	}
	return total
}

// SummarizeSide computes the aggregates of one ledger side as of a date.
// Overdue counts pending entries whose due date is strictly before asOf's day.
func SummarizeSide(entries []domain.LedgerEntry, asOf time.Time) domain.LedgerSideSummary {
	summary := domain.LedgerSideSummary{
		TotalAmount:   decimal.Zero,
		PendingAmount: decimal.Zero,
		SettledAmount: decimal.Zero,
		OverdueAmount: decimal.Zero,
	}
	today := day(asOf)

	for _, entry := range entries {
		summary.TotalAmount = summary.TotalAmount.Add(entry.Amount)
		summary.EntryCount++

		if entry.IsSettled() {
			summary.SettledAmount = summary.SettledAmount.Add(entry.Amount)
			summary.SettledCount++
			continue
		}

		summary.PendingAmount = summary.PendingAmount.Add(entry.Amount)
		summary.PendingCount++
		if day(entry.DueDate).Before(today) {
			summary.OverdueAmount = summary.OverdueAmount.Add(entry.Amount)
			summary.OverdueCount++
		}
	}
	return summary
}

// Balances derives the two headline balances from the side summaries.
// The current balance nets only settled amounts; the projected balance nets
// every active entry regardless of settlement.
func Balances(payables, receivables domain.LedgerSideSummary) (current, projected decimal.Decimal) {
	current = receivables.SettledAmount.Sub(payables.SettledAmount)
	projected = receivables.TotalAmount.Sub(payables.TotalAmount)
	return current, projected
}

// SettledWithin filters entries settled inside [from, to], both inclusive,
// judged by their settlement date.
func SettledWithin(entries []domain.LedgerEntry, from, to time.Time) []domain.LedgerEntry {
	lo, hi := day(from), day(to)
	out := make([]domain.LedgerEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsSettled() || entry.SettledAt == nil {
			continue
		}
		settled := day(*entry.SettledAt)
		if settled.Before(lo) || settled.After(hi) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// DueWithin filters entries whose due date falls inside [from, to], both
// inclusive.
func DueWithin(entries []domain.LedgerEntry, from, to time.Time) []domain.LedgerEntry {
	lo, hi := day(from), day(to)
	out := make([]domain.LedgerEntry, 0, len(entries))
	for _, entry := range entries {
		due := day(entry.DueDate)
		if due.Before(lo) || due.After(hi) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// TotalsByCategory sums entry amounts per category code.
func TotalsByCategory(entries []domain.LedgerEntry) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, entry := range entries {
		current, ok := totals[entry.Category]
		if !ok {
			current = decimal.Zero
		}
		totals[entry.Category] = current.Add(entry.Amount)
	}
	return totals
}
