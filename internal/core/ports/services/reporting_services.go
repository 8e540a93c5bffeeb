package services

import (
	"context"
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
)

// ReportingService defines operations for generating reports over stored data
type ReportingService interface {
	// FinancialSummary aggregates both ledger sides as of a specific date
	FinancialSummary(ctx context.Context, asOf time.Time) (*domain.FinancialSummary, error)

	// PeriodSummary aggregates entries whose due date falls inside [from, to]
	PeriodSummary(ctx context.Context, from, to time.Time) (*domain.PeriodReport, error)

	// CategoryBreakdown aggregates one ledger side grouped by category
	CategoryBreakdown(ctx context.Context, kind domain.LedgerKind, asOf time.Time) (*domain.CategoryBreakdown, error)

	// OverdueEntries lists the pending entries of one side already past due
	OverdueEntries(ctx context.Context, kind domain.LedgerKind, asOf time.Time) (*domain.OverdueReport, error)

	// CashFlowOverview summarizes balances and pending totals for both sides
	CashFlowOverview(ctx context.Context) (*domain.CashFlowOverview, error)

	// DailyCashFlow reports settled inflows and outflows for a single day
	DailyCashFlow(ctx context.Context, date time.Time) (*domain.DailyCashFlow, error)

	// MonthlyCashFlow reports settled inflows and outflows for a calendar month,
	// with per-category totals on each side
	MonthlyCashFlow(ctx context.Context, year int, month time.Month) (*domain.MonthlyCashFlow, error)

	// PeriodCashFlow reports settled inflows and outflows inside [from, to]
	PeriodCashFlow(ctx context.Context, from, to time.Time) (*domain.PeriodCashFlow, error)

	// StockReport summarizes the catalog: counts, units, valuation, shortages
	StockReport(ctx context.Context) (*domain.StockReport, error)

	// SalesReport aggregates orders, optionally limited to a period
	SalesReport(ctx context.Context, from, to *time.Time) (*domain.SalesReport, error)
}
