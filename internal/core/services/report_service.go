package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/utils/accounting"
)

// SalesTopProductCount is how many products the sales report ranks.
const SalesTopProductCount = 5

// ErrReportSourceMissing indicates a report was requested whose data source
// was not configured on the service.
var ErrReportSourceMissing = errors.New("report data source not configured")

// reportService implements the ReportingService interface. Every report is a
// deterministic fold over the active records as of its reference date.
type reportService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerReader
	categoryRepo portsrepo.CategoryReader
	productRepo  portsrepo.ProductReader
	orderRepo    portsrepo.OrderReader
}

// ReportServiceOption is a functional option for configuring the report service
type ReportServiceOption func(*reportService)

// WithStockData wires the product catalog into the stock report.
func WithStockData(productRepo portsrepo.ProductReader) ReportServiceOption {
	return func(s *reportService) {
		s.productRepo = productRepo
	}
}

// WithSalesData wires the order book into the sales report.
func WithSalesData(orderRepo portsrepo.OrderReader) ReportServiceOption {
	return func(s *reportService) {
		s.orderRepo = orderRepo
	}
}

// NewReportService creates a new reporting service with the provided options
func NewReportService(ledgerRepo portsrepo.LedgerReader, categoryRepo portsrepo.CategoryReader, options ...ReportServiceOption) portssvc.ReportingService {
	svc := &reportService{
		ledgerRepo:   ledgerRepo,
		categoryRepo: categoryRepo,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportService)(nil)

// loadBothSides fetches the active entries of both ledger sides.
func (s *reportService) loadBothSides(ctx context.Context) (payables, receivables []domain.LedgerEntry, err error) {
	payables, err = s.ledgerRepo.ListEntries(ctx, domain.KindPayable)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payables for report")
		return nil, nil, fmt.Errorf("failed to load payables: %w", err)
	}
	receivables, err = s.ledgerRepo.ListEntries(ctx, domain.KindReceivable)
	if err != nil {
		s.LogError(ctx, err, "Failed to load receivables for report")
		return nil, nil, fmt.Errorf("failed to load receivables: %w", err)
	}
	return payables, receivables, nil
}

// buildFinancialSummary folds both sides into the headline summary.
func buildFinancialSummary(payables, receivables []domain.LedgerEntry, asOf time.Time) *domain.FinancialSummary {
	paySummary := accounting.SummarizeSide(payables, asOf)
	recSummary := accounting.SummarizeSide(receivables, asOf)
	current, projected := accounting.Balances(paySummary, recSummary)
	return &domain.FinancialSummary{
		AsOf:             asOf,
		Payables:         paySummary,
		Receivables:      recSummary,
		CurrentBalance:   current,
		ProjectedBalance: projected,
	}
}

// FinancialSummary aggregates both ledger sides as of a specific date.
func (s *reportService) FinancialSummary(ctx context.Context, asOf time.Time) (*domain.FinancialSummary, error) {
	payables, receivables, err := s.loadBothSides(ctx)
	if err != nil {
		return nil, err
	}

	summary := buildFinancialSummary(payables, receivables, asOf)
	s.LogInfo(ctx, "Financial summary generated",
		slog.String("as_of", asOf.Format(dateLayout)),
		slog.Int("payables", summary.Payables.EntryCount),
		slog.Int("receivables", summary.Receivables.EntryCount))
	return summary, nil
}

// PeriodSummary aggregates the entries whose due date falls inside
// [from, to], both inclusive.
func (s *reportService) PeriodSummary(ctx context.Context, from, to time.Time) (*domain.PeriodReport, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s is after %s", apperrors.ErrInvalidRange, from.Format(dateLayout), to.Format(dateLayout))
	}

	payables, receivables, err := s.loadBothSides(ctx)
	if err != nil {
		return nil, err
	}

	payables = accounting.DueWithin(payables, from, to)
	receivables = accounting.DueWithin(receivables, from, to)

	return &domain.PeriodReport{
		From:    from,
		To:      to,
		Summary: *buildFinancialSummary(payables, receivables, time.Now().UTC()),
	}, nil
}

// CategoryBreakdown aggregates one ledger side grouped by category, rows in
// the registry's declared order. Codes missing from the registry still get a
// row, after the declared ones, so the breakdown always sums to the summary.
func (s *reportService) CategoryBreakdown(ctx context.Context, kind domain.LedgerKind, asOf time.Time) (*domain.CategoryBreakdown, error) {
	categories, err := s.categoryRepo.FindCategories(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to load category registry for breakdown", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to load category registry: %w", err)
	}
	entries, err := s.ledgerRepo.ListEntries(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for category breakdown", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	grouped := make(map[string]*domain.CategoryAmounts)
	for _, entry := range entries {
		row, ok := grouped[entry.Category]
		if !ok {
			row = &domain.CategoryAmounts{
				Code:          entry.Category,
				DisplayName:   entry.Category,
				TotalAmount:   decimal.Zero,
				PendingAmount: decimal.Zero,
				SettledAmount: decimal.Zero,
			}
			grouped[entry.Category] = row
		}
		row.TotalAmount = row.TotalAmount.Add(entry.Amount)
		row.EntryCount++
		if entry.IsSettled() {
			row.SettledAmount = row.SettledAmount.Add(entry.Amount)
		} else {
			row.PendingAmount = row.PendingAmount.Add(entry.Amount)
		}
	}

	rows := make([]domain.CategoryAmounts, 0, len(grouped))
	for _, category := range categories {
		row, ok := grouped[category.Code]
		if !ok {
			continue
		}
		row.DisplayName = category.DisplayName
		row.Nature = category.Nature
		row.Tag = category.Tag
		rows = append(rows, *row)
		delete(grouped, category.Code)
	}

	// Leftovers are entries labeled with codes no longer in the registry.
	leftover := make([]string, 0, len(grouped))
	for code := range grouped {
		leftover = append(leftover, code)
	}
	sort.Strings(leftover)
	for _, code := range leftover {
		rows = append(rows, *grouped[code])
	}

	return &domain.CategoryBreakdown{Kind: kind, AsOf: asOf, Rows: rows}, nil
}

// OverdueEntries lists the pending entries of one side already past due,
// oldest due date first, ties broken by entry id.
func (s *reportService) OverdueEntries(ctx context.Context, kind domain.LedgerKind, asOf time.Time) (*domain.OverdueReport, error) {
	entries, err := s.ledgerRepo.ListEntries(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for overdue report", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	overdue := make([]domain.LedgerEntry, 0)
	for _, entry := range entries {
		if domain.ClassifyUrgency(entry.DueDate, entry.Status, asOf) != domain.UrgencyOverdue {
			continue
		}
		entry.Urgency = domain.UrgencyOverdue
		overdue = append(overdue, entry)
	}

	sort.Slice(overdue, func(i, j int) bool {
		if !overdue[i].DueDate.Equal(overdue[j].DueDate) {
			return overdue[i].DueDate.Before(overdue[j].DueDate)
		}
		return overdue[i].EntryID < overdue[j].EntryID
	})

	return &domain.OverdueReport{
		Kind:        kind,
		AsOf:        asOf,
		Entries:     overdue,
		TotalAmount: accounting.SumAmounts(overdue),
	}, nil
}

// CashFlowOverview summarizes balances and the pending deltas between them.
func (s *reportService) CashFlowOverview(ctx context.Context) (*domain.CashFlowOverview, error) {
	payables, receivables, err := s.loadBothSides(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	paySummary := accounting.SummarizeSide(payables, now)
	recSummary := accounting.SummarizeSide(receivables, now)
	current, projected := accounting.Balances(paySummary, recSummary)

	return &domain.CashFlowOverview{
		AsOf:               now,
		CurrentBalance:     current,
		ProjectedBalance:   projected,
		PendingPayables:    paySummary.PendingAmount,
		PendingReceivables: recSummary.PendingAmount,
	}, nil
}

// buildCashFlowSide folds the settled entries of one direction into a cash
// flow side, with per-category totals when asked for.
func buildCashFlowSide(entries []domain.LedgerEntry, withCategories bool) domain.CashFlowSide {
	side := domain.CashFlowSide{
		Entries: entries,
		Total:   accounting.SumAmounts(entries),
		Count:   len(entries),
	}
	if withCategories {
		side.ByCategory = accounting.TotalsByCategory(entries)
	}
	return side
}

// DailyCashFlow reports the settled inflows and outflows of a single day.
// Inflows are receivables settled that day; outflows are payables.
func (s *reportService) DailyCashFlow(ctx context.Context, date time.Time) (*domain.DailyCashFlow, error) {
	payables, receivables, err := s.loadBothSides(ctx)
	if err != nil {
		return nil, err
	}

	inflows := buildCashFlowSide(accounting.SettledWithin(receivables, date, date), false)
	outflows := buildCashFlowSide(accounting.SettledWithin(payables, date, date), false)

	return &domain.DailyCashFlow{
		Date:     time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Inflows:  inflows,
		Outflows: outflows,
		Net:      inflows.Total.Sub(outflows.Total),
	}, nil
}

// MonthlyCashFlow reports the settled inflows and outflows of a calendar
// month, each side totalled per category.
func (s *reportService) MonthlyCashFlow(ctx context.Context, year int, month time.Month) (*domain.MonthlyCashFlow, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	payables, receivables, err := s.loadBothSides(ctx)
	if err != nil {
		return nil, err
	}

	inflows := buildCashFlowSide(accounting.SettledWithin(receivables, from, to), true)
	outflows := buildCashFlowSide(accounting.SettledWithin(payables, from, to), true)

	return &domain.MonthlyCashFlow{
		Year:     year,
		Month:    month,
		From:     from,
		To:       to,
		Inflows:  inflows,
		Outflows: outflows,
		Net:      inflows.Total.Sub(outflows.Total),
	}, nil
}

// PeriodCashFlow reports the settled inflows and outflows inside [from, to],
// both inclusive.
func (s *reportService) PeriodCashFlow(ctx context.Context, from, to time.Time) (*domain.PeriodCashFlow, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s is after %s", apperrors.ErrInvalidRange, from.Format(dateLayout), to.Format(dateLayout))
	}

	payables, receivables, err := s.loadBothSides(ctx)
	if err != nil {
		return nil, err
	}

	inflows := buildCashFlowSide(accounting.SettledWithin(receivables, from, to), false)
	outflows := buildCashFlowSide(accounting.SettledWithin(payables, from, to), false)

	return &domain.PeriodCashFlow{
		From:     from,
		To:       to,
		Inflows:  inflows,
		Outflows: outflows,
		Net:      inflows.Total.Sub(outflows.Total),
	}, nil
}

// StockReport summarizes the active catalog: counts, units, valuation at
// current unit prices and per-category aggregates.
func (s *reportService) StockReport(ctx context.Context) (*domain.StockReport, error) {
	if s.productRepo == nil {
		return nil, fmt.Errorf("%w: product catalog", ErrReportSourceMissing)
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load products for stock report")
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	report := &domain.StockReport{
		AsOf:       time.Now().UTC(),
		StockValue: decimal.Zero,
		ByCategory: make(map[string]domain.StockCategorySummary),
	}
	for _, product := range products {
		value := product.UnitPrice.Mul(decimal.NewFromInt(int64(product.Quantity)))

		report.ProductCount++
		report.TotalUnits += product.Quantity
		report.StockValue = report.StockValue.Add(value)
		if product.Quantity == 0 {
			report.OutOfStock++
		}
		if product.IsLowStock() {
			report.LowStockCount++
		}

		categorySummary := report.ByCategory[product.Category]
		categorySummary.Products++
		categorySummary.Units += product.Quantity
		categorySummary.StockValue = categorySummary.StockValue.Add(value)
		report.ByCategory[product.Category] = categorySummary
	}

	return report, nil
}

// SalesReport aggregates orders, optionally limited to a creation date
// range. Top products are ranked by quantity sold, ties broken by name.
func (s *reportService) SalesReport(ctx context.Context, from, to *time.Time) (*domain.SalesReport, error) {
	if s.orderRepo == nil {
		return nil, fmt.Errorf("%w: order book", ErrReportSourceMissing)
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: %s is after %s", apperrors.ErrInvalidRange, from.Format(dateLayout), to.Format(dateLayout))
	}

	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load orders for sales report")
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	report := &domain.SalesReport{
		From:         from,
		To:           to,
		GeneratedAt:  time.Now().UTC(),
		TotalSales:   decimal.Zero,
		ProductSales: make(map[string]domain.ProductSales),
	}

	for _, order := range orders {
		created := time.Date(order.CreatedAt.Year(), order.CreatedAt.Month(), order.CreatedAt.Day(), 0, 0, 0, 0, time.UTC)
		if from != nil && created.Before(time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)) {
			continue
		}
		if to != nil && created.After(time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)) {
			continue
		}

		report.TotalOrders++
		report.TotalSales = report.TotalSales.Add(order.Total)
		switch order.Status {
		case domain.OrderCompleted:
			report.CompletedOrders++
		case domain.OrderPending:
			report.PendingOrders++
		}

		for _, item := range order.Items {
			sales := report.ProductSales[item.ProductName]
			sales.ProductName = item.ProductName
			sales.Quantity += item.Quantity
			sales.Value = sales.Value.Add(item.LineTotal())
			report.ProductSales[item.ProductName] = sales
		}
	}

	ranked := make([]domain.ProductSales, 0, len(report.ProductSales))
	for _, sales := range report.ProductSales {
		ranked = append(ranked, sales)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].ProductName < ranked[j].ProductName
	})
	if len(ranked) > SalesTopProductCount {
		ranked = ranked[:SalesTopProductCount]
	}
	report.TopProducts = ranked

	return report, nil
}
