package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/services"
)

// --- Test Suite ---
type ReportServiceTestSuite struct {
	suite.Suite
	mockLedger     *MockLedgerRepository
	mockCategories *MockCategoryRepository
	mockProducts   *MockProductRepository
	mockOrders     *MockOrderRepository
	service        portssvc.ReportingService
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerRepository)
	suite.mockCategories = new(MockCategoryRepository)
	suite.mockProducts = new(MockProductRepository)
	suite.mockOrders = new(MockOrderRepository)
	suite.service = services.NewReportService(
		suite.mockLedger,
		suite.mockCategories,
		services.WithStockData(suite.mockProducts),
		services.WithSalesData(suite.mockOrders),
	)
}

func pendingEntry(kind domain.LedgerKind, id string, amount int64, due time.Time) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:     id,
		Kind:        kind,
		Counterpart: "Counterpart " + id,
		Description: "Description " + id,
		Category:    "other",
		Amount:      decimal.NewFromInt(amount),
		DueDate:     due,
		Status:      domain.SettlementPending,
		IsActive:    true,
	}
}

func settledEntry(kind domain.LedgerKind, id string, amount int64, settledAt time.Time) domain.LedgerEntry {
	entry := pendingEntry(kind, id, amount, settledAt)
	entry.Status = domain.SettlementSettled
	entry.SettledAt = &settledAt
	return entry
}

// --- FinancialSummary ---

func (suite *ReportServiceTestSuite) TestFinancialSummary_Balances() {
	ctx := context.Background()
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	payables := []domain.LedgerEntry{
		pendingEntry(domain.KindPayable, "PAY001", 100, asOf.AddDate(0, 0, -3)), // overdue
		settledEntry(domain.KindPayable, "PAY002", 50, asOf.AddDate(0, 0, -10)),
	}
	receivables := []domain.LedgerEntry{
		settledEntry(domain.KindReceivable, "REC001", 300, asOf.AddDate(0, 0, -1)),
		pendingEntry(domain.KindReceivable, "REC002", 200, asOf.AddDate(0, 0, 5)),
	}

	suite.mockLedger.On("ListEntries", ctx, domain.KindPayable).Return(payables, nil).Once()
	suite.mockLedger.On("ListEntries", ctx, domain.KindReceivable).Return(receivables, nil).Once()

	summary, err := suite.service.FinancialSummary(ctx, asOf)

	suite.Require().NoError(err)
	suite.Equal(2, summary.Payables.EntryCount)
	suite.True(summary.Payables.TotalAmount.Equal(decimal.NewFromInt(150)))
	suite.True(summary.Payables.PendingAmount.Equal(decimal.NewFromInt(100)))
	suite.True(summary.Payables.SettledAmount.Equal(decimal.NewFromInt(50)))
	suite.True(summary.Payables.OverdueAmount.Equal(decimal.NewFromInt(100)))
	suite.Equal(1, summary.Payables.OverdueCount)

	suite.True(summary.Receivables.TotalAmount.Equal(decimal.NewFromInt(500)))
	suite.True(summary.Receivables.SettledAmount.Equal(decimal.NewFromInt(300)))

	// Current nets settled amounts only; projected nets everything.
	suite.True(summary.CurrentBalance.Equal(decimal.NewFromInt(250)))
	suite.True(summary.ProjectedBalance.Equal(decimal.NewFromInt(350)))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestFinancialSummary_DueTodayIsNotOverdue() {
	ctx := context.Background()
	asOf := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

	payables := []domain.LedgerEntry{
		pendingEntry(domain.KindPayable, "PAY001", 80, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockLedger.On("ListEntries", ctx, domain.KindPayable).Return(payables, nil).Once()
	suite.mockLedger.On("ListEntries", ctx, domain.KindReceivable).Return([]domain.LedgerEntry{}, nil).Once()

	summary, err := suite.service.FinancialSummary(ctx, asOf)

	suite.Require().NoError(err)
	suite.Equal(0, summary.Payables.OverdueCount)
	suite.True(summary.Payables.OverdueAmount.IsZero())
}

// --- PeriodSummary ---

func (suite *ReportServiceTestSuite) TestPeriodSummary_FiltersByDueDate() {
	ctx := context.Background()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	payables := []domain.LedgerEntry{
		pendingEntry(domain.KindPayable, "PAY001", 100, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
		pendingEntry(domain.KindPayable, "PAY002", 999, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockLedger.On("ListEntries", ctx, domain.KindPayable).Return(payables, nil).Once()
	suite.mockLedger.On("ListEntries", ctx, domain.KindReceivable).Return([]domain.LedgerEntry{}, nil).Once()

	report, err := suite.service.PeriodSummary(ctx, from, to)

	suite.Require().NoError(err)
	suite.Equal(1, report.Summary.Payables.EntryCount)
	suite.True(report.Summary.Payables.TotalAmount.Equal(decimal.NewFromInt(100)))
}

func (suite *ReportServiceTestSuite) TestPeriodSummary_InvalidRange() {
	ctx := context.Background()
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	report, err := suite.service.PeriodSummary(ctx, from, to)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrInvalidRange)
	suite.mockLedger.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything)
}

// --- CategoryBreakdown ---

func (suite *ReportServiceTestSuite) TestCategoryBreakdown_RegistryOrderThenLeftovers() {
	ctx := context.Background()
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	registry := []domain.Category{
		{Code: "rent", Kind: domain.KindPayable, DisplayName: "Rent", Nature: domain.NatureFixed, Tag: "🔴"},
		{Code: "supplier", Kind: domain.KindPayable, DisplayName: "Suppliers", Nature: domain.NatureVariable, Tag: "🟠"},
	}

	supplier := pendingEntry(domain.KindPayable, "PAY001", 100, asOf)
	supplier.Category = "supplier"
	rentA := pendingEntry(domain.KindPayable, "PAY002", 50, asOf)
	rentA.Category = "rent"
	rentB := settledEntry(domain.KindPayable, "PAY003", 25, asOf)
	rentB.Category = "rent"
	legacy := pendingEntry(domain.KindPayable, "PAY004", 7, asOf)
	legacy.Category = "stationery"

	suite.mockCategories.On("FindCategories", ctx, domain.KindPayable).Return(registry, nil).Once()
	suite.mockLedger.On("ListEntries", ctx, domain.KindPayable).
		Return([]domain.LedgerEntry{supplier, rentA, rentB, legacy}, nil).Once()

	breakdown, err := suite.service.CategoryBreakdown(ctx, domain.KindPayable, asOf)

	suite.Require().NoError(err)
	suite.Require().Len(breakdown.Rows, 3)

	suite.Equal("rent", breakdown.Rows[0].Code)
	suite.Equal("Rent", breakdown.Rows[0].DisplayName)
	suite.Equal(2, breakdown.Rows[0].EntryCount)
	suite.True(breakdown.Rows[0].TotalAmount.Equal(decimal.NewFromInt(75)))
	suite.True(breakdown.Rows[0].PendingAmount.Equal(decimal.NewFromInt(50)))
	suite.True(breakdown.Rows[0].SettledAmount.Equal(decimal.NewFromInt(25)))

	suite.Equal("supplier", breakdown.Rows[1].Code)

	// Codes dropped from the registry still get a trailing row.
	suite.Equal("stationery", breakdown.Rows[2].Code)
	suite.Equal("stationery", breakdown.Rows[2].DisplayName)
	suite.True(breakdown.Rows[2].TotalAmount.Equal(decimal.NewFromInt(7)))
}

// --- OverdueEntries ---

func (suite *ReportServiceTestSuite) TestOverdueEntries_OldestFirst() {
	ctx := context.Background()
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	newer := pendingEntry(domain.KindPayable, "PAY002", 40, asOf.AddDate(0, 0, -1))
	older := pendingEntry(domain.KindPayable, "PAY001", 60, asOf.AddDate(0, 0, -9))
	future := pendingEntry(domain.KindPayable, "PAY003", 999, asOf.AddDate(0, 0, 3))
	settled := settledEntry(domain.KindPayable, "PAY004", 999, asOf.AddDate(0, 0, -20))

	suite.mockLedger.On("ListEntries", ctx, domain.KindPayable).
		Return([]domain.LedgerEntry{newer, older, future, settled}, nil).Once()

	report, err := suite.service.OverdueEntries(ctx, domain.KindPayable, asOf)

	suite.Require().NoError(err)
	suite.Require().Len(report.Entries, 2)
	suite.Equal("PAY001", report.Entries[0].EntryID)
	suite.Equal("PAY002", report.Entries[1].EntryID)
	suite.Equal(domain.UrgencyOverdue, report.Entries[0].Urgency)
	suite.True(report.TotalAmount.Equal(decimal.NewFromInt(100)))
}

// --- Cash Flow ---

func (suite *ReportServiceTestSuite) TestDailyCashFlow_NetsSettledAmounts() {
	ctx := context.Background()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	payables := []domain.LedgerEntry{
		settledEntry(domain.KindPayable, "PAY001", 120, date),
		settledEntry(domain.KindPayable, "PAY002", 999, date.AddDate(0, 0, -1)),
	}
	receivables := []domain.LedgerEntry{
		settledEntry(domain.KindReceivable, "REC001", 500, date),
		pendingEntry(domain.KindReceivable, "REC002", 999, date),
	}

	suite.mockLedger.On("ListEntries", ctx, domain.KindPayable).Return(payables, nil).Once()
	suite.mockLedger.On("ListEntries", ctx, domain.KindReceivable).Return(receivables, nil).Once()

	flow, err := suite.service.DailyCashFlow(ctx, date)

	suite.Require().NoError(err)
	suite.Equal(1, flow.Inflows.Count)
	suite.True(flow.Inflows.Total.Equal(decimal.NewFromInt(500)))
	suite.Equal(1, flow.Outflows.Count)
	suite.True(flow.Outflows.Total.Equal(decimal.NewFromInt(120)))
	suite.True(flow.Net.Equal(decimal.NewFromInt(380)))
}

func (suite *ReportServiceTestSuite) TestMonthlyCashFlow_TotalsPerCategory() {
	ctx := context.Background()
	inMonth := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	nextMonth := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	sale := settledEntry(domain.KindReceivable, "REC001", 300, inMonth)
	sale.Category = "sale"
	service := settledEntry(domain.KindReceivable, "REC002", 150, lastDay)
	service.Category = "service"
	outside := settledEntry(domain.KindReceivable, "REC003", 999, nextMonth)

	suite.mockLedger.On("ListEntries", ctx, domain.KindPayable).Return([]domain.LedgerEntry{}, nil).Once()
	suite.mockLedger.On("ListEntries", ctx, domain.KindReceivable).
		Return([]domain.LedgerEntry{sale, service, outside}, nil).Once()

	flow, err := suite.service.MonthlyCashFlow(ctx, 2025, time.March)

	suite.Require().NoError(err)
	suite.Equal(2, flow.Inflows.Count)
	suite.True(flow.Inflows.Total.Equal(decimal.NewFromInt(450)))
	suite.True(flow.Inflows.ByCategory["sale"].Equal(decimal.NewFromInt(300)))
	suite.True(flow.Inflows.ByCategory["service"].Equal(decimal.NewFromInt(150)))
	suite.True(flow.Net.Equal(decimal.NewFromInt(450)))
}

func (suite *ReportServiceTestSuite) TestMonthlyCashFlow_InvalidMonth() {
	ctx := context.Background()

	flow, err := suite.service.MonthlyCashFlow(ctx, 2025, time.Month(13))

	suite.Require().Error(err)
	suite.Nil(flow)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedger.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything)
}

// --- StockReport ---

func (suite *ReportServiceTestSuite) TestStockReport_Valuation() {
	ctx := context.Background()
	coffee := makeProduct("PRD001", "Coffee Beans 1kg", 10, 5)
	coffee.UnitPrice = decimal.NewFromInt(50)
	milk := makeProduct("PRD002", "Milk 1L", 0, 5)
	milk.UnitPrice = decimal.NewFromInt(6)
	flour := makeProduct("PRD003", "Flour 1kg", 4, 5)
	flour.Category = "Baking"
	flour.UnitPrice = decimal.NewFromInt(8)

	suite.mockProducts.On("ListProducts", ctx).
		Return([]domain.Product{coffee, milk, flour}, nil).Once()

	report, err := suite.service.StockReport(ctx)

	suite.Require().NoError(err)
	suite.Equal(3, report.ProductCount)
	suite.Equal(14, report.TotalUnits)
	suite.True(report.StockValue.Equal(decimal.NewFromInt(532))) // 10*50 + 0*6 + 4*8
	suite.Equal(1, report.OutOfStock)
	suite.Equal(2, report.LowStockCount) // milk at zero, flour under minimum

	suite.Equal(2, report.ByCategory["Beverages"].Products)
	suite.Equal(10, report.ByCategory["Beverages"].Units)
	suite.True(report.ByCategory["Baking"].StockValue.Equal(decimal.NewFromInt(32)))
}

func (suite *ReportServiceTestSuite) TestStockReport_SourceMissing() {
	ctx := context.Background()
	bare := services.NewReportService(suite.mockLedger, suite.mockCategories)

	report, err := bare.StockReport(ctx)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, services.ErrReportSourceMissing)
}

// --- SalesReport ---

func (suite *ReportServiceTestSuite) TestSalesReport_RanksTopProducts() {
	ctx := context.Background()
	now := time.Now().UTC()

	orders := []domain.Order{
		{
			Code: "ORD001", ClientName: "Maria Silva", Status: domain.OrderCompleted,
			Total: decimal.NewFromInt(100),
			Items: []domain.OrderItem{
				{ProductCode: "PRD001", ProductName: "Coffee Beans 1kg", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
			},
			AuditFields: domain.AuditFields{CreatedAt: now},
		},
		{
			Code: "ORD002", ClientName: "Jose Santos", Status: domain.OrderPending,
			Total: decimal.NewFromInt(30),
			Items: []domain.OrderItem{
				{ProductCode: "PRD002", ProductName: "Milk 1L", Quantity: 5, UnitPrice: decimal.NewFromInt(6)},
			},
			AuditFields: domain.AuditFields{CreatedAt: now},
		},
	}

	suite.mockOrders.On("ListOrders", ctx).Return(orders, nil).Once()

	report, err := suite.service.SalesReport(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.Equal(2, report.TotalOrders)
	suite.Equal(1, report.CompletedOrders)
	suite.Equal(1, report.PendingOrders)
	suite.True(report.TotalSales.Equal(decimal.NewFromInt(130)))

	suite.Require().Len(report.TopProducts, 2)
	suite.Equal("Milk 1L", report.TopProducts[0].ProductName) // 5 units beat 2
	suite.Equal(5, report.TopProducts[0].Quantity)
	suite.True(report.TopProducts[0].Value.Equal(decimal.NewFromInt(30)))
}

func (suite *ReportServiceTestSuite) TestSalesReport_DateWindow() {
	ctx := context.Background()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	orders := []domain.Order{
		{
			Code: "ORD001", Status: domain.OrderCompleted, Total: decimal.NewFromInt(100),
			AuditFields: domain.AuditFields{CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)},
		},
		{
			Code: "ORD002", Status: domain.OrderCompleted, Total: decimal.NewFromInt(999),
			AuditFields: domain.AuditFields{CreatedAt: time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)},
		},
	}

	suite.mockOrders.On("ListOrders", ctx).Return(orders, nil).Once()

	report, err := suite.service.SalesReport(ctx, &from, &to)

	suite.Require().NoError(err)
	suite.Equal(1, report.TotalOrders)
	suite.True(report.TotalSales.Equal(decimal.NewFromInt(100)))
}

func (suite *ReportServiceTestSuite) TestSalesReport_SourceMissing() {
	ctx := context.Background()
	bare := services.NewReportService(suite.mockLedger, suite.mockCategories)

	report, err := bare.SalesReport(ctx, nil, nil)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, services.ErrReportSourceMissing)
}

// --- Run Suite ---
func TestReportService(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
