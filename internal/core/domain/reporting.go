package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerSideSummary aggregates one side of the ledger (payables or
// receivables) over the active entries in scope.
type LedgerSideSummary struct {
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	SettledAmount decimal.Decimal `json:"settledAmount"`
	OverdueAmount decimal.Decimal `json:"overdueAmount"`
	EntryCount    int             `json:"entryCount"`
	PendingCount  int             `json:"pendingCount"`
	SettledCount  int             `json:"settledCount"`
	OverdueCount  int             `json:"overdueCount"`
}

// FinancialSummary is the headline financial report.
// CurrentBalance is settled receivables minus settled payables;
// ProjectedBalance additionally nets all pending amounts.
type FinancialSummary struct {
	AsOf             time.Time         `json:"asOf"`
	Payables         LedgerSideSummary `json:"payables"`
	Receivables      LedgerSideSummary `json:"receivables"`
	CurrentBalance   decimal.Decimal   `json:"currentBalance"`
	ProjectedBalance decimal.Decimal   `json:"projectedBalance"`
}

// PeriodReport is a FinancialSummary restricted to entries whose due date
// falls within [From, To], both inclusive.
type PeriodReport struct {
	From    time.Time        `json:"from"`
	To      time.Time        `json:"to"`
	Summary FinancialSummary `json:"summary"`
}

// CategoryAmounts is one row of a category breakdown.
type CategoryAmounts struct {
	Code          string          `json:"code"`
	DisplayName   string          `json:"displayName"`
	Nature        CategoryNature  `json:"nature"`
	Tag           string          `json:"tag"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	SettledAmount decimal.Decimal `json:"settledAmount"`
	EntryCount    int             `json:"entryCount"`
}

// CategoryBreakdown groups one ledger side by category, rows in the
// registry's declared order.
type CategoryBreakdown struct {
	Kind LedgerKind        `json:"kind"`
	AsOf time.Time         `json:"asOf"`
	Rows []CategoryAmounts `json:"rows"`
}

// OverdueReport lists the overdue entries of one ledger side, oldest due
// date first, ties broken by entry ID.
type OverdueReport struct {
	Kind        LedgerKind      `json:"kind"`
	AsOf        time.Time       `json:"asOf"`
	Entries     []LedgerEntry   `json:"entries"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// CashFlowOverview reports the current and projected balances together
// with the pending deltas that separate them.
type CashFlowOverview struct {
	AsOf               time.Time       `json:"asOf"`
	CurrentBalance     decimal.Decimal `json:"currentBalance"`
	ProjectedBalance   decimal.Decimal `json:"projectedBalance"`
	PendingPayables    decimal.Decimal `json:"pendingPayables"`
	PendingReceivables decimal.Decimal `json:"pendingReceivables"`
}

// CashFlowSide is one direction of realized cash flow: the settled entries
// whose settlement date fell in the window, with their total.
type CashFlowSide struct {
	Entries    []LedgerEntry              `json:"entries"`
	Total      decimal.Decimal            `json:"total"`
	Count      int                        `json:"count"`
	ByCategory map[string]decimal.Decimal `json:"byCategory,omitempty"`
}

// DailyCashFlow is the realized cash flow of a single day.
type DailyCashFlow struct {
	Date     time.Time       `json:"date"`
	Inflows  CashFlowSide    `json:"inflows"`
	Outflows CashFlowSide    `json:"outflows"`
	Net      decimal.Decimal `json:"net"`
}

// MonthlyCashFlow is the realized cash flow of a calendar month, with
// per-category totals on both sides.
type MonthlyCashFlow struct {
	Year     int             `json:"year"`
	Month    time.Month      `json:"month"`
	From     time.Time       `json:"from"`
	To       time.Time       `json:"to"`
	Inflows  CashFlowSide    `json:"inflows"`
	Outflows CashFlowSide    `json:"outflows"`
	Net      decimal.Decimal `json:"net"`
}

// PeriodCashFlow is the realized cash flow between two dates, inclusive.
type PeriodCashFlow struct {
	From     time.Time       `json:"from"`
	To       time.Time       `json:"to"`
	Inflows  CashFlowSide    `json:"inflows"`
	Outflows CashFlowSide    `json:"outflows"`
	Net      decimal.Decimal `json:"net"`
}

// DueAlerts groups the pending entries of one ledger side that need
// attention, by urgency.
type DueAlerts struct {
	AsOf     time.Time     `json:"asOf"`
	Overdue  []LedgerEntry `json:"overdue"`
	DueToday []LedgerEntry `json:"dueToday"`
	DueSoon  []LedgerEntry `json:"dueSoon"`
}

// StockCategorySummary aggregates inventory figures for one product
// category.
type StockCategorySummary struct {
	Products   int             `json:"products"`
	Units      int             `json:"units"`
	StockValue decimal.Decimal `json:"stockValue"`
}

// StockReport is the inventory overview: counts, total stock value at
// current unit prices, and per-category aggregates.
type StockReport struct {
	AsOf          time.Time                       `json:"asOf"`
	ProductCount  int                             `json:"productCount"`
	TotalUnits    int                             `json:"totalUnits"`
	StockValue    decimal.Decimal                 `json:"stockValue"`
	OutOfStock    int                             `json:"outOfStock"`
	LowStockCount int                             `json:"lowStockCount"`
	ByCategory    map[string]StockCategorySummary `json:"byCategory"`
}

// ProductSales aggregates the sold quantity and value of one product
// within a sales report.
type ProductSales struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
}

// SalesReport summarizes orders, optionally restricted to a creation-date
// range. TopProducts holds up to five products by quantity sold.
type SalesReport struct {
	From            *time.Time              `json:"from,omitempty"`
	To              *time.Time              `json:"to,omitempty"`
	GeneratedAt     time.Time               `json:"generatedAt"`
	TotalOrders     int                     `json:"totalOrders"`
	TotalSales      decimal.Decimal         `json:"totalSales"`
	CompletedOrders int                     `json:"completedOrders"`
	PendingOrders   int                     `json:"pendingOrders"`
	ProductSales    map[string]ProductSales `json:"productSales"`
	TopProducts     []ProductSales          `json:"topProducts"`
}
