package dto

import (
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSideSummaryResponse represents the aggregates of one ledger side in a report.
type LedgerSideSummaryResponse struct {
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	SettledAmount decimal.Decimal `json:"settledAmount"`
	OverdueAmount decimal.Decimal `json:"overdueAmount"`
	EntryCount    int             `json:"entryCount"`
	PendingCount  int             `json:"pendingCount"`
	SettledCount  int             `json:"settledCount"`
	OverdueCount  int             `json:"overdueCount"`
}

// FinancialSummaryResponse represents the headline financial report response.
type FinancialSummaryResponse struct {
	AsOf        string                    `json:"asOf"`
	Payables    LedgerSideSummaryResponse `json:"payables"`
	Receivables LedgerSideSummaryResponse `json:"receivables"`
	Summary     struct {
		CurrentBalance   decimal.Decimal `json:"currentBalance"`
		ProjectedBalance decimal.Decimal `json:"projectedBalance"`
	} `json:"summary"`
}

// PeriodReportResponse represents the financial summary of a date range.
type PeriodReportResponse struct {
	FromDate string                   `json:"fromDate"`
	ToDate   string                   `json:"toDate"`
	Report   FinancialSummaryResponse `json:"report"`
}

// CategoryAmountsResponse represents one category row in a breakdown report.
type CategoryAmountsResponse struct {
	Code          string          `json:"code"`
	DisplayName   string          `json:"displayName"`
	Nature        string          `json:"nature"`
	Tag           string          `json:"tag"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	SettledAmount decimal.Decimal `json:"settledAmount"`
	EntryCount    int             `json:"entryCount"`
}

// CategoryBreakdownResponse represents the category breakdown report response.
type CategoryBreakdownResponse struct {
	Kind   string                    `json:"kind"`
	AsOf   string                    `json:"asOf"`
	Rows   []CategoryAmountsResponse `json:"rows"`
	Totals struct {
		TotalAmount decimal.Decimal `json:"totalAmount"`
	} `json:"totals"`
}

// OverdueReportResponse represents the overdue entries report response.
type OverdueReportResponse struct {
	Kind        string                `json:"kind"`
	AsOf        string                `json:"asOf"`
	Entries     []LedgerEntryResponse `json:"entries"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
}

// CashFlowOverviewResponse represents the balance overview response.
type CashFlowOverviewResponse struct {
	AsOf               string          `json:"asOf"`
	CurrentBalance     decimal.Decimal `json:"currentBalance"`
	ProjectedBalance   decimal.Decimal `json:"projectedBalance"`
	PendingPayables    decimal.Decimal `json:"pendingPayables"`
	PendingReceivables decimal.Decimal `json:"pendingReceivables"`
}

// CashFlowSideResponse represents one direction of realized cash flow.
type CashFlowSideResponse struct {
	Entries    []LedgerEntryResponse      `json:"entries"`
	Total      decimal.Decimal            `json:"total"`
	Count      int                        `json:"count"`
	ByCategory map[string]decimal.Decimal `json:"byCategory,omitempty"`
}

// CashFlowResponse represents a realized cash flow report over a window.
// Daily reports set Date; monthly reports set Year and Month; period reports
// set FromDate and ToDate.
type CashFlowResponse struct {
	Date     string               `json:"date,omitempty"`
	Year     int                  `json:"year,omitempty"`
	Month    int                  `json:"month,omitempty"`
	FromDate string               `json:"fromDate,omitempty"`
	ToDate   string               `json:"toDate,omitempty"`
	Inflows  CashFlowSideResponse `json:"inflows"`
	Outflows CashFlowSideResponse `json:"outflows"`
	Net      decimal.Decimal      `json:"net"`
}

// StockCategorySummaryResponse represents the inventory aggregates of one category.
type StockCategorySummaryResponse struct {
	Products   int             `json:"products"`
	Units      int             `json:"units"`
	StockValue decimal.Decimal `json:"stockValue"`
}

// StockReportResponse represents the inventory overview report response.
type StockReportResponse struct {
	AsOf          string                                  `json:"asOf"`
	ProductCount  int                                     `json:"productCount"`
	TotalUnits    int                                     `json:"totalUnits"`
	StockValue    decimal.Decimal                         `json:"stockValue"`
	OutOfStock    int                                     `json:"outOfStock"`
	LowStockCount int                                     `json:"lowStockCount"`
	ByCategory    map[string]StockCategorySummaryResponse `json:"byCategory"`
}

// ProductSalesResponse represents the sales aggregates of one product.
type ProductSalesResponse struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
}

// SalesReportResponse represents the sales report response.
type SalesReportResponse struct {
	FromDate        string                          `json:"fromDate,omitempty"`
	ToDate          string                          `json:"toDate,omitempty"`
	GeneratedAt     string                          `json:"generatedAt"`
	TotalOrders     int                             `json:"totalOrders"`
	TotalSales      decimal.Decimal                 `json:"totalSales"`
	CompletedOrders int                             `json:"completedOrders"`
	PendingOrders   int                             `json:"pendingOrders"`
	ProductSales    map[string]ProductSalesResponse `json:"productSales"`
	TopProducts     []ProductSalesResponse          `json:"topProducts"`
}

func toLedgerSideSummaryResponse(s domain.LedgerSideSummary) LedgerSideSummaryResponse {
	return LedgerSideSummaryResponse{
		TotalAmount:   s.TotalAmount,
		PendingAmount: s.PendingAmount,
		SettledAmount: s.SettledAmount,
		OverdueAmount: s.OverdueAmount,
		EntryCount:    s.EntryCount,
		PendingCount:  s.PendingCount,
		SettledCount:  s.SettledCount,
		OverdueCount:  s.OverdueCount,
	}
}

// ToFinancialSummaryResponse converts a domain.FinancialSummary to a DTO response.
func ToFinancialSummaryResponse(summary *domain.FinancialSummary) FinancialSummaryResponse {
	response := FinancialSummaryResponse{
		AsOf:        summary.AsOf.Format("2006-01-02"),
		Payables:    toLedgerSideSummaryResponse(summary.Payables),
		Receivables: toLedgerSideSummaryResponse(summary.Receivables),
	}
	response.Summary.CurrentBalance = summary.CurrentBalance
	response.Summary.ProjectedBalance = summary.ProjectedBalance
	return response
}

// ToPeriodReportResponse converts a domain.PeriodReport to a DTO response.
func ToPeriodReportResponse(report *domain.PeriodReport) PeriodReportResponse {
	return PeriodReportResponse{
		FromDate: report.From.Format("2006-01-02"),
		ToDate:   report.To.Format("2006-01-02"),
		Report:   ToFinancialSummaryResponse(&report.Summary),
	}
}

// ToCategoryBreakdownResponse converts a domain.CategoryBreakdown to a DTO response.
func ToCategoryBreakdownResponse(breakdown *domain.CategoryBreakdown) CategoryBreakdownResponse {
	response := CategoryBreakdownResponse{
		Kind: string(breakdown.Kind),
		AsOf: breakdown.AsOf.Format("2006-01-02"),
		Rows: make([]CategoryAmountsResponse, len(breakdown.Rows)),
	}

	total := decimal.Zero
	for i, row := range breakdown.Rows {
		response.Rows[i] = CategoryAmountsResponse{
			Code:          row.Code,
			DisplayName:   row.DisplayName,
			Nature:        string(row.Nature),
			Tag:           row.Tag,
			TotalAmount:   row.TotalAmount,
			PendingAmount: row.PendingAmount,
			SettledAmount: row.SettledAmount,
			EntryCount:    row.EntryCount,
		}
		total = total.Add(row.TotalAmount)
	}
	response.Totals.TotalAmount = total

	return response
}

// ToOverdueReportResponse converts a domain.OverdueReport to a DTO response.
func ToOverdueReportResponse(report *domain.OverdueReport) OverdueReportResponse {
	return OverdueReportResponse{
		Kind:        string(report.Kind),
		AsOf:        report.AsOf.Format("2006-01-02"),
		Entries:     ToLedgerEntryResponses(report.Entries),
		TotalAmount: report.TotalAmount,
	}
}

// ToCashFlowOverviewResponse converts a domain.CashFlowOverview to a DTO response.
func ToCashFlowOverviewResponse(overview *domain.CashFlowOverview) CashFlowOverviewResponse {
	return CashFlowOverviewResponse{
		AsOf:               overview.AsOf.Format("2006-01-02"),
		CurrentBalance:     overview.CurrentBalance,
		ProjectedBalance:   overview.ProjectedBalance,
		PendingPayables:    overview.PendingPayables,
		PendingReceivables: overview.PendingReceivables,
	}
}

func toCashFlowSideResponse(side domain.CashFlowSide) CashFlowSideResponse {
	return CashFlowSideResponse{
		Entries:    ToLedgerEntryResponses(side.Entries),
		Total:      side.Total,
		Count:      side.Count,
		ByCategory: side.ByCategory,
	}
}

// ToDailyCashFlowResponse converts a domain.DailyCashFlow to a DTO response.
func ToDailyCashFlowResponse(flow *domain.DailyCashFlow) CashFlowResponse {
	return CashFlowResponse{
		Date:     flow.Date.Format("2006-01-02"),
		Inflows:  toCashFlowSideResponse(flow.Inflows),
		Outflows: toCashFlowSideResponse(flow.Outflows),
		Net:      flow.Net,
	}
}

// ToMonthlyCashFlowResponse converts a domain.MonthlyCashFlow to a DTO response.
func ToMonthlyCashFlowResponse(flow *domain.MonthlyCashFlow) CashFlowResponse {
	return CashFlowResponse{
		Year:     flow.Year,
		Month:    int(flow.Month),
		FromDate: flow.From.Format("2006-01-02"),
		ToDate:   flow.To.Format("2006-01-02"),
		Inflows:  toCashFlowSideResponse(flow.Inflows),
		Outflows: toCashFlowSideResponse(flow.Outflows),
		Net:      flow.Net,
	}
}

// ToPeriodCashFlowResponse converts a domain.PeriodCashFlow to a DTO response.
func ToPeriodCashFlowResponse(flow *domain.PeriodCashFlow) CashFlowResponse {
	return CashFlowResponse{
		FromDate: flow.From.Format("2006-01-02"),
		ToDate:   flow.To.Format("2006-01-02"),
		Inflows:  toCashFlowSideResponse(flow.Inflows),
		Outflows: toCashFlowSideResponse(flow.Outflows),
		Net:      flow.Net,
	}
}

// ToStockReportResponse converts a domain.StockReport to a DTO response.
func ToStockReportResponse(report *domain.StockReport) StockReportResponse {
	byCategory := make(map[string]StockCategorySummaryResponse, len(report.ByCategory))
	for category, summary := range report.ByCategory {
		byCategory[category] = StockCategorySummaryResponse{
			Products:   summary.Products,
			Units:      summary.Units,
			StockValue: summary.StockValue,
		}
	}
	return StockReportResponse{
		AsOf:          report.AsOf.Format("2006-01-02"),
		ProductCount:  report.ProductCount,
		TotalUnits:    report.TotalUnits,
		StockValue:    report.StockValue,
		OutOfStock:    report.OutOfStock,
		LowStockCount: report.LowStockCount,
		ByCategory:    byCategory,
	}
}

func toProductSalesResponse(sales domain.ProductSales) ProductSalesResponse {
	return ProductSalesResponse{
		ProductName: sales.ProductName,
		Quantity:    sales.Quantity,
		Value:       sales.Value,
	}
}

// ToSalesReportResponse converts a domain.SalesReport to a DTO response.
func ToSalesReportResponse(report *domain.SalesReport) SalesReportResponse {
	productSales := make(map[string]ProductSalesResponse, len(report.ProductSales))
	for code, sales := range report.ProductSales {
		productSales[code] = toProductSalesResponse(sales)
	}
	topProducts := make([]ProductSalesResponse, len(report.TopProducts))
	for i, sales := range report.TopProducts {
		topProducts[i] = toProductSalesResponse(sales)
	}

	response := SalesReportResponse{
		GeneratedAt:     report.GeneratedAt.Format(time.RFC3339),
		TotalOrders:     report.TotalOrders,
		TotalSales:      report.TotalSales,
		CompletedOrders: report.CompletedOrders,
		PendingOrders:   report.PendingOrders,
		ProductSales:    productSales,
		TopProducts:     topProducts,
	}
	if report.From != nil {
		response.FromDate = report.From.Format("2006-01-02")
	}
	if report.To != nil {
		response.ToDate = report.To.Format("2006-01-02")
	}
	return response
}
