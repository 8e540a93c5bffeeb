package services

import "context"

// ExportSvcFacade defines operations that render stored data into
// downloadable documents.
type ExportSvcFacade interface {
	// FinancialReportXLSX renders both ledger sides and the summary into an
	// Excel workbook. Returns the workbook bytes and a suggested filename.
	FinancialReportXLSX(ctx context.Context) ([]byte, string, error)

	// OrderReceiptPDF renders a printable receipt for one order. Returns the
	// document bytes and a suggested filename.
	OrderReceiptPDF(ctx context.Context, orderCode string) ([]byte, string, error)
}
