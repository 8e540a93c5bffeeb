package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/utils"
)

const (
	summarySheet     = "Summary"
	payablesSheet    = "Payables by Category"
	receivablesSheet = "Receivables by Category"
)

// exportService renders stored data into downloadable documents.
type exportService struct {
	BaseService
	reportingSvc portssvc.ReportingService
	orderSvc     portssvc.OrderReaderSvc
	clientSvc    portssvc.ClientReaderSvc
}

// NewExportService creates a new ExportService.
func NewExportService(reportingSvc portssvc.ReportingService, orderSvc portssvc.OrderReaderSvc, clientSvc portssvc.ClientReaderSvc) portssvc.ExportSvcFacade {
	return &exportService{
		reportingSvc: reportingSvc,
		orderSvc:     orderSvc,
		clientSvc:    clientSvc,
	}
}

// Ensure exportService implements the portssvc.ExportSvcFacade interface
var _ portssvc.ExportSvcFacade = (*exportService)(nil)

// FinancialReportXLSX renders the financial summary and both category
// breakdowns into an Excel workbook.
// Implements portssvc.ExportSvcFacade
func (s *exportService) FinancialReportXLSX(ctx context.Context) ([]byte, string, error) {
	now := time.Now().UTC()

	summary, err := s.reportingSvc.FinancialSummary(ctx, now)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build financial summary: %w", err)
	}
	payables, err := s.reportingSvc.CategoryBreakdown(ctx, domain.KindPayable, now)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build payables breakdown: %w", err)
	}
	receivables, err := s.reportingSvc.CategoryBreakdown(ctx, domain.KindReceivable, now)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build receivables breakdown: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", summarySheet)

	writeSummarySheet(f, summary)
	if err := writeBreakdownSheet(f, payablesSheet, payables); err != nil {
		return nil, "", fmt.Errorf("failed to write payables sheet: %w", err)
	}
	if err := writeBreakdownSheet(f, receivablesSheet, receivables); err != nil {
		return nil, "", fmt.Errorf("failed to write receivables sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.LogError(ctx, err, "Failed to render financial workbook")
		return nil, "", fmt.Errorf("failed to render financial workbook: %w", err)
	}

	filename := fmt.Sprintf("financial_report_%s.xlsx", now.Format("20060102_150405"))
	s.LogInfo(ctx, "Financial workbook rendered", slog.String("filename", filename), slog.Int("bytes", buf.Len()))
	return buf.Bytes(), filename, nil
}

// writeSummarySheet fills the headline sheet: one block per ledger side and
// the two balances.
func writeSummarySheet(f *excelize.File, summary *domain.FinancialSummary) {
	f.SetCellValue(summarySheet, "A1", "Financial Report")
	f.SetCellValue(summarySheet, "B1", summary.AsOf.Format("2006-01-02"))

	f.SetCellValue(summarySheet, "A3", "")
	f.SetCellValue(summarySheet, "B3", "Payables")
	f.SetCellValue(summarySheet, "C3", "Receivables")

	rows := []struct {
		label      string
		payable    any
		receivable any
	}{
		{"Total", summary.Payables.TotalAmount.InexactFloat64(), summary.Receivables.TotalAmount.InexactFloat64()},
		{"Pending", summary.Payables.PendingAmount.InexactFloat64(), summary.Receivables.PendingAmount.InexactFloat64()},
		{"Settled", summary.Payables.SettledAmount.InexactFloat64(), summary.Receivables.SettledAmount.InexactFloat64()},
		{"Overdue", summary.Payables.OverdueAmount.InexactFloat64(), summary.Receivables.OverdueAmount.InexactFloat64()},
		{"Entries", summary.Payables.EntryCount, summary.Receivables.EntryCount},
		{"Pending entries", summary.Payables.PendingCount, summary.Receivables.PendingCount},
		{"Settled entries", summary.Payables.SettledCount, summary.Receivables.SettledCount},
		{"Overdue entries", summary.Payables.OverdueCount, summary.Receivables.OverdueCount},
	}
	for i, row := range rows {
		f.SetCellValue(summarySheet, "A"+fmt.Sprint(i+4), row.label)
		f.SetCellValue(summarySheet, "B"+fmt.Sprint(i+4), row.payable)
		f.SetCellValue(summarySheet, "C"+fmt.Sprint(i+4), row.receivable)
	}

	f.SetCellValue(summarySheet, "A13", "Current balance")
	f.SetCellValue(summarySheet, "B13", summary.CurrentBalance.InexactFloat64())
	f.SetCellValue(summarySheet, "A14", "Projected balance")
	f.SetCellValue(summarySheet, "B14", summary.ProjectedBalance.InexactFloat64())
}

// writeBreakdownSheet fills one sheet with the category rows of one ledger
// side.
func writeBreakdownSheet(f *excelize.File, sheet string, breakdown *domain.CategoryBreakdown) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Code", "Category", "Nature", "Total", "Pending", "Settled", "Entries"}
	col := 'A'
	for _, h := range headers {
		f.SetCellValue(sheet, string(col)+"1", h)
		col++
	}

	for i, row := range breakdown.Rows {
		line := fmt.Sprint(i + 2)
		f.SetCellValue(sheet, "A"+line, row.Code)
		f.SetCellValue(sheet, "B"+line, row.DisplayName)
		f.SetCellValue(sheet, "C"+line, string(row.Nature))
		f.SetCellValue(sheet, "D"+line, row.TotalAmount.InexactFloat64())
		f.SetCellValue(sheet, "E"+line, row.PendingAmount.InexactFloat64())
		f.SetCellValue(sheet, "F"+line, row.SettledAmount.InexactFloat64())
		f.SetCellValue(sheet, "G"+line, row.EntryCount)
	}
	return nil
}

// OrderReceiptPDF renders a printable A4 receipt for one order.
// Implements portssvc.ExportSvcFacade
func (s *exportService) OrderReceiptPDF(ctx context.Context, orderCode string) ([]byte, string, error) {
	order, err := s.orderSvc.GetOrderByCode(ctx, orderCode)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load order for receipt: %w", err)
	}

	// A retired client still has a name on the order snapshot; the contact
	// block is just left empty then.
	client, err := s.clientSvc.GetClientByID(ctx, order.ClientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("failed to load client for receipt: %w", err)
		}
		client = &domain.Client{ClientID: order.ClientID, Name: order.ClientName}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "SALES RECEIPT", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	receiptRow(pdf, tr, "Order code:", order.Code)
	receiptRow(pdf, tr, "Date:", order.CreatedAt.Format("2006-01-02 15:04:05"))
	receiptRow(pdf, tr, "Status:", string(order.Status))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "CLIENT", "", 1, "L", false, 0, "")
	pdf.Ln(2)
	receiptRow(pdf, tr, "Name:", client.Name)
	receiptRow(pdf, tr, "Email:", client.Email)
	receiptRow(pdf, tr, "Phone:", client.Phone)
	address := client.Address
	if address == "" {
		address = "Not provided"
	}
	receiptRow(pdf, tr, "Address:", address)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "ORDER ITEMS", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(80, 7, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Subtotal", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range order.Items {
		pdf.CellFormat(80, 7, tr(item.ProductName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprint(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, utils.FormatBRL(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, utils.FormatBRL(item.LineTotal()), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(105, 8, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "TOTAL:", "T", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, utils.FormatBRL(order.Total), "T", 1, "R", false, 0, "")

	if order.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, "NOTES", "", 1, "L", false, 0, "")
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(order.Notes), "", "L", false)
	}

	pdf.Ln(14)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Signature: _________________________", "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.CellFormat(0, 6, "Date: "+time.Now().Format("02/01/2006"), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.LogError(ctx, err, "Failed to render receipt", slog.String("code", orderCode))
		return nil, "", fmt.Errorf("failed to render receipt: %w", err)
	}

	filename := fmt.Sprintf("receipt_%s_%s.pdf", order.Code, time.Now().Format("20060102_150405"))
	s.LogInfo(ctx, "Receipt rendered", slog.String("code", order.Code), slog.String("filename", filename))
	return buf.Bytes(), filename, nil
}

// receiptRow writes one label/value line of an info block.
func receiptRow(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
}
