// Package report renders a ready dashboard as a downloadable document.
package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// Format is an export document format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat accepts "xlsx" or "pdf"; empty means xlsx.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", domain.NewValidationError("format", "must be xlsx or pdf")
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Filename returns the attachment name for a report generated at t.
func (f Format) Filename(t time.Time) string {
	return "dashboard-" + t.Format("2006-01-02") + "." + string(f)
}

// Build renders the dashboard in the given format.
func Build(f Format, dash domain.Dashboard, generatedAt time.Time) ([]byte, error) {
	if !dash.IsReady() {
		return nil, fmt.Errorf("build report: %w", domain.ErrUnavailable)
	}
	switch f {
	case FormatPDF:
		return BuildPDF(dash, generatedAt)
	case FormatXLSX:
		return BuildXLSX(dash, generatedAt)
	}
	return nil, domain.NewValidationError("format", "must be xlsx or pdf")
}

type metricRow struct {
	label string
	value any
}

func metricRows(m domain.Metrics) []metricRow {
	return []metricRow{
		{"Active quotes", m.ActiveQuotes},
		{"Pending quote value", m.PendingQuoteValue},
		{"Overdue invoices", m.OverdueInvoices},
		{"Overdue value", m.OverdueValue},
		{"Study streak (days)", m.StudyStreak},
		{"Studied today", m.StudiedToday},
		{"Certificates", m.Certificates},
		{"Certificates expiring", m.CertificatesExpiring},
		{"Certificates expired", m.CertificatesExpired},
	}
}

func amountText(a *decimal.Decimal) string {
	if a == nil {
		return ""
	}
	return a.StringFixed(2)
}

// ---------------------------------------------------------------------------
// PDF
// ---------------------------------------------------------------------------

// BuildPDF renders a one-page PDF summary with a metrics block and the
// action queue as a table.
func BuildPDF(dash domain.Dashboard, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, "Dashboard Summary")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Generated: "+generatedAt.Format(time.RFC3339))
	pdf.Ln(8)

	for _, row := range metricRows(dash.Metrics) {
		pdf.CellFormat(70, 6, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, pdfValue(row.value), "", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	q := dash.Actions
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Actions (%d of %d)", len(q.Items), q.Total))
	pdf.Ln(8)

	if q.AllClear() {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, "All clear. Nothing needs your attention.")
		pdf.Ln(-1)
	} else {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(22, 6, "Priority", "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 6, "Action", "1", 0, "C", false, 0, "")
		pdf.CellFormat(75, 6, "Details", "1", 0, "C", false, 0, "")
		pdf.CellFormat(23, 6, "Amount", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
		for _, item := range q.Items {
			pdf.CellFormat(22, 6, item.Type.String(), "1", 0, "C", false, 0, "")
			pdf.CellFormat(70, 6, tr(item.Title), "1", 0, "L", false, 0, "")
			pdf.CellFormat(75, 6, tr(item.Description), "1", 0, "L", false, 0, "")
			pdf.CellFormat(23, 6, amountText(item.Amount), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
		if q.Remaining > 0 {
			pdf.Ln(2)
			pdf.Cell(0, 6, fmt.Sprintf("+%d more", q.Remaining))
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfValue(v any) string {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.StringFixed(2)
	case bool:
		if x {
			return "yes"
		}
		return "no"
	case int:
		return strconv.Itoa(x)
	}
	return fmt.Sprint(v)
}

// ---------------------------------------------------------------------------
// XLSX
// ---------------------------------------------------------------------------

const (
	summarySheet = "summary"
	actionsSheet = "actions"
)

// BuildXLSX renders a workbook with a summary sheet of metrics and an
// actions sheet listing every returned action item.
func BuildXLSX(dash domain.Dashboard, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(actionsSheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	_ = f.SetCellValue(summarySheet, "A1", "Dashboard Summary")
	_ = f.SetCellValue(summarySheet, "A2", "Generated")
	_ = f.SetCellValue(summarySheet, "B2", generatedAt.Format(time.RFC3339))
	for i, row := range metricRows(dash.Metrics) {
		r := i + 4
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", r), row.label)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", r), xlsxValue(row.value))
	}

	q := dash.Actions
	_ = f.SetCellValue(actionsSheet, "A1", "Priority")
	_ = f.SetCellValue(actionsSheet, "B1", "Title")
	_ = f.SetCellValue(actionsSheet, "C1", "Description")
	_ = f.SetCellValue(actionsSheet, "D1", "Amount")
	_ = f.SetCellValue(actionsSheet, "E1", "Days overdue")
	_ = f.SetCellValue(actionsSheet, "F1", "Route")
	for i, item := range q.Items {
		r := i + 2
		_ = f.SetCellValue(actionsSheet, fmt.Sprintf("A%d", r), item.Type.String())
		_ = f.SetCellValue(actionsSheet, fmt.Sprintf("B%d", r), item.Title)
		_ = f.SetCellValue(actionsSheet, fmt.Sprintf("C%d", r), item.Description)
		if item.Amount != nil {
			_ = f.SetCellValue(actionsSheet, fmt.Sprintf("D%d", r), item.Amount.InexactFloat64())
		}
		if item.DaysOverdue > 0 {
			_ = f.SetCellValue(actionsSheet, fmt.Sprintf("E%d", r), item.DaysOverdue)
		}
		_ = f.SetCellValue(actionsSheet, fmt.Sprintf("F%d", r), item.Route)
	}
	footer := len(q.Items) + 3
	_ = f.SetCellValue(actionsSheet, fmt.Sprintf("A%d", footer), "Total")
	_ = f.SetCellValue(actionsSheet, fmt.Sprintf("B%d", footer), q.Total)
	_ = f.SetCellValue(actionsSheet, fmt.Sprintf("A%d", footer+1), "Remaining")
	_ = f.SetCellValue(actionsSheet, fmt.Sprintf("B%d", footer+1), q.Remaining)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func xlsxValue(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return v
}
