package export

import (
	"fmt"
	"io"
	"time"

	"property_manager/internal/domain/entities"
	"property_manager/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	PaymentsSheet = "Payments"
	MonthlySheet  = "Monthly"

	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// XLSXExporter renders the landlord report as a two-sheet workbook.
type XLSXExporter struct{}

var _ interfaces.IReportExporter = XLSXExporter{}

func NewXLSXExporter() XLSXExporter { return XLSXExporter{} }

func (XLSXExporter) WritePaymentsReport(w io.Writer, payments []entities.PaymentView, series []entities.MonthlyBucket) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PaymentsSheet); err != nil {
		return err
	}
	if err := writePaymentsSheet(f, payments); err != nil {
		return fmt.Errorf("write %s sheet: %w", PaymentsSheet, err)
	}

	if _, err := f.NewSheet(MonthlySheet); err != nil {
		return err
	}
	if err := writeMonthlySheet(f, series); err != nil {
		return fmt.Errorf("write %s sheet: %w", MonthlySheet, err)
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

func writePaymentsSheet(f *excelize.File, payments []entities.PaymentView) error {
	header := []any{"Payment ID", "Lease ID", "Due Date", "Amount", "Status", "Stored Status", "Paid At", "Gateway Ref"}
	if err := f.SetSheetRow(PaymentsSheet, "A1", &header); err != nil {
		return err
	}

	for i, p := range payments {
		paidAt := ""
		if p.PaidAt != nil {
			paidAt = p.PaidAt.UTC().Format(time.RFC3339)
		}
		amount, _ := p.Amount.Float64()
		row := []any{
			p.ID,
			p.LeaseID,
			p.DueDate.UTC().Format("2006-01-02"),
			amount,
			string(p.EffectiveStatus),
			string(p.Status),
			paidAt,
			p.GatewayRef,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(PaymentsSheet, cell, &row); err != nil {
			return err
		}
	}

	widths := map[string]float64{"A": 38, "B": 38, "C": 12, "D": 12, "E": 10, "F": 14, "G": 22, "H": 30}
	for col, width := range widths {
		if err := f.SetColWidth(PaymentsSheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func writeMonthlySheet(f *excelize.File, series []entities.MonthlyBucket) error {
	header := []any{"Month", "Expected", "Collected", "Outstanding"}
	if err := f.SetSheetRow(MonthlySheet, "A1", &header); err != nil {
		return err
	}

	for i, b := range series {
		expected, _ := b.Expected.Float64()
		collected, _ := b.Collected.Float64()
		outstanding, _ := b.Expected.Sub(b.Collected).Float64()
		row := []any{b.Month, expected, collected, outstanding}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(MonthlySheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(MonthlySheet, "A", "D", 14)
}
