package export

import (
	"bytes"
	"testing"
	"time"

	"property_manager/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_WritePaymentsReport(t *testing.T) {
	paidAt := time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC)
	views := []entities.PaymentView{
		{
			Payment: entities.Payment{
				ID:         "pay-1",
				LeaseID:    "lease-1",
				Amount:     decimal.RequireFromString("1500.50"),
				DueDate:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
				PaidAt:     &paidAt,
				Status:     entities.PaymentStatusPaid,
				GatewayRef: "cs_test_1",
			},
			EffectiveStatus: entities.PaymentStatusPaid,
		},
		{
			Payment: entities.Payment{
				ID:      "pay-2",
				LeaseID: "lease-1",
				Amount:  decimal.RequireFromString("1500.50"),
				DueDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
				Status:  entities.PaymentStatusPending,
			},
			EffectiveStatus: entities.PaymentStatusLate,
		},
	}
	series := []entities.MonthlyBucket{
		{Month: "2024-03", Expected: decimal.RequireFromString("1500.50"), Collected: decimal.RequireFromString("1500.50")},
		{Month: "2024-04", Expected: decimal.RequireFromString("1500.50"), Collected: decimal.Zero},
	}

	var buf bytes.Buffer
	require.NoError(t, NewXLSXExporter().WritePaymentsReport(&buf, views, series))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{PaymentsSheet, MonthlySheet}, f.GetSheetList())

	rows, err := f.GetRows(PaymentsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "Payment ID", rows[0][0])
	require.Equal(t, []string{"pay-1", "lease-1", "2024-03-01", "1500.5", "PAID", "PAID", "2024-03-02T10:00:00Z", "cs_test_1"}, rows[1])
	require.Equal(t, "LATE", rows[2][4])
	require.Equal(t, "PENDING", rows[2][5])

	monthly, err := f.GetRows(MonthlySheet)
	require.NoError(t, err)
	require.Len(t, monthly, 3)
	require.Equal(t, []string{"2024-04", "1500.5", "0", "1500.5"}, monthly[2])
}

func TestXLSXExporter_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewXLSXExporter().WritePaymentsReport(&buf, nil, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(PaymentsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
