package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"property_manager/internal/domain/entities"
	mock_interfaces "property_manager/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func reportPayments() []entities.Payment {
	paidAt := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)
	return []entities.Payment{
		{ID: "p1", Amount: decimal.RequireFromString("1000"), DueDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Status: entities.PaymentStatusPaid, PaidAt: &paidAt},
		{ID: "p2", Amount: decimal.RequireFromString("1000"), DueDate: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), Status: entities.PaymentStatusPending},
		{ID: "p3", Amount: decimal.RequireFromString("500"), DueDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), Status: entities.PaymentStatusPending},
		{ID: "p4", Amount: decimal.RequireFromString("250"), DueDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), Status: entities.PaymentStatusFailed},
	}
}

func TestPaymentReportUseCase_Summary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		leases := mock_interfaces.NewMockILeaseRepository(ctrl)
		uc := NewPaymentReportUseCase(payments, leases, nil)
		uc.now = func() time.Time { return fixedNow }

		payments.EXPECT().ListByLandlord(gomock.Any(), "landlord-1").Return(reportPayments(), nil)
		leases.EXPECT().CountActiveByLandlord(gomock.Any(), "landlord-1").Return(int64(2), nil)

		got, err := uc.Summary(context.Background(), "landlord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.TotalRevenue.Equal(decimal.RequireFromString("1000")) || got.PendingCount != 1 || got.LateCount != 1 || got.ActiveLeases != 2 {
			t.Fatalf("unexpected summary: %+v", got)
		}
	})

	t.Run("empty landlord", func(t *testing.T) {
		uc := NewPaymentReportUseCase(nil, nil, nil)
		if _, err := uc.Summary(context.Background(), " "); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentReportUseCase(payments, nil, nil)

		payments.EXPECT().ListByLandlord(gomock.Any(), "landlord-1").Return(nil, errors.New("db"))

		if _, err := uc.Summary(context.Background(), "landlord-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPaymentReportUseCase_MonthlySeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewPaymentReportUseCase(payments, nil, nil)

	payments.EXPECT().ListByLandlord(gomock.Any(), "landlord-1").Return(reportPayments(), nil)

	got, err := uc.MonthlySeries(context.Background(), "landlord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(got))
	}
	if got[0].Month != "2024-01" || !got[0].Collected.Equal(decimal.RequireFromString("1000")) {
		t.Fatalf("unexpected first bucket: %+v", got[0])
	}
	if got[2].Month != "2024-04" || !got[2].Expected.Equal(decimal.RequireFromString("750")) || !got[2].Collected.IsZero() {
		t.Fatalf("unexpected last bucket: %+v", got[2])
	}
}

func TestPaymentReportUseCase_Export(t *testing.T) {
	t.Run("writes through exporter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		exporter := mock_interfaces.NewMockIReportExporter(ctrl)
		uc := NewPaymentReportUseCase(payments, nil, exporter)
		uc.now = func() time.Time { return fixedNow }

		payments.EXPECT().ListByLandlord(gomock.Any(), "landlord-1").Return(reportPayments(), nil)
		exporter.EXPECT().WritePaymentsReport(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(w io.Writer, views []entities.PaymentView, series []entities.MonthlyBucket) error {
				if len(views) != 4 || len(series) != 3 {
					t.Fatalf("unexpected report input: %d views, %d buckets", len(views), len(series))
				}
				if views[1].EffectiveStatus != entities.PaymentStatusLate {
					t.Fatalf("expected derived LATE, got %s", views[1].EffectiveStatus)
				}
				_, err := w.Write([]byte("xlsx"))
				return err
			},
		)

		var buf bytes.Buffer
		if err := uc.Export(context.Background(), "landlord-1", &buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "xlsx" {
			t.Fatalf("unexpected output %q", buf.String())
		}
	})

	t.Run("no exporter", func(t *testing.T) {
		uc := NewPaymentReportUseCase(nil, nil, nil)
		if err := uc.Export(context.Background(), "landlord-1", io.Discard); err == nil {
			t.Fatalf("expected error")
		}
	})
}
