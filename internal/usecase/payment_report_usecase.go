package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"property_manager/internal/domain/entities"
	"property_manager/internal/infrastructure/logging"
	"property_manager/internal/usecase/interfaces"
)

// IPaymentReportUseCase computes landlord rollups on every read.
// Nothing here is persisted or cached.

type IPaymentReportUseCase interface {
	Summary(ctx context.Context, landlordID string) (entities.PaymentSummary, error)
	MonthlySeries(ctx context.Context, landlordID string) ([]entities.MonthlyBucket, error)
	Export(ctx context.Context, landlordID string, w io.Writer) error
}

type PaymentReportUseCase struct {
	payments interfaces.IPaymentRepository
	leases   interfaces.ILeaseRepository
	exporter interfaces.IReportExporter
	now      func() time.Time
}

var _ IPaymentReportUseCase = (*PaymentReportUseCase)(nil)

func NewPaymentReportUseCase(payments interfaces.IPaymentRepository, leases interfaces.ILeaseRepository, exporter interfaces.IReportExporter) *PaymentReportUseCase {
	return &PaymentReportUseCase{
		payments: payments,
		leases:   leases,
		exporter: exporter,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentReportUseCase) Summary(ctx context.Context, landlordID string) (entities.PaymentSummary, error) {
	ps, err := u.landlordPayments(ctx, landlordID)
	if err != nil {
		return entities.PaymentSummary{}, err
	}

	summary := entities.SummarizePayments(ps, u.now())
	active, err := u.leases.CountActiveByLandlord(ctx, strings.TrimSpace(landlordID))
	if err != nil {
		return entities.PaymentSummary{}, err
	}
	summary.ActiveLeases = active
	return summary, nil
}

func (u *PaymentReportUseCase) MonthlySeries(ctx context.Context, landlordID string) ([]entities.MonthlyBucket, error) {
	ps, err := u.landlordPayments(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	return entities.BuildMonthlySeries(ps), nil
}

func (u *PaymentReportUseCase) Export(ctx context.Context, landlordID string, w io.Writer) error {
	if u.exporter == nil {
		return errors.New("report exporter not configured")
	}
	ps, err := u.landlordPayments(ctx, landlordID)
	if err != nil {
		return err
	}

	views := entities.NewPaymentViews(ps, u.now())
	series := entities.BuildMonthlySeries(ps)
	if err := u.exporter.WritePaymentsReport(w, views, series); err != nil {
		logging.FromContext(ctx).WithError(err).WithField("landlord_id", landlordID).Error("[payment][report] export failed")
		return err
	}
	return nil
}

func (u *PaymentReportUseCase) landlordPayments(ctx context.Context, landlordID string) ([]entities.Payment, error) {
	landlordID = strings.TrimSpace(landlordID)
	if landlordID == "" {
		return nil, fmt.Errorf("%w: landlord id is required", ErrInvalidInput)
	}
	return u.payments.ListByLandlord(ctx, landlordID)
}
