package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSummarizePayments(t *testing.T) {
	now := date(2024, 6, 15)
	paidAt := date(2024, 5, 2)
	ps := []Payment{
		{ID: "p1", Amount: decimal.NewFromInt(500), DueDate: date(2024, 5, 1), Status: PaymentStatusPaid, PaidAt: &paidAt},
		{ID: "p2", Amount: decimal.NewFromInt(300), DueDate: date(2024, 6, 1), Status: PaymentStatusPending},
	}

	s := SummarizePayments(ps, now)
	if !s.TotalRevenue.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected revenue 500, got %s", s.TotalRevenue)
	}
	if s.LateCount != 1 || s.PendingCount != 0 {
		t.Fatalf("unexpected counts: %+v", s)
	}
}

func TestSummarizePayments_FailedAndUpcoming(t *testing.T) {
	now := date(2024, 6, 15)
	ps := []Payment{
		{Amount: decimal.NewFromInt(100), DueDate: date(2024, 7, 1), Status: PaymentStatusPending},
		{Amount: decimal.NewFromInt(100), DueDate: date(2024, 5, 1), Status: PaymentStatusFailed},
	}

	s := SummarizePayments(ps, now)
	if !s.TotalRevenue.IsZero() || s.PendingCount != 1 || s.LateCount != 0 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestBuildMonthlySeries(t *testing.T) {
	ps := []Payment{
		{Amount: decimal.NewFromInt(1000), DueDate: date(2024, 2, 1), Status: PaymentStatusPending},
		{Amount: decimal.NewFromInt(1000), DueDate: date(2024, 1, 1), Status: PaymentStatusPaid},
		{Amount: decimal.NewFromInt(1000), DueDate: date(2024, 1, 20), Status: PaymentStatusPending},
	}

	series := BuildMonthlySeries(ps)
	if len(series) != 2 {
		t.Fatalf("expected 2 buckets, got %+v", series)
	}

	want := []struct {
		month     string
		expected  int64
		collected int64
	}{
		{month: "2024-01", expected: 2000, collected: 1000},
		{month: "2024-02", expected: 1000, collected: 0},
	}
	for i, w := range want {
		b := series[i]
		if b.Month != w.month || !b.Expected.Equal(decimal.NewFromInt(w.expected)) || !b.Collected.Equal(decimal.NewFromInt(w.collected)) {
			t.Fatalf("bucket %d: unexpected %+v", i, b)
		}
	}
}

func TestBuildMonthlySeries_OmitsEmptyMonthsAndUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	ps := []Payment{
		{Amount: decimal.NewFromInt(10), DueDate: time.Date(2024, 1, 31, 22, 0, 0, 0, loc), Status: PaymentStatusPaid},
		{Amount: decimal.NewFromInt(10), DueDate: date(2024, 4, 1), Status: PaymentStatusPending},
	}

	series := BuildMonthlySeries(ps)
	if len(series) != 2 || series[0].Month != "2024-02" || series[1].Month != "2024-04" {
		t.Fatalf("unexpected series: %+v", series)
	}
	if len(BuildMonthlySeries(nil)) != 0 {
		t.Fatalf("expected empty series")
	}
}
