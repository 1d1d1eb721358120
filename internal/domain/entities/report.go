package entities

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// MonthKeyLayout formats the due-date month used to bucket series entries.
const MonthKeyLayout = "2006-01"

type PaymentSummary struct {
	TotalRevenue decimal.Decimal
	PendingCount int
	LateCount    int
	ActiveLeases int64
}

type MonthlyBucket struct {
	Month     string
	Expected  decimal.Decimal
	Collected decimal.Decimal
}

// SummarizePayments folds payments into revenue and effective-status counts.
// ActiveLeases is left for the caller, it does not come from payments.
func SummarizePayments(ps []Payment, now time.Time) PaymentSummary {
	s := PaymentSummary{TotalRevenue: decimal.Zero}
	for _, p := range ps {
		switch p.EffectiveStatus(now) {
		case PaymentStatusPaid:
			s.TotalRevenue = s.TotalRevenue.Add(p.Amount)
		case PaymentStatusPending:
			s.PendingCount++
		case PaymentStatusLate:
			s.LateCount++
		}
	}
	return s
}

// BuildMonthlySeries buckets payments by the UTC month of their due date,
// sorted ascending. Months without payments are not emitted.
func BuildMonthlySeries(ps []Payment) []MonthlyBucket {
	byMonth := make(map[string]*MonthlyBucket)
	for _, p := range ps {
		key := p.DueDate.UTC().Format(MonthKeyLayout)
		b, ok := byMonth[key]
		if !ok {
			b = &MonthlyBucket{Month: key, Expected: decimal.Zero, Collected: decimal.Zero}
			byMonth[key] = b
		}
		b.Expected = b.Expected.Add(p.Amount)
		if p.Status == PaymentStatusPaid {
			b.Collected = b.Collected.Add(p.Amount)
		}
	}

	series := make([]MonthlyBucket, 0, len(byMonth))
	for _, b := range byMonth {
		series = append(series, *b)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })
	return series
}
