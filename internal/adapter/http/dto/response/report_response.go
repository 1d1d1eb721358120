package response

import "property_manager/internal/domain/entities"

type SummaryResponse struct {
	TotalRevenue    string `json:"total_revenue"`
	PendingPayments int    `json:"pending_payments"`
	LatePayments    int    `json:"late_payments"`
	ActiveLeases    int64  `json:"active_leases"`
}

func FromPaymentSummary(s entities.PaymentSummary) SummaryResponse {
	return SummaryResponse{
		TotalRevenue:    s.TotalRevenue.StringFixed(2),
		PendingPayments: s.PendingCount,
		LatePayments:    s.LateCount,
		ActiveLeases:    s.ActiveLeases,
	}
}

type MonthlyBucketResponse struct {
	Month     string `json:"month"`
	Expected  string `json:"expected"`
	Collected string `json:"collected"`
}

func FromMonthlySeries(series []entities.MonthlyBucket) []MonthlyBucketResponse {
	out := make([]MonthlyBucketResponse, 0, len(series))
	for _, b := range series {
		out = append(out, MonthlyBucketResponse{
			Month:     b.Month,
			Expected:  b.Expected.StringFixed(2),
			Collected: b.Collected.StringFixed(2),
		})
	}
	return out
}
