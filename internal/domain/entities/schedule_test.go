package entities

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyDueDates(t *testing.T) {
	t.Run("inclusive end", func(t *testing.T) {
		end := date(2024, 3, 1)
		got := MonthlyDueDates(date(2024, 1, 1), &end)
		want := []time.Time{date(2024, 1, 1), date(2024, 2, 1), date(2024, 3, 1)}
		if len(got) != len(want) {
			t.Fatalf("expected %d dates, got %d: %v", len(want), len(got), got)
		}
		for i := range want {
			if !got[i].Equal(want[i]) {
				t.Fatalf("date %d: expected %s, got %s", i, want[i], got[i])
			}
		}
	})

	t.Run("clamps to month end without drifting", func(t *testing.T) {
		end := date(2024, 4, 30)
		got := MonthlyDueDates(date(2024, 1, 31), &end)
		want := []time.Time{date(2024, 1, 31), date(2024, 2, 29), date(2024, 3, 31), date(2024, 4, 30)}
		if len(got) != len(want) {
			t.Fatalf("expected %d dates, got %v", len(want), got)
		}
		for i := range want {
			if !got[i].Equal(want[i]) {
				t.Fatalf("date %d: expected %s, got %s", i, want[i], got[i])
			}
		}
	})

	t.Run("crosses year boundary", func(t *testing.T) {
		end := date(2025, 1, 15)
		got := MonthlyDueDates(date(2024, 11, 15), &end)
		if len(got) != 3 || !got[2].Equal(date(2025, 1, 15)) {
			t.Fatalf("unexpected dates: %v", got)
		}
	})

	t.Run("end before start yields nothing", func(t *testing.T) {
		end := date(2023, 12, 31)
		if got := MonthlyDueDates(date(2024, 1, 1), &end); len(got) != 0 {
			t.Fatalf("expected no dates, got %v", got)
		}
	})

	t.Run("open ended", func(t *testing.T) {
		got := MonthlyDueDates(date(2024, 5, 10), nil)
		if len(got) != OpenEndedScheduleMonths {
			t.Fatalf("expected %d dates, got %d", OpenEndedScheduleMonths, len(got))
		}
		if !got[11].Equal(date(2025, 4, 10)) {
			t.Fatalf("unexpected last date: %s", got[11])
		}
	})
}
