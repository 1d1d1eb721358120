package entities

import "time"

// OpenEndedScheduleMonths is how many installments are generated for a lease
// without an end date.
const OpenEndedScheduleMonths = 12

// MonthlyDueDates returns one due date per calendar month, starting at start
// and stopping at end (inclusive). Every date falls on start's day of month,
// clamped to the last day of shorter months.
func MonthlyDueDates(start time.Time, end *time.Time) []time.Time {
	anchor := start.Day()
	dates := make([]time.Time, 0, OpenEndedScheduleMonths)
	for i := 0; ; i++ {
		if end == nil && i >= OpenEndedScheduleMonths {
			break
		}
		first := time.Date(start.Year(), start.Month()+time.Month(i), 1, start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), start.Location())
		day := anchor
		if last := daysIn(first.Year(), first.Month(), start.Location()); day > last {
			day = last
		}
		due := first.AddDate(0, 0, day-1)
		if end != nil && due.After(*end) {
			break
		}
		dates = append(dates, due)
	}
	return dates
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
