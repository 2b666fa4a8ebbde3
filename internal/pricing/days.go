package pricing

import "time"

// RentalDays returns the chargeable number of days between two dates.
// Time-of-day is ignored: the count is the whole-day distance between the
// calendar dates, with a minimum of one day, so a same-day rental is charged
// as a single day.
//
// Every duration-derived value in the system (tier lookup, base price,
// allowed-kilometre quota) must come from this function. Deriving day counts
// through separate code paths lets per-day price and per-day kilometres
// disagree for the same rental.
func RentalDays(start, end time.Time) int32 {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	days := int32(endDay.Sub(startDay) / (24 * time.Hour))
	if days < 1 {
		return 1
	}
	return days
}
