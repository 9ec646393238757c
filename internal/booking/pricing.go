package booking

import "time"

const day = 24 * time.Hour

// TotalCost returns the booking cost for a date range at the given per-day
// price: the exact calendar-day difference (end exclusive of start) times
// pricePerDay. Integer arithmetic only; callers must have validated the
// date ordering first.
func TotalCost(start, end time.Time, pricePerDay int) int {
	days := int(end.Sub(start) / day)
	return days * pricePerDay
}

// ValidateWindow checks a proposed booking window against today.
// The checks run in a fixed order and the first failure wins:
// presence, then both dates strictly in the future, then end after start.
func ValidateWindow(start, end, today time.Time) error {
	if start.IsZero() || end.IsZero() {
		return ErrMissingDates
	}
	if !start.After(today) || !end.After(today) {
		return ErrDatesNotFuture
	}
	if !end.After(start) {
		return ErrEndBeforeStart
	}
	return nil
}
