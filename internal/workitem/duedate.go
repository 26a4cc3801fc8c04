package workitem

import "time"

// DueDate computes the completion deadline for an item created at now:
// the next working day, where anything received at 14:00 or later counts
// as received the following day. Weekends and the fixed Norwegian
// holidays (1 Jan, 1 May, 17 May, 25-26 Dec) are skipped.
func DueDate(now time.Time) time.Time {
	d := now
	if d.Hour() >= 14 {
		d = d.AddDate(0, 0, 1)
	}
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())

	for !workingDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func workingDay(d time.Time) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	switch {
	case d.Month() == time.January && d.Day() == 1:
		return false
	case d.Month() == time.May && (d.Day() == 1 || d.Day() == 17):
		return false
	case d.Month() == time.December && (d.Day() == 25 || d.Day() == 26):
		return false
	}
	return true
}
