package domain

import "time"

// DayLayout is the calendar-day key format used across storage and services.
const DayLayout = "2006-01-02"

// DayString formats t as a calendar-day key in the local timezone.
func DayString(t time.Time) string {
	return t.Format(DayLayout)
}
