package domain

import "time"

// DailyResult is the permanent record of one day's judgement.
// At most one row exists per (founder, day); a repeat check-in overwrites it.
type DailyResult struct {
	ID          string
	FounderID   string
	Day         string // YYYY-MM-DD
	XPDelta     int
	Penalty     int
	VerdictText string
	CreatedAt   time.Time
}
