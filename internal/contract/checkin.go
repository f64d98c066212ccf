package contract

import (
	"github.com/alexanderramin/gauntlet/internal/domain"
	"github.com/alexanderramin/gauntlet/internal/engine"
)

// TodayPlan is the result of plan generation: the stored actions for a day.
// AlreadyGenerated reports that the day's plan existed before the call;
// there is no re-roll.
type TodayPlan struct {
	Day              string
	Actions          []*domain.Action
	AlreadyGenerated bool
}

// CheckInUpdate marks a single action done or missed.
type CheckInUpdate struct {
	ActionID  string
	Completed bool
}

// CheckInResult bundles the day's counts, the judgement, and the action
// rows as they stand after the check-in.
type CheckInResult struct {
	Day       string
	Completed int
	Missed    int
	Judgement engine.Judgement
	Actions   []*domain.Action
}
