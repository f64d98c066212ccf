package domain

import "time"

const (
	// MaxActionsPerDay bounds how many actions a single day may carry.
	MaxActionsPerDay = 5
	// MinActionsPerDay is the floor generation must pad up to.
	MinActionsPerDay = 3
	// MaxActionTextLen is the stored length cap for action text.
	MaxActionTextLen = 300
)

// Action is one non-negotiable task belonging to a founder and a calendar day.
// Completed is tri-state: nil until the founder checks in, then true/false.
type Action struct {
	ID            string
	FounderID     string
	Day           string // YYYY-MM-DD
	Seq           int
	Text          string
	ImpactWeight  float64
	Difficulty    int
	NonNegotiable bool
	Completed     *bool
	CompletedAt   *time.Time
}

// ActionProposal is a generated task before it is persisted as an Action.
type ActionProposal struct {
	Text          string
	ImpactWeight  float64
	Difficulty    int
	NonNegotiable bool
}
