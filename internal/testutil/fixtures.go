package testutil

import (
	"time"

	"github.com/alexanderramin/gauntlet/internal/domain"
	"github.com/google/uuid"
)

// Founder options
type FounderOption func(*domain.Founder)

func WithGoal(goal string) FounderOption {
	return func(f *domain.Founder) {
		f.GoalText = goal
	}
}

func WithProgression(p domain.Progression) FounderOption {
	return func(f *domain.Founder) {
		f.XP = p.XP
		f.Level = p.Level
		f.Streak = p.Streak
		f.Debt = p.Debt
		f.Difficulty = p.Difficulty
	}
}

func NewTestFounder(id string, opts ...FounderOption) *domain.Founder {
	f := &domain.Founder{
		ID:         id,
		CreatedAt:  time.Now().UTC(),
		GoalText:   "Get 10 paying customers in 14 days.",
		Level:      1,
		XP:         0,
		Streak:     0,
		Debt:       0,
		Difficulty: 1,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Action options
type ActionOption func(*domain.Action)

func WithImpact(w float64) ActionOption {
	return func(a *domain.Action) {
		a.ImpactWeight = w
	}
}

func WithActionDifficulty(d int) ActionOption {
	return func(a *domain.Action) {
		a.Difficulty = d
	}
}

func WithSeq(seq int) ActionOption {
	return func(a *domain.Action) {
		a.Seq = seq
	}
}

func WithCompleted(done bool) ActionOption {
	return func(a *domain.Action) {
		now := time.Now().UTC()
		a.Completed = &done
		a.CompletedAt = &now
	}
}

func NewTestAction(founderID, day, text string, opts ...ActionOption) *domain.Action {
	a := &domain.Action{
		ID:            uuid.New().String(),
		FounderID:     founderID,
		Day:           day,
		Text:          text,
		ImpactWeight:  1.0,
		Difficulty:    2,
		NonNegotiable: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewTestResult builds a daily result row for history and upsert tests.
func NewTestResult(founderID, day string, xpDelta, penalty int, verdict string) *domain.DailyResult {
	return &domain.DailyResult{
		ID:          uuid.New().String(),
		FounderID:   founderID,
		Day:         day,
		XPDelta:     xpDelta,
		Penalty:     penalty,
		VerdictText: verdict,
		CreatedAt:   time.Now().UTC(),
	}
}
