package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/gauntlet/internal/contract"
	"github.com/alexanderramin/gauntlet/internal/domain"
)

var (
	// ErrFounderExists is returned when creating a founder whose id is taken.
	ErrFounderExists = errors.New("founder already exists")

	// ErrNoActionsForDay is returned by check-in when the day has no plan yet.
	ErrNoActionsForDay = errors.New("no actions for day")
)

type FounderService interface {
	Create(ctx context.Context, id, goalText string) (*domain.Founder, error)
	Get(ctx context.Context, id string) (*domain.Founder, error)
	UpdateGoal(ctx context.Context, id, goalText string) error
}

type PlanService interface {
	// GenerateToday produces and stores the day's actions, or returns the
	// existing plan unchanged when one was already generated.
	GenerateToday(ctx context.Context, founderID, day string) (*contract.TodayPlan, error)

	// GetPlan returns the stored plan for a day without generating one.
	// Returns ErrNoActionsForDay when no plan exists.
	GetPlan(ctx context.Context, founderID, day string) (*contract.TodayPlan, error)
}

type CheckinService interface {
	// CheckIn applies completion updates, judges the day, and persists the
	// result and new progression state as one transaction.
	CheckIn(ctx context.Context, founderID, day string, updates []contract.CheckInUpdate) (*contract.CheckInResult, error)

	// History returns the most recent daily results, newest day first.
	History(ctx context.Context, founderID string, limit int) ([]*domain.DailyResult, error)
}
