package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/gauntlet/internal/domain"
)

type FounderRepo interface {
	Create(ctx context.Context, f *domain.Founder) error
	GetByID(ctx context.Context, id string) (*domain.Founder, error)
	UpdateGoal(ctx context.Context, id, goalText string) error
	UpdateStats(ctx context.Context, id string, p domain.Progression) error
}

type ActionRepo interface {
	InsertBatch(ctx context.Context, actions []*domain.Action) error
	ListByDay(ctx context.Context, founderID, day string) ([]*domain.Action, error)
	SetCompletion(ctx context.Context, actionID string, completed bool, at time.Time) error
}

type ResultRepo interface {
	Upsert(ctx context.Context, r *domain.DailyResult) error
	GetByDay(ctx context.Context, founderID, day string) (*domain.DailyResult, error)
	History(ctx context.Context, founderID string, limit int) ([]*domain.DailyResult, error)
}
