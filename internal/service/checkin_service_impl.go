package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/gauntlet/internal/contract"
	"github.com/alexanderramin/gauntlet/internal/db"
	"github.com/alexanderramin/gauntlet/internal/domain"
	"github.com/alexanderramin/gauntlet/internal/engine"
	"github.com/alexanderramin/gauntlet/internal/repository"
)

// defaultHistoryLimit caps History when the caller passes a non-positive limit.
const defaultHistoryLimit = 30

type checkinService struct {
	results repository.ResultRepo
	uow     db.UnitOfWork
}

// NewCheckinService creates a CheckinService. All check-in writes run inside
// one transaction via the unit of work.
func NewCheckinService(results repository.ResultRepo, uow db.UnitOfWork) CheckinService {
	return &checkinService{results: results, uow: uow}
}

func (s *checkinService) CheckIn(ctx context.Context, founderID, day string, updates []contract.CheckInUpdate) (*contract.CheckInResult, error) {
	var out *contract.CheckInResult

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		founders := repository.NewSQLiteFounderRepo(tx)
		actions := repository.NewSQLiteActionRepo(tx)
		results := repository.NewSQLiteResultRepo(tx)

		founder, err := founders.GetByID(ctx, founderID)
		if err != nil {
			return err
		}

		dayActions, err := actions.ListByDay(ctx, founderID, day)
		if err != nil {
			return err
		}
		if len(dayActions) == 0 {
			return fmt.Errorf("%s: %w", day, ErrNoActionsForDay)
		}

		known := make(map[string]bool, len(dayActions))
		for _, a := range dayActions {
			known[a.ID] = true
		}

		now := time.Now().UTC()
		for _, u := range updates {
			// Updates naming actions outside this day are ignored.
			if !known[u.ActionID] {
				continue
			}
			if err := actions.SetCompletion(ctx, u.ActionID, u.Completed, now); err != nil {
				return err
			}
		}

		dayActions, err = actions.ListByDay(ctx, founderID, day)
		if err != nil {
			return err
		}

		rec := tallyDay(dayActions)
		judgement := engine.Judge(founder.Progression(), rec)

		result := &domain.DailyResult{
			ID:          uuid.NewString(),
			FounderID:   founderID,
			Day:         day,
			XPDelta:     judgement.XPDelta,
			Penalty:     judgement.Penalty,
			VerdictText: judgement.Verdict,
			CreatedAt:   now,
		}
		if err := results.Upsert(ctx, result); err != nil {
			return err
		}

		newState := domain.Progression{
			XP:         judgement.NewXP,
			Level:      judgement.NewLevel,
			Streak:     judgement.NewStreak,
			Debt:       judgement.NewDebt,
			Difficulty: judgement.NewDifficulty,
		}
		if err := founders.UpdateStats(ctx, founderID, newState); err != nil {
			return err
		}

		out = &contract.CheckInResult{
			Day:       day,
			Completed: rec.Completed,
			Missed:    rec.Missed,
			Judgement: judgement,
			Actions:   dayActions,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *checkinService) History(ctx context.Context, founderID string, limit int) ([]*domain.DailyResult, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.results.History(ctx, founderID, limit)
}

// tallyDay counts explicitly marked actions. Unset actions contribute to
// neither count; impact weights accrue for completed actions only.
func tallyDay(actions []*domain.Action) engine.DayRecord {
	var rec engine.DayRecord
	for _, a := range actions {
		if a.Completed == nil {
			continue
		}
		if *a.Completed {
			rec.Completed++
			rec.ImpactsSum += a.ImpactWeight
		} else {
			rec.Missed++
		}
	}
	return rec
}
