package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/alexanderramin/gauntlet/internal/contract"
	"github.com/alexanderramin/gauntlet/internal/db"
	"github.com/alexanderramin/gauntlet/internal/domain"
	"github.com/alexanderramin/gauntlet/internal/intelligence"
	"github.com/alexanderramin/gauntlet/internal/repository"
)

// historyDaysForPrompt bounds how much recent record the planner sees.
const historyDaysForPrompt = 7

type planService struct {
	founders repository.FounderRepo
	actions  repository.ActionRepo
	results  repository.ResultRepo
	planner  intelligence.ActionPlanner
	uow      db.UnitOfWork
}

// NewPlanService creates a PlanService. The planner never fails; a bad or
// absent LLM degrades to the deterministic heuristic inside it.
func NewPlanService(
	founders repository.FounderRepo,
	actions repository.ActionRepo,
	results repository.ResultRepo,
	planner intelligence.ActionPlanner,
	uow db.UnitOfWork,
) PlanService {
	return &planService{
		founders: founders,
		actions:  actions,
		results:  results,
		planner:  planner,
		uow:      uow,
	}
}

func (s *planService) GenerateToday(ctx context.Context, founderID, day string) (*contract.TodayPlan, error) {
	founder, err := s.founders.GetByID(ctx, founderID)
	if err != nil {
		return nil, err
	}

	existing, err := s.actions.ListByDay(ctx, founderID, day)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return &contract.TodayPlan{Day: day, Actions: existing, AlreadyGenerated: true}, nil
	}

	summary, err := s.historySummary(ctx, founderID)
	if err != nil {
		return nil, err
	}

	proposals := s.planner.GenerateActions(ctx, founder.GoalText, founder.Difficulty, summary)
	batch := buildActions(founderID, day, proposals)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActions := repository.NewSQLiteActionRepo(tx)
		current, err := txActions.ListByDay(ctx, founderID, day)
		if err != nil {
			return err
		}
		// Raced with another generation; the first plan stands.
		if len(current) > 0 {
			batch = current
			return nil
		}
		return txActions.InsertBatch(ctx, batch)
	})
	if err != nil {
		return nil, fmt.Errorf("storing plan for %s: %w", day, err)
	}

	return &contract.TodayPlan{Day: day, Actions: batch}, nil
}

func (s *planService) GetPlan(ctx context.Context, founderID, day string) (*contract.TodayPlan, error) {
	actions, err := s.actions.ListByDay(ctx, founderID, day)
	if err != nil {
		return nil, err
	}
	if len(actions) == 0 {
		return nil, fmt.Errorf("%s: %w", day, ErrNoActionsForDay)
	}
	return &contract.TodayPlan{Day: day, Actions: actions, AlreadyGenerated: true}, nil
}

// historySummary formats the recent daily results for the planner prompt,
// oldest first. Empty string when there is no history yet.
func (s *planService) historySummary(ctx context.Context, founderID string) (string, error) {
	results, err := s.results.History(ctx, founderID, historyDaysForPrompt)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", nil
	}

	lines := make([]string, 0, len(results))
	for i := len(results) - 1; i >= 0; i-- {
		r := results[i]
		lines = append(lines, fmt.Sprintf("%s: xp %+d, penalty %d", r.Day, r.XPDelta, r.Penalty))
	}
	return strings.Join(lines, "\n"), nil
}

func buildActions(founderID, day string, proposals []domain.ActionProposal) []*domain.Action {
	actions := make([]*domain.Action, 0, len(proposals))
	for i, p := range proposals {
		text := strings.TrimSpace(p.Text)
		if len(text) > domain.MaxActionTextLen {
			text = text[:domain.MaxActionTextLen]
		}
		actions = append(actions, &domain.Action{
			ID:            uuid.NewString(),
			FounderID:     founderID,
			Day:           day,
			Seq:           i,
			Text:          text,
			ImpactWeight:  p.ImpactWeight,
			Difficulty:    p.Difficulty,
			NonNegotiable: p.NonNegotiable,
		})
	}
	return actions
}
