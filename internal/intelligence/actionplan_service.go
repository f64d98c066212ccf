package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/gauntlet/internal/domain"
	"github.com/alexanderramin/gauntlet/internal/generation"
	"github.com/alexanderramin/gauntlet/internal/llm"
)

// ActionPlanner produces the day's 3 to 5 action proposals for a goal.
// Implementations never fail: any upstream problem degrades to the
// deterministic heuristic, so callers always receive a usable plan.
type ActionPlanner interface {
	GenerateActions(ctx context.Context, goalText string, difficulty int, historySummary string) []domain.ActionProposal
}

type actionPlanService struct {
	client llm.LLMClient
}

// NewActionPlanService creates an ActionPlanner that attempts one LLM call
// and falls back to the heuristic generator. A nil client skips the LLM
// path entirely.
func NewActionPlanService(client llm.LLMClient) ActionPlanner {
	return &actionPlanService{client: client}
}

// actionPlanItem is the JSON structure expected per element of the LLM's
// array response.
type actionPlanItem struct {
	Text          string  `json:"text"`
	ImpactWeight  float64 `json:"impact_weight"`
	Difficulty    int     `json:"difficulty"`
	NonNegotiable bool    `json:"non_negotiable"`
}

func (s *actionPlanService) GenerateActions(ctx context.Context, goalText string, difficulty int, historySummary string) []domain.ActionProposal {
	if s.client == nil {
		return generation.HeuristicActions(goalText, difficulty)
	}

	proposals, err := s.generate(ctx, goalText, difficulty, historySummary)
	if err != nil {
		return generation.HeuristicActions(goalText, difficulty)
	}
	return proposals
}

func (s *actionPlanService) generate(ctx context.Context, goalText string, difficulty int, historySummary string) ([]domain.ActionProposal, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskActionPlan,
		SystemPrompt: actionPlanSystemPrompt,
		UserPrompt:   buildActionPlanUserPrompt(goalText, difficulty, historySummary),
	})
	if err != nil {
		return nil, fmt.Errorf("llm action plan generation failed: %w", err)
	}

	items, err := llm.ExtractJSONArray[actionPlanItem](resp.Text, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to extract action plan: %w", err)
	}

	proposals := sanitizeActionPlan(items)
	if len(proposals) < domain.MinActionsPerDay {
		return nil, fmt.Errorf("%w: only %d usable actions", llm.ErrInvalidOutput, len(proposals))
	}
	return proposals, nil
}

// sanitizeActionPlan coerces raw LLM items into valid proposals: text is
// trimmed and truncated, empty items are dropped, missing numeric fields
// get defaults, and the non-negotiable flag is forced on.
func sanitizeActionPlan(items []actionPlanItem) []domain.ActionProposal {
	proposals := make([]domain.ActionProposal, 0, len(items))
	for _, item := range items {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		if len(text) > domain.MaxActionTextLen {
			text = text[:domain.MaxActionTextLen]
		}

		weight := item.ImpactWeight
		if weight == 0 {
			weight = 1.0
		}
		diff := item.Difficulty
		if diff == 0 {
			diff = 2
		}

		proposals = append(proposals, domain.ActionProposal{
			Text:          text,
			ImpactWeight:  weight,
			Difficulty:    diff,
			NonNegotiable: true,
		})
		if len(proposals) == domain.MaxActionsPerDay {
			break
		}
	}
	return proposals
}
