package intelligence

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/gauntlet/internal/domain"
	"github.com/alexanderramin/gauntlet/internal/generation"
	"github.com/alexanderramin/gauntlet/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns a canned response or error for every Generate call.
type stubClient struct {
	text string
	err  error
}

func (s *stubClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.GenerateResponse{Text: s.text, Model: "stub"}, nil
}

func (s *stubClient) Available(ctx context.Context) bool { return s.err == nil }

func TestActionPlanService_UsesLLMPlan(t *testing.T) {
	planner := NewActionPlanService(&stubClient{text: `[
		{"text": "Call five churned customers", "impact_weight": 1.5, "difficulty": 3, "non_negotiable": true},
		{"text": "Publish the pricing page", "impact_weight": 1.2, "difficulty": 2, "non_negotiable": false},
		{"text": "Send two proposals", "impact_weight": 1.4, "difficulty": 2, "non_negotiable": true}
	]`})

	proposals := planner.GenerateActions(context.Background(), "grow revenue", 2, "")
	require.Len(t, proposals, 3)
	assert.Equal(t, "Call five churned customers", proposals[0].Text)
	assert.True(t, proposals[1].NonNegotiable, "non-negotiable is forced true regardless of LLM output")
}

func TestActionPlanService_FallsBackOnError(t *testing.T) {
	planner := NewActionPlanService(&stubClient{err: llm.ErrUnavailable})

	proposals := planner.GenerateActions(context.Background(), "get 10 paying customers", 2, "")
	assert.Equal(t, generation.HeuristicActions("get 10 paying customers", 2), proposals)
}

func TestActionPlanService_FallsBackOnGarbage(t *testing.T) {
	for _, text := range []string{
		"I'm sorry, I can't produce that.",
		`{"text": "an object, not an array"}`,
		`[{"text": ""}, {"text": "   "}]`,
	} {
		planner := NewActionPlanService(&stubClient{text: text})
		proposals := planner.GenerateActions(context.Background(), "ship the mvp", 1, "")
		assert.Equal(t, generation.HeuristicActions("ship the mvp", 1), proposals, "raw=%q", text)
	}
}

func TestActionPlanService_FallsBackOnShortPlan(t *testing.T) {
	planner := NewActionPlanService(&stubClient{text: `[
		{"text": "Only one action", "impact_weight": 1.0, "difficulty": 2}
	]`})

	proposals := planner.GenerateActions(context.Background(), "run a marathon", 3, "")
	assert.Equal(t, generation.HeuristicActions("run a marathon", 3), proposals)
}

func TestActionPlanService_NilClientUsesHeuristic(t *testing.T) {
	planner := NewActionPlanService(nil)
	proposals := planner.GenerateActions(context.Background(), "sell more", 2, "2025-08-30: xp +40")
	assert.Equal(t, generation.HeuristicActions("sell more", 2), proposals)
}

func TestSanitizeActionPlan(t *testing.T) {
	long := strings.Repeat("x", 400)
	items := []actionPlanItem{
		{Text: "  padded  ", ImpactWeight: 1.3, Difficulty: 2},
		{Text: long},
		{Text: ""},
		{Text: "defaults applied"},
		{Text: "four"},
		{Text: "five"},
		{Text: "dropped by cap"},
	}

	proposals := sanitizeActionPlan(items)
	require.Len(t, proposals, domain.MaxActionsPerDay)
	assert.Equal(t, "padded", proposals[0].Text)
	assert.Len(t, proposals[1].Text, domain.MaxActionTextLen)
	assert.InDelta(t, 1.0, proposals[2].ImpactWeight, 0.001, "zero weight defaults to 1.0")
	assert.Equal(t, 2, proposals[2].Difficulty, "zero difficulty defaults to 2")
	for _, p := range proposals {
		assert.True(t, p.NonNegotiable)
	}
}

func TestActionPlanService_ErrorNeverEscapes(t *testing.T) {
	planner := NewActionPlanService(&stubClient{err: errors.New("totally unexpected")})
	assert.NotPanics(t, func() {
		proposals := planner.GenerateActions(context.Background(), "anything", 1, "")
		assert.GreaterOrEqual(t, len(proposals), domain.MinActionsPerDay)
	})
}
