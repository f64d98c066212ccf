package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/gauntlet/internal/generation"
	"github.com/alexanderramin/gauntlet/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestActionPlanService_WithHTTPTestServer exercises the full HTTP path:
// httptest server → llm client → action plan extraction and sanitization.
// This guards against drift between the wire format and the parsing layer.
func TestActionPlanService_WithHTTPTestServer(t *testing.T) {
	plan := `[
		{"text": "Email 10 dormant leads with the new offer", "impact_weight": 1.4, "difficulty": 3, "non_negotiable": true},
		{"text": "Record a 2-minute product demo and post it", "impact_weight": 1.2, "difficulty": 2, "non_negotiable": true},
		{"text": "Ask one customer for a paid referral", "impact_weight": 1.5, "difficulty": 3, "non_negotiable": true}
	]`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req["prompt"], "GOAL: grow mrr")
		assert.Contains(t, req["prompt"], "RECENT RECORD:")

		json.NewEncoder(w).Encode(map[string]any{
			"model":    "test-model",
			"response": "```json\n" + plan + "\n```",
		})
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"
	cfg.MaxRetries = 0

	planner := NewActionPlanService(llm.NewOllamaClient(cfg, llm.NoopObserver{}))
	proposals := planner.GenerateActions(context.Background(), "grow mrr", 2, "2025-08-30: xp +40, pen 0")

	require.Len(t, proposals, 3)
	assert.Equal(t, "Email 10 dormant leads with the new offer", proposals[0].Text)
	assert.InDelta(t, 1.5, proposals[2].ImpactWeight, 0.001)
}

// TestActionPlanService_ServerDownFallsBack verifies the degraded path end
// to end: a dead endpoint must yield exactly the heuristic plan.
func TestActionPlanService_ServerDownFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 0

	planner := NewActionPlanService(llm.NewOllamaClient(cfg, llm.NoopObserver{}))
	proposals := planner.GenerateActions(context.Background(), "close 5 sales", 2, "")

	assert.Equal(t, generation.HeuristicActions("close 5 sales", 2), proposals)
}
