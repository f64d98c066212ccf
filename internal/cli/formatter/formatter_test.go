package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/gauntlet/internal/contract"
	"github.com/alexanderramin/gauntlet/internal/domain"
	"github.com/alexanderramin/gauntlet/internal/engine"
)

func boolPtr(b bool) *bool { return &b }

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
	}{
		{"empty", 0.0, 10},
		{"half", 0.5, 10},
		{"full", 1.0, 10},
		{"over full clamps", 1.5, 10},
		{"negative clamps", -0.5, 10},
		{"tiny width clamps to 2", 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.Contains(t, got, "[")
			assert.Contains(t, got, "%")
		})
	}

	assert.Contains(t, RenderProgress(1.0, 4), strings.Repeat(filledBlock, 4))
	assert.Contains(t, RenderProgress(0.0, 4), strings.Repeat(emptyBlock, 4))
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"DAY", "XP"},
		[][]string{
			{"2026-09-01", "+140"},
			{"2026-08-31", "-15"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "DAY")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "2026-09-01")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatPlan(t *testing.T) {
	plan := &contract.TodayPlan{
		Day: "2026-09-01",
		Actions: []*domain.Action{
			{Seq: 0, Text: "Send 10 cold outreach messages tied to the goal.", ImpactWeight: 1.5, Difficulty: 2},
			{Seq: 1, Text: "Ask for money: propose a paid offer to at least 1 person.", ImpactWeight: 2.0, Difficulty: 3, Completed: boolPtr(true)},
			{Seq: 2, Text: "Ship a result you can show publicly.", ImpactWeight: 1.2, Difficulty: 1, Completed: boolPtr(false)},
		},
	}

	out := FormatPlan(plan)
	assert.Contains(t, out, "2026-09-01")
	assert.Contains(t, out, "Send 10 cold outreach messages")
	assert.Contains(t, out, "[✓]")
	assert.Contains(t, out, "[✗]")
	assert.NotContains(t, out, "No re-rolls")

	plan.AlreadyGenerated = true
	assert.Contains(t, FormatPlan(plan), "No re-rolls")
}

func TestFormatCheckIn(t *testing.T) {
	res := &contract.CheckInResult{
		Day:       "2026-09-01",
		Completed: 4,
		Missed:    0,
		Judgement: engine.Judgement{
			XPDelta:       140,
			NewXP:         140,
			NewLevel:      1,
			NewStreak:     1,
			NewDifficulty: 2,
			Verdict:       engine.VerdictHard,
		},
	}

	out := FormatCheckIn(res)
	assert.Contains(t, out, engine.VerdictHard)
	assert.Contains(t, out, "+140")
	assert.NotContains(t, out, "penalty")

	res.Judgement.Penalty = 45
	res.Judgement.XPDelta = -35
	assert.Contains(t, FormatCheckIn(res), "penalty 45")
}

func TestFormatStatus(t *testing.T) {
	f := &domain.Founder{
		ID:         "ana",
		GoalText:   "Reach 10 paying customers",
		Level:      2,
		XP:         310,
		Streak:     4,
		Debt:       1,
		Difficulty: 2,
	}

	out := FormatStatus(f)
	assert.Contains(t, out, "Reach 10 paying customers")
	assert.Contains(t, out, "60/250 xp to level 3")
	assert.Contains(t, out, "🔥")

	f.Level = engine.MaxLevel
	assert.Contains(t, FormatStatus(f), "(max)")
}

func TestFormatHistory(t *testing.T) {
	assert.Contains(t, FormatHistory(nil), "No record yet")

	results := []*domain.DailyResult{
		{Day: "2026-09-01", XPDelta: 140, Penalty: 0, VerdictText: engine.VerdictHard},
		{Day: "2026-08-31", XPDelta: -35, Penalty: 45, VerdictText: engine.VerdictNothing},
	}
	out := FormatHistory(results)
	assert.Contains(t, out, "2026-09-01")
	assert.Contains(t, out, engine.VerdictNothing)
	assert.Contains(t, out, "+140")
}
