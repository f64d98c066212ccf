package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/gauntlet/internal/contract"
	"github.com/alexanderramin/gauntlet/internal/domain"
	"github.com/alexanderramin/gauntlet/internal/engine"
	"github.com/alexanderramin/gauntlet/internal/repository"
	"github.com/alexanderramin/gauntlet/internal/testutil"
)

type checkinFixture struct {
	founders repository.FounderRepo
	actions  repository.ActionRepo
	results  repository.ResultRepo
	svc      CheckinService
}

func newCheckinFixture(t *testing.T) *checkinFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	results := repository.NewSQLiteResultRepo(database)
	return &checkinFixture{
		founders: repository.NewSQLiteFounderRepo(database),
		actions:  repository.NewSQLiteActionRepo(database),
		results:  results,
		svc:      NewCheckinService(results, testutil.NewTestUoW(database)),
	}
}

func (f *checkinFixture) seedDay(t *testing.T, ctx context.Context, founder *domain.Founder, day string, actions []*domain.Action) {
	t.Helper()
	require.NoError(t, f.founders.Create(ctx, founder))
	require.NoError(t, f.actions.InsertBatch(ctx, actions))
}

func TestCheckinService_CheckIn_PerfectDay(t *testing.T) {
	f := newCheckinFixture(t)
	ctx := context.Background()
	founder := testutil.NewTestFounder("ana")
	day := "2026-09-01"

	acts := []*domain.Action{
		testutil.NewTestAction("ana", day, "Outreach", testutil.WithSeq(0), testutil.WithImpact(1.5)),
		testutil.NewTestAction("ana", day, "Customer call", testutil.WithSeq(1), testutil.WithImpact(1.4)),
		testutil.NewTestAction("ana", day, "Ask for money", testutil.WithSeq(2), testutil.WithImpact(2.0)),
		testutil.NewTestAction("ana", day, "Ship publicly", testutil.WithSeq(3), testutil.WithImpact(1.2)),
	}
	f.seedDay(t, ctx, founder, day, acts)

	updates := make([]contract.CheckInUpdate, 0, len(acts))
	for _, a := range acts {
		updates = append(updates, contract.CheckInUpdate{ActionID: a.ID, Completed: true})
	}

	res, err := f.svc.CheckIn(ctx, "ana", day, updates)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Completed)
	assert.Equal(t, 0, res.Missed)
	assert.Equal(t, engine.VerdictHard, res.Judgement.Verdict)
	assert.Equal(t, 0, res.Judgement.Penalty)
	assert.Equal(t, 1, res.Judgement.NewStreak)

	// Progression is persisted.
	got, err := f.founders.GetByID(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, res.Judgement.NewXP, got.XP)
	assert.Equal(t, res.Judgement.NewStreak, got.Streak)
	assert.Equal(t, res.Judgement.NewDifficulty, got.Difficulty)

	// The day's result row is persisted.
	stored, err := f.results.GetByDay(ctx, "ana", day)
	require.NoError(t, err)
	assert.Equal(t, res.Judgement.XPDelta, stored.XPDelta)
	assert.Equal(t, engine.VerdictHard, stored.VerdictText)
}

func TestCheckinService_CheckIn_MissesApplyPenalty(t *testing.T) {
	f := newCheckinFixture(t)
	ctx := context.Background()
	founder := testutil.NewTestFounder("ana", testutil.WithProgression(domain.Progression{
		XP: 500, Level: 3, Streak: 4, Debt: 1, Difficulty: 2,
	}))
	day := "2026-09-01"

	acts := []*domain.Action{
		testutil.NewTestAction("ana", day, "Outreach", testutil.WithSeq(0)),
		testutil.NewTestAction("ana", day, "Customer call", testutil.WithSeq(1)),
		testutil.NewTestAction("ana", day, "Ask for money", testutil.WithSeq(2)),
	}
	f.seedDay(t, ctx, founder, day, acts)

	res, err := f.svc.CheckIn(ctx, "ana", day, []contract.CheckInUpdate{
		{ActionID: acts[0].ID, Completed: false},
		{ActionID: acts[1].ID, Completed: false},
		{ActionID: acts[2].ID, Completed: false},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, res.Completed)
	assert.Equal(t, 3, res.Missed)
	assert.Equal(t, engine.VerdictNothing, res.Judgement.Verdict)
	assert.Equal(t, 45, res.Judgement.Penalty)
	assert.Equal(t, 0, res.Judgement.NewStreak)
	assert.Equal(t, 4, res.Judgement.NewDebt)
	assert.Equal(t, 3, res.Judgement.NewDifficulty)
}

func TestCheckinService_CheckIn_UnsetActionsNotCounted(t *testing.T) {
	f := newCheckinFixture(t)
	ctx := context.Background()
	day := "2026-09-01"

	acts := []*domain.Action{
		testutil.NewTestAction("ana", day, "Outreach", testutil.WithSeq(0), testutil.WithImpact(1.5)),
		testutil.NewTestAction("ana", day, "Customer call", testutil.WithSeq(1)),
		testutil.NewTestAction("ana", day, "Ask for money", testutil.WithSeq(2)),
	}
	f.seedDay(t, ctx, testutil.NewTestFounder("ana"), day, acts)

	res, err := f.svc.CheckIn(ctx, "ana", day, []contract.CheckInUpdate{
		{ActionID: acts[0].ID, Completed: true},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Completed)
	assert.Equal(t, 0, res.Missed)
	assert.Equal(t, engine.VerdictClean, res.Judgement.Verdict)
}

func TestCheckinService_CheckIn_UnknownActionIgnored(t *testing.T) {
	f := newCheckinFixture(t)
	ctx := context.Background()
	day := "2026-09-01"

	acts := []*domain.Action{
		testutil.NewTestAction("ana", day, "Outreach", testutil.WithSeq(0)),
		testutil.NewTestAction("ana", day, "Customer call", testutil.WithSeq(1)),
		testutil.NewTestAction("ana", day, "Ask for money", testutil.WithSeq(2)),
	}
	f.seedDay(t, ctx, testutil.NewTestFounder("ana"), day, acts)

	res, err := f.svc.CheckIn(ctx, "ana", day, []contract.CheckInUpdate{
		{ActionID: "not-a-real-action", Completed: true},
		{ActionID: acts[1].ID, Completed: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Completed)
}

func TestCheckinService_CheckIn_NoPlan(t *testing.T) {
	f := newCheckinFixture(t)
	ctx := context.Background()
	require.NoError(t, f.founders.Create(ctx, testutil.NewTestFounder("ana")))

	_, err := f.svc.CheckIn(ctx, "ana", "2026-09-01", nil)
	assert.ErrorIs(t, err, ErrNoActionsForDay)
}

func TestCheckinService_CheckIn_RepeatOverwritesResult(t *testing.T) {
	f := newCheckinFixture(t)
	ctx := context.Background()
	day := "2026-09-01"

	acts := []*domain.Action{
		testutil.NewTestAction("ana", day, "Outreach", testutil.WithSeq(0)),
		testutil.NewTestAction("ana", day, "Customer call", testutil.WithSeq(1)),
		testutil.NewTestAction("ana", day, "Ask for money", testutil.WithSeq(2)),
	}
	f.seedDay(t, ctx, testutil.NewTestFounder("ana"), day, acts)

	_, err := f.svc.CheckIn(ctx, "ana", day, []contract.CheckInUpdate{
		{ActionID: acts[0].ID, Completed: false},
	})
	require.NoError(t, err)

	_, err = f.svc.CheckIn(ctx, "ana", day, []contract.CheckInUpdate{
		{ActionID: acts[0].ID, Completed: true},
		{ActionID: acts[1].ID, Completed: true},
	})
	require.NoError(t, err)

	history, err := f.svc.History(ctx, "ana", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, engine.VerdictClean, history[0].VerdictText)
}

func TestCheckinService_History_NewestFirst(t *testing.T) {
	f := newCheckinFixture(t)
	ctx := context.Background()
	require.NoError(t, f.founders.Create(ctx, testutil.NewTestFounder("ana")))

	require.NoError(t, f.results.Upsert(ctx, testutil.NewTestResult("ana", "2026-08-30", 100, 0, engine.VerdictClean)))
	require.NoError(t, f.results.Upsert(ctx, testutil.NewTestResult("ana", "2026-08-31", -15, 15, engine.VerdictNothing)))

	history, err := f.svc.History(ctx, "ana", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2026-08-31", history[0].Day)
	assert.Equal(t, "2026-08-30", history[1].Day)
}
