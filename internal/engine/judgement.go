package engine

import (
	"math"

	"github.com/alexanderramin/gauntlet/internal/domain"
)

// Progression bounds.
const (
	MinLevel      = 1
	MaxLevel      = 10
	MinDifficulty = 1
	MaxDifficulty = 5

	XPPerLevel = 250
)

// Scoring constants.
const (
	xpPerCompleted       = 20
	xpPerImpactPoint     = 10
	xpPerDifficultyLevel = 5
	penaltyPerMiss       = 15
	streakBonusXP        = 5
	streakBonusMinDays   = 3
)

// DayRecord summarizes one day's completion record. Counts cover only
// actions explicitly marked by the founder; unset actions appear in neither.
type DayRecord struct {
	Completed  int
	Missed     int
	ImpactsSum float64 // sum of impact weights over completed actions
}

// Judgement is the full outcome of scoring one day: the deltas, the new
// progression state, and the verdict text.
type Judgement struct {
	XPDelta       int
	Penalty       int
	NewXP         int
	NewLevel      int
	NewStreak     int
	NewDebt       int
	NewDifficulty int
	Verdict       string
}

// Verdict texts, selected by the first matching rule below.
const (
	VerdictNothing  = "You executed nothing. That's self-deception. Penalty applied."
	VerdictHard     = "You executed hard. Keep going. Next level demands more."
	VerdictClean    = "You did the work. No excuses. No detours."
	VerdictAvoided  = "You avoided the main goal. You pay now and later. Fix it."
	VerdictCatchAll = "You did something — then you bailed on the rest. Not enough."
)

// verdictRules is the ordered verdict chain. Evaluated top to bottom,
// first match wins; the final rule always matches. A day with zero marked
// actions deliberately lands on the catch-all, not VerdictNothing.
var verdictRules = []struct {
	match   func(completed, missed int) bool
	verdict string
}{
	{func(c, m int) bool { return c == 0 && m > 0 }, VerdictNothing},
	{func(c, m int) bool { return m == 0 && c >= 4 }, VerdictHard},
	{func(c, m int) bool { return m == 0 && c > 0 }, VerdictClean},
	{func(c, m int) bool { return m >= 2 }, VerdictAvoided},
	{func(c, m int) bool { return true }, VerdictCatchAll},
}

// escalationRules is the ordered difficulty chain: the first matching rule
// raises difficulty by one, and only one rule may fire per day.
var escalationRules = []func(completed, missed, newStreak int) bool{
	func(c, m, s int) bool { return m >= 2 },
	func(c, m, s int) bool { return s >= 5 },
	func(c, m, s int) bool { return m == 0 && c >= 4 },
}

// Judge scores one day's record against the current progression state.
// It is deterministic and side-effect free; it never touches storage.
func Judge(state domain.Progression, rec DayRecord) Judgement {
	baseXP := int(math.Round(
		float64(xpPerCompleted*rec.Completed) +
			xpPerImpactPoint*rec.ImpactsSum +
			float64(xpPerDifficultyLevel*state.Difficulty)))
	penalty := penaltyPerMiss * rec.Missed

	newStreak := 0
	if rec.Missed == 0 && rec.Completed > 0 {
		newStreak = state.Streak + 1
	}

	bonus := 0
	if newStreak >= streakBonusMinDays {
		bonus = streakBonusXP
	}

	xpDelta := baseXP + bonus - penalty
	newXP := state.XP + xpDelta
	if newXP < 0 {
		newXP = 0
	}

	newDifficulty := state.Difficulty
	for _, escalate := range escalationRules {
		if escalate(rec.Completed, rec.Missed, newStreak) {
			newDifficulty++
			break
		}
	}

	verdict := VerdictCatchAll
	for _, rule := range verdictRules {
		if rule.match(rec.Completed, rec.Missed) {
			verdict = rule.verdict
			break
		}
	}

	return Judgement{
		XPDelta:       xpDelta,
		Penalty:       penalty,
		NewXP:         newXP,
		NewLevel:      LevelFromXP(newXP),
		NewStreak:     newStreak,
		NewDebt:       state.Debt + rec.Missed,
		NewDifficulty: clamp(newDifficulty, MinDifficulty, MaxDifficulty),
		Verdict:       verdict,
	}
}

// LevelFromXP derives the level purely from experience points.
func LevelFromXP(xp int) int {
	return clamp(1+xp/XPPerLevel, MinLevel, MaxLevel)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
