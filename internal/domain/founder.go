package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinGoalLen = 5
	MaxGoalLen = 280
)

// Founder is the single tracked user: an identifier, a committed goal,
// and the progression state mutated only by daily judgement.
type Founder struct {
	ID         string
	CreatedAt  time.Time
	GoalText   string
	Level      int
	XP         int
	Streak     int
	Debt       int
	Difficulty int
}

// Progression is the {xp, level, streak, debt, difficulty} tuple the
// scoring engine reads and rewrites.
type Progression struct {
	XP         int
	Level      int
	Streak     int
	Debt       int
	Difficulty int
}

func (f *Founder) Progression() Progression {
	return Progression{
		XP:         f.XP,
		Level:      f.Level,
		Streak:     f.Streak,
		Debt:       f.Debt,
		Difficulty: f.Difficulty,
	}
}

// ValidateGoal checks a goal string after trimming.
func ValidateGoal(goal string) error {
	trimmed := strings.TrimSpace(goal)
	if len(trimmed) < MinGoalLen {
		return fmt.Errorf("goal must be at least %d characters", MinGoalLen)
	}
	if len(trimmed) > MaxGoalLen {
		return fmt.Errorf("goal must be at most %d characters", MaxGoalLen)
	}
	return nil
}
