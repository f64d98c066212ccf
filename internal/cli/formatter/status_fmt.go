package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gauntlet/internal/domain"
	"github.com/alexanderramin/gauntlet/internal/engine"
)

const levelBarWidth = 20

// FormatStatus renders the founder's current progression state with a
// progress bar toward the next level.
func FormatStatus(f *domain.Founder) string {
	var b strings.Builder

	b.WriteString(Header("Status"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Goal:"), StyleFg.Render(f.GoalText)))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %d", Bold("Level:"), f.Level))
	if f.Level < engine.MaxLevel {
		into := f.XP % engine.XPPerLevel
		pct := float64(into) / float64(engine.XPPerLevel)
		b.WriteString(fmt.Sprintf("  %s %s\n", RenderProgress(pct, levelBarWidth),
			Dim(fmt.Sprintf("%d/%d xp to level %d", into, engine.XPPerLevel, f.Level+1))))
	} else {
		b.WriteString("  " + Dim("(max)") + "\n")
	}

	b.WriteString(fmt.Sprintf("%s %d\n", Bold("XP:"), f.XP))

	streak := fmt.Sprintf("%d", f.Streak)
	if f.Streak >= 3 {
		streak = StyleGreen.Render(streak + " 🔥")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Streak:"), streak))

	debt := StyleGreen.Render("0")
	if f.Debt > 0 {
		debt = StyleRed.Render(fmt.Sprintf("%d", f.Debt))
	}
	b.WriteString(fmt.Sprintf("%s %s %s\n", Bold("Debt:"), debt, Dim("missed actions, all time")))
	b.WriteString(fmt.Sprintf("%s %d/%d\n", Bold("Difficulty:"), f.Difficulty, engine.MaxDifficulty))

	return b.String()
}
