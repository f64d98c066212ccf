package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gauntlet/internal/contract"
	"github.com/alexanderramin/gauntlet/internal/domain"
)

// FormatPlan renders the day's action list. Each action shows its sequence
// number, completion mark, text, and difficulty/impact badges.
func FormatPlan(plan *contract.TodayPlan) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Non-negotiables — %s", plan.Day)))
	b.WriteString("\n")
	if plan.AlreadyGenerated {
		b.WriteString(Dim("Plan already set for today. No re-rolls.") + "\n")
	}
	b.WriteString("\n")

	for _, a := range plan.Actions {
		b.WriteString(formatActionLine(a))
		b.WriteString("\n")
	}

	return b.String()
}

func formatActionLine(a *domain.Action) string {
	mark := StyleDim.Render("[ ]")
	text := StyleFg.Render(a.Text)
	switch {
	case a.Completed != nil && *a.Completed:
		mark = StyleGreen.Render("[✓]")
	case a.Completed != nil:
		mark = StyleRed.Render("[✗]")
		text = StyleDim.Render(a.Text)
	}

	badges := Dim(fmt.Sprintf("d%d · %.1fx", a.Difficulty, a.ImpactWeight))
	return fmt.Sprintf("%s %s. %s  %s", mark, StyleBlue.Render(fmt.Sprintf("%d", a.Seq+1)), text, badges)
}
