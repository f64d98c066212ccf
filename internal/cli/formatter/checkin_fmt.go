package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gauntlet/internal/contract"
)

// FormatCheckIn renders the judgement block for a checked-in day: the
// verdict, the deltas, and the resulting progression state.
func FormatCheckIn(res *contract.CheckInResult) string {
	var b strings.Builder
	j := res.Judgement

	b.WriteString(Header(fmt.Sprintf("Judgement — %s", res.Day)))
	b.WriteString("\n\n")
	b.WriteString(VerdictStyle(j.Verdict).Render(j.Verdict))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s done, %s missed\n",
		Bold("Day:"),
		StyleGreen.Render(fmt.Sprintf("%d", res.Completed)),
		StyleRed.Render(fmt.Sprintf("%d", res.Missed))))

	delta := StyleGreen.Render(fmt.Sprintf("%+d", j.XPDelta))
	if j.XPDelta < 0 {
		delta = StyleRed.Render(fmt.Sprintf("%+d", j.XPDelta))
	}
	b.WriteString(fmt.Sprintf("%s %s xp", Bold("Delta:"), delta))
	if j.Penalty > 0 {
		b.WriteString(Dim(fmt.Sprintf(" (penalty %d)", j.Penalty)))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s level %d · %d xp · streak %d · debt %d · difficulty %d\n",
		Bold("Now:"), j.NewLevel, j.NewXP, j.NewStreak, j.NewDebt, j.NewDifficulty))

	return b.String()
}
