package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gauntlet/internal/domain"
)

// FormatHistory renders the permanent record as a table, newest day first.
func FormatHistory(results []*domain.DailyResult) string {
	if len(results) == 0 {
		return Dim("No record yet. Generate a plan and check in.") + "\n"
	}

	headers := []string{"DAY", "XP", "PENALTY", "VERDICT"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		delta := StyleGreen.Render(fmt.Sprintf("%+d", r.XPDelta))
		if r.XPDelta < 0 {
			delta = StyleRed.Render(fmt.Sprintf("%+d", r.XPDelta))
		}
		penalty := Dim("0")
		if r.Penalty > 0 {
			penalty = StyleRed.Render(fmt.Sprintf("%d", r.Penalty))
		}
		rows = append(rows, []string{
			StyleFg.Render(r.Day),
			delta,
			penalty,
			VerdictStyle(r.VerdictText).Render(r.VerdictText),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Record"))
	b.WriteString("\n")
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
