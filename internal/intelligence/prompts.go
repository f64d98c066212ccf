package intelligence

import (
	"fmt"
	"strings"
)

const actionPlanSystemPrompt = `You are a ruthless operating manager. You generate DAILY, NON-NEGOTIABLE actions for a founder.

Rules:
- No administrative tasks.
- At least 1 action must be uncomfortable (contacting people, publishing, committing, asking for money).
- Actions must directly drive the goal.
- Return ONLY a JSON array of 3-5 objects, no prose:
  [{ "text": "...", "impact_weight": 0.5-1.5, "difficulty": 1-3, "non_negotiable": true }]`

func buildActionPlanUserPrompt(goalText string, difficulty int, historySummary string) string {
	var b strings.Builder
	b.WriteString("GOAL: ")
	b.WriteString(strings.TrimSpace(goalText))
	fmt.Fprintf(&b, "\nDIFFICULTY (1-5): %d", difficulty)
	if historySummary != "" {
		b.WriteString("\nRECENT RECORD: ")
		b.WriteString(historySummary)
	}
	return b.String()
}
