package generation

import (
	"strings"

	"github.com/alexanderramin/gauntlet/internal/domain"
)

// goalCategory is a keyword-classified goal family with a fixed action template.
type goalCategory struct {
	keywords []string
	template []templateAction
}

// templateAction is one templated proposal. escalate bumps the difficulty
// by one (capped at 3); fixedDifficulty, when > 0, overrides the input
// difficulty entirely.
type templateAction struct {
	text            string
	impact          float64
	escalate        bool
	fixedDifficulty int
}

// categories is evaluated in order; a goal matching several keyword sets
// takes the first category. Revenue is checked before build on purpose.
var categories = []goalCategory{
	{
		keywords: []string{"mrr", "sales", "customers", "customer", "revenue", "sell", "pipeline"},
		template: []templateAction{
			{text: "Contact 10 prospects (DM/email) with ONE offer. Log replies.", impact: 1.4, escalate: true},
			{text: "Improve the offer (headline + price + guarantee). Publish it.", impact: 1.2},
			{text: "Book 1 short sales call (15 min). No research-avoidance.", impact: 1.5, escalate: true},
			{text: "Ask for money: send 1 invoice/checkout link or request a deposit.", impact: 1.5, fixedDifficulty: 3},
		},
	},
	{
		keywords: []string{"product", "mvp", "app", "build", "launch", "ship"},
		template: []templateAction{
			{text: "Set a deadline: ship 1 concrete feature today. No side quests.", impact: 1.3},
			{text: "Cut 1 feature you 'want' but don't need. Commit the change.", impact: 1.2},
			{text: "Post a public update (X/LinkedIn) showing what you shipped.", impact: 1.1},
			{text: "Get 3 people to test and give feedback. Collect responses.", impact: 1.4, escalate: true},
		},
	},
}

// genericTemplate applies when no keyword matches, including empty goals.
var genericTemplate = []templateAction{
	{text: "Write today's 3 deliverables in 1 sentence each. No fluff.", impact: 1.0},
	{text: "Do the most uncomfortable task first. 45-minute timer. No distractions.", impact: 1.4, escalate: true},
	{text: "Remove 1 blocker by contacting a human (not Googling).", impact: 1.3, escalate: true},
	{text: "Ship something visible: post/commit/demo. Proof > intention.", impact: 1.2},
}

// catchAllProposal pads short templates up to the three-action minimum.
func catchAllProposal(difficulty int) domain.ActionProposal {
	return domain.ActionProposal{
		Text:          "Ship a result you can show publicly.",
		ImpactWeight:  1.2,
		Difficulty:    difficulty,
		NonNegotiable: true,
	}
}

// HeuristicActions deterministically proposes 3 to 5 daily actions for a goal.
// It is the fallback behind the LLM planner and the baseline its output is
// judged against.
func HeuristicActions(goalText string, difficulty int) []domain.ActionProposal {
	lower := strings.ToLower(strings.TrimSpace(goalText))

	template := genericTemplate
	for _, cat := range categories {
		if containsAny(lower, cat.keywords) {
			template = cat.template
			break
		}
	}

	proposals := make([]domain.ActionProposal, 0, len(template))
	for _, ta := range template {
		d := difficulty
		switch {
		case ta.fixedDifficulty > 0:
			d = ta.fixedDifficulty
		case ta.escalate:
			d = min(3, difficulty+1)
		}
		proposals = append(proposals, domain.ActionProposal{
			Text:          ta.text,
			ImpactWeight:  ta.impact,
			Difficulty:    d,
			NonNegotiable: true,
		})
	}

	if len(proposals) > domain.MaxActionsPerDay {
		proposals = proposals[:domain.MaxActionsPerDay]
	}
	for len(proposals) < domain.MinActionsPerDay {
		proposals = append(proposals, catchAllProposal(difficulty))
	}
	return proposals
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
