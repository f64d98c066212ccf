package cli

import (
	"fmt"

	"github.com/alexanderramin/gauntlet/internal/cli/formatter"
	"github.com/alexanderramin/gauntlet/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// gauntletHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func gauntletHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// goalForm builds a single-field form for committing the goal.
func goalForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What is the goal?").
				Description("One concrete outcome. You will be judged against it daily.").
				Placeholder("Get 10 paying customers in 14 days").
				Value(value).
				Validate(domain.ValidateGoal),
		),
	).WithTheme(gauntletHuhTheme()).WithShowHelp(false)
}

// checkinForm builds a multi-select over the day's actions. Selected
// actions are marked done; the rest are marked missed.
func checkinForm(actions []*domain.Action, done *[]string) *huh.Form {
	options := make([]huh.Option[string], 0, len(actions))
	for _, a := range actions {
		label := fmt.Sprintf("%d. %s", a.Seq+1, a.Text)
		opt := huh.NewOption(label, a.ID)
		if a.Completed != nil && *a.Completed {
			opt = opt.Selected(true)
		}
		options = append(options, opt)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("What did you actually do?").
				Description("Select completed actions. Everything else counts as missed.").
				Options(options...).
				Value(done),
		),
	).WithTheme(gauntletHuhTheme()).WithShowHelp(false)
}
