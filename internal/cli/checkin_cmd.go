package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/gauntlet/internal/cli/formatter"
	"github.com/alexanderramin/gauntlet/internal/contract"
	"github.com/alexanderramin/gauntlet/internal/domain"
	"github.com/alexanderramin/gauntlet/internal/service"
	"github.com/spf13/cobra"
)

func newCheckinCmd(app *App) *cobra.Command {
	var founderID string
	var day string
	var done []int
	var missed []int

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Mark actions done or missed and take the verdict",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if day == "" {
				day = domain.DayString(time.Now())
			} else if _, err := time.Parse(domain.DayLayout, day); err != nil {
				return fmt.Errorf("invalid --day %q, want YYYY-MM-DD", day)
			}

			plan, err := app.Plans.GetPlan(ctx, founderID, day)
			if errors.Is(err, service.ErrNoActionsForDay) {
				return fmt.Errorf("no plan for %s; run 'gauntlet today' first", day)
			}
			if err != nil {
				return err
			}

			var updates []contract.CheckInUpdate
			if len(done) == 0 && len(missed) == 0 {
				if !app.interactive() {
					return fmt.Errorf("--done/--missed are required when not running in a terminal")
				}
				updates, err = collectInteractive(plan.Actions)
				if err != nil {
					return err
				}
			} else {
				updates, err = updatesFromSeqs(plan.Actions, done, missed)
				if err != nil {
					return err
				}
			}

			res, err := app.Checkins.CheckIn(ctx, founderID, day, updates)
			if errors.Is(err, service.ErrNoActionsForDay) {
				return fmt.Errorf("no actions stored for %s", day)
			}
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatCheckIn(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&founderID, "founder", defaultFounderID, "Founder ID")
	cmd.Flags().StringVar(&day, "day", "", "Day in YYYY-MM-DD (defaults to today)")
	cmd.Flags().IntSliceVar(&done, "done", nil, "Action numbers completed, e.g. --done 1,3")
	cmd.Flags().IntSliceVar(&missed, "missed", nil, "Action numbers missed, e.g. --missed 2")

	return cmd
}

// collectInteractive runs the multi-select form. Every action gets an
// explicit mark: selected means done, unselected means missed.
func collectInteractive(actions []*domain.Action) ([]contract.CheckInUpdate, error) {
	var doneIDs []string
	if err := checkinForm(actions, &doneIDs).Run(); err != nil {
		return nil, err
	}

	doneSet := make(map[string]bool, len(doneIDs))
	for _, id := range doneIDs {
		doneSet[id] = true
	}

	updates := make([]contract.CheckInUpdate, 0, len(actions))
	for _, a := range actions {
		updates = append(updates, contract.CheckInUpdate{ActionID: a.ID, Completed: doneSet[a.ID]})
	}
	return updates, nil
}

// updatesFromSeqs maps 1-based action numbers from --done/--missed to
// updates. Numbers outside the plan or listed in both flags are errors.
func updatesFromSeqs(actions []*domain.Action, done, missed []int) ([]contract.CheckInUpdate, error) {
	bySeq := make(map[int]*domain.Action, len(actions))
	for _, a := range actions {
		bySeq[a.Seq+1] = a
	}

	marks := make(map[string]bool)
	for _, n := range done {
		a, ok := bySeq[n]
		if !ok {
			return nil, fmt.Errorf("no action number %d in today's plan", n)
		}
		marks[a.ID] = true
	}
	for _, n := range missed {
		a, ok := bySeq[n]
		if !ok {
			return nil, fmt.Errorf("no action number %d in today's plan", n)
		}
		if marks[a.ID] {
			return nil, fmt.Errorf("action %d is listed as both done and missed", n)
		}
		marks[a.ID] = false
	}

	updates := make([]contract.CheckInUpdate, 0, len(marks))
	for _, a := range actions {
		if completed, ok := marks[a.ID]; ok {
			updates = append(updates, contract.CheckInUpdate{ActionID: a.ID, Completed: completed})
		}
	}
	return updates, nil
}
