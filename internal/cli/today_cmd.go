package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/gauntlet/internal/cli/formatter"
	"github.com/alexanderramin/gauntlet/internal/domain"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	var founderID string
	var day string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Generate or show today's non-negotiable actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if day == "" {
				day = domain.DayString(time.Now())
			} else if _, err := time.Parse(domain.DayLayout, day); err != nil {
				return fmt.Errorf("invalid --day %q, want YYYY-MM-DD", day)
			}

			plan, err := app.Plans.GenerateToday(context.Background(), founderID, day)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&founderID, "founder", defaultFounderID, "Founder ID")
	cmd.Flags().StringVar(&day, "day", "", "Day in YYYY-MM-DD (defaults to today)")

	return cmd
}
