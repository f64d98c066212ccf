package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/gauntlet/internal/cli/formatter"
	"github.com/alexanderramin/gauntlet/internal/service"
	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	var goal string

	cmd := &cobra.Command{
		Use:   "init [founder-id]",
		Short: "Commit a goal and start the gauntlet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			founderID := defaultFounderID
			if len(args) == 1 {
				founderID = args[0]
			}

			if goal == "" {
				if !app.interactive() {
					return fmt.Errorf("--goal is required when not running in a terminal")
				}
				if err := goalForm(&goal).Run(); err != nil {
					return err
				}
			}

			f, err := app.Founders.Create(context.Background(), founderID, goal)
			if errors.Is(err, service.ErrFounderExists) {
				return fmt.Errorf("already initialized; the goal stands (use 'gauntlet status')")
			}
			if err != nil {
				return err
			}

			fmt.Println(formatter.Bold("Committed."))
			fmt.Printf("%s %s\n", formatter.Dim("Goal:"), f.GoalText)
			fmt.Println(formatter.Dim("Run 'gauntlet today' to get your non-negotiables."))
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "The goal to commit to (5-280 characters)")

	return cmd
}
