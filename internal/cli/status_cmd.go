package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/gauntlet/internal/cli/formatter"
	"github.com/alexanderramin/gauntlet/internal/repository"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var founderID string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show progression: level, xp, streak, debt, difficulty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.Founders.Get(context.Background(), founderID)
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("not initialized; run 'gauntlet init' first")
			}
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatStatus(f))
			return nil
		},
	}

	cmd.Flags().StringVar(&founderID, "founder", defaultFounderID, "Founder ID")

	return cmd
}
