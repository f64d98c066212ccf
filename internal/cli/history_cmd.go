package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gauntlet/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var founderID string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the permanent daily record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := app.Checkins.History(context.Background(), founderID, limit)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatHistory(results))
			return nil
		},
	}

	cmd.Flags().StringVar(&founderID, "founder", defaultFounderID, "Founder ID")
	cmd.Flags().IntVar(&limit, "limit", 30, "Maximum number of days to show")

	return cmd
}
