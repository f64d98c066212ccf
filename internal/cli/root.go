package cli

import (
	"github.com/alexanderramin/gauntlet/internal/service"
	"github.com/spf13/cobra"
)

// defaultFounderID is used when --founder is not given. The engine tracks
// one founder per database in practice; the id keeps records separable.
const defaultFounderID = "me"

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Founders service.FounderService
	Plans    service.PlanService
	Checkins service.CheckinService

	// IsInteractive reports whether stdin is a terminal; interactive huh
	// forms are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "gauntlet" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gauntlet",
		Short: "Daily execution engine: non-negotiable actions, judged every day",
	}

	root.AddCommand(
		newInitCmd(app),
		newTodayCmd(app),
		newCheckinCmd(app),
		newStatusCmd(app),
		newHistoryCmd(app),
	)

	return root
}
