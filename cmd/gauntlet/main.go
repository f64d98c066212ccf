package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/gauntlet/internal/cli"
	"github.com/alexanderramin/gauntlet/internal/db"
	"github.com/alexanderramin/gauntlet/internal/intelligence"
	"github.com/alexanderramin/gauntlet/internal/llm"
	"github.com/alexanderramin/gauntlet/internal/repository"
	"github.com/alexanderramin/gauntlet/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.gauntlet/gauntlet.db
	dbPath := os.Getenv("GAUNTLET_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".gauntlet", "gauntlet.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and the unit of work
	founderRepo := repository.NewSQLiteFounderRepo(database)
	actionRepo := repository.NewSQLiteActionRepo(database)
	resultRepo := repository.NewSQLiteResultRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the planner. With the LLM disabled the heuristic generator
	// produces every plan; enabling it only changes the first attempt.
	llmCfg := llm.LoadConfig()
	var llmClient llm.LLMClient
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewOllamaClient(llmCfg, observer)
	}
	planner := intelligence.NewActionPlanService(llmClient)

	app := &cli.App{
		Founders: service.NewFounderService(founderRepo),
		Plans:    service.NewPlanService(founderRepo, actionRepo, resultRepo, planner, uow),
		Checkins: service.NewCheckinService(resultRepo, uow),
	}

	// Detect interactive terminal for huh forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
