package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/drgmb/revisa/internal/cli"
	"github.com/drgmb/revisa/internal/db"
	"github.com/drgmb/revisa/internal/repository"
	"github.com/drgmb/revisa/internal/service"
	"github.com/drgmb/revisa/internal/sheet"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Snapshot DB path: env var or default ~/.revisa/revisa.db
	dbPath := os.Getenv("REVISA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".revisa", "revisa.db")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	logCacheRepo := repository.NewSQLiteLogCacheRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	sheetClient := sheet.New(sheet.LoadConfig())

	app := &cli.App{
		Schedule: service.NewScheduleService(scheduleRepo, sheetClient, uow),
		Study:    service.NewStudyService(scheduleRepo, sheetClient, uow),
		Plan:     service.NewPlanService(sheetClient),
		Activity: service.NewActivityService(logCacheRepo, scheduleRepo, sheetClient, uow),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
