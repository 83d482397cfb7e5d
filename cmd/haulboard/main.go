package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wessels/haulboard/internal/config"
	"github.com/wessels/haulboard/internal/database"
	"github.com/wessels/haulboard/internal/database/repository"
	"github.com/wessels/haulboard/internal/logger"
	"github.com/wessels/haulboard/internal/service"
	"github.com/wessels/haulboard/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment, cfg.Log.Level)

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := database.RunMigrations(db, "internal/database/migrations"); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	if cfg.Database.SeedDemo {
		if err := database.SeedDemo(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo records")
		}
	}

	repos := tui.Repos{
		Quotes:   repository.NewQuoteRepo(db),
		Invoices: repository.NewInvoiceRepo(db),
		Contacts: repository.NewContactRepo(db),
	}
	services := tui.Services{
		Documents: service.NewDocumentService(db, cfg.Billing.PaymentTermDays, log),
		Workflow:  service.NewWorkflowService(db, cfg.Billing.PaymentTermDays, log),
	}

	log.Info().Str("db", cfg.Database.Path).Int("payment_term_days", cfg.Billing.PaymentTermDays).Msg("starting haulboard")

	app := tui.New(ctx, cfg, repos, services)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal().Err(err).Msg("console exited with error")
	}
}
