package main

import (
	"log/slog"
	"os"

	"github.com/wastewise/backend/config"
	"github.com/wastewise/backend/internal/database"
	"github.com/wastewise/backend/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	dir := "migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := database.RunMigrations(db, dir); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied")
}
