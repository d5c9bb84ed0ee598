// Command migrate applies the embedded schema migrations to the configured
// database.
//
// Usage: migrate [up|down|status]   (default: up)
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore"
	"github.com/heartmarshall/novelreader-backend/internal/app"
	"github.com/heartmarshall/novelreader-backend/internal/config"
)

func main() {
	action := "up"
	if len(os.Args) > 1 {
		action = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, dialect, err := sqlstore.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	migrator, err := sqlstore.NewMigrator(db, dialect, logger)
	if err != nil {
		logger.Error("create migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}

	switch action {
	case "up":
		err = migrator.Up(ctx)
	case "down":
		err = migrator.Down(ctx)
	case "status":
		err = migrator.Status(ctx)
	default:
		fmt.Fprintf(os.Stderr, "unknown action %q (want up, down or status)\n", action)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("migration failed",
			slog.String("action", action),
			slog.String("driver", dialect.String()),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
}
