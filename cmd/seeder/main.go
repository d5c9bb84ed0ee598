// Command seeder loads categories, novels and chapters from a YAML dataset
// into the catalog. Rows that already exist (by slug or title) are skipped,
// so it is safe to run repeatedly.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        parse the dataset without writing to DB
//	--data           path to the dataset file (overrides SEEDER_DATA_PATH)
//	--seeder-config  path to seeder YAML config file
//	--config         path to the app config file (overrides CONFIG_PATH)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore"
	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore/bulk"
	"github.com/heartmarshall/novelreader-backend/internal/app"
	"github.com/heartmarshall/novelreader-backend/internal/app/seeder"
	"github.com/heartmarshall/novelreader-backend/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse the dataset without writing to DB")
	dataFlag := flag.String("data", "", "path to the dataset YAML file")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	configFlag := flag.String("config", "", "path to the app config file")
	flag.Parse()

	// Load app config (for DB connection).
	loadApp := config.Load
	if *configFlag != "" {
		loadApp = func() (*config.Config, error) { return config.LoadFile(*configFlag) }
	}
	appCfg, err := loadApp()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *dataFlag != "" {
		seederCfg.DataPath = *dataFlag
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	db, dialect, err := sqlstore.Open(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	pipeline := seeder.NewPipeline(logger, bulk.New(db, dialect), *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
