package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore"
	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore/category"
	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore/chapter"
	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore/novel"
	"github.com/heartmarshall/novelreader-backend/internal/config"
	"github.com/heartmarshall/novelreader-backend/internal/service/catalog"
	"github.com/heartmarshall/novelreader-backend/internal/service/search"
	"github.com/heartmarshall/novelreader-backend/internal/transport/middleware"
	"github.com/heartmarshall/novelreader-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// store, optionally applies migrations, and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("driver", cfg.Database.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	db, dialect, err := sqlstore.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		migrator, err := sqlstore.NewMigrator(db, dialect, logger)
		if err != nil {
			return err
		}
		if err := migrator.Up(ctx); err != nil {
			return err
		}
	}

	novels := novel.New(db, dialect, cfg.Search.DescriptionLength)

	searchSvc := search.NewService(logger, novels, cfg.Search)
	catalogSvc := catalog.NewService(logger, novels, chapter.New(db, dialect), category.New(db, dialect))

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit)
		defer limiter.Stop()
	}

	handler := NewRouter(Router{
		Search:     rest.NewSearchHandler(searchSvc, logger),
		Catalog:    rest.NewCatalogHandler(catalogSvc, logger),
		Health:     rest.NewHealthHandler(db, dialect.String(), BuildVersion()),
		Limiter:    limiter,
		CORS:       cfg.CORS,
		TrustProxy: cfg.Server.TrustProxy,
		Logger:     logger,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
