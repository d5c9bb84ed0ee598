package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/mysql/*.sql migrations/postgres/*.sql
var migrations embed.FS

// Migrations returns the migration files for the dialect.
func Migrations(d Dialect) (fs.FS, error) {
	sub, err := fs.Sub(migrations, "migrations/"+d.String())
	if err != nil {
		return nil, fmt.Errorf("migrations for %s: %w", d, err)
	}
	return sub, nil
}

// Migrator applies the embedded schema with goose.
type Migrator struct {
	provider *goose.Provider
	log      *slog.Logger
}

// NewMigrator creates a goose provider over the embedded migrations.
func NewMigrator(db *sql.DB, d Dialect, logger *slog.Logger) (*Migrator, error) {
	fsys, err := Migrations(d)
	if err != nil {
		return nil, err
	}

	provider, err := goose.NewProvider(d.Goose(), db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	return &Migrator{provider: provider, log: logger.With("adapter", "migrator")}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	m.logResults(ctx, "applied", results)
	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	m.logResults(ctx, "rolled back", []*goose.MigrationResult{result})
	return nil
}

// Status logs the state of every known migration.
func (m *Migrator) Status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("goose status: %w", err)
	}
	for _, s := range statuses {
		m.log.InfoContext(ctx, "migration",
			slog.Int64("version", s.Source.Version),
			slog.String("path", s.Source.Path),
			slog.String("state", string(s.State)),
		)
	}
	return nil
}

func (m *Migrator) logResults(ctx context.Context, action string, results []*goose.MigrationResult) {
	if len(results) == 0 {
		m.log.InfoContext(ctx, "no migrations "+action)
		return
	}
	for _, r := range results {
		if r == nil {
			continue
		}
		m.log.InfoContext(ctx, "migration "+action,
			slog.Int64("version", r.Source.Version),
			slog.String("path", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
}
