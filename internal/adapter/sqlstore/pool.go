// Package sqlstore opens the relational store behind the catalog and search
// endpoints. MySQL and PostgreSQL are supported through database/sql; query
// differences between the two are captured by Dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver

	"github.com/heartmarshall/novelreader-backend/internal/config"
)

// Open creates a connection pool configured from DatabaseConfig. It applies
// pool settings, pings the database for fail-fast validation, and returns the
// pool together with the Dialect matching cfg.Driver.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, Dialect, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, "", err
	}

	var db *sql.DB
	switch dialect {
	case MySQL:
		db, err = openMySQL(cfg.DSN)
	default:
		db, err = sql.Open("pgx", cfg.DSN)
	}
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", dialect, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("ping database: %w", err)
	}

	return db, dialect, nil
}

// openMySQL forces parseTime so DATETIME columns scan into time.Time.
func openMySQL(dsn string) (*sql.DB, error) {
	mcfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}
	mcfg.ParseTime = true

	connector, err := mysql.NewConnector(mcfg)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}
	return sql.OpenDB(connector), nil
}
