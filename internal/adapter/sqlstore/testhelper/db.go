// Package testhelper starts throwaway MySQL and PostgreSQL containers for
// repository integration tests and seeds catalog rows into them.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore"
	"github.com/heartmarshall/novelreader-backend/internal/config"
)

type sharedDB struct {
	once sync.Once
	dsn  string
	err  error
}

var (
	mysqlDB    sharedDB
	postgresDB sharedDB
)

// SetupMySQL starts a shared MySQL container (once for the entire test run),
// applies goose migrations, and returns a new *sql.DB connected to it.
// The pool is closed via t.Cleanup; the container lives until the process exits.
func SetupMySQL(t *testing.T) *sql.DB {
	t.Helper()
	return setup(t, &mysqlDB, sqlstore.MySQL, startMySQL)
}

// SetupPostgres is SetupMySQL for PostgreSQL.
func SetupPostgres(t *testing.T) *sql.DB {
	t.Helper()
	return setup(t, &postgresDB, sqlstore.Postgres, startPostgres)
}

// Setup dispatches to SetupMySQL or SetupPostgres.
func Setup(t *testing.T, d sqlstore.Dialect) *sql.DB {
	t.Helper()
	if d == sqlstore.Postgres {
		return SetupPostgres(t)
	}
	return SetupMySQL(t)
}

func setup(t *testing.T, shared *sharedDB, d sqlstore.Dialect, start func(context.Context) (string, error)) *sql.DB {
	t.Helper()

	shared.once.Do(func() {
		shared.dsn, shared.err = startAndMigrate(d, start)
	})
	if shared.err != nil {
		t.Fatalf("testhelper: failed to setup %s test DB: %v", d, shared.err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, _, err := sqlstore.Open(ctx, dbConfig(d, shared.dsn))
	if err != nil {
		t.Fatalf("testhelper: open %s: %v", d, err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func dbConfig(d sqlstore.Dialect, dsn string) config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:          d.String(),
		DSN:             dsn,
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
		ConnMaxIdleTime: time.Minute,
	}
}

func startAndMigrate(d sqlstore.Dialect, start func(context.Context) (string, error)) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
	defer cancel()

	dsn, err := start(ctx)
	if err != nil {
		return "", err
	}

	db, _, err := sqlstore.Open(ctx, dbConfig(d, dsn))
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	defer db.Close()

	migrator, err := sqlstore.NewMigrator(db, d, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		return "", err
	}
	if err := migrator.Up(ctx); err != nil {
		return "", err
	}

	return dsn, nil
}

func startMySQL(ctx context.Context) (string, error) {
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8.4",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "rootpass",
			"MYSQL_USER":          "testuser",
			"MYSQL_PASSWORD":      "testpass",
			"MYSQL_DATABASE":      "testdb",
		},
		Cmd: []string{"--character-set-server=utf8mb4", "--collation-server=utf8mb4_unicode_ci"},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").
			WithStartupTimeout(120 * time.Second),
	}

	host, port, err := startContainer(ctx, req, "3306")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("testuser:testpass@tcp(%s:%s)/testdb?parseTime=true", host, port), nil
}

func startPostgres(ctx context.Context) (string, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	host, port, err := startContainer(ctx, req, "5432")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port), nil
}

func startContainer(ctx context.Context, req testcontainers.ContainerRequest, port string) (string, string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", "", fmt.Errorf("get container host: %w", err)
	}

	mapped, err := container.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return "", "", fmt.Errorf("get mapped port: %w", err)
	}

	return host, mapped.Port(), nil
}
