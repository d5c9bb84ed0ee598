package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/novelreader-backend/internal/domain"
)

// MySQL server error numbers.
const (
	mysqlFullTextIndexMissing = 1191 // ER_FT_MATCHING_KEY_NOT_FOUND
	mysqlTableCantHandleFT    = 1214 // ER_TABLE_CANT_HANDLE_FT
)

// PostgreSQL SQLSTATE codes.
const (
	pgUndefinedObject   = "42704" // unknown text search configuration
	pgUndefinedFunction = "42883"
)

// MapError converts driver errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlFullTextIndexMissing, mysqlTableCantHandleFT:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrFullTextUnavailable, myErr.Message)
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUndefinedObject, pgUndefinedFunction:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrFullTextUnavailable, pgErr.Message)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
