package sqlstore

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/novelreader-backend/internal/config"
)

// Dialect selects the SQL variant for a database engine.
type Dialect string

const (
	MySQL    Dialect = config.DriverMySQL
	Postgres Dialect = config.DriverPostgres
)

// DialectFor maps a configured driver name to its Dialect.
func DialectFor(driver string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(driver))) {
	case MySQL:
		return MySQL, nil
	case Postgres:
		return Postgres, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

func (d Dialect) String() string { return string(d) }

// Builder returns a squirrel statement builder using the dialect's placeholders.
func (d Dialect) Builder() sq.StatementBuilderType {
	if d == Postgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// Contains matches rows where any of cols contains term, case-insensitively.
// LIKE wildcards inside term are escaped.
func (d Dialect) Contains(term string, cols ...string) sq.Sqlizer {
	pattern := "%" + EscapeLike(term) + "%"
	or := make(sq.Or, 0, len(cols))
	for _, col := range cols {
		if d == Postgres {
			or = append(or, sq.ILike{col: pattern})
		} else {
			// utf8mb4 default collations are case-insensitive.
			or = append(or, sq.Like{col: pattern})
		}
	}
	return or
}

// FullTextMatch is the predicate selecting rows whose title or description
// match term.
func (d Dialect) FullTextMatch(term string) sq.Sqlizer {
	if d == Postgres {
		return sq.Expr(pgDocument+" @@ plainto_tsquery('simple', ?)", term)
	}
	return sq.Expr("MATCH(n.title, n.description) AGAINST (? IN NATURAL LANGUAGE MODE)", term)
}

// Relevance is the full-text score of a row for term, aliased as "relevance".
func (d Dialect) Relevance(term string) sq.Sqlizer {
	if d == Postgres {
		return sq.Alias(sq.Expr("ts_rank("+pgDocument+", plainto_tsquery('simple', ?))", term), "relevance")
	}
	return sq.Alias(sq.Expr("MATCH(n.title, n.description) AGAINST (? IN NATURAL LANGUAGE MODE)", term), "relevance")
}

// ShortText truncates a text column to n characters in SQL.
func (d Dialect) ShortText(col string, n int, alias string) string {
	return fmt.Sprintf("LEFT(%s, %d) AS %s", col, n, alias)
}

// Goose returns the migration dialect.
func (d Dialect) Goose() goose.Dialect {
	if d == Postgres {
		return goose.DialectPostgres
	}
	return goose.DialectMySQL
}

// pgDocument must stay identical to the expression of idx_novels_fts.
const pgDocument = "to_tsvector('simple', n.title || ' ' || n.description)"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters so term is matched literally.
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}
