// Package bulk implements the batch writes used by the catalog seeder.
package bulk

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore"
	"github.com/heartmarshall/novelreader-backend/internal/domain"
)

// Repo writes catalog rows in batches.
type Repo struct {
	db      *sql.DB
	dialect sqlstore.Dialect
}

// New creates a new bulk repository.
func New(db *sql.DB, dialect sqlstore.Dialect) *Repo {
	return &Repo{db: db, dialect: dialect}
}

// InsertCategories inserts categories whose slug is not yet present.
// Returns the number of actually inserted rows.
func (r *Repo) InsertCategories(ctx context.Context, categories []domain.Category) (int, error) {
	if len(categories) == 0 {
		return 0, nil
	}

	slugs := make([]string, len(categories))
	for i, c := range categories {
		slugs[i] = c.Slug
	}
	existing, err := r.existing(ctx, "categories", "slug", slugs)
	if err != nil {
		return 0, err
	}

	b := r.dialect.Builder().
		Insert("categories").
		Columns("name", "slug", "description", "is_featured", "sort_order")
	n := 0
	for _, c := range categories {
		if _, ok := existing[c.Slug]; ok {
			continue
		}
		existing[c.Slug] = 0
		b = b.Values(c.Name, c.Slug, c.Description, c.IsFeatured, c.SortOrder)
		n++
	}
	if n == 0 {
		return 0, nil
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert categories: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return 0, sqlstore.MapError(err, "insert categories")
	}
	return n, nil
}

// EnsureAuthors returns author ids keyed by username, inserting the
// usernames that do not exist yet.
func (r *Repo) EnsureAuthors(ctx context.Context, usernames []string) (map[string]int64, error) {
	ids, err := r.existing(ctx, "authors", "username", usernames)
	if err != nil {
		return nil, err
	}

	for _, name := range usernames {
		if _, ok := ids[name]; ok {
			continue
		}
		id, err := sqlstore.InsertReturningID(ctx, r.db, r.dialect, r.dialect.Builder().
			Insert("authors").Columns("username").Values(name))
		if err != nil {
			return nil, sqlstore.MapError(err, fmt.Sprintf("insert author %q", name))
		}
		ids[name] = id
	}
	return ids, nil
}

// GetNovelIDsByTitles returns ids of existing novels keyed by title.
func (r *Repo) GetNovelIDsByTitles(ctx context.Context, titles []string) (map[string]int64, error) {
	return r.existing(ctx, "novels", "title", titles)
}

// InsertNovel inserts a novel together with its chapters in one transaction
// and returns the novel id. Chapter NovelID fields are ignored.
func (r *Repo) InsertNovel(ctx context.Context, n domain.Novel, authorID *int64, chapters []domain.Chapter) (int64, error) {
	var novelID int64
	err := sqlstore.RunInTx(ctx, r.db, func(tx *sql.Tx) error {
		id, err := sqlstore.InsertReturningID(ctx, tx, r.dialect, r.dialect.Builder().
			Insert("novels").
			Columns("title", "author_id", "cover_url", "description", "status", "word_count", "category").
			Values(n.Title, authorID, n.CoverURL, n.Description, string(n.Status), n.WordCount, n.Category))
		if err != nil {
			return sqlstore.MapError(err, fmt.Sprintf("insert novel %q", n.Title))
		}
		novelID = id

		if len(chapters) == 0 {
			return nil
		}
		b := r.dialect.Builder().
			Insert("chapters").
			Columns("novel_id", "chapter_number", "title", "content", "word_count")
		for _, c := range chapters {
			b = b.Values(id, c.Number, c.Title, c.Content, c.WordCount)
		}
		query, args, err := b.ToSql()
		if err != nil {
			return fmt.Errorf("build insert chapters: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return sqlstore.MapError(err, fmt.Sprintf("insert chapters of %q", n.Title))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return novelID, nil
}

// existing maps values of col found in table to their row ids.
func (r *Repo) existing(ctx context.Context, table, col string, values []string) (map[string]int64, error) {
	out := make(map[string]int64, len(values))
	if len(values) == 0 {
		return out, nil
	}

	query, args, err := r.dialect.Builder().
		Select("id", col+" AS lookup_value").
		From(table).
		Where(sq.Eq{col: values}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lookup %s: %w", table, err)
	}

	var rows []struct {
		ID    int64  `db:"id"`
		Value string `db:"lookup_value"`
	}
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, sqlstore.MapError(err, "lookup "+table)
	}
	for _, row := range rows {
		out[row.Value] = row.ID
	}
	return out, nil
}
