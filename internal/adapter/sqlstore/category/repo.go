// Package category implements the category repository over database/sql.
package category

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore"
	"github.com/heartmarshall/novelreader-backend/internal/domain"
)

// Repo provides category reads.
type Repo struct {
	db      *sql.DB
	dialect sqlstore.Dialect
}

// New creates a new category repository.
func New(db *sql.DB, dialect sqlstore.Dialect) *Repo {
	return &Repo{db: db, dialect: dialect}
}

// List returns all categories, featured first, then by sort_order ASC.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	query, args, err := r.selectCategories().
		OrderBy("is_featured DESC", "sort_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories query: %w", err)
	}

	var rows []categoryRow
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, sqlstore.MapError(err, "list categories")
	}

	categories := make([]domain.Category, len(rows))
	for i, row := range rows {
		categories[i] = row.toDomain()
	}
	return categories, nil
}

// GetBySlug returns a category by slug.
// Returns domain.ErrNotFound if the slug is unknown.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query, args, err := r.selectCategories().Where(sq.Eq{"slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category query: %w", err)
	}

	var row categoryRow
	if err := sqlscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, sqlstore.MapError(err, fmt.Sprintf("category %q", slug))
	}

	c := row.toDomain()
	return &c, nil
}

func (r *Repo) selectCategories() sq.SelectBuilder {
	return r.dialect.Builder().
		Select("id", "name", "slug", "description", "is_featured", "sort_order").
		From("categories")
}

type categoryRow struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Slug        string  `db:"slug"`
	Description *string `db:"description"`
	IsFeatured  bool    `db:"is_featured"`
	SortOrder   int     `db:"sort_order"`
}

func (row categoryRow) toDomain() domain.Category {
	return domain.Category{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		IsFeatured:  row.IsFeatured,
		SortOrder:   row.SortOrder,
	}
}
