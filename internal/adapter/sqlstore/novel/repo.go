// Package novel implements the novel repository over database/sql.
// It serves the search projections (full-text and substring) and the catalog
// listing and detail reads.
package novel

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore"
	"github.com/heartmarshall/novelreader-backend/internal/domain"
)

// Repo provides novel persistence backed by MySQL or PostgreSQL.
type Repo struct {
	db      *sql.DB
	dialect sqlstore.Dialect
	descLen int
}

// New creates a new novel repository. descLen bounds the short description
// returned by the search projections.
func New(db *sql.DB, dialect sqlstore.Dialect, descLen int) *Repo {
	if descLen <= 0 || descLen > domain.ShortDescriptionLength {
		descLen = domain.ShortDescriptionLength
	}
	return &Repo{db: db, dialect: dialect, descLen: descLen}
}

// ---------------------------------------------------------------------------
// Search projections
// ---------------------------------------------------------------------------

// SearchFullText returns novels matching term by relevance DESC. It returns
// an error wrapping domain.ErrFullTextUnavailable when the engine cannot run
// the relevance query.
func (r *Repo) SearchFullText(ctx context.Context, term string, page domain.PageRequest) ([]domain.NovelSummary, error) {
	query, args, err := r.fullTextQuery(term, page).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build fulltext query: %w", err)
	}

	var rows []summaryRow
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, sqlstore.MapError(err, "search novels fulltext")
	}
	return r.toSummaries(rows), nil
}

// SearchLike returns novels whose title or description contains term,
// case-insensitively, ordered by title ASC.
func (r *Repo) SearchLike(ctx context.Context, term string, page domain.PageRequest) ([]domain.NovelSummary, error) {
	query, args, err := r.likeQuery(term, page).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build like query: %w", err)
	}

	var rows []summaryRow
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, sqlstore.MapError(err, "search novels like")
	}
	return r.toSummaries(rows), nil
}

// SuggestByTitle returns up to limit novels whose title contains term,
// ordered by title ASC.
func (r *Repo) SuggestByTitle(ctx context.Context, term string, limit int) ([]domain.NovelSummary, error) {
	query, args, err := r.suggestQuery(term, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build suggest query: %w", err)
	}

	var rows []summaryRow
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, sqlstore.MapError(err, "suggest novels")
	}
	return r.toSummaries(rows), nil
}

func (r *Repo) summarySelect() sq.SelectBuilder {
	return r.dialect.Builder().
		Select(
			"n.id",
			"n.title",
			"n.cover_url",
			r.dialect.ShortText("n.description", r.descLen, "short_description"),
			"n.status",
			"n.word_count",
			"a.username AS author_name",
		).
		From("novels n").
		LeftJoin("authors a ON a.id = n.author_id")
}

func (r *Repo) fullTextQuery(term string, page domain.PageRequest) sq.SelectBuilder {
	return r.summarySelect().
		Column(r.dialect.Relevance(term)).
		Where(r.dialect.FullTextMatch(term)).
		OrderBy("relevance DESC", "n.id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))
}

func (r *Repo) likeQuery(term string, page domain.PageRequest) sq.SelectBuilder {
	return r.summarySelect().
		Where(r.dialect.Contains(term, "n.title", "n.description")).
		OrderBy("n.title ASC", "n.id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))
}

func (r *Repo) suggestQuery(term string, limit int) sq.SelectBuilder {
	return r.summarySelect().
		Where(r.dialect.Contains(term, "n.title")).
		OrderBy("n.title ASC", "n.id ASC").
		Limit(uint64(limit))
}

// ---------------------------------------------------------------------------
// Catalog reads
// ---------------------------------------------------------------------------

// GetByID returns a novel with its author name.
// Returns domain.ErrNotFound if the novel does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Novel, error) {
	query, args, err := r.novelSelect().Where(sq.Eq{"n.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get novel query: %w", err)
	}

	var row novelRow
	if err := sqlscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, sqlstore.MapError(err, fmt.Sprintf("novel %d", id))
	}

	n := row.toDomain()
	return &n, nil
}

// List returns a page of novels matching f plus the total number of matching
// novels. Returns an empty slice and total 0 when nothing matches.
func (r *Repo) List(ctx context.Context, f Filter) ([]domain.Novel, int, error) {
	f.normalize()

	total, err := r.Count(ctx, f.Category)
	if err != nil {
		return nil, 0, err
	}

	query, args, err := r.listQuery(f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list novels query: %w", err)
	}

	var rows []novelRow
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, 0, sqlstore.MapError(err, "list novels")
	}

	novels := make([]domain.Novel, len(rows))
	for i, row := range rows {
		novels[i] = row.toDomain()
	}
	return novels, total, nil
}

// Count returns the number of novels in category, or all novels when
// category is empty.
func (r *Repo) Count(ctx context.Context, category string) (int, error) {
	query, args, err := r.countQuery(category).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count novels query: %w", err)
	}

	var total int
	if err := sqlscan.Get(ctx, r.db, &total, query, args...); err != nil {
		return 0, sqlstore.MapError(err, "count novels")
	}
	return total, nil
}

func (r *Repo) novelSelect() sq.SelectBuilder {
	return r.dialect.Builder().
		Select(
			"n.id",
			"n.title",
			"n.cover_url",
			"n.description",
			"n.status",
			"n.word_count",
			"n.category",
			"a.username AS author_name",
			"n.created_at",
			"n.updated_at",
		).
		From("novels n").
		LeftJoin("authors a ON a.id = n.author_id")
}

func (r *Repo) listQuery(f Filter) sq.SelectBuilder {
	b := r.novelSelect()
	if f.Category != "" {
		b = b.Where(sq.Eq{"n.category": f.Category})
	}
	return b.
		OrderBy(f.sortColumn()+" DESC", "n.id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))
}

func (r *Repo) countQuery(category string) sq.SelectBuilder {
	b := r.dialect.Builder().Select("COUNT(*)").From("novels n")
	if category != "" {
		b = b.Where(sq.Eq{"n.category": category})
	}
	return b
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type summaryRow struct {
	ID               int64    `db:"id"`
	Title            string   `db:"title"`
	CoverURL         *string  `db:"cover_url"`
	ShortDescription string   `db:"short_description"`
	Status           string   `db:"status"`
	WordCount        int64    `db:"word_count"`
	AuthorName       *string  `db:"author_name"`
	Relevance        *float64 `db:"relevance"`
}

type novelRow struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	CoverURL    *string   `db:"cover_url"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	WordCount   int64     `db:"word_count"`
	Category    *string   `db:"category"`
	AuthorName  *string   `db:"author_name"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r *Repo) toSummaries(rows []summaryRow) []domain.NovelSummary {
	out := make([]domain.NovelSummary, len(rows))
	for i, row := range rows {
		out[i] = domain.NovelSummary{
			ID:               row.ID,
			Title:            row.Title,
			CoverURL:         row.CoverURL,
			ShortDescription: domain.TruncateRunes(row.ShortDescription, r.descLen),
			Status:           domain.NovelStatus(row.Status),
			WordCount:        row.WordCount,
			AuthorName:       row.AuthorName,
			Relevance:        row.Relevance,
		}
	}
	return out
}

func (row novelRow) toDomain() domain.Novel {
	return domain.Novel{
		ID:          row.ID,
		Title:       row.Title,
		CoverURL:    row.CoverURL,
		Description: row.Description,
		Status:      domain.NovelStatus(row.Status),
		WordCount:   row.WordCount,
		Category:    row.Category,
		AuthorName:  row.AuthorName,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
