// Package chapter implements the chapter repository over database/sql.
package chapter

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

// Repo provides chapter reads.
type Repo struct {
	db      *sql.DB
	dialect sqlstore.Dialect
}

// New creates a new chapter repository.
func New(db *sql.DB, dialect sqlstore.Dialect) *Repo {
	return &Repo{db: db, dialect: dialect}
}

// ListByNovel returns the table of contents of a novel ordered by
// chapter_number ASC. Content is not loaded.
func (r *Repo) ListByNovel(ctx context.Context, novelID int64) ([]domain.Chapter, error) {
	query, args, err := r.listQuery(novelID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list chapters query: %w", err)
	}

	var rows []chapterRow
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, sqlstore.MapError(err, fmt.Sprintf("list chapters of novel %d", novelID))
	}

	chapters := make([]domain.Chapter, len(rows))
	for i, row := range rows {
		chapters[i] = row.toDomain()
	}
	return chapters, nil
}

// Get returns a chapter with its content, novel title and author name.
// Returns domain.ErrNotFound if the chapter does not exist or belongs to
// another novel.
func (r *Repo) Get(ctx context.Context, novelID, chapterID int64) (*domain.Chapter, error) {
	query, args, err := r.getQuery(novelID, chapterID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get chapter query: %w", err)
	}

	var row chapterRow
	if err := sqlscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, sqlstore.MapError(err, fmt.Sprintf("chapter %d of novel %d", chapterID, novelID))
	}

	c := row.toDomain()
	return &c, nil
}

func (r *Repo) listQuery(novelID int64) sq.SelectBuilder {
	return r.dialect.Builder().
		Select("c.id", "c.novel_id", "c.chapter_number", "c.title", "c.word_count", "c.created_at").
		From("chapters c").
		Where(sq.Eq{"c.novel_id": novelID}).
		OrderBy("c.chapter_number ASC")
}

func (r *Repo) getQuery(novelID, chapterID int64) sq.SelectBuilder {
	return r.dialect.Builder().
		Select(
			"c.id", "c.novel_id", "c.chapter_number", "c.title", "c.word_count", "c.created_at",
			"c.content",
			"n.title AS novel_title",
			"a.username AS author_name",
		).
		From("chapters c").
		Join("novels n ON n.id = c.novel_id").
		LeftJoin("authors a ON a.id = n.author_id").
		Where(sq.Eq{"c.id": chapterID, "c.novel_id": novelID})
}

type chapterRow struct {
	ID         int64     `db:"id"`
	NovelID    int64     `db:"novel_id"`
	Number     int       `db:"chapter_number"`
	Title      string    `db:"title"`
	WordCount  int64     `db:"word_count"`
	CreatedAt  time.Time `db:"created_at"`
	Content    string    `db:"content"`
	NovelTitle string    `db:"novel_title"`
	AuthorName *string   `db:"author_name"`
}

func (row chapterRow) toDomain() domain.Chapter {
	return domain.Chapter{
		ID:         row.ID,
		NovelID:    row.NovelID,
		Number:     row.Number,
		Title:      row.Title,
		WordCount:  row.WordCount,
		CreatedAt:  row.CreatedAt,
		Content:    row.Content,
		NovelTitle: row.NovelTitle,
		AuthorName: row.AuthorName,
	}
}
