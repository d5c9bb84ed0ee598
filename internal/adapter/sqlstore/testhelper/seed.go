package testhelper

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NovelSeed describes a novel row to insert. Zero values get defaults.
type NovelSeed struct {
	Title       string
	Description string
	Status      string
	WordCount   int64
	Category    *string
	CoverURL    *string
	AuthorID    *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SeedAuthor inserts an author and returns its id.
func SeedAuthor(t *testing.T, db *sql.DB, d sqlstore.Dialect, username string) int64 {
	t.Helper()

	return insertReturningID(t, db, d, d.Builder().
		Insert("authors").
		Columns("username").
		Values(username+"-"+UniqueSuffix()))
}

// SeedCategory inserts a category with a unique slug derived from slug and
// returns the stored slug.
func SeedCategory(t *testing.T, db *sql.DB, d sqlstore.Dialect, slug string, featured bool, sortOrder int) string {
	t.Helper()

	stored := slug + "-" + UniqueSuffix()
	insertReturningID(t, db, d, d.Builder().
		Insert("categories").
		Columns("name", "slug", "description", "is_featured", "sort_order").
		Values("Category "+stored, stored, nil, featured, sortOrder))
	return stored
}

// SeedNovel inserts a novel and returns its id.
func SeedNovel(t *testing.T, db *sql.DB, d sqlstore.Dialect, n NovelSeed) int64 {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	if n.Status == "" {
		n.Status = "ongoing"
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = n.CreatedAt
	}

	return insertReturningID(t, db, d, d.Builder().
		Insert("novels").
		Columns("title", "author_id", "cover_url", "description", "status", "word_count", "category", "created_at", "updated_at").
		Values(n.Title, n.AuthorID, n.CoverURL, n.Description, n.Status, n.WordCount, n.Category, n.CreatedAt, n.UpdatedAt))
}

// SeedChapter inserts a chapter and returns its id.
func SeedChapter(t *testing.T, db *sql.DB, d sqlstore.Dialect, novelID int64, number int, title, content string) int64 {
	t.Helper()

	return insertReturningID(t, db, d, d.Builder().
		Insert("chapters").
		Columns("novel_id", "chapter_number", "title", "content", "word_count").
		Values(novelID, number, title, content, len([]rune(content))))
}

func insertReturningID(t *testing.T, db *sql.DB, d sqlstore.Dialect, b sq.InsertBuilder) int64 {
	t.Helper()

	id, err := sqlstore.InsertReturningID(context.Background(), db, d, b)
	if err != nil {
		t.Fatalf("testhelper: insert: %v", err)
	}
	return id
}
