// Package seeder loads a catalog dataset into the store.
package seeder

import (
	"context"

	"github.com/heartmarshall/novelreader-backend/internal/domain"
)

// CatalogBulkRepo defines the write contract consumed by the seeder pipeline.
// Implemented by bulk.Repo.
type CatalogBulkRepo interface {
	// InsertCategories skips slugs that already exist and returns the
	// number of inserted rows.
	InsertCategories(ctx context.Context, categories []domain.Category) (int, error)
	EnsureAuthors(ctx context.Context, usernames []string) (map[string]int64, error)
	GetNovelIDsByTitles(ctx context.Context, titles []string) (map[string]int64, error)
	// InsertNovel writes the novel and its chapters atomically.
	InsertNovel(ctx context.Context, n domain.Novel, authorID *int64, chapters []domain.Chapter) (int64, error)
}
