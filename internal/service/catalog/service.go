package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore/novel"
	"github.com/heartmarshall/novelreader-backend/internal/domain"
)

const (
	DefaultNovelLimit         = 10
	DefaultCategoryNovelLimit = 20
	MaxLimit                  = 100
)

type novelRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Novel, error)
	List(ctx context.Context, f novel.Filter) ([]domain.Novel, int, error)
}

type chapterRepo interface {
	ListByNovel(ctx context.Context, novelID int64) ([]domain.Chapter, error)
	Get(ctx context.Context, novelID, chapterID int64) (*domain.Chapter, error)
}

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

// Service provides read access to novels, chapters and categories.
type Service struct {
	novels     novelRepo
	chapters   chapterRepo
	categories categoryRepo
	log        *slog.Logger
}

// NewService creates a new Catalog service.
func NewService(
	log *slog.Logger,
	novels novelRepo,
	chapters chapterRepo,
	categories categoryRepo,
) *Service {
	return &Service{
		novels:     novels,
		chapters:   chapters,
		categories: categories,
		log:        log.With("service", "catalog"),
	}
}
