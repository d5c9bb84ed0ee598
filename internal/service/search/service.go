package search

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/novelreader-backend/internal/config"
	"github.com/heartmarshall/novelreader-backend/internal/domain"
)

type novelSearcher interface {
	SearchFullText(ctx context.Context, term string, page domain.PageRequest) ([]domain.NovelSummary, error)
	SearchLike(ctx context.Context, term string, page domain.PageRequest) ([]domain.NovelSummary, error)
	SuggestByTitle(ctx context.Context, term string, limit int) ([]domain.NovelSummary, error)
}

// Service answers free-text novel queries: full-text relevance first, with a
// substring match when full-text yields nothing or is unavailable.
type Service struct {
	novels novelSearcher
	cfg    config.SearchConfig
	log    *slog.Logger
}

// NewService creates a new Search service.
func NewService(
	log *slog.Logger,
	novels novelSearcher,
	cfg config.SearchConfig,
) *Service {
	return &Service{
		novels: novels,
		cfg:    cfg,
		log:    log.With("service", "search"),
	}
}

// MaxQueryLength is the longest accepted query, in characters.
func (s *Service) MaxQueryLength() int { return s.cfg.MaxQueryLength }
