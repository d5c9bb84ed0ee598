package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/novelreader-backend/internal/domain"
)

// Suggest returns novels whose title contains q, for type-ahead.
// A blank q returns an empty slice without touching the store.
func (s *Service) Suggest(ctx context.Context, q string) ([]domain.NovelSummary, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []domain.NovelSummary{}, nil
	}
	if err := validateQuery(q, s.cfg.MaxQueryLength); err != nil {
		return nil, err
	}

	novels, err := s.novels.SuggestByTitle(ctx, q, s.cfg.SuggestionLimit)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	if novels == nil {
		novels = []domain.NovelSummary{}
	}
	return novels, nil
}
