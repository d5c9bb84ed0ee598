package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore/novel"
	"github.com/heartmarshall/novelreader-backend/internal/domain"
	"github.com/heartmarshall/novelreader-backend/internal/validate"
)

// ListNovels returns the newest novels, optionally limited to one category.
func (s *Service) ListNovels(ctx context.Context, input ListNovelsInput) (*NovelPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page := pageOrDefault(input.Page)
	limit := limitOrDefault(input.Limit, DefaultNovelLimit)
	pr := domain.PageRequest{Page: page, Limit: limit}

	novels, total, err := s.novels.List(ctx, novel.Filter{
		Category: input.category(),
		SortBy:   novel.SortByCreatedAt,
		Limit:    limit,
		Offset:   pr.Offset(),
	})
	if err != nil {
		return nil, fmt.Errorf("list novels: %w", err)
	}

	return newNovelPage(novels, page, limit, total), nil
}

// GetNovel returns a single novel by ID.
func (s *Service) GetNovel(ctx context.Context, id int64) (*domain.Novel, error) {
	if err := validate.Var("id", id, "gt=0"); err != nil {
		return nil, err
	}

	n, err := s.novels.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get novel: %w", err)
	}
	return n, nil
}
